package facades

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sysrai/sysrai-platform/internal/logger"
)

// ChatCompleter is the slice of the OpenAI client the facade uses.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ScriptsFacade generates film scripts and storyboards with an LLM.
type ScriptsFacade struct {
	client ChatCompleter
	model  string
}

// NewScriptsFacade creates a facade over the given OpenAI-compatible client.
func NewScriptsFacade(client ChatCompleter, model string) *ScriptsFacade {
	if model == "" {
		model = openai.GPT4o
	}
	return &ScriptsFacade{client: client, model: model}
}

// GenerateScript turns the user's source content into a film script of
// roughly the requested length.
func (f *ScriptsFacade) GenerateScript(ctx context.Context, sourceContent string, durationMinutes int) (string, error) {
	prompt := fmt.Sprintf(
		"Write a cinematic film script of approximately %d minutes based on the following source material. "+
			"Use standard screenplay formatting with numbered scenes.\n\n%s",
		durationMinutes, sourceContent)

	resp, err := f.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: f.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a professional screenwriter."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		logger.Log.Errorw("script generation failed", "error", err)
		return "", fmt.Errorf("script generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("script generation returned no choices")
	}

	logger.Log.Infow("script generated", "duration_minutes", durationMinutes)
	return resp.Choices[0].Message.Content, nil
}

// GenerateStoryboard breaks a script into per-scene visual prompts for the
// video backend, one prompt per line.
func (f *ScriptsFacade) GenerateStoryboard(ctx context.Context, script string) (string, error) {
	prompt := "Break the following film script into a storyboard: one line per scene, " +
		"each line a vivid visual prompt suitable for a text-to-video model.\n\n" + script

	resp, err := f.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: f.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a storyboard artist."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		logger.Log.Errorw("storyboard generation failed", "error", err)
		return "", fmt.Errorf("storyboard generation failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("storyboard generation returned no choices")
	}

	logger.Log.Infow("storyboard generated")
	return resp.Choices[0].Message.Content, nil
}
