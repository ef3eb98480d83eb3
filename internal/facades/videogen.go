package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sysrai/sysrai-platform/internal/logger"
)

// VideoGenFacade drives the GPU video backend over HTTP: submit a generation
// job, then poll its status with exponential backoff until it finishes, the
// context ends, or the configured wait budget runs out.
type VideoGenFacade struct {
	baseURL     string
	apiKey      string
	client      *http.Client
	pollTimeout time.Duration
}

// NewVideoGenFacade creates a video backend client. pollTimeout bounds how
// long one generation may be awaited end to end.
func NewVideoGenFacade(baseURL, apiKey string, pollTimeout time.Duration) *VideoGenFacade {
	return &VideoGenFacade{
		baseURL:     baseURL,
		apiKey:      apiKey,
		client:      &http.Client{Timeout: 60 * time.Second},
		pollTimeout: pollTimeout,
	}
}

type videoGenRequest struct {
	Storyboard string `json:"storyboard"`
	Title      string `json:"title"`
	Quality    string `json:"quality"`
	FPS        int    `json:"fps"`
}

type videoGenSubmitResponse struct {
	JobID string `json:"job_id"`
}

type videoGenStatusResponse struct {
	Status   string `json:"status"` // pending, running, succeeded, failed
	VideoURL string `json:"video_url"`
	Error    string `json:"error"`
}

// errJobPending signals the backoff loop to keep polling.
var errJobPending = fmt.Errorf("video job still running")

// GenerateFilm submits the storyboard and waits for the finished film URL.
func (f *VideoGenFacade) GenerateFilm(ctx context.Context, storyboard, title, quality string) (string, error) {
	jobID, err := f.submit(ctx, storyboard, title, quality)
	if err != nil {
		return "", err
	}

	logger.Log.Infow("video generation submitted", "job_id", jobID, "title", title)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 5 * time.Second
	b.MaxInterval = time.Minute
	b.MaxElapsedTime = f.pollTimeout

	var videoURL string
	err = backoff.Retry(func() error {
		status, err := f.poll(ctx, jobID)
		if err != nil {
			return backoff.Permanent(err)
		}
		switch status.Status {
		case "succeeded":
			videoURL = status.VideoURL
			return nil
		case "failed":
			return backoff.Permanent(fmt.Errorf("video generation failed: %s", status.Error))
		default:
			return errJobPending
		}
	}, backoff.WithContext(b, ctx))
	if err != nil {
		if err == errJobPending {
			err = fmt.Errorf("video generation timed out after %s", f.pollTimeout)
		}
		logger.Log.Errorw("video generation did not finish", "job_id", jobID, "error", err)
		return "", err
	}

	logger.Log.Infow("video generation finished", "job_id", jobID, "video_url", videoURL)
	return videoURL, nil
}

func (f *VideoGenFacade) submit(ctx context.Context, storyboard, title, quality string) (string, error) {
	body, err := json.Marshal(videoGenRequest{
		Storyboard: storyboard,
		Title:      title,
		Quality:    quality,
		FPS:        24,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+f.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("video backend returned %d: %s", resp.StatusCode, raw)
	}

	var submitted videoGenSubmitResponse
	if err := json.NewDecoder(resp.Body).Decode(&submitted); err != nil {
		return "", err
	}
	return submitted.JobID, nil
}

func (f *VideoGenFacade) poll(ctx context.Context, jobID string) (*videoGenStatusResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/jobs/"+jobID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+f.apiKey)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("video backend returned %d: %s", resp.StatusCode, raw)
	}

	var status videoGenStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, err
	}
	return &status, nil
}
