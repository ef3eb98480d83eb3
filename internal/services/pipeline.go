package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sysrai/sysrai-platform/internal/logger"
	"github.com/sysrai/sysrai-platform/internal/models"
)

// PipelineQueue claims and advances queued projects.
type PipelineQueue interface {
	ClaimQueued(ctx context.Context) (*models.ProjectDB, error)
	AdvanceStatus(ctx context.Context, projectID uuid.UUID, expectedStatus, status string, progress int) (bool, error)
	Complete(ctx context.Context, projectID uuid.UUID, filmURL string) error
	Fail(ctx context.Context, projectID uuid.UUID, errorText string) error
}

// ScriptGenerator generates scripts and storyboards.
type ScriptGenerator interface {
	GenerateScript(ctx context.Context, sourceContent string, durationMinutes int) (string, error)
	GenerateStoryboard(ctx context.Context, script string) (string, error)
}

// FilmGenerator renders a storyboard into a film and returns its source URL.
type FilmGenerator interface {
	GenerateFilm(ctx context.Context, storyboard, title, quality string) (string, error)
}

// FilmStorer moves a rendered film into durable storage.
type FilmStorer interface {
	StoreFilm(ctx context.Context, projectID, sourceURL string) (string, error)
}

// NodeReleaser frees GPU capacity held by a project.
type NodeReleaser interface {
	ReleaseByProject(ctx context.Context, projectID uuid.UUID) error
}

// PipelineService is the background worker that drives claimed projects
// through the generation stages. A claim moves the project to generating,
// so two workers never run the same project.
type PipelineService struct {
	queue    PipelineQueue
	scripts  ScriptGenerator
	videos   FilmGenerator
	storage  FilmStorer
	nodes    NodeReleaser
	ledger   CreditApplier
	interval time.Duration
}

// NewPipelineService creates a new PipelineService.
func NewPipelineService(
	queue PipelineQueue,
	scripts ScriptGenerator,
	videos FilmGenerator,
	storage FilmStorer,
	nodes NodeReleaser,
	ledger CreditApplier,
	interval time.Duration,
) *PipelineService {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &PipelineService{
		queue:    queue,
		scripts:  scripts,
		videos:   videos,
		storage:  storage,
		nodes:    nodes,
		ledger:   ledger,
		interval: interval,
	}
}

// Run polls the queue until the context is cancelled.
func (s *PipelineService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logger.Log.Infow("pipeline worker started", "interval", s.interval)
	for {
		select {
		case <-ctx.Done():
			logger.Log.Infow("pipeline worker stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick drains the queue: keep claiming until it comes back empty.
func (s *PipelineService) tick(ctx context.Context) {
	for {
		project, err := s.queue.ClaimQueued(ctx)
		if err != nil {
			logger.Log.Errorw("failed to claim queued project", "error", err)
			return
		}
		if project == nil {
			return
		}
		s.Process(ctx, project)
	}
}

// Process runs a claimed project through its stages. The claim already moved
// it to generating, so the first transition expects that status.
func (s *PipelineService) Process(ctx context.Context, project *models.ProjectDB) {
	logger.Log.Infow("processing project",
		"project_id", project.ProjectID, "duration", project.DurationMinutes)

	var meta projectMetadata
	if project.Metadata != "" {
		if err := json.Unmarshal([]byte(project.Metadata), &meta); err != nil {
			s.fail(ctx, project, fmt.Sprintf("invalid metadata: %v", err))
			return
		}
	}

	// Stages the user did not order are skipped; a skipped stage passes its
	// input through, so the renderer gets the richest artifact produced.
	script := meta.SourceContent
	status := models.StatusGenerating
	if meta.IncludeScript {
		generated, err := s.runStage(ctx, 10*time.Minute, func(ctx context.Context) (string, error) {
			return s.scripts.GenerateScript(ctx, meta.SourceContent, project.DurationMinutes)
		})
		if err != nil {
			s.fail(ctx, project, fmt.Sprintf("script generation failed: %v", err))
			return
		}
		if !s.advance(ctx, project, status, models.StatusScriptComplete, models.ProgressScriptComplete) {
			return
		}
		script = generated
		status = models.StatusScriptComplete
	}

	storyboard := script
	if meta.IncludeStoryboard {
		generated, err := s.runStage(ctx, 10*time.Minute, func(ctx context.Context) (string, error) {
			return s.scripts.GenerateStoryboard(ctx, script)
		})
		if err != nil {
			s.fail(ctx, project, fmt.Sprintf("storyboard generation failed: %v", err))
			return
		}
		if !s.advance(ctx, project, status, models.StatusStoryboardComplete, models.ProgressStoryboardComplete) {
			return
		}
		storyboard = generated
	}

	sourceURL, err := s.videos.GenerateFilm(ctx, storyboard, project.Title, project.Quality)
	if err != nil {
		s.fail(ctx, project, fmt.Sprintf("video generation failed: %v", err))
		return
	}

	filmURL, err := s.storage.StoreFilm(ctx, project.ProjectID.String(), sourceURL)
	if err != nil {
		s.fail(ctx, project, fmt.Sprintf("film upload failed: %v", err))
		return
	}

	if err := s.queue.Complete(ctx, project.ProjectID, filmURL); err != nil {
		logger.Log.Errorw("failed to mark project complete",
			"project_id", project.ProjectID, "error", err)
		return
	}
	s.release(ctx, project.ProjectID)

	logger.Log.Infow("project complete",
		"project_id", project.ProjectID, "film_url", filmURL)
}

func (s *PipelineService) runStage(ctx context.Context, timeout time.Duration, stage func(ctx context.Context) (string, error)) (string, error) {
	stageCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return stage(stageCtx)
}

func (s *PipelineService) advance(ctx context.Context, project *models.ProjectDB, expected, status string, progress int) bool {
	ok, err := s.queue.AdvanceStatus(ctx, project.ProjectID, expected, status, progress)
	if err != nil {
		logger.Log.Errorw("failed to advance project status",
			"project_id", project.ProjectID, "status", status, "error", err)
		return false
	}
	if !ok {
		// Another actor moved the project, most likely to failed. Stop.
		logger.Log.Warnw("project status changed concurrently",
			"project_id", project.ProjectID, "expected", expected)
		return false
	}
	return true
}

// fail marks the project failed, releases its node and refunds its cost.
func (s *PipelineService) fail(ctx context.Context, project *models.ProjectDB, errorText string) {
	logger.Log.Errorw("project failed",
		"project_id", project.ProjectID, "reason", errorText)

	if err := s.queue.Fail(ctx, project.ProjectID, errorText); err != nil {
		logger.Log.Errorw("failed to mark project failed",
			"project_id", project.ProjectID, "error", err)
		return
	}
	s.release(ctx, project.ProjectID)

	if project.Cost > 0 {
		description := fmt.Sprintf("Refund for failed project %s", project.ProjectID)
		ref := project.ProjectID.String()
		if _, err := s.ledger.Apply(ctx, project.UserID, project.Cost, models.TxRefund, description, &ref); err != nil {
			logger.Log.Errorw("failed to refund project",
				"project_id", project.ProjectID, "user_id", project.UserID, "error", err)
		}
	}
}

func (s *PipelineService) release(ctx context.Context, projectID uuid.UUID) {
	if s.nodes == nil {
		return
	}
	if err := s.nodes.ReleaseByProject(ctx, projectID); err != nil {
		logger.Log.Errorw("failed to release node",
			"project_id", projectID, "error", err)
	}
}
