package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sysrai/sysrai-platform/internal/logger"
	"github.com/sysrai/sysrai-platform/internal/models"
	"github.com/sysrai/sysrai-platform/internal/pricing"
)

// Error variables
var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrNotProjectOwner     = errors.New("not the project owner")
	ErrDurationExceedsTier = errors.New("duration exceeds subscription tier limit")
	ErrInvalidProject      = errors.New("invalid project request")
)

// InsufficientCreditsError reports how many credits the request needed and
// how many the user had.
type InsufficientCreditsError struct {
	Required  float64
	Available float64
}

func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits: need %.2f, have %.2f", e.Required, e.Available)
}

// ProjectUserReader reads users with a row lock when inside a transaction.
type ProjectUserReader interface {
	GetByIDForUpdate(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// ProjectReader defines project read operations.
type ProjectReader interface {
	GetByID(ctx context.Context, projectID uuid.UUID) (*models.ProjectDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.ProjectDB, error)
}

// ProjectWriter defines project write operations.
type ProjectWriter interface {
	Save(ctx context.Context, project *models.ProjectDB) error
}

// NodeAssigner assigns projects to GPU capacity.
type NodeAssigner interface {
	Assign(ctx context.Context, projectID uuid.UUID, durationMinutes int) (uuid.UUID, bool, error)
}

// CreateProjectRequest are the submission inputs.
type CreateProjectRequest struct {
	Title             string
	DurationMinutes   int
	Format            string
	IncludeScript     bool
	IncludeStoryboard bool
	Quality           string
	Rush              bool
	SourceContent     string
}

// projectMetadata is the JSON blob persisted with the project; the pipeline
// worker reads it back to know which stages to run.
type projectMetadata struct {
	IncludeScript     bool   `json:"include_script"`
	IncludeStoryboard bool   `json:"include_storyboard"`
	SourceContent     string `json:"source_content"`
	Rush              bool   `json:"rush"`
}

// ProjectService submits and reads film projects. Create must run inside a
// request transaction: the balance check, the usage debit and the project
// row are one atomic write, so a rejected request never debits.
type ProjectService struct {
	users    ProjectUserReader
	reader   ProjectReader
	writer   ProjectWriter
	ledger   CreditApplier
	pricer   pricing.Pricer
	assigner NodeAssigner
}

// NewProjectService creates a new ProjectService.
func NewProjectService(users ProjectUserReader, reader ProjectReader, writer ProjectWriter, ledger CreditApplier, pricer pricing.Pricer, assigner NodeAssigner) *ProjectService {
	return &ProjectService{
		users:    users,
		reader:   reader,
		writer:   writer,
		ledger:   ledger,
		pricer:   pricer,
		assigner: assigner,
	}
}

// Create prices the request, debits the user and queues the project.
func (s *ProjectService) Create(ctx context.Context, userID uuid.UUID, req CreateProjectRequest) (*models.ProjectDB, pricing.Breakdown, error) {
	if req.Title == "" || req.DurationMinutes <= 0 {
		return nil, pricing.Breakdown{}, ErrInvalidProject
	}

	user, err := s.users.GetByIDForUpdate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load user", "user_id", userID, "error", err)
		return nil, pricing.Breakdown{}, err
	}
	if user == nil {
		return nil, pricing.Breakdown{}, ErrUserNotFound
	}

	maxDuration, err := pricing.MaxDuration(user.SubscriptionTier)
	if err != nil {
		return nil, pricing.Breakdown{}, err
	}
	if maxDuration > 0 && req.DurationMinutes > maxDuration {
		logger.Log.Warnw("duration exceeds tier limit",
			"user_id", userID, "tier", user.SubscriptionTier, "duration", req.DurationMinutes)
		return nil, pricing.Breakdown{}, ErrDurationExceedsTier
	}

	cost, err := s.pricer.Price(pricing.Request{
		DurationMinutes:   req.DurationMinutes,
		IncludeScript:     req.IncludeScript,
		IncludeStoryboard: req.IncludeStoryboard,
		Quality:           req.Quality,
		Rush:              req.Rush,
	}, user.SubscriptionTier)
	if err != nil {
		return nil, pricing.Breakdown{}, err
	}

	if user.Credits < cost.Total {
		logger.Log.Warnw("insufficient credits",
			"user_id", userID, "required", cost.Total, "available", user.Credits)
		return nil, pricing.Breakdown{}, &InsufficientCreditsError{
			Required:  cost.Total,
			Available: user.Credits,
		}
	}

	meta, err := json.Marshal(projectMetadata{
		IncludeScript:     req.IncludeScript,
		IncludeStoryboard: req.IncludeStoryboard,
		SourceContent:     req.SourceContent,
		Rush:              req.Rush,
	})
	if err != nil {
		return nil, pricing.Breakdown{}, err
	}

	project := &models.ProjectDB{
		ProjectID:           uuid.New(),
		UserID:              userID,
		Title:               req.Title,
		DurationMinutes:     req.DurationMinutes,
		Format:              req.Format,
		Quality:             req.Quality,
		Status:              models.StatusQueued,
		Progress:            models.ProgressQueued,
		Cost:                cost.Total,
		Metadata:            string(meta),
		EstimatedCompletion: time.Now().Add(time.Duration(req.DurationMinutes) * 2 * time.Minute),
	}
	if err := s.writer.Save(ctx, project); err != nil {
		logger.Log.Errorw("failed to save project", "error", err)
		return nil, pricing.Breakdown{}, err
	}

	description := fmt.Sprintf("Project %s: %d minutes", project.ProjectID, req.DurationMinutes)
	if _, err := s.ledger.Apply(ctx, userID, -cost.Total, models.TxUsage, description, nil); err != nil {
		logger.Log.Errorw("failed to debit credits", "user_id", userID, "error", err)
		return nil, pricing.Breakdown{}, err
	}

	// Assignment is best effort: a miss has already fired a scale-up, and
	// the queued project is processed regardless of node bookkeeping.
	if s.assigner != nil {
		if _, _, err := s.assigner.Assign(ctx, project.ProjectID, req.DurationMinutes); err != nil {
			logger.Log.Warnw("node assignment failed at submission",
				"project_id", project.ProjectID, "error", err)
		}
	}

	logger.Log.Infow("project created",
		"project_id", project.ProjectID, "user_id", userID, "cost", cost.Total)
	return project, cost, nil
}

// Get returns a project after checking ownership.
func (s *ProjectService) Get(ctx context.Context, userID, projectID uuid.UUID) (*models.ProjectDB, error) {
	project, err := s.reader.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	if project.UserID != userID {
		logger.Log.Warnw("project access denied",
			"project_id", projectID, "owner", project.UserID, "caller", userID)
		return nil, ErrNotProjectOwner
	}
	return project, nil
}

// List returns a user's projects, newest first.
func (s *ProjectService) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.ProjectDB, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return s.reader.ListByUserID(ctx, userID, limit, offset)
}
