package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sysrai/sysrai-platform/internal/logger"
	"github.com/sysrai/sysrai-platform/internal/models"
)

const projectColumns = `project_id, user_id, title, duration_minutes, format, quality,
	status, progress, cost, film_url, metadata, created_at, estimated_completion, completed_at`

// ProjectReadRepository handles project read operations.
type ProjectReadRepository struct {
	db *sqlx.DB
}

func NewProjectReadRepository(db *sqlx.DB) *ProjectReadRepository {
	return &ProjectReadRepository{db: db}
}

// GetByID returns the project with the given id, or nil if none exists.
func (r *ProjectReadRepository) GetByID(ctx context.Context, projectID uuid.UUID) (*models.ProjectDB, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE project_id = $1`

	var project models.ProjectDB
	err := r.db.GetContext(ctx, &project, query, projectID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{projectID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// ListByUserID returns a user's projects, newest first.
func (r *ProjectReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.ProjectDB, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	var projects []models.ProjectDB
	err := r.db.SelectContext(ctx, &projects, query, userID, limit, offset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit, offset},
		"result", len(projects),
		"error", err,
	)

	return projects, err
}

// ProjectWriteRepository handles project write operations. Status moves are
// update-if-unchanged so the projects table can serve as the durable
// generation queue: a concurrent writer simply loses the claim.
type ProjectWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProjectWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProjectWriteRepository {
	return &ProjectWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new project row.
func (r *ProjectWriteRepository) Save(ctx context.Context, project *models.ProjectDB) error {
	query := `
		INSERT INTO projects (project_id, user_id, title, duration_minutes, format, quality,
			status, progress, cost, metadata, created_at, estimated_completion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), $11)
	`
	args := []any{
		project.ProjectID, project.UserID, project.Title, project.DurationMinutes,
		project.Format, project.Quality, project.Status, project.Progress,
		project.Cost, project.Metadata, project.EstimatedCompletion,
	}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	_, err := executor.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// ClaimQueued atomically claims the oldest queued project for generation.
// Returns nil when the queue is empty.
func (r *ProjectWriteRepository) ClaimQueued(ctx context.Context) (*models.ProjectDB, error) {
	query := `
		UPDATE projects
		SET status = $1, progress = $2
		WHERE project_id = (
			SELECT project_id FROM projects
			WHERE status = $3
			ORDER BY created_at ASC
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING ` + projectColumns

	var project models.ProjectDB
	err := r.db.GetContext(ctx, &project, query,
		models.StatusGenerating, models.ProgressGenerating, models.StatusQueued)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{models.StatusGenerating, models.ProgressGenerating, models.StatusQueued},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// AdvanceStatus moves a project from expectedStatus to status and raises
// progress, only if nobody moved it first. Returns false when the row was
// already past expectedStatus.
func (r *ProjectWriteRepository) AdvanceStatus(ctx context.Context, projectID uuid.UUID, expectedStatus, status string, progress int) (bool, error) {
	query := `
		UPDATE projects
		SET status = $3, progress = GREATEST(progress, $4)
		WHERE project_id = $1 AND status = $2
	`
	args := []any{projectID, expectedStatus, status, progress}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

// Complete marks the project finished and records the film URL.
func (r *ProjectWriteRepository) Complete(ctx context.Context, projectID uuid.UUID, filmURL string) error {
	query := `
		UPDATE projects
		SET status = $2, progress = $3, film_url = $4, completed_at = NOW()
		WHERE project_id = $1 AND status NOT IN ($2, $5)
	`
	args := []any{projectID, models.StatusComplete, models.ProgressComplete, filmURL, models.StatusFailed}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Fail marks the project failed and merges the error into its metadata JSON,
// keeping the column parseable. Progress stays where the pipeline left it.
// No-op on terminal projects.
func (r *ProjectWriteRepository) Fail(ctx context.Context, projectID uuid.UUID, errorText string) error {
	errField, err := json.Marshal(map[string]string{"error": errorText})
	if err != nil {
		return err
	}

	query := `
		UPDATE projects
		SET status = $2, metadata = (COALESCE(NULLIF(metadata, ''), '{}')::jsonb || $3::jsonb)::text
		WHERE project_id = $1 AND status NOT IN ($2, $4)
	`
	args := []any{projectID, models.StatusFailed, string(errField), models.StatusComplete}

	_, err = r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}
