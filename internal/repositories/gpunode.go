package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sysrai/sysrai-platform/internal/logger"
	"github.com/sysrai/sysrai-platform/internal/models"
)

const nodeColumns = `node_id, provider, instance_id, gpu_class, hourly_cost, status,
	current_project_id, performance_score, region, created_at, updated_at`

// GPUNodeReadRepository handles GPU node read operations.
type GPUNodeReadRepository struct {
	db *sqlx.DB
}

func NewGPUNodeReadRepository(db *sqlx.DB) *GPUNodeReadRepository {
	return &GPUNodeReadRepository{db: db}
}

// BestAvailable returns the best available node among the given GPU classes:
// highest performance score first, then cheapest. Returns nil when no node
// matches.
func (r *GPUNodeReadRepository) BestAvailable(ctx context.Context, gpuClasses []string) (*models.GPUNodeDB, error) {
	query, args, err := sqlx.In(`SELECT `+nodeColumns+` FROM gpu_nodes
		WHERE status = ? AND gpu_class IN (?)
		ORDER BY performance_score DESC, hourly_cost ASC
		LIMIT 1`, models.NodeAvailable, gpuClasses)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var node models.GPUNodeDB
	err = r.db.GetContext(ctx, &node, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &node, nil
}

// IdleByCostDesc returns up to limit idle nodes, most expensive first.
// A node with a current project is never idle, whatever its status says.
func (r *GPUNodeReadRepository) IdleByCostDesc(ctx context.Context, limit int) ([]models.GPUNodeDB, error) {
	query := `SELECT ` + nodeColumns + ` FROM gpu_nodes
		WHERE status = $1 AND current_project_id IS NULL
		ORDER BY hourly_cost DESC
		LIMIT $2`

	var nodes []models.GPUNodeDB
	err := r.db.SelectContext(ctx, &nodes, query, models.NodeAvailable, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{models.NodeAvailable, limit},
		"result", len(nodes),
		"error", err,
	)

	return nodes, err
}

// ClusterStatus aggregates the pool. Terminated nodes are excluded from the
// totals; maintenance nodes count toward totals but not cost.
func (r *GPUNodeReadRepository) ClusterStatus(ctx context.Context) (*models.ClusterStatus, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status <> $1) AS total_nodes,
			COUNT(*) FILTER (WHERE status = $2) AS available_nodes,
			COUNT(*) FILTER (WHERE status = $3) AS busy_nodes,
			COALESCE(SUM(hourly_cost) FILTER (WHERE status IN ($2, $3)), 0) AS hourly_cost
		FROM gpu_nodes
	`

	var row struct {
		TotalNodes     int     `db:"total_nodes"`
		AvailableNodes int     `db:"available_nodes"`
		BusyNodes      int     `db:"busy_nodes"`
		HourlyCost     float64 `db:"hourly_cost"`
	}
	err := r.db.GetContext(ctx, &row, query,
		models.NodeTerminated, models.NodeAvailable, models.NodeBusy)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", row,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	status := &models.ClusterStatus{
		TotalNodes:     row.TotalNodes,
		AvailableNodes: row.AvailableNodes,
		BusyNodes:      row.BusyNodes,
		HourlyCost:     row.HourlyCost,
		DailyCost:      row.HourlyCost * 24,
		MonthlyCost:    row.HourlyCost * 24 * 30,
	}
	if row.TotalNodes > 0 {
		status.Utilization = float64(row.BusyNodes) / float64(row.TotalNodes) * 100
	}
	return status, nil
}

// GPUNodeWriteRepository handles GPU node write operations.
type GPUNodeWriteRepository struct {
	db *sqlx.DB
}

func NewGPUNodeWriteRepository(db *sqlx.DB) *GPUNodeWriteRepository {
	return &GPUNodeWriteRepository{db: db}
}

// Save inserts a new node row.
func (r *GPUNodeWriteRepository) Save(ctx context.Context, node *models.GPUNodeDB) error {
	query := `
		INSERT INTO gpu_nodes (node_id, provider, instance_id, gpu_class, hourly_cost,
			status, performance_score, region, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	args := []any{
		node.NodeID, node.Provider, node.InstanceID, node.GPUClass,
		node.HourlyCost, node.Status, node.PerformanceScore, node.Region,
	}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Assign marks a node busy and stamps the project it serves, only if the
// node is still available. Returns false when another request won the node.
func (r *GPUNodeWriteRepository) Assign(ctx context.Context, nodeID, projectID uuid.UUID) (bool, error) {
	query := `
		UPDATE gpu_nodes
		SET status = $3, current_project_id = $2, updated_at = NOW()
		WHERE node_id = $1 AND status = $4
	`
	args := []any{nodeID, projectID, models.NodeBusy, models.NodeAvailable}

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

// Release returns a busy node to the available pool.
func (r *GPUNodeWriteRepository) Release(ctx context.Context, nodeID uuid.UUID) error {
	query := `
		UPDATE gpu_nodes
		SET status = $2, current_project_id = NULL, updated_at = NOW()
		WHERE node_id = $1 AND status = $3
	`
	args := []any{nodeID, models.NodeAvailable, models.NodeBusy}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// ReleaseByProject returns whichever node serves the project, if any.
func (r *GPUNodeWriteRepository) ReleaseByProject(ctx context.Context, projectID uuid.UUID) error {
	query := `
		UPDATE gpu_nodes
		SET status = $2, current_project_id = NULL, updated_at = NOW()
		WHERE current_project_id = $1
	`
	args := []any{projectID, models.NodeAvailable}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// MarkTerminated retires a node after its provider instance is gone. The row
// stays for audit. Refuses nodes that still serve a project.
func (r *GPUNodeWriteRepository) MarkTerminated(ctx context.Context, nodeID uuid.UUID) error {
	query := `
		UPDATE gpu_nodes
		SET status = $2, updated_at = NOW()
		WHERE node_id = $1 AND current_project_id IS NULL
	`
	args := []any{nodeID, models.NodeTerminated}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}
