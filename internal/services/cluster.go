package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sysrai/sysrai-platform/internal/logger"
	"github.com/sysrai/sysrai-platform/internal/models"
	"github.com/sysrai/sysrai-platform/internal/providers"
)

// ErrAdminRequired is returned when a non-admin calls a cluster operation.
var ErrAdminRequired = errors.New("admin access required")

// ErrEnterpriseRequired is returned when an admin outside the enterprise
// tier tries to change cluster capacity.
var ErrEnterpriseRequired = errors.New("enterprise subscription required")

// maxPerProviderBatch caps how many instances one provider is asked for in a
// single scale-up call.
const maxPerProviderBatch = 5

// NodeReader defines GPU node read operations.
type NodeReader interface {
	BestAvailable(ctx context.Context, gpuClasses []string) (*models.GPUNodeDB, error)
	IdleByCostDesc(ctx context.Context, limit int) ([]models.GPUNodeDB, error)
	ClusterStatus(ctx context.Context) (*models.ClusterStatus, error)
}

// NodeWriter defines GPU node write operations.
type NodeWriter interface {
	Save(ctx context.Context, node *models.GPUNodeDB) error
	Assign(ctx context.Context, nodeID, projectID uuid.UUID) (bool, error)
	MarkTerminated(ctx context.Context, nodeID uuid.UUID) error
}

// StatusCache caches the aggregate cluster view.
type StatusCache interface {
	Get(ctx context.Context) (*models.ClusterStatus, error)
	Set(ctx context.Context, status *models.ClusterStatus) error
}

// ClusterService tracks the GPU worker pool and matches it to demand. It is
// bookkeeping over provider APIs: nodes here are rows, the real machines
// live at the vendors.
type ClusterService struct {
	reader    NodeReader
	writer    NodeWriter
	providers []providers.Provider // ascending cost order
	cache     StatusCache
}

// NewClusterService creates a new ClusterService. The provider slice must be
// in ascending cost order; scale-up walks it front to back.
func NewClusterService(reader NodeReader, writer NodeWriter, provs []providers.Provider, cache StatusCache) *ClusterService {
	return &ClusterService{
		reader:    reader,
		writer:    writer,
		providers: provs,
		cache:     cache,
	}
}

// classesForDuration maps a project duration to acceptable GPU classes:
// short jobs run on cheap cards, long jobs need the big ones.
func classesForDuration(durationMinutes int) []string {
	switch {
	case durationMinutes <= 30:
		return []string{models.GPURTX4090, models.GPUA10040GB}
	case durationMinutes <= 90:
		return []string{models.GPUA10040GB, models.GPUA10080GB}
	default:
		return []string{models.GPUA10080GB, models.GPUH100}
	}
}

// Assign picks the best available node for the project and marks it busy.
// When no node matches it fires exactly one ScaleUp(1) and reports no
// assignment; the caller retries later rather than blocking.
func (s *ClusterService) Assign(ctx context.Context, projectID uuid.UUID, durationMinutes int) (uuid.UUID, bool, error) {
	classes := classesForDuration(durationMinutes)

	for {
		node, err := s.reader.BestAvailable(ctx, classes)
		if err != nil {
			logger.Log.Errorw("failed to query available nodes", "error", err)
			return uuid.Nil, false, err
		}
		if node == nil {
			if _, err := s.ScaleUp(ctx, 1); err != nil {
				logger.Log.Errorw("scale up after assignment miss failed", "error", err)
			}
			logger.Log.Infow("no node available, scaled up",
				"project_id", projectID, "classes", classes)
			return uuid.Nil, false, nil
		}

		won, err := s.writer.Assign(ctx, node.NodeID, projectID)
		if err != nil {
			return uuid.Nil, false, err
		}
		if won {
			logger.Log.Infow("project assigned to node",
				"project_id", projectID, "node_id", node.NodeID, "gpu_class", node.GPUClass)
			return node.NodeID, true, nil
		}
		// Lost the node to a concurrent assignment; pick again.
	}
}

// ScaleUp launches up to n instances, cheapest vendors first, and persists
// an available node row per launched instance. Vendor failures are partial:
// a batch of five requested may yield fewer.
func (s *ClusterService) ScaleUp(ctx context.Context, n int) ([]uuid.UUID, error) {
	var added []uuid.UUID
	remaining := n

	for _, provider := range s.providers {
		if remaining <= 0 {
			break
		}

		count := remaining
		if count > maxPerProviderBatch {
			count = maxPerProviderBatch
		}

		instances, err := provider.Launch(ctx, count, models.GPURTX4090)
		if err != nil {
			logger.Log.Errorw("provider launch failed",
				"provider", provider.Name(), "count", count, "error", err)
			continue
		}

		for _, inst := range instances {
			node := &models.GPUNodeDB{
				NodeID:           uuid.New(),
				Provider:         provider.Name(),
				InstanceID:       inst.InstanceID,
				GPUClass:         inst.GPUClass,
				HourlyCost:       inst.HourlyCost,
				Status:           models.NodeAvailable,
				PerformanceScore: 1.0,
				Region:           inst.Region,
			}
			if err := s.writer.Save(ctx, node); err != nil {
				logger.Log.Errorw("failed to persist launched node",
					"provider", provider.Name(), "instance_id", inst.InstanceID, "error", err)
				continue
			}
			added = append(added, node.NodeID)
			remaining--
		}
	}

	logger.Log.Infow("scale up finished", "requested", n, "added", len(added))
	return added, nil
}

// ScaleDown terminates up to n idle nodes, most expensive first. A node is
// only marked terminated after its provider confirms the instance is gone,
// and a node serving a project is never touched.
func (s *ClusterService) ScaleDown(ctx context.Context, n int) ([]uuid.UUID, error) {
	idle, err := s.reader.IdleByCostDesc(ctx, n)
	if err != nil {
		return nil, err
	}

	var removed []uuid.UUID
	for _, node := range idle {
		if node.CurrentProjectID != nil {
			continue
		}

		provider := s.providerByName(node.Provider)
		if provider == nil {
			logger.Log.Errorw("node references unknown provider",
				"node_id", node.NodeID, "provider", node.Provider)
			continue
		}

		if err := provider.Terminate(ctx, node.InstanceID); err != nil {
			logger.Log.Errorw("provider terminate failed, node left as is",
				"node_id", node.NodeID, "instance_id", node.InstanceID, "error", err)
			continue
		}

		if err := s.writer.MarkTerminated(ctx, node.NodeID); err != nil {
			logger.Log.Errorw("failed to mark node terminated", "node_id", node.NodeID, "error", err)
			continue
		}
		removed = append(removed, node.NodeID)
	}

	logger.Log.Infow("scale down finished", "requested", n, "removed", len(removed))
	return removed, nil
}

// Status returns the aggregate cluster view, served from cache when fresh.
func (s *ClusterService) Status(ctx context.Context) (*models.ClusterStatus, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	status, err := s.reader.ClusterStatus(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, status); err != nil {
			logger.Log.Warnw("failed to cache cluster status", "error", err)
		}
	}

	return status, nil
}

func (s *ClusterService) providerByName(name string) providers.Provider {
	for _, p := range s.providers {
		if p.Name() == name {
			return p
		}
	}
	return nil
}
