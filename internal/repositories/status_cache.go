package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sysrai/sysrai-platform/internal/logger"
	"github.com/sysrai/sysrai-platform/internal/models"
)

const clusterStatusKey = "cluster_status"

// ClusterStatusCacheRepository caches the aggregate cluster view in Redis so
// the admin dashboard does not hammer the gpu_nodes table.
type ClusterStatusCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for the cached snapshot
}

// NewClusterStatusCacheRepository creates a new repository instance with the given TTL.
func NewClusterStatusCacheRepository(client *redis.Client, expiration time.Duration) *ClusterStatusCacheRepository {
	return &ClusterStatusCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches the cached snapshot. Returns nil on a cache miss.
func (r *ClusterStatusCacheRepository) Get(ctx context.Context) (*models.ClusterStatus, error) {
	val, err := r.client.Get(ctx, clusterStatusKey).Result()
	if err != nil {
		logger.Log.Infow(
			"key", clusterStatusKey,
			"result", val,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var status models.ClusterStatus
	if err := json.Unmarshal([]byte(val), &status); err != nil {
		logger.Log.Infow(
			"key", clusterStatusKey,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	return &status, nil
}

// Set caches a new snapshot with the configured expiration.
func (r *ClusterStatusCacheRepository) Set(ctx context.Context, status *models.ClusterStatus) error {
	data, err := json.Marshal(status)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, clusterStatusKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", clusterStatusKey,
		"result", "ok",
		"error", err,
	)

	return err
}
