package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/restoration-tracker/internal/domain/repository"
	"go.uber.org/zap"
)

const (
	publicProjectKeyPrefix = "public:project:"
	speciesLabelKeyPrefix  = "species:label:"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(r *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: r.client,
		logger: r.logger,
	}
}

func publicProjectKey(projectID int64) string {
	return publicProjectKeyPrefix + strconv.FormatInt(projectID, 10)
}

func speciesLabelKey(tsn int64) string {
	return speciesLabelKeyPrefix + strconv.FormatInt(tsn, 10)
}

// GetPublicProject returns the cached public payload, or nil on a miss.
func (r *cacheRepository) GetPublicProject(ctx context.Context, projectID int64) ([]byte, error) {
	data, err := r.client.Get(ctx, publicProjectKey(projectID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get cached public project", zap.Int64("project_id", projectID), zap.Error(err))
		return nil, err
	}
	return data, nil
}

func (r *cacheRepository) SetPublicProject(ctx context.Context, projectID int64, payload []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, publicProjectKey(projectID), payload, ttl).Err(); err != nil {
		r.logger.Error("Failed to cache public project", zap.Int64("project_id", projectID), zap.Error(err))
		return err
	}
	return nil
}

func (r *cacheRepository) InvalidateProject(ctx context.Context, projectID int64) error {
	if err := r.client.Del(ctx, publicProjectKey(projectID)).Err(); err != nil {
		r.logger.Error("Failed to invalidate cached project", zap.Int64("project_id", projectID), zap.Error(err))
		return err
	}
	return nil
}

// GetSpeciesLabels returns the cached labels for ids; absent ids are simply
// missing from the result map.
func (r *cacheRepository) GetSpeciesLabels(ctx context.Context, ids []int64) (map[int64]string, error) {
	if len(ids) == 0 {
		return map[int64]string{}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, speciesLabelKey(id))
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		r.logger.Error("Failed to get cached species labels", zap.Error(err))
		return nil, err
	}

	labels := make(map[int64]string, len(ids))
	for i, v := range values {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok {
			labels[ids[i]] = s
		}
	}

	return labels, nil
}

func (r *cacheRepository) SetSpeciesLabels(ctx context.Context, labels map[int64]string, ttl time.Duration) error {
	for tsn, label := range labels {
		if err := r.client.Set(ctx, speciesLabelKey(tsn), label, ttl).Err(); err != nil {
			r.logger.Error("Failed to cache species label", zap.Int64("tsn", tsn), zap.Error(err))
			return err
		}
	}
	return nil
}
