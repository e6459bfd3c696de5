package leavehistory

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const SnapshotKeyPrefix = "leave-history:snapshot:"

const DefaultSnapshotTTL = 5 * time.Minute

func GetSnapshotKey(companyID string) string {
	return SnapshotKeyPrefix + companyID
}

// SnapshotCache stores company snapshots in redis as JSON.
type SnapshotCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewSnapshotCache(rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) *SnapshotCache {
	l := zap.L().Named("leavehistory.cache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavehistory.cache")
	}
	if ttl <= 0 {
		ttl = DefaultSnapshotTTL
	}
	return &SnapshotCache{rdb: rdb, ttl: ttl, logger: l}
}

// Get reports a miss as (Snapshot{}, false, nil).
func (c *SnapshotCache) Get(ctx context.Context, companyID string) (Snapshot, bool, error) {
	raw, err := c.rdb.Get(ctx, GetSnapshotKey(companyID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, err
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return Snapshot{}, false, err
	}
	return snap, true, nil
}

func (c *SnapshotCache) Set(ctx context.Context, companyID string, snap Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, GetSnapshotKey(companyID), payload, c.ttl).Err()
}

func (c *SnapshotCache) Invalidate(ctx context.Context, companyID string) error {
	return c.rdb.Del(ctx, GetSnapshotKey(companyID)).Err()
}

type cachedSource struct {
	next   Source
	cache  *SnapshotCache
	sf     singleflight.Group
	logger *zap.Logger
}

// NewCachedSource serves snapshots from cache and falls back to next on a
// miss. Concurrent misses for one company share a single load. Cache errors
// are logged and never returned.
func NewCachedSource(next Source, cache *SnapshotCache, logger ...*zap.Logger) Source {
	if cache == nil {
		return next
	}
	l := zap.L().Named("leavehistory.cached_source")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavehistory.cached_source")
	}
	return &cachedSource{next: next, cache: cache, logger: l}
}

func (s *cachedSource) Load(ctx context.Context, companyID string) (Snapshot, error) {
	snap, ok, err := s.cache.Get(ctx, companyID)
	if err != nil {
		s.logger.Warn("read snapshot cache failed",
			zap.String("company_id", companyID),
			zap.Error(err),
		)
	}
	if ok {
		return snap, nil
	}

	v, err, _ := s.sf.Do(GetSnapshotKey(companyID), func() (any, error) {
		snap, err := s.next.Load(ctx, companyID)
		if err != nil {
			return Snapshot{}, err
		}
		if err := s.cache.Set(ctx, companyID, snap); err != nil {
			s.logger.Warn("write snapshot cache failed",
				zap.String("company_id", companyID),
				zap.Error(err),
			)
		}
		return snap, nil
	})
	if err != nil {
		return Snapshot{}, err
	}
	return v.(Snapshot), nil
}
