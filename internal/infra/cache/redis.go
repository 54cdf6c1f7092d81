package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"campus-reservation/internal/domain/facility"
	"campus-reservation/internal/domain/timeslot"
	"campus-reservation/internal/pkg/config"
	"campus-reservation/internal/pkg/errs"
	"campus-reservation/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "reservation:occupancy"

// OccupancyCache keeps the per-day occupancy list of one facility class in
// Redis. Any Redis error is treated as a miss so the status views fall back
// to the database.
type OccupancyCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ shared.OccupancyCache = (*OccupancyCache)(nil)

func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrapf(err, "failed to ping redis at %s", cfg.Addr)
	}
	return client, nil
}

func NewOccupancyCache(client *redis.Client, ttl time.Duration) *OccupancyCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &OccupancyCache{client: client, ttl: ttl}
}

func Key(class facility.Class, date timeslot.Date) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, class, date)
}

// GenerationKey counts the invalidations of Key(class, date).
func GenerationKey(class facility.Class, date timeslot.Date) string {
	return Key(class, date) + ":gen"
}

// generationTTL outlives any read that could race an invalidation.
const generationTTL = 48 * time.Hour

var errStaleGeneration = errs.New("occupancy invalidated during read")

func (c *OccupancyCache) Get(ctx context.Context, class facility.Class, date timeslot.Date) ([]shared.Occupancy, int64, bool) {
	vals, err := c.client.MGet(ctx, Key(class, date), GenerationKey(class, date)).Result()
	if err != nil {
		slog.Warn("occupancy cache get failed", "class", class, "date", date.String(), "error", err.Error())
		return nil, -1, false
	}

	gen, err := parseGeneration(vals[1])
	if err != nil {
		slog.Warn("occupancy cache generation is corrupt", "class", class, "date", date.String(), "error", err.Error())
		return nil, -1, false
	}

	raw, ok := vals[0].(string)
	if !ok {
		return nil, gen, false
	}
	var occ []shared.Occupancy
	if err := json.Unmarshal([]byte(raw), &occ); err != nil {
		slog.Warn("occupancy cache entry is corrupt", "class", class, "date", date.String(), "error", err.Error())
		return nil, gen, false
	}
	return occ, gen, true
}

func (c *OccupancyCache) Set(ctx context.Context, class facility.Class, date timeslot.Date, gen int64, occ []shared.Occupancy) {
	if gen < 0 {
		return
	}
	if occ == nil {
		occ = []shared.Occupancy{}
	}
	raw, err := json.Marshal(occ)
	if err != nil {
		slog.Warn("occupancy cache encode failed", "error", err.Error())
		return
	}

	genKey := GenerationKey(class, date)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, genKey).Result()
		if err != nil && !errs.Is(err, redis.Nil) {
			return err
		}
		current, err := parseGeneration(cur)
		if err != nil {
			return err
		}
		if current != gen {
			return errStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, Key(class, date), raw, c.ttl)
			return nil
		})
		return err
	}, genKey)

	switch {
	case err == nil:
	case errs.Is(err, errStaleGeneration), errs.Is(err, redis.TxFailedErr):
		slog.Debug("occupancy cache set skipped", "class", class, "date", date.String())
	default:
		slog.Warn("occupancy cache set failed", "class", class, "date", date.String(), "error", err.Error())
	}
}

func (c *OccupancyCache) Invalidate(ctx context.Context, class facility.Class, date timeslot.Date) {
	genKey := GenerationKey(class, date)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey)
		pipe.Expire(ctx, genKey, generationTTL)
		pipe.Del(ctx, Key(class, date))
		return nil
	})
	if err != nil {
		slog.Warn("occupancy cache invalidate failed", "class", class, "date", date.String(), "error", err.Error())
	}
}

// parseGeneration reads a generation counter; a missing counter is zero.
func parseGeneration(v any) (int64, error) {
	switch v := v.(type) {
	case nil:
		return 0, nil
	case string:
		if v == "" {
			return 0, nil
		}
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected generation value %T", v)
	}
}
