// Package analytics stores A/B-test exposure events in Redis: a capped
// event log plus a per-variant exposure counter.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"dsatrack/internal/models"
)

const (
	eventsKey     = "ab:events"
	counterPrefix = "ab:variant:"

	// MaxEvents caps the raw event log; counters are unbounded.
	MaxEvents = 1000

	// Conversion rates were hardcoded in the original experiment
	// dashboard; kept as constants until real conversion events exist.
	conversionRateDifficulty = 0.65
	conversionRateTopic      = 0.72
)

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Record appends one exposure event and bumps the variant counter.
// The event id and, if absent, the session id are assigned here.
func (s *Store) Record(ctx context.Context, ev *models.ABEvent) error {
	if !ev.Variant.Valid() {
		return fmt.Errorf("unknown variant %q", ev.Variant)
	}
	ev.ID = uuid.NewString()
	if ev.SessionID == "" {
		ev.SessionID = fmt.Sprintf("session_%d", time.Now().UnixMilli())
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	pipe := s.rdb.TxPipeline()
	pipe.LPush(ctx, eventsKey, payload)
	pipe.LTrim(ctx, eventsKey, 0, MaxEvents-1)
	pipe.Incr(ctx, counterPrefix+string(ev.Variant))
	_, err = pipe.Exec(ctx)
	return err
}

// VariantCount returns how many exposures a variant has received.
func (s *Store) VariantCount(ctx context.Context, v models.Variant) (int, error) {
	n, err := s.rdb.Get(ctx, counterPrefix+string(v)).Int()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}

// Results aggregates exposure counts for the experiment dashboard.
func (s *Store) Results(ctx context.Context) (*models.ABResults, error) {
	a, err := s.VariantCount(ctx, models.VariantDifficulty)
	if err != nil {
		return nil, err
	}
	b, err := s.VariantCount(ctx, models.VariantTopic)
	if err != nil {
		return nil, err
	}
	return &models.ABResults{
		VariantA: models.VariantResult{Name: "Difficulty-based", Users: a, ConversionRate: conversionRateDifficulty},
		VariantB: models.VariantResult{Name: "Topic-based", Users: b, ConversionRate: conversionRateTopic},
	}, nil
}

// RecentEvents returns up to limit of the newest exposure events.
func (s *Store) RecentEvents(ctx context.Context, limit int64) ([]models.ABEvent, error) {
	raw, err := s.rdb.LRange(ctx, eventsKey, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]models.ABEvent, 0, len(raw))
	for _, item := range raw {
		var ev models.ABEvent
		if err := json.Unmarshal([]byte(item), &ev); err != nil {
			continue // skip records written by older builds
		}
		out = append(out, ev)
	}
	return out, nil
}
