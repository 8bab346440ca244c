package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/roulette/internal/domain"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// A snapshot outlives a few ticks at most, so a stalled scheduler sends
// readers back to postgres.
const stateTTL = 5 * time.Second

// SpinCache is the recent-spins projection of the draws table. It is never
// the source of truth and can be rebuilt at any time.
type SpinCache struct {
	client *goredis.Client
	limit  int
}

func New(client *goredis.Client, limit int) *SpinCache {
	if limit < 1 {
		limit = 20
	}
	return &SpinCache{client: client, limit: limit}
}

func (c *SpinCache) Enabled() bool {
	return c != nil && c.client != nil
}

func (c *SpinCache) Push(ctx context.Context, spin domain.Spin) error {
	if !c.Enabled() {
		return nil
	}
	data, err := json.Marshal(spin)
	if err != nil {
		return err
	}
	_, err = c.client.Pipelined(ctx, func(p goredis.Pipeliner) error {
		p.LPush(ctx, KeyRecentSpins, string(data))
		p.LTrim(ctx, KeyRecentSpins, 0, int64(c.limit-1))
		return nil
	})
	if err != nil {
		return fmt.Errorf("push spin %d: %w", spin.DrawNumber, err)
	}
	return nil
}

// Recent returns up to n spins, newest first.
func (c *SpinCache) Recent(ctx context.Context, n int) ([]domain.Spin, error) {
	if !c.Enabled() {
		return nil, nil
	}
	if n < 1 || n > c.limit {
		n = c.limit
	}
	values, err := c.client.LRange(ctx, KeyRecentSpins, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}
	spins := make([]domain.Spin, 0, len(values))
	for _, v := range values {
		var s domain.Spin
		if err := json.Unmarshal([]byte(v), &s); err != nil {
			zap.L().Warn("skip malformed spin in projection", zap.String("value", v), zap.Error(err))
			continue
		}
		spins = append(spins, s)
	}
	return spins, nil
}

// Find looks a draw up in the projection. It returns nil when the draw is not there.
func (c *SpinCache) Find(ctx context.Context, drawNumber int) (*domain.Spin, error) {
	if !c.Enabled() {
		return nil, nil
	}
	spins, err := c.Recent(ctx, c.limit)
	if err != nil {
		return nil, err
	}
	for i := range spins {
		if spins[i].DrawNumber == drawNumber {
			return &spins[i], nil
		}
	}
	return nil, nil
}

// Rebuild replaces the projection with the given draws, which must be ordered newest first.
func (c *SpinCache) Rebuild(ctx context.Context, draws []domain.Draw) error {
	if !c.Enabled() {
		return nil
	}
	values := make([]interface{}, 0, len(draws))
	for _, d := range draws {
		data, err := json.Marshal(SpinFromDraw(d))
		if err != nil {
			return err
		}
		values = append(values, string(data))
	}
	_, err := c.client.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.Del(ctx, KeyRecentSpins)
		if len(values) > 0 {
			p.RPush(ctx, KeyRecentSpins, values...)
			p.LTrim(ctx, KeyRecentSpins, 0, int64(c.limit-1))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("rebuild spins projection: %w", err)
	}
	return nil
}

// SaveState stores a short-lived snapshot of the draw state for displays.
func (c *SpinCache) SaveState(ctx context.Context, state *domain.DrawState) error {
	if !c.Enabled() || state == nil {
		return nil
	}
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, KeyDrawState, string(data), stateTTL).Err()
}

// LoadState returns nil without an error when no live snapshot exists.
func (c *SpinCache) LoadState(ctx context.Context) (*domain.DrawState, error) {
	if !c.Enabled() {
		return nil, nil
	}
	data, err := c.client.Get(ctx, KeyDrawState).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var state domain.DrawState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func SpinFromDraw(d domain.Draw) domain.Spin {
	return domain.Spin{
		DrawNumber: d.DrawNumber,
		Number:     d.WinningNumber,
		Color:      d.WinningColor,
		DrawnAt:    d.DrawnAt,
	}
}
