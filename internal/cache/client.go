package cache

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// NewClient returns nil when addr is empty; every SpinCache method treats a
// nil client as a disabled projection.
func NewClient(addr, password string, db int) *goredis.Client {
	if addr == "" {
		return nil
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func Ping(ctx context.Context, client *goredis.Client, timeout time.Duration) error {
	if client == nil {
		return nil
	}
	c, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return client.Ping(c).Err()
}

const (
	KeyRecentSpins = "roulette:spins:recent"
	KeyDrawState   = "roulette:draw:state"
)
