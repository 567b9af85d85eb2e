package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const pingTimeout = 2 * time.Second

// Client wraps the raw connection so callers outside this package never see
// go-redis types. Today redis only backs the login rate limiter, so the
// surface stays tiny: construct, ping, close.
type Client struct {
	rdb *goredis.Client
}

func New(addr, password string, db int) *Client {
	return &Client{
		rdb: goredis.NewClient(&goredis.Options{
			Addr:         addr,
			Password:     password,
			DB:           db,
			DialTimeout:  pingTimeout,
			ReadTimeout:  pingTimeout,
			WriteTimeout: pingTimeout,
		}),
	}
}

// Ping bounds its own timeout; bootstrap treats a failure as "run without
// rate limiting", not as a fatal error.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}
