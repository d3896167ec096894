// Package redis provides a thin wrapper around go-redis shared by the
// repositories and the Message Hub publisher.
package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Defaults applied when Options leaves a field zero
const (
	DefaultPoolSize        = 10
	DefaultConnMaxIdleTime = 5 * time.Minute
	DefaultMaxRetries      = 3
)

// Options configures Redis client behavior
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
	Password        string
	DB              int
}

func (o *Options) redisOptions(endpoint string) *redis.Options {
	opts := &redis.Options{
		Addr:            endpoint,
		Password:        o.Password,
		DB:              o.DB,
		MinIdleConns:    o.MinIdleConns,
		PoolSize:        o.PoolSize,
		ConnMaxIdleTime: o.ConnMaxIdleTime,
		MaxRetries:      o.MaxRetries,
	}
	if opts.PoolSize == 0 {
		opts.PoolSize = DefaultPoolSize
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = DefaultConnMaxIdleTime
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = DefaultMaxRetries
	}
	if o.UseTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return opts
}

// NewClient creates a client for a single instance without dialing it
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}
	if opts == nil {
		opts = &Options{}
	}
	return redis.NewClient(opts.redisOptions(endpoint)), nil
}

// Connect creates a client and pings it so a bad address fails at startup
func Connect(ctx context.Context, endpoint string, opts *Options) (Client, error) {
	client, err := NewClient(endpoint, opts)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", endpoint, err)
	}
	return client, nil
}
