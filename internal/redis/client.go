// Package redis wraps the go-redis client used by the snapshot store
package redis

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dungeon-tracker/internal/errors"
)

const defaultDialTimeout = 2 * time.Second

// Options tunes the connection pool
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	DialTimeout     time.Duration
	UseTLS          bool
	ReadOnly        bool // cluster only: route reads to replicas
}

// Endpoint names the servers to connect to. A master name selects Sentinel,
// several addresses select cluster mode, one address a single node.
type Endpoint struct {
	Addrs      []string
	MasterName string
}

// Validate ensures the endpoint names at least one server
func (ep Endpoint) Validate() error {
	vb := errors.NewValidationBuilder()
	if len(ep.Addrs) == 0 {
		if ep.MasterName != "" {
			vb.Field("Addrs", "at least one sentinel address is required")
		} else {
			vb.RequiredField("Addrs")
		}
	}
	for _, addr := range ep.Addrs {
		errors.ValidateRequired("Addrs", addr, vb)
	}
	return vb.Build()
}

func (ep Endpoint) String() string {
	if ep.MasterName != "" {
		return ep.MasterName + "@" + strings.Join(ep.Addrs, ",")
	}
	return strings.Join(ep.Addrs, ",")
}

// New builds a client for the endpoint without touching the network
func New(ep Endpoint, opts *Options) (Client, error) {
	if err := ep.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid redis endpoint")
	}
	if opts == nil {
		opts = &Options{}
	}

	universal := &redis.UniversalOptions{
		Addrs:           ep.Addrs,
		MasterName:      ep.MasterName,
		PoolSize:        opts.PoolSize,
		MinIdleConns:    opts.MinIdleConns,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
		DialTimeout:     opts.DialTimeout,
		ReadOnly:        opts.ReadOnly,
	}
	if universal.DialTimeout == 0 {
		universal.DialTimeout = defaultDialTimeout
	}
	if opts.UseTLS {
		universal.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402 // self-signed certs
		}
	}

	return redis.NewUniversalClient(universal), nil
}

// Connect builds a client and pings it. An unreachable server is reported as
// Unavailable and the client is closed.
func Connect(ctx context.Context, ep Endpoint, opts *Options) (Client, error) {
	client, err := New(ep, opts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close() // nolint:errcheck // already failing
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis did not answer ping").
			WithMeta("endpoint", ep.String())
	}
	return client, nil
}
