package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dungeon-tracker/internal/errors"
	"github.com/KirkDiggler/dungeon-tracker/internal/pkg/clock"
	"github.com/KirkDiggler/dungeon-tracker/internal/redis"
	"github.com/KirkDiggler/dungeon-tracker/internal/repositories/inventory"
)

var redisFlags struct {
	addrs   []string
	master  string
	profile string
}

func addRedisFlags(cmd *cobra.Command, persistent bool) {
	f := cmd.Flags()
	if persistent {
		f = cmd.PersistentFlags()
	}
	f.StringSliceVar(&redisFlags.addrs, "redis-addr", nil, "Redis address; several select cluster mode")
	f.StringVar(&redisFlags.master, "redis-master", "", "Sentinel master name")
	f.StringVar(&redisFlags.profile, "profile", "default", "Snapshot profile")
}

// openInventory connects to Redis. The returned func closes the client.
var openInventory = connectInventory

func connectInventory(ctx context.Context) (inventory.Repository, func(), error) {
	vb := errors.NewValidationBuilder()
	if len(redisFlags.addrs) == 0 {
		vb.RequiredField("redis-addr")
	}
	errors.ValidateRequired("profile", redisFlags.profile, vb)
	if err := vb.Build(); err != nil {
		return nil, nil, err
	}

	client, err := redis.Connect(ctx, redis.Endpoint{
		Addrs:      redisFlags.addrs,
		MasterName: redisFlags.master,
	}, &redis.Options{MaxRetries: 3})
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	repo, err := inventory.NewRedisRepository(&inventory.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return repo, cleanup, nil
}
