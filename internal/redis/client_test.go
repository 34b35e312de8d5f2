package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-tracker/internal/errors"
)

func TestConnect_SingleNode(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), Endpoint{Addrs: []string{mr.Addr()}}, nil)
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	require.NoError(t, client.Set(ctx, "inventory:test", "{}", 0).Err())

	got, err := mr.Get("inventory:test")
	require.NoError(t, err)
	assert.Equal(t, "{}", got)
}

func TestConnect_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := Connect(context.Background(), Endpoint{Addrs: []string{addr}}, &Options{MaxRetries: -1})
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
	assert.Equal(t, addr, errors.GetMeta(err)["endpoint"])
}

func TestEndpoint_Validate(t *testing.T) {
	testCases := []struct {
		name string
		ep   Endpoint
	}{
		{name: "no addresses"},
		{name: "sentinel without addresses", ep: Endpoint{MasterName: "tracker"}},
		{name: "blank address", ep: Endpoint{Addrs: []string{" "}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.ep, nil)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestNew_ClientKinds(t *testing.T) {
	testCases := []struct {
		name     string
		ep       Endpoint
		expected interface{}
	}{
		{name: "single", ep: Endpoint{Addrs: []string{"127.0.0.1:6379"}}, expected: &goredis.Client{}},
		{name: "cluster", ep: Endpoint{Addrs: []string{"127.0.0.1:7000", "127.0.0.1:7001"}}, expected: &goredis.ClusterClient{}},
		{name: "sentinel", ep: Endpoint{Addrs: []string{"127.0.0.1:26379"}, MasterName: "tracker"}, expected: &goredis.Client{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, err := New(tc.ep, &Options{ReadOnly: true})
			require.NoError(t, err)
			defer func() { _ = client.Close() }()
			assert.IsType(t, tc.expected, client)
		})
	}
}

func TestEndpoint_String(t *testing.T) {
	assert.Equal(t, "a:1,b:2", Endpoint{Addrs: []string{"a:1", "b:2"}}.String())
	assert.Equal(t, "tracker@s:26379", Endpoint{Addrs: []string{"s:26379"}, MasterName: "tracker"}.String())
}
