package server_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerohttp/aero/core/server"
	"github.com/aerohttp/aero/core/transport"
)

type dispatcherFunc func(ctx context.Context, req *transport.Request) *transport.Result

func (f dispatcherFunc) Dispatch(ctx context.Context, req *transport.Request) *transport.Result {
	return f(ctx, req)
}

func noopDispatcher() transport.Dispatcher {
	return dispatcherFunc(func(ctx context.Context, req *transport.Request) *transport.Result {
		return &transport.Result{Status: 200, Header: transport.NewHeader()}
	})
}

func TestServeStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := server.New("127.0.0.1:0")
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx, noopDispatcher())
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestStopWithoutStart(t *testing.T) {
	t.Parallel()

	srv := server.New(":8080")
	assert.NoError(t, srv.Stop())
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing address rejected", func(t *testing.T) {
		t.Parallel()

		_, err := server.NewFromConfig(server.Config{})
		assert.ErrorIs(t, err, server.ErrMissingAddress)
	})

	t.Run("defaults produce a server", func(t *testing.T) {
		t.Parallel()

		srv, err := server.NewFromConfig(server.DefaultConfig())
		require.NoError(t, err)
		assert.NotNil(t, srv)
	})
}
