package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	main "github.com/fwojciec/fale/cmd/fale"
	"github.com/fwojciec/fale/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("shuts down when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var logs bytes.Buffer
		deps := &main.Dependencies{
			Ctx:     ctx,
			Stdout:  io.Discard,
			Stderr:  io.Discard,
			Logger:  slog.New(slog.NewTextHandler(&logs, nil)),
			Service: &mock.Service{},
		}

		cmd := &main.ServeCmd{Addr: "127.0.0.1:0", Rate: 1, Burst: 1}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, logs.String(), "server listening")
		assert.Contains(t, logs.String(), "server shutting down")
	})

	t.Run("returns error for unusable address", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  io.Discard,
			Stderr:  io.Discard,
			Logger:  slog.New(slog.DiscardHandler),
			Service: &mock.Service{},
		}

		cmd := &main.ServeCmd{Addr: "not-an-address"}
		err := cmd.Run(deps)

		assert.Error(t, err)
	})
}
