package cmd

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karolswdev/nichefinder/internal/config"
	"github.com/karolswdev/nichefinder/internal/recommend"
	"github.com/karolswdev/nichefinder/internal/server"
)

func TestServeRunE_StopsOnCancel(t *testing.T) {
	cfg := testAppConfig(config.ProviderNone)
	cfg.Server.Address = "127.0.0.1:0"
	cfg.Server.ShutdownTimeout = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := serveRunE(ctx, cfg, recommend.NewService(nil, ""), "")
	assert.NoError(t, err)
}

func TestServeRunE_AddrOverride(t *testing.T) {
	cfg := testAppConfig(config.ProviderNone)
	cfg.Server.Address = "127.0.0.1:0"

	err := serveRunE(context.Background(), cfg, recommend.NewService(nil, ""), "256.0.0.1:bad")

	require.Error(t, err)
	assert.ErrorIs(t, err, server.ErrListen)
}
