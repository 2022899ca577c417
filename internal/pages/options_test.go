package pages_test

import (
	"linkify/internal/config"
	"linkify/internal/pages"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewOptions(t *testing.T) {
	var cfg config.Config
	cfg.Pages.MaxUpdateAttempts = 4
	cfg.Pages.RetryBaseDelay = 5 * time.Millisecond
	cfg.Assets.CDNDomain = "cdn.example.com"
	cfg.Assets.KeyStrategy = config.KeyStrategyTimestamp
	cfg.Assets.PruneReplaced = true
	cfg.Worker.MaxAttempts = 2

	opts := pages.NewOptions(&cfg)
	require.Equal(t, uint64(4), opts.MaxUpdateAttempts)
	require.Equal(t, 5*time.Millisecond, opts.RetryBaseDelay)
	require.Equal(t, "cdn.example.com", opts.CDNDomain)
	require.True(t, opts.PruneReplaced)
	require.Equal(t, 2, opts.PruneMaxAttempts)
	require.NotNil(t, opts.Clock)

	// content keys are shared between uploads, never prune them
	cfg.Assets.KeyStrategy = config.KeyStrategyContent
	require.False(t, pages.NewOptions(&cfg).PruneReplaced)
}
