package testutils

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/friendly"
	"github.com/aretw0/friendly/internal/sketch"
	"github.com/aretw0/friendly/pkg/host"
)

// SetupSketch builds the sample namespace, proxies it and returns both.
// It fails the test immediately on error.
func SetupSketch(t *testing.T, opts ...friendly.Option) (*host.Namespace, *friendly.Engine) {
	t.Helper()

	ns := sketch.New()
	classes, err := sketch.Docs()
	require.NoError(t, err, "Failed to parse sample docs")

	eng, err := friendly.New(ns, classes, opts...)
	require.NoError(t, err, "Failed to create engine")
	require.NoError(t, eng.Run(), "Failed to proxy sample namespace")

	return ns, eng
}

// CaptureLogger returns a debug-level text logger writing into the returned buffer.
func CaptureLogger(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, &buf
}
