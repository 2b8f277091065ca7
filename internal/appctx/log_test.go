package appctx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithLogger(context.Background(), logger, slog.String("command", "badge status"))
	GetLogger(ctx).Info("formatted")

	assert.Contains(t, buf.String(), "command=\"badge status\"")
	assert.Contains(t, buf.String(), "msg=formatted")
}

func TestGetLoggerFallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), GetLogger(context.Background()))
}
