package slogfanout

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingHandler struct {
	slog.Handler
}

func (failingHandler) Handle(context.Context, slog.Record) error {
	return errors.New("disk full")
}

func TestHandlerWritesToEveryHandler(t *testing.T) {
	var info, debug bytes.Buffer

	log := slog.New(New(
		slog.NewTextHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		nil,
		slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
	))

	log.Debug("checking operands")
	log.Info("adding 2 + 3", "source", "test")

	assert.NotContains(t, info.String(), "checking operands")
	assert.Contains(t, info.String(), `msg="adding 2 + 3" source=test`)
	assert.Contains(t, debug.String(), "checking operands")
	assert.Contains(t, debug.String(), `msg="adding 2 + 3" source=test`)
}

func TestHandlerEnabled(t *testing.T) {
	h := New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
	assert.False(t, New().Enabled(context.Background(), slog.LevelError))
}

func TestHandlerKeepsGoingAfterFailure(t *testing.T) {
	var buf bytes.Buffer
	text := slog.NewTextHandler(&buf, nil)

	h := New(failingHandler{Handler: text}, text)
	err := h.Handle(context.Background(), slog.NewRecord(testTime, slog.LevelError, "cannot divide by zero", 0))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Contains(t, buf.String(), "cannot divide by zero")
}

func TestHandlerWithAttrsAndGroup(t *testing.T) {
	var a, b bytes.Buffer

	log := slog.New(New(slog.NewTextHandler(&a, nil), slog.NewTextHandler(&b, nil)))
	log.With("service", "scicalc").WithGroup("calc").Info("done", "op", "add")

	for _, out := range []string{a.String(), b.String()} {
		assert.Contains(t, out, "service=scicalc")
		assert.Contains(t, out, "calc.op=add")
	}
}

var testTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
