package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestInitializeWithWriter(t *testing.T) {
	var buf bytes.Buffer
	InitializeWithWriter(&buf, "debug", "json")
	t.Cleanup(func() { Initialize("info", "text") })

	DatabaseResult("UPDATE", 0, errors.New("boom"), "requestID", "r-1")

	out := buf.String()
	assert.Contains(t, out, `"msg":"← Database call failed"`)
	assert.Contains(t, out, `"requestID":"r-1"`)
	assert.Contains(t, out, `"error":"boom"`)
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	scoped := slog.New(slog.NewTextHandler(&buf, nil)).With("request_id", "abc")
	ctx := WithContext(context.Background(), scoped)

	InfoContext(ctx, "hello")
	assert.Contains(t, buf.String(), "request_id=abc")

	assert.Equal(t, Get(), FromContext(context.Background()))
}
