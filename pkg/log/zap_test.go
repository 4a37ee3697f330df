package log

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDField(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	ctx := SetRequestIDToContext(context.Background(), "req-42")
	l.Infof(ctx, "hello %s", "world")
	l.Warn(context.Background(), "no id")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Message != "hello world" {
		t.Errorf("message = %q", entries[0].Message)
	}
	if got := entries[0].ContextMap()["request_id"]; got != "req-42" {
		t.Errorf("request_id = %v, want req-42", got)
	}
	if _, ok := entries[1].ContextMap()["request_id"]; ok {
		t.Error("request_id should be absent without a context value")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		LevelDebug: zapcore.DebugLevel,
		LevelWarn:  zapcore.WarnLevel,
		LevelError: zapcore.ErrorLevel,
		"":         zapcore.InfoLevel,
		"verbose":  zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestGetRequestIDFromContext_Unset(t *testing.T) {
	if id := GetRequestIDFromContext(context.Background()); id != "" {
		t.Errorf("id = %q, want empty", id)
	}
}
