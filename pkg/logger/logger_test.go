package logger

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

func TestInitAndGet(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	l := Get()
	if l == nil {
		t.Fatal("Get returned nil after Init")
	}

	// Smoke the level methods; output goes to stdout.
	ctx := context.Background()
	l.Debug(ctx, "debug message", String("k", "v"))
	l.Info(ctx, "info message", Int("n", 1))
	l.Warn(ctx, "warn message", Uint64("frame", 42))
	l.Error(ctx, "error message", Error(errors.New("boom")))
}

func TestNamed(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	n := Named("analyzer")
	if n == nil {
		t.Fatal("Named returned nil")
	}
	n.Info(context.Background(), "named message", Float64("angle", 90.0))
}

func TestSetLevelString(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	for _, level := range []string{"debug", "info", "warn", "warning", "error", "", "  INFO  "} {
		if err := SetLevelString(level); err != nil {
			t.Fatalf("SetLevelString(%q): %v", level, err)
		}
	}
	if err := SetLevelString("verbose"); err == nil {
		t.Fatal("SetLevelString should reject unknown levels")
	}

	SetLevel(slog.LevelInfo)
}

func TestFieldConstructors(t *testing.T) {
	cases := []struct {
		field Field
		key   string
	}{
		{String("a", "b"), "a"},
		{Int("count", 3), "count"},
		{Uint64("frame", 9), "frame"},
		{Float64("angle", 45.5), "angle"},
		{Any("raw", struct{}{}), "raw"},
		{Error(errors.New("x")), "error"},
	}
	for _, c := range cases {
		if c.field.Key != c.key {
			t.Fatalf("field key = %q, want %q", c.field.Key, c.key)
		}
	}
}
