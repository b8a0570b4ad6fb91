package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestCompactHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewCompactHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.With("graph", "example-directed").Info("loaded graph", "vertices", 10, "note", "two words")

	line := buf.String()
	if !strings.HasPrefix(line, "[INFO]  ") {
		t.Errorf("Expected [INFO] prefix, got %q", line)
	}
	for _, want := range []string{"loaded graph |", "graph=example-directed", "vertices=10", `note="two words"`} {
		if !strings.Contains(line, want) {
			t.Errorf("Expected %q in %q", want, line)
		}
	}
}

func TestCompactHandlerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewCompactHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	l.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("Expected debug to be filtered, got %q", buf.String())
	}

	l = slog.New(NewCompactHandler(&buf, &slog.HandlerOptions{Level: LevelTrace}))
	l.Log(context.Background(), LevelTrace, "iteration")
	if !strings.HasPrefix(buf.String(), "[TRACE] ") {
		t.Errorf("Expected [TRACE] prefix, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		verbosity string
		count     int
		want      slog.Level
	}{
		{"", 0, slog.LevelInfo},
		{"", 1, slog.LevelDebug},
		{"", 3, LevelTrace},
		{"warn", 0, slog.LevelWarn},
		{"TRACE", 0, LevelTrace},
		{"error", 2, slog.LevelError},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.verbosity, tt.count)
		if err != nil {
			t.Fatalf("ParseLevel(%q, %d) failed: %v", tt.verbosity, tt.count, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q, %d) = %v, want %v", tt.verbosity, tt.count, got, tt.want)
		}
	}

	if _, err := ParseLevel("loud", 0); err == nil {
		t.Error("Expected error for unknown verbosity")
	}
}

func TestStartRun(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, slog.LevelInfo, false)
	defer SetLevel(slog.LevelInfo)

	ctx, done := StartRun(context.Background(), "benchmark", "algorithm", "bfs")
	runID := GetRunID(ctx)
	if len(runID) != 36 {
		t.Fatalf("Expected a UUID run ID, got %q", runID)
	}
	done(errors.New("boom"))

	out := buf.String()
	for _, want := range []string{"benchmark started", "algorithm=bfs", "run=" + runID[:8], "benchmark failed", `error="boom"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}

	// An existing run ID is kept
	ctx2, _ := StartRun(WithRunID(context.Background(), "fixed"), "load")
	if GetRunID(ctx2) != "fixed" {
		t.Errorf("Expected run ID to be kept, got %q", GetRunID(ctx2))
	}
}
