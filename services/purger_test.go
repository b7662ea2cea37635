package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type fakePurgeable struct {
	removed int64
	err     error
	cutoff  time.Time
}

func (f *fakePurgeable) Purge(_ context.Context, before time.Time) (int64, error) {
	f.cutoff = before
	return f.removed, f.err
}

func TestPurgerRunOnce(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	events := &fakePurgeable{removed: 3}
	broken := &fakePurgeable{err: errors.New("boom")}

	p := NewPurger(map[string]Purgeable{"events": events, "newsblogs": broken}, 30*24*time.Hour)
	p.Now = func() time.Time { return now }

	removed := p.RunOnce(context.Background())

	if removed["events"] != 3 {
		t.Fatalf("expected 3 removed from events, got %v", removed)
	}
	if _, ok := removed["newsblogs"]; ok {
		t.Fatal("failed collection should not report a count")
	}
	if want := now.Add(-30 * 24 * time.Hour); !events.cutoff.Equal(want) {
		t.Fatalf("cutoff = %v, want %v", events.cutoff, want)
	}
}

func TestPurgerRejectsBadSchedule(t *testing.T) {
	p := NewPurger(nil, time.Hour)
	if err := p.Start("not a cron"); err == nil {
		t.Fatal("expected an error for an invalid schedule")
	}
	p.Stop()
}

func TestCronLoggerUsesZerolog(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf)
	logger := cronLogger{log: &zl}

	logger.Info("skip")
	logger.Info("wake", "now", time.Date(2024, 6, 1, 2, 15, 0, 0, time.UTC))
	logger.Error(errors.New("boom"), "panic", "stack", "...")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 log lines, got %q", buf.String())
	}

	tests := []struct {
		level string
		want  string
	}{
		{"warn", "skipping scheduled run"},
		{"debug", `"now":"2024-06-01T02:15:00Z"`},
		{"error", `"error":"boom"`},
	}
	for i, tt := range tests {
		var entry map[string]any
		if err := json.Unmarshal([]byte(lines[i]), &entry); err != nil {
			t.Fatalf("line %d is not JSON: %v", i, err)
		}
		if entry["level"] != tt.level || entry["component"] != "cron" {
			t.Errorf("line %d: level = %v component = %v", i, entry["level"], entry["component"])
		}
		if !strings.Contains(lines[i], tt.want) {
			t.Errorf("line %d = %s, want it to contain %s", i, lines[i], tt.want)
		}
	}
}
