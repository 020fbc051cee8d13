package utils

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"Muploader/internal/types"
)

type memSink struct {
	mu   sync.Mutex
	logs []types.SimpleLog
}

func (m *memSink) Add(l types.SimpleLog) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, l)
}

func TestLogger_LineFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, false)

	l.InfoWithPlatform("youtube", "opening upload page")
	l.Error("context close failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "[info] [youtube] opening upload page") {
		t.Errorf("unexpected platform line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "[error] context close failed") {
		t.Errorf("unexpected line: %q", lines[1])
	}
}

func TestLogger_DebugSuppressed(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, false).DebugWithPlatform("x", "hidden")
	if buf.Len() != 0 {
		t.Errorf("debug output should be suppressed, got %q", buf.String())
	}

	buf.Reset()
	NewLogger(&buf, true).DebugWithPlatform("x", "shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug output missing: %q", buf.String())
	}
}

func TestLogger_ForwardsToService(t *testing.T) {
	var buf bytes.Buffer
	sink := &memSink{}
	l := NewLogger(&buf, false)
	l.SetLogService(sink)

	l.WarnWithPlatform("tiktok", "captcha detected")

	if len(sink.logs) != 1 {
		t.Fatalf("expected 1 forwarded entry, got %d", len(sink.logs))
	}
	got := sink.logs[0]
	if got.Platform != "tiktok" || got.Level != types.LogLevelWarn || got.Message != "captcha detected" {
		t.Errorf("unexpected entry: %+v", got)
	}
}
