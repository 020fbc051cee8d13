package scheduler

import (
	"fmt"
	"strings"
	"time"

	"Muploader/internal/database"

	"github.com/robfig/cron/v3"
)

// When is a parsed -at value: either a single instant or a cron spec
type When struct {
	At   time.Time
	Spec string
}

func (w When) Once() bool {
	return !w.At.IsZero()
}

// ParseAt accepts an RFC3339 timestamp, a local "2006-01-02 15:04" time
// or a cron spec.
func ParseAt(s string, now time.Time) (When, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return When{}, fmt.Errorf("empty schedule")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return When{At: t}, nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", s, now.Location()); err == nil {
		return When{At: t}, nil
	}
	if _, err := cron.ParseStandard(s); err != nil {
		return When{}, fmt.Errorf("%q is neither a time nor a cron spec: %w", s, err)
	}
	return When{Spec: s}, nil
}

// Schedule stores a task on s according to w
func (w When) Schedule(s *Scheduler, name string, payload []byte) (*database.ScheduledTask, error) {
	if w.Once() {
		return s.AddOnce(w.At, name, payload)
	}
	return s.AddRecurring(w.Spec, name, payload)
}
