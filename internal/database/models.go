package database

import "time"

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusRunning   TaskStatus = "running"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusFailed    TaskStatus = "failed"
)

// ScheduledTask is a deferred or recurring upload run. Payload holds the
// upload request as JSON so the task survives a restart.
type ScheduledTask struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `json:"name"`
	Spec         string     `json:"spec,omitempty"`         // cron spec, empty for a one-shot task
	ScheduleTime *time.Time `json:"scheduleTime,omitempty"` // one-shot run time
	Payload      string     `json:"payload"`
	Status       TaskStatus `gorm:"index" json:"status"`
	Runs         int        `json:"runs"`
	Error        string     `json:"error,omitempty"`
	NextRun      *time.Time `json:"nextRun,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

func (t ScheduledTask) Once() bool {
	return t.Spec == ""
}

// UploadRecord is the outcome of one platform in one run
type UploadRecord struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RunID      string    `gorm:"index" json:"runId"`
	TaskID     *uint     `gorm:"index" json:"taskId,omitempty"`
	Platform   string    `gorm:"index" json:"platform"`
	Title      string    `json:"title"`
	Videos     int       `json:"videos"`
	Posts      int       `json:"posts"`
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	CreatedAt  time.Time `json:"createdAt"`
}
