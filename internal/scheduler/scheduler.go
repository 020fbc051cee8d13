// Package scheduler defers upload runs to a point in time or repeats them
// on a cron schedule. Tasks are stored so they survive a restart.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"Muploader/internal/database"
	"Muploader/internal/utils"

	"github.com/robfig/cron/v3"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Job is one scheduled upload run
type Job func(ctx context.Context) error

// JobFactory builds the job of a stored task from its payload
type JobFactory func(task database.ScheduledTask) (Job, error)

// Scheduler runs jobs one at a time: every run drives the same persistent
// browser profile, which Chrome cannot open twice.
type Scheduler struct {
	db      *gorm.DB
	build   JobFactory
	cron    *cron.Cron
	ctx     context.Context
	cancel  context.CancelFunc
	runLock sync.Mutex
	mu      sync.RWMutex
	tasks   map[uint]*database.ScheduledTask
	entries map[uint]cron.EntryID
	idle    chan struct{}
}

func New(db *gorm.DB, build JobFactory) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		db:      db,
		build:   build,
		cron:    cron.New(cron.WithLogger(cronLogger{}), cron.WithChain(cron.Recover(cronLogger{}))),
		ctx:     ctx,
		cancel:  cancel,
		tasks:   make(map[uint]*database.ScheduledTask),
		entries: make(map[uint]cron.EntryID),
		idle:    make(chan struct{}, 1),
	}
}

// AddRecurring stores a task running under a standard cron spec
// ("30 9 * * 1-5") or a descriptor ("@every 6h", "@daily").
func (s *Scheduler) AddRecurring(spec, name string, payload []byte) (*database.ScheduledTask, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return s.create(&database.ScheduledTask{Name: name, Spec: spec, Payload: string(payload)}, schedule)
}

// AddOnce stores a task running a single time at at
func (s *Scheduler) AddOnce(at time.Time, name string, payload []byte) (*database.ScheduledTask, error) {
	if !at.After(time.Now()) {
		return nil, fmt.Errorf("schedule time %s is in the past", at.Format(time.RFC3339))
	}
	return s.create(&database.ScheduledTask{Name: name, ScheduleTime: &at, Payload: string(payload)}, onceSchedule{at: at})
}

func (s *Scheduler) create(task *database.ScheduledTask, schedule cron.Schedule) (*database.ScheduledTask, error) {
	task.Status = database.TaskStatusPending
	if err := s.db.Create(task).Error; err != nil {
		return nil, fmt.Errorf("save task failed: %w", err)
	}
	job, err := s.build(*task)
	if err != nil {
		s.fail(task, err)
		return nil, err
	}
	s.register(task, schedule, job)
	return task, nil
}

// Restore re-registers stored tasks that still have to run: recurring
// tasks and one-shot tasks that are pending or were interrupted. A
// one-shot task whose time passed while the process was down runs right
// away. Returns how many tasks were restored.
func (s *Scheduler) Restore() (int, error) {
	var tasks []database.ScheduledTask
	err := s.db.Where("spec <> ''").
		Or("status IN ?", []database.TaskStatus{database.TaskStatusPending, database.TaskStatusRunning}).
		Order("id").
		Find(&tasks).Error
	if err != nil {
		return 0, fmt.Errorf("load tasks failed: %w", err)
	}

	restored := 0
	for i := range tasks {
		task := &tasks[i]
		s.mu.RLock()
		_, known := s.tasks[task.ID]
		s.mu.RUnlock()
		if known {
			continue
		}

		var schedule cron.Schedule
		if task.Once() {
			at := time.Now().Add(time.Second)
			if task.ScheduleTime != nil && task.ScheduleTime.After(at) {
				at = *task.ScheduleTime
			} else {
				utils.Warn(fmt.Sprintf("task %q missed its time, running now", task.Name))
			}
			schedule = onceSchedule{at: at}
		} else if schedule, err = cron.ParseStandard(task.Spec); err != nil {
			s.fail(task, err)
			continue
		}

		job, err := s.build(*task)
		if err != nil {
			s.fail(task, err)
			continue
		}
		if task.Status == database.TaskStatusRunning {
			task.Status = database.TaskStatusPending
		}
		s.register(task, schedule, job)
		restored++
	}
	return restored, nil
}

func (s *Scheduler) register(task *database.ScheduledTask, schedule cron.Schedule, job Job) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := task.ID
	s.entries[id] = s.cron.Schedule(schedule, cron.FuncJob(func() { s.execute(id, job) }))
	s.tasks[id] = task
	next := schedule.Next(time.Now())
	task.NextRun = &next
	s.save(task)
	utils.Info(fmt.Sprintf("task %q scheduled for %s", task.Name, next.Format(time.RFC3339)))
}

func (s *Scheduler) execute(id uint, job Job) {
	s.runLock.Lock()
	defer s.runLock.Unlock()

	s.update(id, database.TaskStatusRunning, nil)
	err := job(s.ctx)
	if err != nil {
		s.update(id, database.TaskStatusFailed, err)
	} else {
		s.update(id, database.TaskStatusCompleted, nil)
	}

	s.mu.RLock()
	once := s.tasks[id].Once()
	entry := s.entries[id]
	s.mu.RUnlock()
	if once {
		s.cron.Remove(entry)
	}
	if s.Pending() == 0 {
		select {
		case s.idle <- struct{}{}:
		default:
		}
	}
}

func (s *Scheduler) update(id uint, status database.TaskStatus, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return
	}
	task.Status = status
	task.Error = ""
	if err != nil {
		task.Error = err.Error()
		utils.Error(fmt.Sprintf("task %q failed: %v", task.Name, err))
	}
	switch status {
	case database.TaskStatusRunning:
		task.Runs++
	case database.TaskStatusCompleted:
		now := time.Now()
		task.CompletedAt = &now
		utils.Success(fmt.Sprintf("task %q completed", task.Name))
	}
	if task.Once() {
		if status != database.TaskStatusRunning {
			task.NextRun = nil
		}
	} else if next := s.cron.Entry(s.entries[id]).Next; !next.IsZero() {
		task.NextRun = &next
	}
	s.save(task)
}

func (s *Scheduler) fail(task *database.ScheduledTask, err error) {
	task.Status = database.TaskStatusFailed
	task.Error = err.Error()
	task.NextRun = nil
	s.save(task)
	utils.Error(fmt.Sprintf("task %q cannot be scheduled: %v", task.Name, err))
}

func (s *Scheduler) save(task *database.ScheduledTask) {
	if err := s.db.Save(task).Error; err != nil {
		utils.Error(fmt.Sprintf("save task %q failed: %v", task.Name, err))
	}
}

// Tasks returns a snapshot of every registered task ordered by ID
func (s *Scheduler) Tasks() []database.ScheduledTask {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]database.ScheduledTask, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Pending counts registered tasks that will still run
func (s *Scheduler) Pending() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.CountBy(lo.Values(s.tasks), func(t *database.ScheduledTask) bool {
		return !t.Once() || t.Status == database.TaskStatusPending || t.Status == database.TaskStatusRunning
	})
}

func (s *Scheduler) Start() {
	s.cron.Start()
	utils.Info("scheduler started")
}

// Stop stops scheduling, cancels the context of a running job and waits
// up to timeout for it to return.
func (s *Scheduler) Stop(timeout time.Duration) error {
	done := s.cron.Stop()
	s.cancel()
	select {
	case <-done.Done():
		utils.Info("scheduler stopped")
		return nil
	case <-time.After(timeout):
		return errors.New("scheduler stop timeout")
	}
}

// Run starts the scheduler and blocks until ctx is done or no task is left
// to run. Recurring tasks keep it running until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	if s.Pending() == 0 {
		return nil
	}
	s.Start()
	select {
	case <-ctx.Done():
	case <-s.idle:
	}
	return s.Stop(10 * time.Second)
}

// onceSchedule fires at a single instant. A zero Next keeps cron from
// running it again.
type onceSchedule struct {
	at time.Time
}

func (o onceSchedule) Next(t time.Time) time.Time {
	if t.Before(o.at) {
		return o.at
	}
	return time.Time{}
}

type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	utils.Debug(fmt.Sprintf("cron: %s %v", msg, keysAndValues))
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	utils.Error(fmt.Sprintf("cron: %s: %v %v", msg, err, keysAndValues))
}
