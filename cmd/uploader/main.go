// Command uploader publishes one or more videos to several social platforms
// at once through a signed-in Chrome profile.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"Muploader/internal/app"
	"Muploader/internal/config"
	"Muploader/internal/database"
	"Muploader/internal/platform/browser"
	"Muploader/internal/platform/registry"
	"Muploader/internal/scheduler"
	"Muploader/internal/service"
	"Muploader/internal/types"
	"Muploader/internal/utils"

	"github.com/samber/lo"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "uploader: %v\n", err)
		return 2
	}

	if err := config.Init(opts.envFiles()...); err != nil {
		fmt.Fprintf(os.Stderr, "uploader: %v\n", err)
		return 1
	}
	cfg := config.Config

	if err := utils.InitLogger(cfg.LogPath, cfg.DebugMode); err != nil {
		fmt.Fprintf(os.Stderr, "uploader: %v\n", err)
		return 1
	}
	defer utils.CloseLogger()

	logs := service.NewLogService(0)
	utils.SetLogService(logs)

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		utils.Error(err.Error())
		return 1
	}
	defer database.Close(db)
	history := service.NewHistoryService(db)

	if opts.history > 0 {
		return printHistory(history, opts.history)
	}

	var req *app.Request
	if opts.hasRequest() || !opts.resume || opts.at != "" {
		if req, err = opts.request(); err != nil {
			utils.Error(err.Error())
			return 2
		}
		if err := req.Validate(); err != nil {
			utils.Error(err.Error())
			return 2
		}
		if err := service.CheckMedia(req.Videos); err != nil {
			utils.Error(err.Error())
			return 2
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go stopOnSignal(sigCh, cancel)

	svc := newUploadService(cfg)

	if opts.at == "" && !opts.resume {
		outcomes, err := upload(ctx, svc, req)
		if err != nil {
			return 1
		}
		if _, err := history.Record(nil, req.Videos, outcomes); err != nil {
			utils.Warn(err.Error())
		}
		report(outcomes, logs)
		if failed(outcomes) > 0 {
			return 1
		}
		return 0
	}

	sched := scheduler.New(db, jobFactory(svc, history, logs))
	restored, err := sched.Restore()
	if err != nil {
		utils.Error(err.Error())
		return 1
	}
	if restored > 0 {
		utils.Info(fmt.Sprintf("restored %d scheduled task(s)", restored))
	}

	if opts.at != "" {
		when, err := scheduler.ParseAt(opts.at, time.Now())
		if err != nil {
			utils.Error(err.Error())
			return 2
		}
		if err := req.AbsPaths(); err != nil {
			utils.Error(err.Error())
			return 2
		}
		payload, err := req.Encode()
		if err != nil {
			utils.Error(err.Error())
			return 1
		}
		if _, err := when.Schedule(sched, fmt.Sprintf("upload %q", req.Videos[0].Title), payload); err != nil {
			utils.Error(err.Error())
			return 2
		}
	}

	if sched.Pending() == 0 {
		utils.Info("no scheduled task to run")
		return 0
	}
	if err := sched.Run(ctx); err != nil {
		utils.Error(err.Error())
		return 1
	}
	for _, task := range sched.Tasks() {
		if task.Status == database.TaskStatusFailed {
			return 1
		}
	}
	return 0
}

// stopOnSignal cancels the run on the first signal and then restores the
// default handling, so a second signal ends a run stuck in a wait that has
// no deadline.
func stopOnSignal(sigCh chan os.Signal, cancel context.CancelFunc) {
	<-sigCh
	signal.Stop(sigCh)
	utils.Warn("shutdown signal received, send it again to quit immediately")
	cancel()
}

// jobFactory rebuilds the upload run of a stored task
func jobFactory(svc *service.UploadService, history *service.HistoryService, logs *service.LogService) scheduler.JobFactory {
	return func(task database.ScheduledTask) (scheduler.Job, error) {
		req, err := app.ParseManifest([]byte(task.Payload))
		if err != nil {
			return nil, fmt.Errorf("task %d payload: %w", task.ID, err)
		}
		if err := req.Validate(); err != nil {
			return nil, fmt.Errorf("task %d payload: %w", task.ID, err)
		}
		taskID := task.ID
		return func(ctx context.Context) error {
			if err := service.CheckMedia(req.Videos); err != nil {
				return err
			}
			outcomes, err := upload(ctx, svc, req)
			if err != nil {
				return err
			}
			if _, err := history.Record(&taskID, req.Videos, outcomes); err != nil {
				utils.Warn(err.Error())
			}
			report(outcomes, logs)
			if n := failed(outcomes); n > 0 {
				return fmt.Errorf("%d of %d platforms failed", n, len(outcomes))
			}
			return nil
		}, nil
	}
}

func newUploadService(cfg *config.AppConfig) *service.UploadService {
	opts := []service.Option{
		service.WithDelay(cfg.DelayBetweenPosts),
		service.WithEventSink(printEvent),
	}
	if cfg.DebugMode {
		opts = append(opts, service.WithScreenshotDir(filepath.Join(cfg.LogPath, "screenshots")))
	}
	return service.NewUploadService(browser.NewPersistentLauncher(cfg), registry.Default(cfg), opts...)
}

func upload(ctx context.Context, svc *service.UploadService, req *app.Request) ([]types.UploadOutcome, error) {
	outcomes, err := svc.UploadBatch(ctx, req.Platforms, req.Videos)
	if err != nil {
		var verr *types.ValidationError
		if errors.As(err, &verr) {
			utils.Error(fmt.Sprintf("rejected: %v", err))
		} else {
			utils.Error(fmt.Sprintf("upload failed: %v", err))
		}
		return nil, err
	}
	return outcomes, nil
}

func failed(outcomes []types.UploadOutcome) int {
	return lo.CountBy(outcomes, func(o types.UploadOutcome) bool { return !o.Success })
}

func printEvent(e types.Event) {
	switch ev := e.(type) {
	case types.UploadProgressEvent:
		utils.InfoWithPlatform(ev.Platform.String(), fmt.Sprintf("posted %d/%d", ev.Posted, ev.Total))
	case types.ContextClosedEvent:
		utils.Debug("browser closed: " + ev.Reason)
	}
}

func report(outcomes []types.UploadOutcome, logs *service.LogService) {
	fmt.Println()
	for _, o := range outcomes {
		status := "ok"
		if !o.Success {
			status = "FAILED: " + o.Error
		}
		fmt.Printf("%-10s %-4d %-8s %s\n", o.Platform, o.Posts, o.Duration().Round(time.Second), status)
	}

	warnings := logs.Query(types.LogQuery{Level: types.LogLevelWarn})
	if len(warnings) > 0 {
		fmt.Printf("\n%d warning(s):\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("  [%s] %s\n", w.Platform, w.Message)
		}
	}

	for _, platform := range logs.GetPlatforms() {
		errs := logs.Query(types.LogQuery{Platform: platform, Level: types.LogLevelError})
		if len(errs) > 0 {
			fmt.Printf("\n[%s] last error: %s\n", platform, errs[0].Message)
		}
	}
}

func printHistory(history *service.HistoryService, limit int) int {
	records, err := history.Recent("", limit)
	if err != nil {
		utils.Error(err.Error())
		return 1
	}
	for _, r := range records {
		status := "ok"
		if !r.Success {
			status = "FAILED: " + r.Error
		}
		fmt.Printf("%s  %-10s %-4d %-30q %s\n", r.StartedAt.Format("2006-01-02 15:04"), r.Platform, r.Posts, r.Title, status)
	}
	return 0
}
