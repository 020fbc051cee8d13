package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"Muploader/internal/config"
	"Muploader/internal/platform/browser"
	"Muploader/internal/platform/registry"
	"Muploader/internal/types"
	"Muploader/internal/utils"

	"github.com/samber/lo"
)

const (
	closeReasonOK     = "Upload completed."
	closeReasonFailed = "Upload completed with errors: "
)

// UploadService fans one upload request out to every requested platform,
// each on its own page of one shared browser context.
type UploadService struct {
	launcher      browser.Launcher
	registry      *registry.Registry
	delay         time.Duration
	screenshotDir string
	sink          types.EventSink
	sinkMutex     sync.Mutex
}

type Option func(*UploadService)

// WithDelay sets the base of the jittered pause between two videos on the
// same platform
func WithDelay(d time.Duration) Option {
	return func(s *UploadService) { s.delay = d }
}

// WithEventSink receives progress events. Calls are serialised.
func WithEventSink(sink types.EventSink) Option {
	return func(s *UploadService) { s.sink = sink }
}

// WithScreenshotDir saves a screenshot of a platform's page when it fails
func WithScreenshotDir(dir string) Option {
	return func(s *UploadService) { s.screenshotDir = dir }
}

func NewUploadService(launcher browser.Launcher, reg *registry.Registry, opts ...Option) *UploadService {
	s := &UploadService{
		launcher: launcher,
		registry: reg,
		delay:    config.DefaultDelayBetweenPosts,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Upload publishes one video on every platform
func (s *UploadService) Upload(ctx context.Context, platforms []types.Platform, video types.VideoPayload) ([]types.UploadOutcome, error) {
	return s.UploadBatch(ctx, platforms, []types.VideoPayload{video})
}

// UploadBatch publishes videos, in order, on every platform. Platforms run
// concurrently and a failing platform never stops the others. It returns
// one outcome per distinct platform, in request order, and an error only
// when the request is invalid or the browser cannot be launched.
func (s *UploadService) UploadBatch(ctx context.Context, platforms []types.Platform, videos []types.VideoPayload) ([]types.UploadOutcome, error) {
	uploaders, err := s.prepare(platforms, videos)
	if err != nil {
		return nil, err
	}

	bctx, err := s.launcher.Launch(ctx)
	if err != nil {
		return nil, err
	}
	manager := browser.NewManager(bctx)

	utils.Info(fmt.Sprintf("uploading %d video(s) to %s", len(videos), strings.Join(platformNames(uploaders), ", ")))

	outcomes := make([]types.UploadOutcome, len(uploaders))
	var wg sync.WaitGroup
	for i, u := range uploaders {
		wg.Add(1)
		go func(i int, u registry.Uploader) {
			defer wg.Done()
			outcomes[i] = s.run(ctx, manager, u, videos)
		}(i, u)
	}
	wg.Wait()

	s.closeContext(bctx, outcomes)
	return outcomes, nil
}

// prepare checks the request before anything is launched
func (s *UploadService) prepare(platforms []types.Platform, videos []types.VideoPayload) ([]registry.Uploader, error) {
	if len(platforms) == 0 {
		return nil, &types.ValidationError{Field: "platforms", Reason: "at least one platform is required"}
	}
	if len(videos) == 0 {
		return nil, &types.ValidationError{Field: "video", Reason: "at least one video is required"}
	}
	for i, video := range videos {
		if err := video.Validate(); err != nil {
			return nil, fmt.Errorf("video %d: %w", i+1, err)
		}
	}

	uploaders := make([]registry.Uploader, 0, len(platforms))
	for _, p := range lo.Uniq(platforms) {
		u, err := s.registry.Resolve(p)
		if err != nil {
			return nil, err
		}
		uploaders = append(uploaders, u)
	}
	return uploaders, nil
}

// run drives one platform through every video. It never panics.
func (s *UploadService) run(ctx context.Context, manager *browser.Manager, u registry.Uploader, videos []types.VideoPayload) (outcome types.UploadOutcome) {
	platform := u.Platform()
	tag := string(platform)
	outcome = types.UploadOutcome{Platform: platform, StartedAt: time.Now()}
	s.emit(types.UploadStartedEvent{Platform: platform, Videos: len(videos)})

	defer func() {
		if r := recover(); r != nil {
			outcome = s.fail(outcome, fmt.Errorf("uploader panicked: %v", r))
		}
		outcome.FinishedAt = time.Now()
	}()

	session, err := manager.Open(tag)
	if err != nil {
		return s.fail(outcome, fmt.Errorf("open page: %w", err))
	}
	defer func() {
		if err := session.Close(); err != nil {
			utils.WarnWithPlatform(tag, fmt.Sprintf("close page: %v", err))
		}
	}()

	for i, video := range videos {
		if i > 0 {
			if err := utils.Wait(ctx, s.delay); err != nil {
				return s.fail(outcome, err)
			}
		}
		if err := u.Upload(ctx, session, video); err != nil {
			s.screenshot(session)
			return s.fail(outcome, err)
		}
		outcome.Posts++
		s.emit(types.UploadProgressEvent{Platform: platform, Posted: outcome.Posts, Total: len(videos), SourceID: video.SourceID})
	}

	outcome.Success = true
	s.emit(types.UploadCompleteEvent{Platform: platform, Posts: outcome.Posts, CompletedAt: time.Now().Format(time.RFC3339)})
	return outcome
}

func (s *UploadService) fail(outcome types.UploadOutcome, err error) types.UploadOutcome {
	outcome.Success = false
	outcome.Err = err
	outcome.Error = err.Error()

	step := ""
	var stepErr *types.StepError
	if errors.As(err, &stepErr) {
		step = stepErr.Step
	}
	utils.ErrorWithPlatform(string(outcome.Platform), fmt.Sprintf("upload failed: %v", err))
	s.emit(types.UploadErrorEvent{Platform: outcome.Platform, Step: step, Error: err.Error()})
	return outcome
}

func (s *UploadService) screenshot(session *browser.Session) {
	if s.screenshotDir == "" || session.Page.IsClosed() {
		return
	}
	path := filepath.Join(s.screenshotDir, fmt.Sprintf("%s_%s.png", session.Platform, time.Now().Format("20060102_150405")))
	if err := session.Page.Screenshot(path); err != nil {
		utils.WarnWithPlatform(session.Platform, fmt.Sprintf("screenshot failed: %v", err))
		return
	}
	utils.DebugWithPlatform(session.Platform, fmt.Sprintf("screenshot saved: %s", path))
}

// closeContext closes the shared context exactly once. A close error is
// logged and never changes the outcomes.
func (s *UploadService) closeContext(bctx browser.Context, outcomes []types.UploadOutcome) {
	reason := CloseReason(outcomes)
	if err := bctx.Close(reason); err != nil {
		utils.Warn(fmt.Sprintf("close browser: %v", err))
	}
	utils.Info(reason)
	s.emit(types.ContextClosedEvent{Reason: reason})
}

// CloseReason tells a fully successful run apart from one with failures
func CloseReason(outcomes []types.UploadOutcome) string {
	failed := lo.FilterMap(outcomes, func(o types.UploadOutcome, _ int) (string, bool) {
		return string(o.Platform), !o.Success
	})
	if len(failed) == 0 {
		return closeReasonOK
	}
	return closeReasonFailed + strings.Join(failed, ", ")
}

func (s *UploadService) emit(e types.Event) {
	if s.sink == nil {
		return
	}
	s.sinkMutex.Lock()
	defer s.sinkMutex.Unlock()
	s.sink(e)
}

func platformNames(uploaders []registry.Uploader) []string {
	return lo.Map(uploaders, func(u registry.Uploader, _ int) string {
		return string(u.Platform())
	})
}
