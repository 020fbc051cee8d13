// Package platformutils holds the step runner and the UI helpers shared by
// the platform uploaders.
package platformutils

import (
	"context"
	"fmt"
	"time"

	"Muploader/internal/platform/browser"
	"Muploader/internal/types"
	"Muploader/internal/utils"
)

// Common step names
const (
	StepNavigate     = "navigate"
	StepDismiss      = "dismiss transient UI"
	StepCaptcha      = "wait for captcha"
	StepInitiate     = "initiate post"
	StepAttachMedia  = "attach media"
	StepFillMetadata = "fill metadata"
	StepThumbnail    = "set thumbnail"
	StepSettings     = "post settings"
	StepPublish      = "publish"
	StepConfirm      = "wait for confirmation"
	StepPostPublish  = "post-publish action"
)

// Step is one stage of an upload sequence
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// RunSteps executes steps strictly in order and stops at the first failure,
// which comes back as a *types.StepError naming the step. ctx is checked
// between steps only; a step in an indefinite wait is not interrupted.
func RunSteps(ctx context.Context, platform types.Platform, steps []Step) error {
	tag := string(platform)
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return types.NewStepError(platform, step.Name, err)
		}
		utils.DebugWithPlatform(tag, fmt.Sprintf("[%d/%d] %s", i+1, len(steps), step.Name))
		start := time.Now()
		if err := step.Run(ctx); err != nil {
			return types.NewStepError(platform, step.Name, err)
		}
		utils.DebugWithPlatform(tag, fmt.Sprintf("%s done in %s", step.Name, time.Since(start).Round(time.Millisecond)))
	}
	return nil
}

// WaitAndClick waits for l to become visible, then clicks it
func WaitAndClick(l browser.Locator, timeout time.Duration) error {
	if err := l.WaitFor(browser.StateVisible, timeout); err != nil {
		return err
	}
	return l.Click()
}

// WaitAndFill waits for l to become visible, then fills it with text cut to
// limit characters. A non-positive limit keeps the text whole.
func WaitAndFill(l browser.Locator, text string, limit int, timeout time.Duration) error {
	if err := l.WaitFor(browser.StateVisible, timeout); err != nil {
		return err
	}
	return l.Fill(utils.Truncate(text, limit))
}

// WaitAppearThenGone waits for a transient indicator to attach and then
// waits, without deadline, for it to leave the DOM.
func WaitAppearThenGone(l browser.Locator, appearTimeout time.Duration) error {
	if err := l.WaitFor(browser.StateAttached, appearTimeout); err != nil {
		return err
	}
	return l.WaitFor(browser.StateDetached, browser.Indefinitely)
}

// Media returns the video path followed by the thumbnail when one is set
// WaitGoneIfShown waits, without a deadline, for l to go away when it shows
// up within probeTimeout. A progress element that never appears is not an
// error: the server may have answered before it rendered.
func WaitGoneIfShown(l browser.Locator, probeTimeout time.Duration) error {
	if err := l.WaitFor(browser.StateAttached, probeTimeout); err != nil {
		return nil
	}
	return l.WaitFor(browser.StateDetached, browser.Indefinitely)
}

func Media(video types.VideoPayload) []string {
	files := []string{video.Video}
	if video.Image != "" {
		files = append(files, video.Image)
	}
	return files
}
