package linkedin

import (
	"context"
	"fmt"

	"Muploader/internal/platform/browser"
	"Muploader/internal/platform/platformutils"
	"Muploader/internal/types"
	"Muploader/internal/utils"
)

type Uploader struct {
	platform types.Platform
	config   Config
}

func NewUploader(config Config) *Uploader {
	return &Uploader{platform: types.PlatformLinkedIn, config: config}
}

func (u *Uploader) Platform() types.Platform {
	return u.platform
}

func (u *Uploader) Upload(ctx context.Context, s *browser.Session, video types.VideoPayload) error {
	tag := string(u.platform)
	t := u.config.Timeouts
	utils.InfoWithPlatform(tag, fmt.Sprintf("uploading %s", video.Video))

	addMedia := s.Locate(Locators.AddMedia)
	err := platformutils.RunSteps(ctx, u.platform, []platformutils.Step{
		{Name: platformutils.StepNavigate, Run: func(context.Context) error {
			return s.Navigate(u.config.UploadURL)
		}},
		{Name: platformutils.StepInitiate, Run: func(context.Context) error {
			return addMedia.WaitFor(browser.StateVisible, browser.Indefinitely)
		}},
		{Name: platformutils.StepAttachMedia, Run: func(context.Context) error {
			// LinkedIn has no reachable file input, the chooser is armed
			// before the click and discarded once it fired
			return s.Page.ExpectFileChooser(addMedia.Click, video.Video)
		}},
		{Name: platformutils.StepSettings, Run: func(context.Context) error {
			return platformutils.WaitAndClick(s.Locate(Locators.NextButton), t.Element)
		}},
		{Name: platformutils.StepFillMetadata, Run: func(context.Context) error {
			caption := utils.ComposeCaption(video.Title, video.Description, video.URL)
			return platformutils.WaitAndFill(s.Locate(Locators.Editor), caption, 0, t.Element)
		}},
		{Name: platformutils.StepPublish, Run: func(context.Context) error {
			return platformutils.WaitAndClick(s.Locate(Locators.PostButton), t.Element)
		}},
		{Name: platformutils.StepConfirm, Run: func(context.Context) error {
			return s.Locate(Locators.UploadComplete).WaitFor(browser.StateVisible, browser.Indefinitely)
		}},
	})
	if err != nil {
		return err
	}

	utils.SuccessWithPlatform(tag, fmt.Sprintf("published %q", video.Title))
	return nil
}
