package snapchat

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
	return &Uploader{platform: types.PlatformSnapchat, config: config}
}

func (u *Uploader) Platform() types.Platform {
	return u.platform
}

func (u *Uploader) Upload(ctx context.Context, s *browser.Session, video types.VideoPayload) error {
	tag := string(u.platform)
	t := u.config.Timeouts
	utils.InfoWithPlatform(tag, fmt.Sprintf("uploading %s", video.Video))

	err := platformutils.RunSteps(ctx, u.platform, []platformutils.Step{
		{Name: platformutils.StepNavigate, Run: func(context.Context) error {
			return s.Navigate(u.config.UploadURL)
		}},
		{Name: platformutils.StepDismiss, Run: func(context.Context) error {
			gotIt := s.Locate(Locators.FirstRunGotIt)
			if browser.Probe(gotIt, t.Probe) {
				return gotIt.Click()
			}
			return nil
		}},
		{Name: platformutils.StepAttachMedia, Run: func(context.Context) error {
			input := s.Locate(Locators.FileInput)
			if err := input.WaitFor(browser.StateAttached, browser.Indefinitely); err != nil {
				return err
			}
			return input.SetInputFiles(video.Video)
		}},
		{Name: platformutils.StepFillMetadata, Run: func(context.Context) error {
			caption := utils.ComposeCaption(video.Title, video.Description, video.URL)
			return platformutils.WaitAndFill(s.Locate(Locators.Caption), caption, u.config.CaptionMaxLength, t.Element)
		}},
		{Name: platformutils.StepPublish, Run: func(context.Context) error {
			if err := platformutils.WaitAndClick(s.Locate(Locators.PostButton), t.Element); err != nil {
				return err
			}
			return u.acceptConsent(s)
		}},
		{Name: platformutils.StepConfirm, Run: func(context.Context) error {
			return s.Locate(Locators.PostLive).WaitFor(browser.StateVisible, browser.Indefinitely)
		}},
	})
	if err != nil {
		return err
	}

	utils.SuccessWithPlatform(tag, fmt.Sprintf("published %q", video.Title))
	return nil
}

func (u *Uploader) acceptConsent(s *browser.Session) error {
	accept := s.Locate(Locators.ConsentDialog).Locate(Locators.ConsentAccept)
	if !browser.Probe(accept, u.config.Timeouts.Probe) {
		return nil
	}
	utils.InfoWithPlatform(string(u.platform), "accepting first post terms")
	return accept.Click()
}
