package instagram

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
	return &Uploader{platform: types.PlatformInstagram, config: config}
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
			u.dismissIfPresent(s, Locators.NotificationsNotNow, "notifications prompt")
			return nil
		}},
		{Name: platformutils.StepInitiate, Run: func(context.Context) error {
			if err := platformutils.WaitAndClick(s.Locate(Locators.NewPost), browser.Indefinitely); err != nil {
				return err
			}
			return platformutils.WaitAndClick(s.Locate(Locators.PostMenuItem), browser.Indefinitely)
		}},
		{Name: platformutils.StepAttachMedia, Run: func(context.Context) error {
			// one input takes the video and the cover image together
			return s.Locate(Locators.FileInput).SetInputFiles(platformutils.Media(video)...)
		}},
		{Name: platformutils.StepSettings, Run: func(context.Context) error {
			u.dismissIfPresent(s, Locators.ReelsNoticeOK, "reels notice")
			// crop
			if err := platformutils.WaitAndClick(s.Locate(Locators.NextButton), browser.Indefinitely); err != nil {
				return fmt.Errorf("crop: %w", err)
			}
			// filters, not shown on every account
			filterNext := s.Locate(Locators.EditDialog).Locate(Locators.NextButton)
			if browser.Probe(filterNext, t.Probe) {
				if err := filterNext.Click(); err != nil {
					return fmt.Errorf("filters: %w", err)
				}
			}
			return nil
		}},
		{Name: platformutils.StepFillMetadata, Run: func(context.Context) error {
			caption := utils.ComposeCaption(video.Title, video.Description, video.URL)
			return platformutils.WaitAndFill(s.Locate(Locators.Caption), caption, 0, t.Element)
		}},
		{Name: platformutils.StepPublish, Run: func(context.Context) error {
			return platformutils.WaitAndClick(s.Locate(Locators.ShareButton), browser.Indefinitely)
		}},
		{Name: platformutils.StepConfirm, Run: func(context.Context) error {
			return s.Locate(Locators.Checkmark).WaitFor(browser.StateVisible, browser.Indefinitely)
		}},
		{Name: platformutils.StepPostPublish, Run: func(context.Context) error {
			return platformutils.WaitAndClick(s.Locate(Locators.CloseButton), browser.Indefinitely)
		}},
	})
	if err != nil {
		return err
	}

	utils.SuccessWithPlatform(tag, fmt.Sprintf("published %q", video.Title))
	return nil
}

func (u *Uploader) dismissIfPresent(s *browser.Session, q browser.Query, what string) {
	l := s.Locate(q)
	if !browser.Probe(l, u.config.Timeouts.Probe) {
		return
	}
	if err := l.Click(); err != nil {
		utils.WarnWithPlatform(string(u.platform), fmt.Sprintf("dismiss %s: %v", what, err))
		return
	}
	utils.DebugWithPlatform(string(u.platform), fmt.Sprintf("dismissed %s", what))
}
