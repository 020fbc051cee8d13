package x

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
	return &Uploader{platform: types.PlatformX, config: config}
}

func (u *Uploader) Platform() types.Platform {
	return u.platform
}

func (u *Uploader) Upload(ctx context.Context, s *browser.Session, video types.VideoPayload) error {
	tag := string(u.platform)
	t := u.config.Timeouts
	utils.InfoWithPlatform(tag, fmt.Sprintf("uploading %s", video.Video))

	steps := []platformutils.Step{
		{Name: platformutils.StepNavigate, Run: func(context.Context) error {
			return s.Navigate(u.config.UploadURL)
		}},
	}
	if u.config.WaitCaptcha {
		steps = append(steps, platformutils.Step{Name: platformutils.StepCaptcha, Run: func(ctx context.Context) error {
			return browser.WaitCaptchaCleared(ctx, s.Page, tag, t.CaptchaPoll)
		}})
	}
	steps = append(steps,
		platformutils.Step{Name: platformutils.StepInitiate, Run: func(context.Context) error {
			// the composer only shows once signed in
			return s.Locate(Locators.AddMedia).WaitFor(browser.StateVisible, browser.Indefinitely)
		}},
		platformutils.Step{Name: platformutils.StepAttachMedia, Run: func(context.Context) error {
			return s.Locate(Locators.FileInput).SetInputFiles(video.Video)
		}},
		platformutils.Step{Name: platformutils.StepFillMetadata, Run: func(context.Context) error {
			text := utils.ComposeCaption(video.Title, video.Description, "")
			return platformutils.WaitAndFill(s.Locate(Locators.PostText), text, u.config.PostMaxLength, t.Element)
		}},
		platformutils.Step{Name: platformutils.StepPublish, Run: func(context.Context) error {
			return platformutils.WaitAndClick(s.Locate(Locators.PostButton), browser.Indefinitely)
		}},
		platformutils.Step{Name: platformutils.StepConfirm, Run: func(context.Context) error {
			return s.Locate(Locators.Toast).WaitFor(browser.StateVisible, browser.Indefinitely)
		}},
	)
	if video.URL != "" {
		steps = append(steps, platformutils.Step{Name: platformutils.StepPostPublish, Run: func(context.Context) error {
			return u.replyWithLink(s, video.URL)
		}})
	}

	if err := platformutils.RunSteps(ctx, u.platform, steps); err != nil {
		return err
	}
	utils.SuccessWithPlatform(tag, fmt.Sprintf("published %q", video.Title))
	return nil
}

// replyWithLink opens the new post from the confirmation toast and answers
// it with the link, keeping the link out of the main post.
func (u *Uploader) replyWithLink(s *browser.Session, link string) error {
	t := u.config.Timeouts
	view := s.Locate(Locators.Toast).Locate(Locators.ToastView)
	if err := platformutils.WaitAndClick(view, t.Element); err != nil {
		return fmt.Errorf("open post: %w", err)
	}
	if err := platformutils.WaitAndFill(s.Locate(Locators.ReplyText), link, u.config.PostMaxLength, t.Element); err != nil {
		return fmt.Errorf("reply text: %w", err)
	}
	if err := platformutils.WaitAndClick(s.Locate(Locators.ReplyButton), browser.Indefinitely); err != nil {
		return fmt.Errorf("reply: %w", err)
	}
	if err := s.Locate(Locators.Toast).WaitFor(browser.StateVisible, browser.Indefinitely); err != nil {
		return fmt.Errorf("reply confirmation: %w", err)
	}
	utils.InfoWithPlatform(string(u.platform), "link posted as reply")
	return nil
}
