package tiktok

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
	return &Uploader{platform: types.PlatformTikTok, config: config}
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
		platformutils.Step{Name: platformutils.StepAttachMedia, Run: func(context.Context) error {
			input := s.Locate(Locators.FileInput)
			// the studio renders the input only after sign-in
			if err := input.WaitFor(browser.StateAttached, browser.Indefinitely); err != nil {
				return err
			}
			if err := input.SetInputFiles(video.Video); err != nil {
				return err
			}
			utils.InfoWithPlatform(tag, "waiting for video upload...")
			// large videos take a while
			return s.Locate(Locators.Uploaded).WaitFor(browser.StateVisible, browser.Indefinitely)
		}},
		platformutils.Step{Name: platformutils.StepFillMetadata, Run: func(context.Context) error {
			caption := utils.ComposeCaption(video.Title, video.Description, video.URL)
			return platformutils.WaitAndFill(s.Locate(Locators.Editor), caption, u.config.CaptionMaxLength, t.Element)
		}},
		platformutils.Step{Name: platformutils.StepThumbnail, Run: func(context.Context) error {
			u.setCover(s, video.Image)
			return nil
		}},
		platformutils.Step{Name: platformutils.StepPublish, Run: func(context.Context) error {
			if err := platformutils.WaitAndClick(s.Locate(Locators.PostButton), t.Element); err != nil {
				return err
			}
			// asked when TikTok is still checking the content
			postNow := s.Locate(Locators.PostNow)
			if browser.Probe(postNow, t.Probe) {
				return postNow.Click()
			}
			return nil
		}},
		platformutils.Step{Name: platformutils.StepConfirm, Run: func(context.Context) error {
			return s.Locate(Locators.UploadAnother).WaitFor(browser.StateVisible, browser.Indefinitely)
		}},
	)

	if err := platformutils.RunSteps(ctx, u.platform, steps); err != nil {
		return err
	}
	utils.SuccessWithPlatform(tag, fmt.Sprintf("published %q", video.Title))
	return nil
}
