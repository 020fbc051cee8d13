package pinterest

import (
	"context"
	"fmt"

	"Muploader/internal/platform/browser"
	"Muploader/internal/platform/platformutils"
	"Muploader/internal/types"
	"Muploader/internal/utils"
)

const stepDraftSaved = "wait for draft saved"

type Uploader struct {
	platform types.Platform
	config   Config
}

func NewUploader(config Config) *Uploader {
	return &Uploader{platform: types.PlatformPinterest, config: config}
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
		{Name: platformutils.StepAttachMedia, Run: func(context.Context) error {
			input := s.Locate(Locators.FileInput)
			if err := input.WaitFor(browser.StateAttached, browser.Indefinitely); err != nil {
				return err
			}
			return input.SetInputFiles(video.Video)
		}},
		{Name: platformutils.StepFillMetadata, Run: func(context.Context) error {
			return u.fillDetails(s, video)
		}},
		{Name: stepDraftSaved, Run: func(context.Context) error {
			return s.Locate(Locators.ChangesStored).WaitFor(browser.StateVisible, browser.Indefinitely)
		}},
		{Name: platformutils.StepPublish, Run: func(context.Context) error {
			return platformutils.WaitAndClick(s.Locate(Locators.PublishButton), t.Element)
		}},
		{Name: platformutils.StepConfirm, Run: func(context.Context) error {
			if err := platformutils.WaitGoneIfShown(s.Locate(Locators.Publishing), t.Probe); err != nil {
				return err
			}
			// back to "Publish" once the pin went out
			return s.Locate(Locators.PublishButton).WaitFor(browser.StateVisible, browser.Indefinitely)
		}},
	})
	if err != nil {
		return err
	}

	utils.SuccessWithPlatform(tag, fmt.Sprintf("published %q", video.Title))
	return nil
}

func (u *Uploader) fillDetails(s *browser.Session, video types.VideoPayload) error {
	timeout := u.config.Timeouts.Element
	if err := platformutils.WaitAndFill(s.Locate(Locators.Title), video.Title, 0, timeout); err != nil {
		return fmt.Errorf("title: %w", err)
	}
	if video.Description != "" {
		if err := platformutils.WaitAndFill(s.Locate(Locators.Description), video.Description, 0, timeout); err != nil {
			return fmt.Errorf("description: %w", err)
		}
	}
	if video.URL != "" {
		if err := platformutils.WaitAndFill(s.Locate(Locators.Link), video.URL, 0, timeout); err != nil {
			return fmt.Errorf("link: %w", err)
		}
	}
	return nil
}
