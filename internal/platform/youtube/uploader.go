package youtube

import (
	"context"
	"fmt"

	"Muploader/internal/platform/browser"
	"Muploader/internal/platform/platformutils"
	"Muploader/internal/types"
	"Muploader/internal/utils"
)

// settingsPages is how many wizard pages sit between details and visibility
const settingsPages = 3

type Uploader struct {
	platform types.Platform
	config   Config
}

func NewUploader(config Config) *Uploader {
	return &Uploader{platform: types.PlatformYouTube, config: config}
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
		{Name: platformutils.StepInitiate, Run: func(context.Context) error {
			// sign-in happens here
			if err := platformutils.WaitAndClick(s.Locate(Locators.CreateButton), browser.Indefinitely); err != nil {
				return err
			}
			return platformutils.WaitAndClick(s.Locate(Locators.UploadVideo), t.Element)
		}},
		{Name: platformutils.StepAttachMedia, Run: func(context.Context) error {
			return s.Locate(Locators.FileInput).SetInputFiles(video.Video)
		}},
		{Name: platformutils.StepFillMetadata, Run: func(context.Context) error {
			if err := platformutils.WaitAndFill(s.Locate(Locators.TitleBox), video.Title, u.config.TitleMaxLength, t.Element); err != nil {
				return fmt.Errorf("title: %w", err)
			}
			description := utils.ComposeCaption("", video.Description, video.URL)
			if description == "" {
				return nil
			}
			if err := platformutils.WaitAndFill(s.Locate(Locators.DescriptionBox), description, u.config.DescriptionMaxLength, t.Element); err != nil {
				return fmt.Errorf("description: %w", err)
			}
			return nil
		}},
		{Name: platformutils.StepThumbnail, Run: func(context.Context) error {
			return u.setThumbnail(s, video.Image)
		}},
		{Name: platformutils.StepSettings, Run: func(context.Context) error {
			audience := Locators.NotForKids
			if u.config.MadeForKids {
				audience = Locators.MadeForKids
			}
			if err := platformutils.WaitAndClick(s.Locate(audience), t.Element); err != nil {
				return fmt.Errorf("audience: %w", err)
			}
			for i := 0; i < settingsPages; i++ {
				if err := platformutils.WaitAndClick(s.Locate(Locators.NextButton), t.Element); err != nil {
					return fmt.Errorf("next %d: %w", i+1, err)
				}
			}
			return nil
		}},
		{Name: platformutils.StepPublish, Run: func(context.Context) error {
			if err := platformutils.WaitAndClick(s.Locate(Locators.PublicRadio), t.Element); err != nil {
				return err
			}
			return platformutils.WaitAndClick(s.Locate(Locators.PublishButton), t.Element)
		}},
		{Name: platformutils.StepConfirm, Run: func(context.Context) error {
			closeButton := s.Locate(Locators.CloseDialog).Locate(Locators.CloseButton)
			return platformutils.WaitAndClick(closeButton, browser.Indefinitely)
		}},
	})
	if err != nil {
		return err
	}

	utils.SuccessWithPlatform(tag, fmt.Sprintf("published %q", video.Title))
	return nil
}

// setThumbnail only acts when a thumbnail was given and the control exists;
// YouTube hides custom thumbnails for some videos and channels.
func (u *Uploader) setThumbnail(s *browser.Session, image string) error {
	if image == "" {
		return nil
	}
	button := s.Locate(Locators.ThumbnailButton)
	if !browser.Probe(button, u.config.Timeouts.Probe) {
		utils.WarnWithPlatform(string(u.platform), "thumbnail upload not available, skipped")
		return nil
	}
	return s.Page.ExpectFileChooser(button.Click, image)
}
