package tiktok

import (
	"fmt"

	"Muploader/internal/platform/browser"
	"Muploader/internal/platform/platformutils"
	"Muploader/internal/utils"
)

// setCover replaces the auto-picked frame with image. Cover problems never
// fail the upload.
func (u *Uploader) setCover(s *browser.Session, image string) {
	if image == "" {
		return
	}
	if err := u.uploadCover(s, image); err != nil {
		utils.WarnWithPlatform(string(u.platform), fmt.Sprintf("set cover failed: %v", err))
		return
	}
	utils.InfoWithPlatform(string(u.platform), "cover set")
}

func (u *Uploader) uploadCover(s *browser.Session, image string) error {
	t := u.config.Timeouts
	editCover := s.Locate(Locators.EditCover)
	if !browser.Probe(editCover, t.Probe) {
		return fmt.Errorf("cover editor not available")
	}
	if err := editCover.Click(); err != nil {
		return err
	}
	if err := platformutils.WaitAndClick(s.Locate(Locators.UploadCover), t.Element); err != nil {
		return fmt.Errorf("upload tab: %w", err)
	}
	if err := s.Locate(Locators.CoverInput).SetInputFiles(image); err != nil {
		return fmt.Errorf("cover file: %w", err)
	}
	return platformutils.WaitAndClick(s.Locate(Locators.ConfirmCover), t.Element)
}
