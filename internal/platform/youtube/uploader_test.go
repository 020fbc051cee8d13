package youtube

import (
	"context"
	"errors"
	"strings"
	"testing"

	"Muploader/internal/platform/browser/browsertest"
	"Muploader/internal/platform/platformutils"
	"Muploader/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var video = types.VideoPayload{
	Title:       "Launch day",
	Description: "Behind the scenes",
	Video:       "/videos/launch.mp4",
	URL:         "https://example.com/launch",
}

func TestUpload_Sequence(t *testing.T) {
	s, page, ctx := browsertest.NewSession("youtube")

	require.NoError(t, NewUploader(DefaultConfig()).Upload(context.Background(), s, video))

	actions := page.Actions()
	assert.Equal(t, "goto https://youtube.com/", actions[0])
	assert.Len(t, ctx.Pages(), 1, "launch blank page should be closed after navigation")

	ordered := []string{
		"wait visible " + Locators.CreateButton.String() + " (0s)",
		"click " + Locators.UploadVideo.String(),
		"files " + Locators.FileInput.String() + " /videos/launch.mp4",
		"fill " + Locators.TitleBox.String() + " = Launch day",
		"fill " + Locators.DescriptionBox.String() + " = Behind the scenes\nhttps://example.com/launch",
		"click " + Locators.NotForKids.String(),
		"click " + Locators.PublishButton.String(),
		"wait visible " + browsertest.Key(Locators.CloseDialog, Locators.CloseButton) + " (0s)",
	}
	last := -1
	for _, a := range ordered {
		i := page.Index(a)
		require.NotEqual(t, -1, i, "missing action %q in %v", a, actions)
		assert.Greater(t, i, last, "action %q out of order", a)
		last = i
	}

	next := 0
	for _, a := range actions {
		if a == "click "+Locators.NextButton.String() {
			next++
		}
	}
	assert.Equal(t, settingsPages, next)
}

func TestUpload_DescriptionTruncated(t *testing.T) {
	s, page, _ := browsertest.NewSession("youtube")
	long := video
	long.Description = strings.Repeat("d", 6000)
	long.URL = ""

	require.NoError(t, NewUploader(DefaultConfig()).Upload(context.Background(), s, long))
	assert.NotEqual(t, -1, page.Index("fill "+Locators.DescriptionBox.String()+" = "+strings.Repeat("d", 5000)))
}

func TestUpload_Thumbnail(t *testing.T) {
	withImage := video
	withImage.Image = "/videos/cover.png"

	t.Run("control present", func(t *testing.T) {
		s, page, _ := browsertest.NewSession("youtube")
		require.NoError(t, NewUploader(DefaultConfig()).Upload(context.Background(), s, withImage))
		assert.NotEqual(t, -1, page.Index("chooser /videos/cover.png"))
	})

	t.Run("control absent", func(t *testing.T) {
		s, page, _ := browsertest.NewSession("youtube")
		page.Hide(browsertest.Key(Locators.ThumbnailButton))
		require.NoError(t, NewUploader(DefaultConfig()).Upload(context.Background(), s, withImage))
		assert.Equal(t, -1, page.Index("chooser /videos/cover.png"))
	})
}

func TestUpload_AttachFailure(t *testing.T) {
	s, page, _ := browsertest.NewSession("youtube")
	page.Fail("files", browsertest.Key(Locators.FileInput), errors.New("input detached"))

	err := NewUploader(DefaultConfig()).Upload(context.Background(), s, video)

	var stepErr *types.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, platformutils.StepAttachMedia, stepErr.Step)
	assert.Equal(t, types.PlatformYouTube, stepErr.Platform)
	assert.Equal(t, -1, page.Index("click "+Locators.PublishButton.String()))
}

func TestUpload_MadeForKids(t *testing.T) {
	s, page, _ := browsertest.NewSession("youtube")
	cfg := DefaultConfig()
	cfg.MadeForKids = true

	require.NoError(t, NewUploader(cfg).Upload(context.Background(), s, video))
	assert.NotEqual(t, -1, page.Index("click "+Locators.MadeForKids.String()))
	assert.Equal(t, -1, page.Index("click "+Locators.NotForKids.String()))
}
