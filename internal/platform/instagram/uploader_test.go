package instagram

import (
	"context"
	"testing"

	"Muploader/internal/platform/browser/browsertest"
	"Muploader/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var video = types.VideoPayload{
	Title: "Launch day",
	Video: "/v/a.mp4",
	Image: "/v/a.png",
}

func TestUpload(t *testing.T) {
	s, page, _ := browsertest.NewSession("instagram")

	require.NoError(t, NewUploader(DefaultConfig()).Upload(context.Background(), s, video))

	ordered := []string{
		"click " + Locators.NotificationsNotNow.String(),
		"click " + Locators.NewPost.String(),
		"click " + Locators.PostMenuItem.String(),
		"files " + Locators.FileInput.String() + " /v/a.mp4,/v/a.png",
		"click " + Locators.NextButton.String(),
		"click " + browsertest.Key(Locators.EditDialog, Locators.NextButton),
		"fill " + Locators.Caption.String() + " = Launch day",
		"click " + Locators.ShareButton.String(),
		"wait visible " + Locators.Checkmark.String() + " (0s)",
		"click " + Locators.CloseButton.String(),
	}
	last := -1
	for _, a := range ordered {
		i := page.Index(a)
		require.NotEqual(t, -1, i, "missing %q", a)
		assert.Greater(t, i, last, "%q out of order", a)
		last = i
	}
}

func TestUpload_OptionalScreensAbsent(t *testing.T) {
	s, page, _ := browsertest.NewSession("instagram")
	page.Hide(browsertest.Key(Locators.NotificationsNotNow))
	page.Hide(browsertest.Key(Locators.ReelsNoticeOK))
	page.Hide(browsertest.Key(Locators.EditDialog, Locators.NextButton))

	require.NoError(t, NewUploader(DefaultConfig()).Upload(context.Background(), s, video))

	assert.Equal(t, -1, page.Index("click "+Locators.NotificationsNotNow.String()))
	assert.Equal(t, -1, page.Index("click "+browsertest.Key(Locators.EditDialog, Locators.NextButton)))
	assert.NotEqual(t, -1, page.Index("click "+Locators.ShareButton.String()))
}
