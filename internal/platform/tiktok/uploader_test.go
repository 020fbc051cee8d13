package tiktok

import (
	"context"
	"errors"
	"strings"
	"testing"

	"Muploader/internal/platform/browser/browsertest"
	"Muploader/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload(t *testing.T) {
	s, page, _ := browsertest.NewSession("tiktok")
	video := types.VideoPayload{Title: "Launch day", Description: "more", Video: "/v/a.mp4"}

	require.NoError(t, NewUploader(DefaultConfig()).Upload(context.Background(), s, video))

	ordered := []string{
		"goto https://www.tiktok.com/tiktokstudio/upload?lang=en",
		"wait attached " + Locators.FileInput.String() + " (0s)",
		"files " + Locators.FileInput.String() + " /v/a.mp4",
		"wait visible " + Locators.Uploaded.String() + " (0s)",
		"fill " + Locators.Editor.String() + " = Launch day\nmore",
		"click " + Locators.PostButton.String(),
		"click " + Locators.PostNow.String(),
		"wait visible " + Locators.UploadAnother.String() + " (0s)",
	}
	last := -1
	for _, a := range ordered {
		i := page.Index(a)
		require.NotEqual(t, -1, i, "missing %q in %v", a, page.Actions())
		assert.Greater(t, i, last)
		last = i
	}
	assert.Equal(t, -1, page.Index("click "+Locators.EditCover.String()), "no cover without an image")
}

func TestUpload_CaptionTruncated(t *testing.T) {
	s, page, _ := browsertest.NewSession("tiktok")
	video := types.VideoPayload{Title: "abc", Description: strings.Repeat("x", 5000), Video: "/v/a.mp4"}

	require.NoError(t, NewUploader(DefaultConfig()).Upload(context.Background(), s, video))

	want := ("abc\n" + strings.Repeat("x", 5000))[:4000]
	assert.NotEqual(t, -1, page.Index("fill "+Locators.Editor.String()+" = "+want))
}

func TestUpload_CoverFailureIsNotFatal(t *testing.T) {
	s, page, _ := browsertest.NewSession("tiktok")
	page.Fail("files", browsertest.Key(Locators.CoverInput), errors.New("bad image"))
	page.Hide(browsertest.Key(Locators.PostNow))
	video := types.VideoPayload{Title: "abc", Video: "/v/a.mp4", Image: "/v/a.png"}

	require.NoError(t, NewUploader(DefaultConfig()).Upload(context.Background(), s, video))

	assert.NotEqual(t, -1, page.Index("click "+Locators.EditCover.String()))
	assert.Equal(t, -1, page.Index("click "+Locators.ConfirmCover.String()))
	assert.Equal(t, -1, page.Index("click "+Locators.PostNow.String()))
	assert.NotEqual(t, -1, page.Index("click "+Locators.PostButton.String()))
}

func TestUpload_Cover(t *testing.T) {
	s, page, _ := browsertest.NewSession("tiktok")
	video := types.VideoPayload{Title: "abc", Video: "/v/a.mp4", Image: "/v/a.png"}

	require.NoError(t, NewUploader(DefaultConfig()).Upload(context.Background(), s, video))
	assert.NotEqual(t, -1, page.Index("files "+Locators.CoverInput.String()+" /v/a.png"))
	assert.NotEqual(t, -1, page.Index("click "+Locators.ConfirmCover.String()))
}
