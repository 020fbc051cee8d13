package linkedin

import (
	"context"
	"errors"
	"testing"

	"Muploader/internal/platform/browser/browsertest"
	"Muploader/internal/platform/platformutils"
	"Muploader/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload_FileChooserPerVideo(t *testing.T) {
	s, page, _ := browsertest.NewSession("linkedIn")
	u := NewUploader(DefaultConfig())

	first := types.VideoPayload{Title: "First video", Video: "/v/1.mp4"}
	second := types.VideoPayload{Title: "Second video", Video: "/v/2.mp4"}
	require.NoError(t, u.Upload(context.Background(), s, first))
	require.NoError(t, u.Upload(context.Background(), s, second))

	// each chooser only ever receives its own video
	one, two := page.Index("chooser /v/1.mp4"), page.Index("chooser /v/2.mp4")
	require.NotEqual(t, -1, one)
	require.NotEqual(t, -1, two)
	assert.Equal(t, -1, page.Index("chooser /v/1.mp4,/v/2.mp4"))
	assert.Greater(t, page.Index("click "+Locators.AddMedia.String()), -1)
	assert.Greater(t, two, one)
}

func TestUpload_Steps(t *testing.T) {
	s, page, _ := browsertest.NewSession("linkedIn")
	video := types.VideoPayload{Title: "Launch day", Description: "details", Video: "/v/a.mp4"}

	require.NoError(t, NewUploader(DefaultConfig()).Upload(context.Background(), s, video))

	actions := page.Actions()
	assert.Equal(t, "goto https://www.linkedin.com/feed/", actions[0])
	assert.NotEqual(t, -1, page.Index("wait visible "+Locators.AddMedia.String()+" (0s)"))
	assert.NotEqual(t, -1, page.Index("fill "+Locators.Editor.String()+" = Launch day\ndetails"))
	assert.Equal(t, "wait visible "+Locators.UploadComplete.String()+" (0s)", actions[len(actions)-1])
}

func TestUpload_ChooserFailure(t *testing.T) {
	s, page, _ := browsertest.NewSession("linkedIn")
	page.FailChooser(errors.New("no chooser opened"))

	err := NewUploader(DefaultConfig()).Upload(context.Background(), s, types.VideoPayload{Title: "abc", Video: "/v/a.mp4"})

	var stepErr *types.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, platformutils.StepAttachMedia, stepErr.Step)
}
