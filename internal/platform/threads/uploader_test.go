package threads

import (
	"context"
	"testing"

	"Muploader/internal/platform/browser/browsertest"
	"Muploader/internal/platform/platformutils"
	"Muploader/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload(t *testing.T) {
	s, page, _ := browsertest.NewSession("threads")
	video := types.VideoPayload{Title: "Launch day", Video: "/v/a.mp4", Image: "/v/a.jpg"}

	require.NoError(t, NewUploader(DefaultConfig()).Upload(context.Background(), s, video))

	assert.NotEqual(t, -1, page.Index("files "+Locators.FileInput.String()+" /v/a.mp4,/v/a.jpg"))
	assert.NotEqual(t, -1, page.Index("click "+Locators.PostButton.String()))
	attached := page.Index("wait attached " + Locators.Alert.String() + " (30s)")
	detached := page.Index("wait detached " + Locators.Alert.String() + " (0s)")
	require.NotEqual(t, -1, attached)
	assert.Greater(t, detached, attached)
}

func TestUpload_AlertNeverShows(t *testing.T) {
	s, page, _ := browsertest.NewSession("threads")
	page.Hide(browsertest.Key(Locators.Alert))

	err := NewUploader(DefaultConfig()).Upload(context.Background(), s, types.VideoPayload{Title: "abc", Video: "/v/a.mp4"})

	var stepErr *types.StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, platformutils.StepConfirm, stepErr.Step)
}
