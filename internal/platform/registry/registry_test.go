package registry

import (
	"context"
	"testing"

	"Muploader/internal/platform/browser"
	"Muploader/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUploader struct {
	platform types.Platform
	name     string
}

func (s stubUploader) Platform() types.Platform { return s.platform }

func (s stubUploader) Upload(context.Context, *browser.Session, types.VideoPayload) error {
	return nil
}

func TestDefault_CoversEveryPlatform(t *testing.T) {
	r := Default(nil)
	for _, p := range types.AllPlatforms() {
		u, err := r.Resolve(p)
		require.NoError(t, err, p)
		assert.Equal(t, p, u.Platform())
	}
	assert.Len(t, r.Platforms(), len(types.AllPlatforms()))
}

func TestResolve_Unknown(t *testing.T) {
	r := New(stubUploader{platform: types.PlatformX})

	_, err := r.Resolve(types.Platform("myspace"))
	assert.Error(t, err)
	_, err = r.Resolve(types.PlatformYouTube)
	assert.Error(t, err, "no fallback to another uploader")
}

func TestNew_LastWins(t *testing.T) {
	r := New(
		stubUploader{platform: types.PlatformX, name: "first"},
		stubUploader{platform: types.PlatformX, name: "second"},
	)
	u, err := r.Resolve(types.PlatformX)
	require.NoError(t, err)
	assert.Equal(t, "second", u.(stubUploader).name)
}

func TestPlatforms_Sorted(t *testing.T) {
	r := New(
		stubUploader{platform: types.PlatformYouTube},
		stubUploader{platform: types.PlatformFacebook},
		stubUploader{platform: types.PlatformThreads},
	)
	assert.Equal(t, []types.Platform{types.PlatformFacebook, types.PlatformThreads, types.PlatformYouTube}, r.Platforms())
}
