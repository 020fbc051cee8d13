// Package registry maps each platform to its uploader.
package registry

import (
	"context"
	"fmt"
	"sort"

	"Muploader/internal/config"
	"Muploader/internal/platform/browser"
	"Muploader/internal/platform/facebook"
	"Muploader/internal/platform/instagram"
	"Muploader/internal/platform/linkedin"
	"Muploader/internal/platform/pinterest"
	"Muploader/internal/platform/platformutils"
	"Muploader/internal/platform/snapchat"
	"Muploader/internal/platform/threads"
	"Muploader/internal/platform/tiktok"
	"Muploader/internal/platform/x"
	"Muploader/internal/platform/youtube"
	"Muploader/internal/types"

	"github.com/samber/lo"
)

// Uploader publishes one video through a platform's web UI
type Uploader interface {
	Platform() types.Platform
	Upload(ctx context.Context, s *browser.Session, video types.VideoPayload) error
}

// Registry is an immutable platform to uploader table
type Registry struct {
	uploaders map[types.Platform]Uploader
}

// New builds a registry. A later uploader for the same platform replaces an
// earlier one.
func New(uploaders ...Uploader) *Registry {
	return &Registry{
		uploaders: lo.Associate(uploaders, func(u Uploader) (types.Platform, Uploader) {
			return u.Platform(), u
		}),
	}
}

// Default registers an uploader for every supported platform
func Default(cfg *config.AppConfig) *Registry {
	t := platformutils.TimeoutsFrom(cfg)

	yt := youtube.DefaultConfig()
	yt.Timeouts = t
	xc := x.DefaultConfig()
	xc.Timeouts = t
	fb := facebook.DefaultConfig()
	fb.Timeouts = t
	ig := instagram.DefaultConfig()
	ig.Timeouts = t
	li := linkedin.DefaultConfig()
	li.Timeouts = t
	tt := tiktok.DefaultConfig()
	tt.Timeouts = t
	pin := pinterest.DefaultConfig()
	pin.Timeouts = t
	th := threads.DefaultConfig()
	th.Timeouts = t
	sc := snapchat.DefaultConfig()
	sc.Timeouts = t

	return New(
		youtube.NewUploader(yt),
		x.NewUploader(xc),
		facebook.NewUploader(fb),
		tiktok.NewUploader(tt),
		pinterest.NewUploader(pin),
		threads.NewUploader(th),
		instagram.NewUploader(ig),
		linkedin.NewUploader(li),
		snapchat.NewUploader(sc),
	)
}

// Resolve returns the uploader for p. There is no fallback.
func (r *Registry) Resolve(p types.Platform) (Uploader, error) {
	u, ok := r.uploaders[p]
	if !ok {
		return nil, fmt.Errorf("no uploader registered for platform %q", p)
	}
	return u, nil
}

// Platforms lists the registered platforms in sorted order
func (r *Registry) Platforms() []types.Platform {
	platforms := lo.Keys(r.uploaders)
	sort.Slice(platforms, func(i, j int) bool { return platforms[i] < platforms[j] })
	return platforms
}
