package app

import (
	"fmt"
	"net/url"
	"strings"

	"Muploader/internal/types"
)

// DeepLinkScheme is the URL scheme the desktop integration registers
const DeepLinkScheme = "maxroom-uploader"

// ParseDeepLink reads a link such as
// maxroom-uploader://upload?title=...&video=...&platforms=x,youtube
func ParseDeepLink(raw string) (*Request, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse deep link: %w", err)
	}
	if !strings.EqualFold(u.Scheme, DeepLinkScheme) {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	action := u.Host
	if action == "" {
		action = strings.Trim(u.Opaque+u.Path, "/")
	}
	if action != "upload" {
		return nil, fmt.Errorf("unsupported deep link action %q", action)
	}

	q := u.Query()
	platforms, err := ParsePlatforms(q.Get("platforms"))
	if err != nil {
		return nil, err
	}
	sourceID := q.Get("sourceId")
	if sourceID == "" {
		sourceID = q.Get("maxroomID")
	}

	return &Request{
		Platforms: platforms,
		Videos: []types.VideoPayload{{
			Title:       q.Get("title"),
			Description: q.Get("description"),
			Video:       q.Get("video"),
			Image:       q.Get("image"),
			URL:         q.Get("url"),
			SourceID:    sourceID,
		}},
	}, nil
}
