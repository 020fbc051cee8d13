// Package app turns the external inputs (manifest files, deep links) into
// upload requests.
package app

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"Muploader/internal/types"

	"github.com/samber/lo"
)

// Request is one upload run: the videos go to every platform
type Request struct {
	Platforms []types.Platform     `json:"platforms"`
	Videos    []types.VideoPayload `json:"videos"`
}

// ParsePlatforms parses a comma separated platform list, ignoring blanks
// and duplicates
func ParsePlatforms(list string) ([]types.Platform, error) {
	names := lo.Filter(strings.Split(list, ","), func(s string, _ int) bool {
		return strings.TrimSpace(s) != ""
	})
	platforms := make([]types.Platform, 0, len(names))
	for _, name := range names {
		p, err := types.ParsePlatform(name)
		if err != nil {
			return nil, err
		}
		platforms = append(platforms, p)
	}
	return lo.Uniq(platforms), nil
}

// Merge fills platforms the request does not name itself
func (r *Request) Merge(platforms []types.Platform) {
	if len(r.Platforms) == 0 {
		r.Platforms = platforms
	}
}

func (r *Request) Validate() error {
	if len(r.Platforms) == 0 {
		return fmt.Errorf("no platform selected")
	}
	if len(r.Videos) == 0 {
		return fmt.Errorf("no video given")
	}
	for i, v := range r.Videos {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("video %d: %w", i+1, err)
		}
	}
	return nil
}

// Encode serialises the request in the batch manifest format, so
// ParseManifest reads it back.
func (r *Request) Encode() ([]byte, error) {
	return json.Marshal(r)
}

// AbsPaths makes media paths absolute so the request stays valid when it
// is replayed from another working directory.
func (r *Request) AbsPaths() error {
	for i := range r.Videos {
		for _, p := range []*string{&r.Videos[i].Video, &r.Videos[i].Image} {
			if *p == "" {
				continue
			}
			abs, err := filepath.Abs(*p)
			if err != nil {
				return fmt.Errorf("resolve %s: %w", *p, err)
			}
			*p = abs
		}
	}
	return nil
}
