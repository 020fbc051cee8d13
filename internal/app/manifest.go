package app

import (
	"fmt"
	"os"
	"path/filepath"

	"Muploader/internal/types"

	"github.com/tidwall/gjson"
)

// LoadManifest reads a JSON manifest. Relative media paths are resolved
// against the manifest's directory.
func LoadManifest(path string) (*Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	req, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i := range req.Videos {
		req.Videos[i].Video = resolvePath(dir, req.Videos[i].Video)
		req.Videos[i].Image = resolvePath(dir, req.Videos[i].Image)
	}
	return req, nil
}

// ParseManifest accepts either a single video object or
// {"platforms": [...], "videos": [{...}, ...]}. Platforms are optional in
// both forms.
func ParseManifest(data []byte) (*Request, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("manifest is not valid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("manifest must be an object")
	}

	req := &Request{}
	for _, item := range root.Get("platforms").Array() {
		p, err := types.ParsePlatform(item.String())
		if err != nil {
			return nil, err
		}
		req.Platforms = append(req.Platforms, p)
	}

	videos := root.Get("videos")
	if !videos.Exists() {
		req.Videos = []types.VideoPayload{parsePayload(root)}
		return req, nil
	}
	if !videos.IsArray() {
		return nil, fmt.Errorf("videos must be an array")
	}
	for _, item := range videos.Array() {
		if !item.IsObject() {
			return nil, fmt.Errorf("videos must contain objects, got %s", item.Type)
		}
		req.Videos = append(req.Videos, parsePayload(item))
	}
	return req, nil
}

func parsePayload(r gjson.Result) types.VideoPayload {
	sourceID := r.Get("sourceId").String()
	if sourceID == "" {
		sourceID = r.Get("maxroomID").String()
	}
	return types.VideoPayload{
		Title:       r.Get("title").String(),
		Description: r.Get("description").String(),
		Video:       r.Get("video").String(),
		Image:       r.Get("image").String(),
		URL:         r.Get("url").String(),
		SourceID:    sourceID,
	}
}

func resolvePath(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
