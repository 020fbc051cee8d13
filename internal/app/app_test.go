package app

import (
	"os"
	"path/filepath"
	"testing"

	"Muploader/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifest_SingleVideo(t *testing.T) {
	req, err := ParseManifest([]byte(`{
		"title": "Launch day",
		"description": "Behind the scenes",
		"video": "/v/launch.mp4",
		"url": "https://example.com",
		"maxroomID": "42",
		"platforms": ["youtube", "X"]
	}`))
	require.NoError(t, err)

	assert.Equal(t, []types.Platform{types.PlatformYouTube, types.PlatformX}, req.Platforms)
	require.Len(t, req.Videos, 1)
	assert.Equal(t, types.VideoPayload{
		Title:       "Launch day",
		Description: "Behind the scenes",
		Video:       "/v/launch.mp4",
		URL:         "https://example.com",
		SourceID:    "42",
	}, req.Videos[0])
}

func TestParseManifest_Batch(t *testing.T) {
	req, err := ParseManifest([]byte(`{
		"platforms": ["tiktok"],
		"videos": [
			{"title": "First", "video": "1.mp4", "sourceId": "a"},
			{"title": "Second", "video": "2.mp4", "image": "2.png"}
		]
	}`))
	require.NoError(t, err)

	require.Len(t, req.Videos, 2)
	assert.Equal(t, "a", req.Videos[0].SourceID)
	assert.Equal(t, "2.png", req.Videos[1].Image)
	assert.NoError(t, req.Validate())
}

func TestParseManifest_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{"title": `},
		{"array root", `[{"title": "abc"}]`},
		{"unknown platform", `{"platforms": ["myspace"], "title": "abc", "video": "a.mp4"}`},
		{"videos not array", `{"videos": {"title": "abc"}}`},
		{"video not object", `{"videos": ["a.mp4"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadManifest_ResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "upload.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"title": "abc", "video": "clips/a.mp4", "image": "/abs/a.png"}`), 0644))

	req, err := LoadManifest(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "clips", "a.mp4"), req.Videos[0].Video)
	assert.Equal(t, "/abs/a.png", req.Videos[0].Image)
}

func TestParseDeepLink(t *testing.T) {
	req, err := ParseDeepLink("maxroom-uploader://upload?title=Launch%20day&video=%2Fv%2Fa.mp4&platforms=x,youtube,x&url=https%3A%2F%2Fexample.com&maxroomID=7")
	require.NoError(t, err)

	assert.Equal(t, []types.Platform{types.PlatformX, types.PlatformYouTube}, req.Platforms)
	require.Len(t, req.Videos, 1)
	v := req.Videos[0]
	assert.Equal(t, "Launch day", v.Title)
	assert.Equal(t, "/v/a.mp4", v.Video)
	assert.Equal(t, "https://example.com", v.URL)
	assert.Equal(t, "7", v.SourceID)
}

func TestParseDeepLink_Errors(t *testing.T) {
	for _, raw := range []string{
		"https://upload?title=abc",
		"maxroom-uploader://settings",
		"maxroom-uploader://upload?platforms=youtube,myspace",
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseDeepLink(raw)
			assert.Error(t, err)
		})
	}
}

func TestParsePlatforms(t *testing.T) {
	got, err := ParsePlatforms(" linkedin , ,Snapchat,linkedIn")
	require.NoError(t, err)
	assert.Equal(t, []types.Platform{types.PlatformLinkedIn, types.PlatformSnapchat}, got)

	got, err = ParsePlatforms("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRequest_Merge(t *testing.T) {
	req := &Request{Videos: []types.VideoPayload{{Title: "abc", Video: "a.mp4"}}}
	assert.Error(t, req.Validate())

	req.Merge([]types.Platform{types.PlatformThreads})
	assert.Equal(t, []types.Platform{types.PlatformThreads}, req.Platforms)
	assert.NoError(t, req.Validate())

	req.Merge([]types.Platform{types.PlatformX})
	assert.Equal(t, []types.Platform{types.PlatformThreads}, req.Platforms, "request platforms win")
}

func TestRequest_EncodeReadsBackAsManifest(t *testing.T) {
	req := &Request{
		Platforms: []types.Platform{types.PlatformPinterest, types.PlatformLinkedIn},
		Videos: []types.VideoPayload{
			{Title: "First", Video: "1.mp4", SourceID: "a"},
			{Title: "Second", Video: "2.mp4", Image: "2.png", URL: "https://example.com"},
		},
	}
	require.NoError(t, req.AbsPaths())
	assert.True(t, filepath.IsAbs(req.Videos[1].Image))
	assert.Empty(t, req.Videos[0].Image)

	data, err := req.Encode()
	require.NoError(t, err)
	got, err := ParseManifest(data)
	require.NoError(t, err)
	assert.Equal(t, req, got)
}
