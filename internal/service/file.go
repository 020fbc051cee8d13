package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"Muploader/internal/types"

	"github.com/samber/lo"
)

var (
	videoExtensions = []string{".mp4", ".mov", ".avi", ".webm", ".mkv", ".m4v"}
	imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}
)

// CheckMedia verifies that the files of every video exist and have a format
// the platforms accept. Run it before UploadBatch; the uploaders assume
// readable files.
func CheckMedia(videos []types.VideoPayload) error {
	for i, video := range videos {
		if err := checkFile(video.Video, videoExtensions); err != nil {
			return fmt.Errorf("video %d: %w", i+1, &types.ValidationError{Field: "video", Reason: err.Error()})
		}
		if video.Image == "" {
			continue
		}
		if err := checkFile(video.Image, imageExtensions); err != nil {
			return fmt.Errorf("video %d: %w", i+1, &types.ValidationError{Field: "image", Reason: err.Error()})
		}
	}
	return nil
}

func checkFile(path string, extensions []string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat file failed: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !lo.Contains(extensions, ext) {
		return fmt.Errorf("unsupported format: %s", ext)
	}
	return nil
}
