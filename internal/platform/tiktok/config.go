package tiktok

import "Muploader/internal/platform/platformutils"

type Config struct {
	UploadURL        string
	CaptionMaxLength int
	WaitCaptcha      bool
	Timeouts         platformutils.Timeouts
}

var defaultConfig = Config{
	UploadURL:        "https://www.tiktok.com/tiktokstudio/upload?lang=en",
	CaptionMaxLength: 4000,
	WaitCaptcha:      true,
	Timeouts:         platformutils.DefaultTimeouts(),
}

func DefaultConfig() Config {
	return defaultConfig
}
