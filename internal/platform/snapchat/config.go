package snapchat

import "Muploader/internal/platform/platformutils"

type Config struct {
	UploadURL        string
	CaptionMaxLength int
	Timeouts         platformutils.Timeouts
}

var defaultConfig = Config{
	UploadURL:        "https://my.snapchat.com/",
	CaptionMaxLength: 160,
	Timeouts:         platformutils.DefaultTimeouts(),
}

func DefaultConfig() Config {
	return defaultConfig
}
