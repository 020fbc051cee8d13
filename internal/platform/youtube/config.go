package youtube

import "Muploader/internal/platform/platformutils"

type Config struct {
	UploadURL            string
	TitleMaxLength       int
	DescriptionMaxLength int
	MadeForKids          bool
	Timeouts             platformutils.Timeouts
}

var defaultConfig = Config{
	UploadURL:            "https://youtube.com/",
	TitleMaxLength:       100,
	DescriptionMaxLength: 5000,
	Timeouts:             platformutils.DefaultTimeouts(),
}

func DefaultConfig() Config {
	return defaultConfig
}
