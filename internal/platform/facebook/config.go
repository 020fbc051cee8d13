package facebook

import "Muploader/internal/platform/platformutils"

type Config struct {
	UploadURL string
	Timeouts  platformutils.Timeouts
}

var defaultConfig = Config{
	UploadURL: "https://www.facebook.com/",
	Timeouts:  platformutils.DefaultTimeouts(),
}

func DefaultConfig() Config {
	return defaultConfig
}
