package threads

import "Muploader/internal/platform/platformutils"

type Config struct {
	UploadURL string
	Timeouts  platformutils.Timeouts
}

var defaultConfig = Config{
	UploadURL: "https://www.threads.net/",
	Timeouts:  platformutils.DefaultTimeouts(),
}

func DefaultConfig() Config {
	return defaultConfig
}
