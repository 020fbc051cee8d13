package pinterest

import "Muploader/internal/platform/platformutils"

type Config struct {
	UploadURL string
	Timeouts  platformutils.Timeouts
}

var defaultConfig = Config{
	UploadURL: "https://www.pinterest.com/pin-creation-tool/",
	Timeouts:  platformutils.DefaultTimeouts(),
}

func DefaultConfig() Config {
	return defaultConfig
}
