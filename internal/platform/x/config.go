package x

import "Muploader/internal/platform/platformutils"

type Config struct {
	UploadURL     string
	PostMaxLength int
	// WaitCaptcha pauses before posting while a challenge is on screen
	WaitCaptcha bool
	Timeouts    platformutils.Timeouts
}

var defaultConfig = Config{
	UploadURL:     "https://x.com/home",
	PostMaxLength: 280,
	WaitCaptcha:   true,
	Timeouts:      platformutils.DefaultTimeouts(),
}

func DefaultConfig() Config {
	return defaultConfig
}
