package platformutils

import (
	"time"

	"Muploader/internal/config"
)

// Timeouts bound the waits an uploader is allowed to give up on. Waits for
// sign-in, captcha and server-side processing never use them.
type Timeouts struct {
	Element     time.Duration // a control that should already be on screen
	Probe       time.Duration // optional UI that may never appear
	CaptchaPoll time.Duration
}

func DefaultTimeouts() Timeouts {
	return Timeouts{
		Element:     config.DefaultElementTimeout,
		Probe:       config.DefaultProbeTimeout,
		CaptchaPoll: 2 * time.Second,
	}
}

// TimeoutsFrom takes the bounded waits from the application config
func TimeoutsFrom(cfg *config.AppConfig) Timeouts {
	t := DefaultTimeouts()
	if cfg == nil {
		return t
	}
	if cfg.ElementTimeout > 0 {
		t.Element = cfg.ElementTimeout
	}
	if cfg.ProbeTimeout > 0 {
		t.Probe = cfg.ProbeTimeout
	}
	return t
}
