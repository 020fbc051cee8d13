package browser

import (
	"context"
	"fmt"
	"time"

	"Muploader/internal/utils"
)

var captchaIndicators = []struct {
	query Query
	kind  string
}{
	{CSS("iframe[src*='captcha']"), "captcha iframe"},
	{CSS("iframe[src*='arkoselabs']"), "arkose challenge"},
	{CSS("iframe[title*='reCAPTCHA']"), "recaptcha"},
	{CSS("[class*='captcha']"), "captcha"},
	{CSS("[id*='captcha']"), "captcha"},
	{Text("Verify you are human"), "human verification"},
	{Text("Drag the slider to fit the puzzle"), "slider"},
	{Text("Select 2 objects that are the same shape"), "shape puzzle"},
}

// DetectCaptcha reports whether a captcha or human-verification challenge is
// visible on page, and which kind.
func DetectCaptcha(page Page) (bool, string) {
	for _, item := range captchaIndicators {
		if page.Locate(item.query).IsVisible() {
			return true, item.kind
		}
	}
	return false, ""
}

// WaitCaptchaCleared blocks while a captcha is shown so the user can solve
// it by hand. There is no deadline; only ctx ends the wait early.
func WaitCaptchaCleared(ctx context.Context, page Page, platform string, interval time.Duration) error {
	warned := false
	for {
		detected, kind := DetectCaptcha(page)
		if !detected {
			if warned {
				utils.InfoWithPlatform(platform, "captcha cleared")
			}
			return nil
		}
		if !warned {
			utils.WarnWithPlatform(platform, fmt.Sprintf("%s detected, waiting for manual solve", kind))
			warned = true
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
