package browser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"Muploader/internal/config"
	"Muploader/internal/utils"
	"Muploader/internal/utils/retry"

	"github.com/playwright-community/playwright-go"
)

// Launcher starts the shared context of one upload run
type Launcher interface {
	Launch(ctx context.Context) (Context, error)
}

// ErrDriverUnavailable means the playwright driver could not start; a
// retry cannot fix a missing installation.
var ErrDriverUnavailable = errors.New("playwright driver unavailable")

// PersistentLauncher opens a persistent Chrome profile so that platform
// sign-ins survive between runs.
type PersistentLauncher struct {
	UserDataDir    string
	Channel        string
	ExecutablePath string
	Headless       bool
	ElementTimeout time.Duration
	Retries        int
	RetryDelay     time.Duration
}

// NewPersistentLauncher builds a launcher from the application config
func NewPersistentLauncher(cfg *config.AppConfig) *PersistentLauncher {
	return &PersistentLauncher{
		UserDataDir:    cfg.UserDataDir,
		Channel:        cfg.Channel,
		ExecutablePath: cfg.ExecutablePath,
		Headless:       cfg.Headless,
		ElementTimeout: cfg.ElementTimeout,
		Retries:        cfg.LaunchRetries,
		RetryDelay:     2 * time.Second,
	}
}

// launchTimeout bounds all launch attempts together
const launchTimeout = 2 * time.Minute

var launchArgs = []string{
	"--disable-blink-features=AutomationControlled",
	"--disable-infobars",
	"--disable-dev-shm-usage",
	"--start-maximized",
}

func (l *PersistentLauncher) Launch(ctx context.Context) (Context, error) {
	if err := os.MkdirAll(l.UserDataDir, 0755); err != nil {
		return nil, fmt.Errorf("create user data dir: %w", err)
	}

	launched, err := retry.DoWithResult(ctx, l.retryConfig(), l.launch)
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}
	return launched, nil
}

func (l *PersistentLauncher) retryConfig() *retry.Config {
	return &retry.Config{
		MaxRetries:    l.Retries,
		InitialDelay:  l.RetryDelay,
		MaxDelay:      30 * time.Second,
		TotalTimeout:  launchTimeout,
		BackoffFactor: 2,
		Jitter:        true,
		JitterFactor:  0.1,

		RetryCondition: func(err error) bool {
			return !errors.Is(err, ErrDriverUnavailable)
		},
		OnRetry: func(attempt int, delay time.Duration, err error) {
			utils.Warn(fmt.Sprintf("launch browser failed (%v), retry %d in %s", err, attempt, delay.Round(time.Millisecond)))
		},
		OnFailure: func(err error) {
			utils.Error(fmt.Sprintf("giving up on browser launch: %v", err))
		},
	}
}

func (l *PersistentLauncher) launch() (Context, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDriverUnavailable, err)
	}

	opts := playwright.BrowserTypeLaunchPersistentContextOptions{
		Headless:   playwright.Bool(l.Headless),
		Args:       launchArgs,
		NoViewport: playwright.Bool(true),
	}
	if l.ExecutablePath != "" {
		opts.ExecutablePath = playwright.String(l.ExecutablePath)
	} else if l.Channel != "" {
		opts.Channel = playwright.String(l.Channel)
	}

	bc, err := pw.Chromium.LaunchPersistentContext(l.UserDataDir, opts)
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launch persistent context failed: %w", err)
	}

	if err := bc.AddInitScript(playwright.Script{Content: playwright.String(stealthScript)}); err != nil {
		utils.Warn(fmt.Sprintf("inject stealth script: %v", err))
	}
	if l.ElementTimeout > 0 {
		bc.SetDefaultTimeout(float64(l.ElementTimeout.Milliseconds()))
	}

	utils.Info(fmt.Sprintf("browser launched, profile %s", l.UserDataDir))
	return &pwContext{bc: bc, pw: pw}, nil
}

// stealthScript hides the most common automation fingerprints
const stealthScript = `
Object.defineProperty(navigator, 'webdriver', { get: () => undefined });
Object.defineProperty(navigator, 'languages', { get: () => ['en-US', 'en'] });
Object.defineProperty(navigator, 'plugins', { get: () => [1, 2, 3, 4, 5] });
window.chrome = window.chrome || { runtime: {} };
const originalQuery = window.navigator.permissions && window.navigator.permissions.query;
if (originalQuery) {
  window.navigator.permissions.query = (parameters) =>
    parameters.name === 'notifications'
      ? Promise.resolve({ state: Notification.permission })
      : originalQuery(parameters);
}
`
