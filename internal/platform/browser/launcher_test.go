package browser

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"Muploader/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestNewPersistentLauncher(t *testing.T) {
	cfg := &config.AppConfig{
		UserDataDir:    "/tmp/profile",
		Channel:        "chrome",
		ExecutablePath: "/opt/chrome/chrome",
		Headless:       true,
		ElementTimeout: 10 * time.Second,
		LaunchRetries:  4,
	}

	l := NewPersistentLauncher(cfg)

	assert.Equal(t, "/tmp/profile", l.UserDataDir)
	assert.Equal(t, "/opt/chrome/chrome", l.ExecutablePath)
	assert.True(t, l.Headless)
	assert.Equal(t, 4, l.Retries)
}

func TestRetryConfig(t *testing.T) {
	l := &PersistentLauncher{Retries: 3, RetryDelay: time.Second}
	rc := l.retryConfig()

	assert.Equal(t, 3, rc.MaxRetries)
	assert.Equal(t, launchTimeout, rc.TotalTimeout)
	assert.True(t, rc.RetryCondition(errors.New("target closed")))
	assert.False(t, rc.RetryCondition(fmt.Errorf("%w: driver not installed", ErrDriverUnavailable)))
}
