package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	UserDataDir       string // persistent browser profile (keeps the sign-in cookies)
	LogPath           string
	DatabasePath      string // sqlite file holding scheduled tasks and upload history
	Channel           string // browser channel, "chrome" uses the installed Chrome
	ExecutablePath    string // explicit browser binary, overrides Channel
	Headless          bool
	DebugMode         bool
	DelayBetweenPosts time.Duration
	ElementTimeout    time.Duration // bounded waits for transient UI
	ProbeTimeout      time.Duration // presence checks for optional UI
	LaunchRetries     int
}

var Config *AppConfig

// Init loads optional .env files, reads the environment and creates the
// storage directories. Paths in envFiles that do not exist are skipped.
func Init(envFiles ...string) error {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load env file %s failed: %w", f, err)
		}
	}

	baseDir, err := baseDir()
	if err != nil {
		return err
	}

	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}

	for _, dir := range []string{cfg.UserDataDir, cfg.LogPath, filepath.Dir(cfg.DatabasePath)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s failed: %w", dir, err)
		}
	}

	Config = cfg
	return nil
}

// Load builds a config from the environment. Relative default paths are
// resolved against baseDir.
func Load(baseDir string) (*AppConfig, error) {
	cfg := &AppConfig{
		UserDataDir:       envStr("UPLOADER_USER_DATA_DIR", filepath.Join(baseDir, DefaultUserDataDir)),
		LogPath:           envStr("UPLOADER_LOG_DIR", filepath.Join(baseDir, DefaultLogPath)),
		DatabasePath:      envStr("UPLOADER_DB_PATH", filepath.Join(baseDir, DefaultDatabasePath)),
		Channel:           envStr("UPLOADER_CHANNEL", DefaultChannel),
		ExecutablePath:    envStr("UPLOADER_EXECUTABLE_PATH", ""),
		Headless:          envBool("UPLOADER_HEADLESS", false),
		DebugMode:         envBool("UPLOADER_DEBUG", false),
		DelayBetweenPosts: DefaultDelayBetweenPosts,
		ElementTimeout:    DefaultElementTimeout,
		ProbeTimeout:      DefaultProbeTimeout,
		LaunchRetries:     DefaultLaunchRetries,
	}

	var err error
	if cfg.DelayBetweenPosts, err = envDuration("UPLOADER_DELAY_BETWEEN_POSTS", cfg.DelayBetweenPosts); err != nil {
		return nil, err
	}
	if cfg.ElementTimeout, err = envDuration("UPLOADER_ELEMENT_TIMEOUT", cfg.ElementTimeout); err != nil {
		return nil, err
	}
	if cfg.ProbeTimeout, err = envDuration("UPLOADER_PROBE_TIMEOUT", cfg.ProbeTimeout); err != nil {
		return nil, err
	}
	if v := os.Getenv("UPLOADER_LAUNCH_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("UPLOADER_LAUNCH_RETRIES: invalid value %q", v)
		}
		cfg.LaunchRetries = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the engine cannot work with
func (c *AppConfig) Validate() error {
	if c.UserDataDir == "" {
		return fmt.Errorf("user data dir is required")
	}
	if c.DelayBetweenPosts < 0 {
		return fmt.Errorf("delay between posts must not be negative")
	}
	if c.ElementTimeout <= 0 {
		return fmt.Errorf("element timeout must be positive")
	}
	if c.ProbeTimeout <= 0 {
		return fmt.Errorf("probe timeout must be positive")
	}
	return nil
}

func baseDir() (string, error) {
	if dir := os.Getenv("UPLOADER_HOME"); dir != "" {
		return dir, nil
	}
	exePath, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exePath), nil
}

func envStr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "":
		return def
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
