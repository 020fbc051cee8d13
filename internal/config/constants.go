package config

import "time"

const (
	AppName = "MaxRoom Uploader"

	DefaultUserDataDir  = "storage/playwright"
	DefaultLogPath      = "storage/logs"
	DefaultDatabasePath = "storage/uploader.db"
	DefaultChannel      = "chrome"

	DefaultDelayBetweenPosts = 5 * time.Second
	DefaultElementTimeout    = 30 * time.Second
	DefaultProbeTimeout      = 3 * time.Second
	DefaultLaunchRetries     = 2
)
