package types

// LogLevel is the severity of a log entry
type LogLevel string

const (
	LogLevelInfo    LogLevel = "info"
	LogLevelWarn    LogLevel = "warn"
	LogLevelError   LogLevel = "error"
	LogLevelDebug   LogLevel = "debug"
	LogLevelSuccess LogLevel = "success"
)

// SimpleLog is one entry forwarded to the in-memory log service
type SimpleLog struct {
	Date     string   `json:"date"` // 2006/1/2
	Time     string   `json:"time"` // 15:04:05
	Message  string   `json:"message"`
	Platform string   `json:"platform"`
	Level    LogLevel `json:"level"`
}

// LogQuery filters entries of the log service
type LogQuery struct {
	Keyword  string   `json:"keyword"`
	Limit    int      `json:"limit"` // defaults to 100
	Platform string   `json:"platform"`
	Level    LogLevel `json:"level"`
}
