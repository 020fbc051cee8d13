package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"Muploader/internal/types"
)

// LogServiceInterface decouples the logger from the service package
type LogServiceInterface interface {
	Add(log types.SimpleLog)
}

type Logger struct {
	out        io.Writer
	file       *os.File
	logService LogServiceInterface
	debug      bool
	mutex      sync.Mutex
}

var (
	defaultLogger *Logger
	loggerMu      sync.Mutex
)

// InitLogger opens the dated log file under logPath and makes it the
// destination of the package-level functions.
func InitLogger(logPath string, debug bool) error {
	if err := os.MkdirAll(logPath, 0755); err != nil {
		return err
	}
	name := filepath.Join(logPath, fmt.Sprintf("app_%s.log", time.Now().Format("20060102")))
	file, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}

	l := GetLogger()
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if l.file != nil {
		_ = l.file.Close()
	}
	l.file = file
	l.out = io.MultiWriter(os.Stderr, file)
	l.debug = debug
	return nil
}

// NewLogger creates a logger writing to w, mainly for tests
func NewLogger(w io.Writer, debug bool) *Logger {
	return &Logger{out: w, debug: debug}
}

// GetLogger returns the shared logger; it writes to stderr until InitLogger is called
func GetLogger() *Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = &Logger{out: os.Stderr}
	}
	return defaultLogger
}

// CloseLogger flushes and closes the log file
func CloseLogger() error {
	l := GetLogger()
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.out = os.Stderr
	return err
}

// SetLogService forwards every entry to service as well
func SetLogService(service LogServiceInterface) {
	GetLogger().SetLogService(service)
}

func (l *Logger) SetLogService(service LogServiceInterface) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.logService = service
}

func (l *Logger) log(level types.LogLevel, platform, msg string) {
	if level == types.LogLevelDebug && !l.debug {
		return
	}

	now := time.Now()
	timestamp := now.Format("2006-01-02 15:04:05")

	var line string
	if platform != "" {
		line = fmt.Sprintf("[%s] [%s] [%s] %s\n", timestamp, level, platform, msg)
	} else {
		line = fmt.Sprintf("[%s] [%s] %s\n", timestamp, level, msg)
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	_, _ = io.WriteString(l.out, line)

	if l.logService != nil {
		l.logService.Add(types.SimpleLog{
			Date:     now.Format("2006/1/2"),
			Time:     now.Format("15:04:05"),
			Message:  msg,
			Platform: platform,
			Level:    level,
		})
	}
}

// ========== without platform ==========

func (l *Logger) Info(msg string) {
	l.log(types.LogLevelInfo, "", msg)
}

func (l *Logger) Error(msg string) {
	l.log(types.LogLevelError, "", msg)
}

func (l *Logger) Warn(msg string) {
	l.log(types.LogLevelWarn, "", msg)
}

func (l *Logger) Debug(msg string) {
	l.log(types.LogLevelDebug, "", msg)
}

func (l *Logger) Success(msg string) {
	l.log(types.LogLevelSuccess, "", msg)
}

// ========== with platform ==========

func (l *Logger) InfoWithPlatform(platform, msg string) {
	l.log(types.LogLevelInfo, platform, msg)
}

func (l *Logger) ErrorWithPlatform(platform, msg string) {
	l.log(types.LogLevelError, platform, msg)
}

func (l *Logger) WarnWithPlatform(platform, msg string) {
	l.log(types.LogLevelWarn, platform, msg)
}

func (l *Logger) DebugWithPlatform(platform, msg string) {
	l.log(types.LogLevelDebug, platform, msg)
}

func (l *Logger) SuccessWithPlatform(platform, msg string) {
	l.log(types.LogLevelSuccess, platform, msg)
}

// ========== package-level, without platform ==========

func Info(msg string) {
	GetLogger().Info(msg)
}

func Error(msg string) {
	GetLogger().Error(msg)
}

func Warn(msg string) {
	GetLogger().Warn(msg)
}

func Debug(msg string) {
	GetLogger().Debug(msg)
}

func Success(msg string) {
	GetLogger().Success(msg)
}

// ========== package-level, with platform ==========

func InfoWithPlatform(platform, msg string) {
	GetLogger().InfoWithPlatform(platform, msg)
}

func ErrorWithPlatform(platform, msg string) {
	GetLogger().ErrorWithPlatform(platform, msg)
}

func WarnWithPlatform(platform, msg string) {
	GetLogger().WarnWithPlatform(platform, msg)
}

func DebugWithPlatform(platform, msg string) {
	GetLogger().DebugWithPlatform(platform, msg)
}

func SuccessWithPlatform(platform, msg string) {
	GetLogger().SuccessWithPlatform(platform, msg)
}
