package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Level is the severity of a log message.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	}
	return "UNKNOWN"
}

// ParseLevel maps a config string to a Level, defaulting to INFO.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return DEBUG
	case "warn":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}

// Logger writes level-filtered request logs to the console and optionally a
// file. The command server runs single threaded, so there is no locking.
type Logger struct {
	level   Level
	prefix  string
	console io.Writer
	file    io.Writer
}

// Config configures a Logger.
type Config struct {
	Level  Level
	Prefix string
	File   string // empty disables file output
}

// New creates a logger writing to stderr and, when configured, a log file.
func New(cfg Config) (*Logger, error) {
	l := &Logger{level: cfg.Level, prefix: cfg.Prefix, console: os.Stderr}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.file = f
	}
	return l, nil
}

// Default returns a console-only INFO logger.
func Default() *Logger {
	l, _ := New(Config{Level: INFO, Prefix: "[solidmcp] "})
	return l
}

func (l *Logger) Debugf(format string, args ...any) { l.write(DEBUG, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.write(INFO, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.write(WARN, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.write(ERROR, format, args...) }

func (l *Logger) write(level Level, format string, args ...any) {
	if l == nil || level < l.level {
		return
	}
	line := fmt.Sprintf("%s %s%s %s\n",
		time.Now().Format("2006-01-02 15:04:05"),
		l.prefix, level, fmt.Sprintf(format, args...))
	io.WriteString(l.console, line)
	if l.file != nil {
		io.WriteString(l.file, line)
	}
}
