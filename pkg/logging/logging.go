/*
Package logging points the default charmbracelet logger at stderr or a log
file. Stdout is left alone because the stdio transport owns it.
*/
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

var logFile *os.File

// Init replaces the default logger. An empty path logs to stderr.
func Init(logFilePath, level string) error {
	var (
		out io.Writer = os.Stderr
		err error
	)

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	if logFilePath != "" {
		if logFile, err = os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err != nil {
			return fmt.Errorf("failed to open log file %s: %w", logFilePath, err)
		}

		out = logFile
	}

	log.SetDefault(New(out, lvl))
	log.Debug("logging initialized", "file", logFilePath, "level", lvl)
	return nil
}

func New(out io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		ReportCaller:    level == log.DebugLevel,
		TimeFormat:      time.DateTime,
	})
}

// Close closes the log file, if any.
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}
