package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	gokitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// New creates a logfmt logger writing to a timestamped file in dir. The
// returned closer releases the file.
func New(dir, prefix, levelName string) (gokitlog.Logger, io.Closer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logFile := filepath.Join(dir, fmt.Sprintf("%s_%s.log", prefix, timestamp))

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return NewWriter(file, levelName), file, nil
}

// NewWriter creates a filtered logfmt logger on w with timestamp and
// file/line information.
func NewWriter(w io.Writer, levelName string) gokitlog.Logger {
	logger := gokitlog.NewLogfmtLogger(gokitlog.NewSyncWriter(w))
	logger = level.NewFilter(logger, levelOption(levelName))
	return gokitlog.With(logger, "ts", gokitlog.DefaultTimestampUTC, "caller", gokitlog.DefaultCaller)
}

func Nop() gokitlog.Logger {
	return gokitlog.NewNopLogger()
}

// levelOption maps a level name to a filter. Unknown names allow info.
func levelOption(name string) level.Option {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return level.AllowDebug()
	case "warn", "warning":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

// TimeFunction wraps fn with start and completion log lines.
func TimeFunction(logger gokitlog.Logger, name string, fn func() error) error {
	start := time.Now()
	level.Debug(logger).Log("msg", "starting", "op", name)

	err := fn()

	elapsed := time.Since(start)
	if err != nil {
		level.Warn(logger).Log("msg", "failed", "op", name, "err", err, "took", elapsed)
	} else {
		level.Info(logger).Log("msg", "completed", "op", name, "took", elapsed)
	}
	return err
}
