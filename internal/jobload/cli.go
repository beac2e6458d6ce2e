package jobload

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopsteward/hub/pkg/logger"
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated. The returned
// closer releases the log file.
func SetupLogging(logFile string, verbose bool) (io.Closer, error) {
	if logFile == "" {
		logFile = "load_jobs_" + time.Now().Format("20060102_150405") + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePermission)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	if err := logger.Init(logger.WithWriter(io.MultiWriter(os.Stdout, file))); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		_ = logger.SetLevelString("debug")
	}
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return file, nil
}

// ShowHelp prints usage information for the load tool.
func ShowHelp() {
	_, _ = os.Stdout.WriteString(`Shop Steward Hub Job Load Tool
==============================

Posts synthetic jobs to a running hub concurrently and verifies the round
trip, the job list, both scenarios and the kickoff checklist.

Usage:
  go run ./cmd/load-jobs [options]

Options:
  -url string
        Base URL of the hub (default "http://localhost:8000")
  -jobs int
        Number of jobs to generate and submit (default 1000)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -output string
        Write generated jobs to this JSON file
  -log string
        Log file for run output (default: load_jobs_TIMESTAMP.log)
  -verbose
        Log every failed request
  -help
        Show this help message

Examples:
  # Run with default settings
  go run ./cmd/load-jobs

  # Heavier run against another host
  go run ./cmd/load-jobs -jobs 20000 -workers 32 -url http://hub.local:8000
`)
}
