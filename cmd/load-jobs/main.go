package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/shopsteward/hub/internal/jobload"
)

// Default configuration constants.
const (
	defaultNumJobs     = 1000
	defaultWorkers     = 2 // multiplier for runtime.NumCPU()
	defaultTimeout     = 30 * time.Second
	defaultLoadTimeout = 10 * time.Minute
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		baseURL    = flag.String("url", "http://localhost:8000", "Base URL of the hub")
		numJobs    = flag.Int("jobs", defaultNumJobs, "Number of jobs to generate and submit")
		workers    = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		outputFile = flag.String("output", "", "Write generated jobs to this JSON file")
		logFile    = flag.String("log", "", "Log file for run output (default: load_jobs_TIMESTAMP.log)")
		verbose    = flag.Bool("verbose", false, "Log every failed request")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		jobload.ShowHelp()
		return 0
	}

	closer, err := jobload.SetupLogging(*logFile, *verbose)
	if err != nil {
		_, _ = os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return 1
	}
	defer func() { _ = closer.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), defaultLoadTimeout)
	defer cancel()

	cfg := &jobload.Config{
		BaseURL:    *baseURL,
		NumJobs:    *numJobs,
		Workers:    *workers,
		Timeout:    *timeout,
		OutputFile: *outputFile,
		Verbose:    *verbose,
	}

	if _, err := jobload.Run(ctx, cfg); err != nil {
		_, _ = os.Stderr.WriteString("Load run failed: " + err.Error() + "\n")
		return 1
	}
	return 0
}
