// Package jobload drives a running hub over HTTP: it posts synthetic jobs
// concurrently and verifies what the hub returns.
package jobload

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopsteward/hub/pkg/logger"
)

// Validate checks the config before a run.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.BaseURL) == "":
		return fmt.Errorf("%w: base url must not be empty", ErrInvalidConfig)
	case c.NumJobs <= 0:
		return fmt.Errorf("%w: number of jobs must be positive", ErrInvalidConfig)
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive", ErrInvalidConfig)
	case c.Timeout <= 0:
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	return nil
}

// Run executes the complete load run and returns its statistics.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	stats := &Stats{StartTime: time.Now()}

	logger.Get().Info(ctx, "starting job load run",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("jobs", cfg.NumJobs),
		logger.Int("workers", cfg.Workers),
		logger.Duration("timeout", cfg.Timeout),
		logger.Bool("verbose", cfg.Verbose))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, cfg); err != nil {
		return stats, err
	}

	// Step 2: Generate jobs
	jobs, err := generateJobs(ctx, cfg, stats)
	if err != nil {
		return stats, fmt.Errorf("job generation failed: %w", err)
	}

	// Step 3: Submit jobs concurrently
	submitJobs(ctx, cfg, jobs, stats)

	// Step 4: Verify round trips, list count, scenarios and kickoff
	verifyJobs(ctx, cfg, jobs, stats)
	var problems []string
	if stats.JobsFailed > 0 {
		problems = append(problems, fmt.Sprintf("%d submissions failed", stats.JobsFailed))
	}
	if stats.JobsMismatched > 0 {
		problems = append(problems, fmt.Sprintf("%d round trips mismatched", stats.JobsMismatched))
	}
	for _, check := range []func() error{
		func() error { return verifyListCount(ctx, cfg, stats) },
		func() error { return verifyScenarios(ctx, cfg, stats) },
		func() error { return verifyKickoff(ctx, cfg, jobs, stats) },
	} {
		if err := check(); err != nil {
			problems = append(problems, err.Error())
		}
	}

	// Step 5: Save jobs to file
	if cfg.OutputFile != "" {
		if err := saveJobsToFile(ctx, cfg.OutputFile, jobs); err != nil {
			logger.Get().Warn(ctx, "failed to save jobs to file", logger.Error(err))
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)

	if len(problems) > 0 {
		return stats, fmt.Errorf("%w: %s", ErrVerification, strings.Join(problems, "; "))
	}
	logger.Get().Info(ctx, "load run completed successfully")
	return stats, nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, cfg *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(cfg.BaseURL, cfg.Timeout)
	var body map[string]interface{}
	status, err := client.getJSON(ctx, "/healthz", &body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHealthCheck, err)
	}
	if status != http.StatusOK || body["status"] != "ok" {
		return fmt.Errorf("%w: status %d body %v", ErrHealthCheck, status, body)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// saveJobsToFile writes the generated jobs as an indented JSON array.
func saveJobsToFile(ctx context.Context, filename string, jobs []Job) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(jobs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal jobs: %w", err)
	}
	if err := os.WriteFile(filename, append(data, '\n'), filePermission); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}

	logger.Get().Info(ctx, "jobs saved to file", logger.String("filename", filename))
	return nil
}

// displayFinalStats logs the final run statistics.
func displayFinalStats(ctx context.Context, stats *Stats) {
	var successRate, jobsPerSecond float64

	if stats.JobsSubmitted > 0 {
		successRate = float64(stats.JobsCreated) / float64(stats.JobsSubmitted) * PercentageMultiplier
	}
	if stats.Duration > 0 {
		jobsPerSecond = float64(stats.JobsSubmitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(ctx, "final statistics",
		logger.Int("jobsGenerated", stats.JobsGenerated),
		logger.Int("jobsSubmitted", stats.JobsSubmitted),
		logger.Int("jobsCreated", stats.JobsCreated),
		logger.Int("jobsFailed", stats.JobsFailed),
		logger.Int("jobsVerified", stats.JobsVerified),
		logger.Int("jobsMismatched", stats.JobsMismatched),
		logger.Int("listedCount", stats.ListedCount),
		logger.Int("scenariosVerified", stats.ScenariosVerified),
		logger.Bool("kickoffVerified", stats.KickoffVerified),
		logger.Duration("duration", stats.Duration),
		logger.Float64("successRate", successRate),
		logger.Float64("jobsPerSecond", jobsPerSecond))
}
