package jobload

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"

	"github.com/shopsteward/hub/pkg/logger"
)

var (
	customers = []string{
		"Acme Aero", "Globex Marine", "Initech Medical", "Stark Tooling",
		"Wayne Fabrication", "Umbrella Pumps", "Hooli Robotics",
	}
	partPrefixes = []string{"BRKT", "HSG", "SHFT", "FLNG", "MNFD", "PLT"}
	// routings are typical operation sequences for the shop floor.
	routings = [][]string{
		{"saw", "mill", "deburr", "inspect"},
		{"saw", "lathe", "mill", "anodize", "inspect"},
		{"waterjet", "mill", "wire edm", "inspect"},
		{"saw", "5-axis mill", "heat treat", "grind", "inspect"},
		{"lathe", "thread", "passivate", "inspect"},
		{"mill", "inspect"},
	}
)

// randomIndex returns a uniform index in [0, n) using crypto/rand.
func randomIndex(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}

// generateJobs creates cfg.NumJobs jobs with unique job numbers.
func generateJobs(ctx context.Context, cfg *Config, stats *Stats) ([]Job, error) {
	logger.Get().Info(ctx, "generating jobs with unique job numbers", logger.Int("numJobs", cfg.NumJobs))

	jobs := make([]Job, cfg.NumJobs)
	for i := range jobs {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("context cancelled during job generation: %w", err)
		}
		jobs[i] = generateSingleJob(i)
	}

	stats.JobsGenerated = len(jobs)
	logger.Get().Info(ctx, "generated jobs successfully", logger.Int("count", len(jobs)))
	return jobs, nil
}

// generateSingleJob builds one job. The uuid suffix keeps job numbers unique
// across runs against the same hub.
func generateSingleJob(index int) Job {
	routing := routings[randomIndex(len(routings))]
	ops := make([]string, len(routing))
	copy(ops, routing)

	return Job{
		JobNumber:  fmt.Sprintf("LOAD-%05d-%s", index, uuid.NewString()[:8]),
		Customer:   customers[randomIndex(len(customers))],
		PartNumber: fmt.Sprintf("%s-%04d", partPrefixes[randomIndex(len(partPrefixes))], randomIndex(10000)),
		Operations: ops,
	}
}
