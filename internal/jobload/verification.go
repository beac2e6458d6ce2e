package jobload

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"sync/atomic"

	"github.com/shopsteward/hub/internal/domain/model"
	"github.com/shopsteward/hub/pkg/logger"
)

// expectedScenario is what the hub must return for a scenario type.
type expectedScenario struct {
	name         string
	events       int
	profit       int
	satisfaction model.Satisfaction
	ending       string
}

var expectedScenarios = []expectedScenario{
	{name: "utopia", events: 5, profit: 35000, satisfaction: model.SatisfactionHigh, ending: "boat"},
	{name: "dystopia", events: 7, profit: -135000, satisfaction: model.SatisfactionLost, ending: "for_sale_sign"},
}

// verifyJobs fetches every job back and compares it with what was posted.
func verifyJobs(ctx context.Context, cfg *Config, jobs []Job, stats *Stats) {
	log := logger.Get()
	log.Info(ctx, "verifying job round trips", logger.Int("jobs", len(jobs)))

	client := newHTTPClient(cfg.BaseURL, cfg.Timeout)
	var verified, mismatched int64

	runPool(ctx, cfg.Workers, len(jobs), func(i int) {
		want := jobs[i]
		var got Job
		status, err := client.getJSON(ctx, "/api/jobs/"+want.JobNumber, &got)
		if err == nil && status == http.StatusOK && reflect.DeepEqual(got, want) {
			atomic.AddInt64(&verified, 1)
			return
		}
		atomic.AddInt64(&mismatched, 1)
		if cfg.Verbose {
			log.Warn(ctx, "job round trip mismatch",
				logger.String("job_number", want.JobNumber),
				logger.Int("status", status),
				logger.Any("got", got),
				logger.Error(err))
		}
	})

	stats.JobsVerified = int(atomic.LoadInt64(&verified))
	stats.JobsMismatched = int(atomic.LoadInt64(&mismatched))
}

// verifyListCount checks the listed count covers every created job. Jobs
// from earlier runs may also be present.
func verifyListCount(ctx context.Context, cfg *Config, stats *Stats) error {
	client := newHTTPClient(cfg.BaseURL, cfg.Timeout)
	var list ListResponse
	status, err := client.getJSON(ctx, "/api/jobs", &list)
	if err != nil {
		return fmt.Errorf("list jobs: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("list jobs: unexpected status %d", status)
	}
	if list.Count != len(list.Jobs) {
		return fmt.Errorf("list count %d does not match %d listed jobs", list.Count, len(list.Jobs))
	}
	stats.ListedCount = list.Count
	if list.Count < stats.JobsCreated {
		return fmt.Errorf("list count %d is below %d created jobs", list.Count, stats.JobsCreated)
	}
	return nil
}

// verifyScenarios checks both scenarios and the rejection of an unknown one.
func verifyScenarios(ctx context.Context, cfg *Config, stats *Stats) error {
	client := newHTTPClient(cfg.BaseURL, cfg.Timeout)

	for _, want := range expectedScenarios {
		var sc model.Scenario
		status, err := client.getJSON(ctx, "/api/scenario/"+want.name, &sc)
		if err != nil {
			return fmt.Errorf("scenario %s: %w", want.name, err)
		}
		switch {
		case status != http.StatusOK:
			return fmt.Errorf("scenario %s: unexpected status %d", want.name, status)
		case len(sc.Timeline) != want.events:
			return fmt.Errorf("scenario %s: %d events, want %d", want.name, len(sc.Timeline), want.events)
		case sc.Outcome.Profit != want.profit:
			return fmt.Errorf("scenario %s: profit %d, want %d", want.name, sc.Outcome.Profit, want.profit)
		case sc.Outcome.CustomerSatisfaction != want.satisfaction:
			return fmt.Errorf("scenario %s: satisfaction %q, want %q", want.name, sc.Outcome.CustomerSatisfaction, want.satisfaction)
		case sc.Outcome.Ending != want.ending:
			return fmt.Errorf("scenario %s: ending %q, want %q", want.name, sc.Outcome.Ending, want.ending)
		}
		stats.ScenariosVerified++
	}

	var body map[string]interface{}
	status, err := client.getJSON(ctx, "/api/scenario/neutral", &body)
	if err != nil {
		return fmt.Errorf("unknown scenario: %w", err)
	}
	if status != http.StatusBadRequest {
		return fmt.Errorf("unknown scenario: status %d, want %d", status, http.StatusBadRequest)
	}
	return nil
}

// verifyKickoff checks the checklist is the all-open stub for a known job.
func verifyKickoff(ctx context.Context, cfg *Config, jobs []Job, stats *Stats) error {
	if len(jobs) == 0 {
		return nil
	}
	client := newHTTPClient(cfg.BaseURL, cfg.Timeout)

	var checklist model.KickoffChecklist
	status, err := client.getJSON(ctx, "/api/jobs/"+jobs[0].JobNumber+"/kickoff", &checklist)
	if err != nil {
		return fmt.Errorf("kickoff: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("kickoff: unexpected status %d", status)
	}
	if checklist.DrawingReviewed || checklist.OperationsDefined ||
		checklist.MaterialConfirmed || checklist.ToolingVerified || len(checklist.RisksFlagged) != 0 {
		return fmt.Errorf("kickoff: unexpected checklist %+v", checklist)
	}
	stats.KickoffVerified = true
	return nil
}
