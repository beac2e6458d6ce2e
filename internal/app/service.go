// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopsteward/hub/internal/adapters/repository"
	"github.com/shopsteward/hub/internal/domain/kickoff"
	"github.com/shopsteward/hub/internal/domain/model"
	"github.com/shopsteward/hub/internal/domain/scenario"
	"github.com/shopsteward/hub/pkg/logger"
	"github.com/shopsteward/hub/pkg/metrics"
)

// Service owns the job registry, the kickoff checklist provider and the
// scenario catalog for the lifetime of the process.
type Service struct {
	mu sync.RWMutex

	// Core components
	jobs      repository.JobStore
	kickoff   *kickoff.Provider
	scenarios *scenario.Catalog

	// Configuration
	storeCapacity int
	injectedStore repository.JobStore

	// State
	started   bool
	startedAt time.Time

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithJobStore replaces the in-memory registry created on Start. The store
// stays owned by the caller: Stop detaches it without clearing it, so its
// jobs are still there after the next Start.
func WithJobStore(store repository.JobStore) Option {
	return func(s *Service) {
		if store != nil {
			s.injectedStore = store
		}
	}
}

// WithStoreCapacity pre-sizes the in-memory registry.
func WithStoreCapacity(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.storeCapacity = n
		}
	}
}

// New constructs a new Service. Call Start before serving requests.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start creates an empty registry and the fixture components. Starting a
// started service is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting shop steward service...")

	if s.injectedStore != nil {
		s.jobs = s.injectedStore
	} else {
		s.jobs = repository.NewMemoryStore(repository.WithCapacity(s.storeCapacity))
	}
	s.kickoff = kickoff.New()
	s.scenarios = scenario.New()

	s.started = true
	s.startedAt = time.Now()
	metrics.UpdateJobsStored(s.jobs.Count(ctx))

	s.logger.Info(ctx, "shop steward service started",
		logger.String("scenarios", strings.Join(s.scenarios.Names(), ",")),
	)
	return nil
}

// Stop releases the registry. Jobs in the default registry do not survive a
// restart; an injected store keeps its contents.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	ctx := context.Background()
	s.logger.Info(ctx, "stopping shop steward service...",
		logger.Int("jobs", s.jobs.Count(ctx)),
	)

	s.jobs = nil
	s.started = false
	metrics.UpdateJobsStored(0)
	s.logger.Info(ctx, "shop steward service stopped")
}

// components returns the running components or ErrNotStarted.
func (s *Service) components() (repository.JobStore, *kickoff.Provider, *scenario.Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, nil, nil, ErrNotStarted
	}
	return s.jobs, s.kickoff, s.scenarios, nil
}

// CreateJob stores job, silently replacing any job with the same number.
// It reports whether a previous job was replaced.
func (s *Service) CreateJob(ctx context.Context, job model.Job) (bool, error) {
	jobs, _, _, err := s.components()
	if err != nil {
		return false, err
	}

	replaced, err := jobs.Put(ctx, job)
	if err != nil {
		return false, fmt.Errorf("store job %s: %w", job.JobNumber, err)
	}

	metrics.RecordJobCreated(replaced)
	metrics.UpdateJobsStored(jobs.Count(ctx))
	s.logger.Debug(ctx, "job stored",
		logger.String("job_number", job.JobNumber),
		logger.String("customer", job.Customer),
		logger.Int("operations", len(job.Operations)),
		logger.Bool("replaced", replaced),
	)
	return replaced, nil
}

// GetJob returns the job stored under jobNumber or an error matching
// repository.ErrNotFound.
func (s *Service) GetJob(ctx context.Context, jobNumber string) (model.Job, error) {
	jobs, _, _, err := s.components()
	if err != nil {
		return model.Job{}, err
	}

	job, err := jobs.Get(ctx, jobNumber)
	metrics.RecordJobLookup(err == nil)
	if err != nil {
		return model.Job{}, err
	}
	return job, nil
}

// ListJobs returns every stored job and their count.
func (s *Service) ListJobs(ctx context.Context) ([]model.Job, int, error) {
	jobs, _, _, err := s.components()
	if err != nil {
		return nil, 0, err
	}

	list, err := jobs.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	return list, len(list), nil
}

// KickoffChecklist returns the kickoff checklist for jobID. The registry is
// not consulted.
func (s *Service) KickoffChecklist(ctx context.Context, jobID string) (model.KickoffChecklist, error) {
	_, provider, _, err := s.components()
	if err != nil {
		return model.KickoffChecklist{}, err
	}

	metrics.RecordKickoffRequest()
	return provider.Checklist(ctx, jobID), nil
}

// Scenario returns the scenario named scenarioType (case-insensitive), or
// an error matching scenario.ErrInvalidScenario.
func (s *Service) Scenario(ctx context.Context, scenarioType string) (model.Scenario, error) {
	_, _, catalog, err := s.components()
	if err != nil {
		return model.Scenario{}, err
	}

	sc, err := catalog.Get(ctx, scenarioType)
	if err != nil {
		metrics.RecordScenarioRequest("invalid")
		s.logger.Debug(ctx, "unknown scenario requested", logger.String("scenario_type", scenarioType))
		return model.Scenario{}, err
	}
	metrics.RecordScenarioRequest(strings.ToLower(scenarioType))
	return sc, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started": s.started,
	}
	if s.started {
		ctx := context.Background()
		count := s.jobs.Count(ctx)
		stats["jobCount"] = count
		stats["scenarios"] = s.scenarios.Names()
		stats["startedAt"] = s.startedAt.UTC().Format(time.RFC3339)
		stats["uptimeSeconds"] = int64(time.Since(s.startedAt).Seconds())
		metrics.UpdateJobsStored(count)
	}
	return stats
}
