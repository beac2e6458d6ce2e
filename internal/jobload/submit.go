package jobload

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/shopsteward/hub/pkg/logger"
)

// runPool feeds the indices 0..n-1 to workers goroutines running fn.
func runPool(ctx context.Context, workers, n int, fn func(i int)) {
	indexChan := make(chan int, workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexChan {
				if ctx.Err() != nil {
					continue
				}
				fn(i)
			}
		}()
	}

	go func() {
		defer close(indexChan)
		for i := 0; i < n; i++ {
			select {
			case <-ctx.Done():
				return
			case indexChan <- i:
			}
		}
	}()

	wg.Wait()
}

// submitJobs posts jobs concurrently using a worker pool.
func submitJobs(ctx context.Context, cfg *Config, jobs []Job, stats *Stats) {
	log := logger.Get()
	log.Info(ctx, "submitting jobs", logger.Int("jobs", len(jobs)), logger.Int("workers", cfg.Workers))

	client := newHTTPClient(cfg.BaseURL, cfg.Timeout)
	var submitted, created, failed int64

	runPool(ctx, cfg.Workers, len(jobs), func(i int) {
		atomic.AddInt64(&submitted, 1)
		if err := submitSingleJob(ctx, client, jobs[i]); err != nil {
			atomic.AddInt64(&failed, 1)
			if cfg.Verbose {
				log.Warn(ctx, "job submission failed",
					logger.String("job_number", jobs[i].JobNumber), logger.Error(err))
			}
			return
		}
		atomic.AddInt64(&created, 1)
	})

	stats.JobsSubmitted = int(atomic.LoadInt64(&submitted))
	stats.JobsCreated = int(atomic.LoadInt64(&created))
	stats.JobsFailed = int(atomic.LoadInt64(&failed))

	log.Info(ctx, "job submission completed",
		logger.Int("created", stats.JobsCreated),
		logger.Int("failed", stats.JobsFailed))
}

// submitSingleJob posts one job and checks the acknowledgement.
func submitSingleJob(ctx context.Context, client *HTTPClient, job Job) error {
	resp, err := client.Post(ctx, "/api/jobs", job)
	if err != nil {
		return err
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return &statusError{path: "/api/jobs", status: resp.StatusCode, body: string(body)}
	}

	var ack CreateResponse
	if err := json.Unmarshal(body, &ack); err != nil {
		return err
	}
	if ack.Status != "success" || ack.JobID != job.JobNumber {
		return &ackError{want: job.JobNumber, got: ack}
	}
	return nil
}
