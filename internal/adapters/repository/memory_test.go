package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/shopsteward/hub/internal/domain/model"
)

func sampleJob(n string) model.Job {
	return model.Job{
		JobNumber:  n,
		Customer:   "Acme Aero",
		PartNumber: "PN-" + n,
		Operations: []string{"saw", "mill", "inspect"},
	}
}

func TestMemoryStore_BasicOperations(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if count := store.Count(ctx); count != 0 {
		t.Fatalf("expected empty store, got %d", count)
	}

	replaced, err := store.Put(ctx, sampleJob("J-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if replaced {
		t.Error("first put should not report a replacement")
	}

	got, err := store.Get(ctx, "J-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Customer != "Acme Aero" || got.PartNumber != "PN-J-1" || len(got.Operations) != 3 {
		t.Errorf("round trip mismatch: %+v", got)
	}

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, _ = store.Put(ctx, sampleJob("J-1"))
	_, _ = store.Put(ctx, sampleJob("J-2"))

	updated := sampleJob("J-1")
	updated.Customer = "Globex"
	updated.Operations = []string{"edm"}
	replaced, err := store.Put(ctx, updated)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !replaced {
		t.Error("second put of J-1 should report a replacement")
	}

	got, _ := store.Get(ctx, "J-1")
	if got.Customer != "Globex" || len(got.Operations) != 1 || got.Operations[0] != "edm" {
		t.Errorf("expected replaced record, got %+v", got)
	}
	if count := store.Count(ctx); count != 2 {
		t.Errorf("expected 2 distinct jobs, got %d", count)
	}

	jobs, _ := store.List(ctx)
	if len(jobs) != 2 || jobs[0].JobNumber != "J-1" || jobs[1].JobNumber != "J-2" {
		t.Errorf("replaced job should keep its position, got %+v", jobs)
	}
}

func TestMemoryStore_ListOrderAndEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(WithCapacity(8))

	jobs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jobs == nil || len(jobs) != 0 {
		t.Fatalf("expected non-nil empty list, got %#v", jobs)
	}

	for _, n := range []string{"C", "A", "B"} {
		_, _ = store.Put(ctx, sampleJob(n))
	}
	jobs, _ = store.List(ctx)
	for i, want := range []string{"C", "A", "B"} {
		if jobs[i].JobNumber != want {
			t.Errorf("position %d: expected %s, got %s", i, want, jobs[i].JobNumber)
		}
	}
}

func TestMemoryStore_NoAliasing(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	job := sampleJob("J-1")
	_, _ = store.Put(ctx, job)
	job.Operations[0] = "mutated-after-put"

	got, _ := store.Get(ctx, "J-1")
	if got.Operations[0] != "saw" {
		t.Errorf("store shares memory with the caller's input: %v", got.Operations)
	}

	got.Operations[1] = "mutated-after-get"
	again, _ := store.Get(ctx, "J-1")
	if again.Operations[1] != "mill" {
		t.Errorf("store shares memory with Get results: %v", again.Operations)
	}
}

func TestMemoryStore_RejectsEmptyJobNumber(t *testing.T) {
	store := NewMemoryStore()
	if _, err := store.Put(context.Background(), model.Job{}); !errors.Is(err, ErrInvalidJob) {
		t.Errorf("expected ErrInvalidJob, got %v", err)
	}
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	numGoroutines := 10
	numJobs := 100

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numJobs; j++ {
				if _, err := store.Put(ctx, sampleJob(fmt.Sprintf("J-%d-%d", id, j))); err != nil {
					t.Errorf("goroutine %d: unexpected error: %v", id, err)
				}
				// Every goroutine also rewrites a shared key.
				if _, err := store.Put(ctx, sampleJob("shared")); err != nil {
					t.Errorf("goroutine %d: unexpected error: %v", id, err)
				}
				_, _ = store.List(ctx)
			}
		}(i)
	}
	wg.Wait()

	expected := numGoroutines*numJobs + 1
	if count := store.Count(ctx); count != expected {
		t.Errorf("expected count %d, got %d", expected, count)
	}
	jobs, _ := store.List(ctx)
	if len(jobs) != expected {
		t.Errorf("expected %d listed jobs, got %d", expected, len(jobs))
	}
}

func BenchmarkMemoryStore_Put(b *testing.B) {
	ctx := context.Background()
	store := NewMemoryStore(WithCapacity(b.N))
	jobs := make([]model.Job, b.N)
	for i := range jobs {
		jobs[i] = sampleJob(fmt.Sprintf("J-%d", i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.Put(ctx, jobs[i])
	}
}

func BenchmarkMemoryStore_GetParallel(b *testing.B) {
	ctx := context.Background()
	store := NewMemoryStore()
	for i := 0; i < 1000; i++ {
		_, _ = store.Put(ctx, sampleJob(fmt.Sprintf("J-%d", i)))
	}
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_, _ = store.Get(ctx, fmt.Sprintf("J-%d", i%1000))
			i++
		}
	})
}
