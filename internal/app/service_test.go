package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopsteward/hub/internal/adapters/repository"
	service "github.com/shopsteward/hub/internal/app"
	"github.com/shopsteward/hub/internal/domain/model"
	"github.com/shopsteward/hub/internal/domain/scenario"
	"github.com/shopsteward/hub/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func startedService() *service.Service {
	svc := service.New()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	So(svc.Start(ctx), ShouldBeNil)
	return svc
}

func TestService_Lifecycle(t *testing.T) {
	Convey("Given a new service", t, func() {
		svc := service.New()
		ctx := context.Background()

		Convey("When using it before Start", func() {
			_, err := svc.CreateJob(ctx, model.Job{JobNumber: "J-1"})

			Convey("Then operations should fail with ErrNotStarted", func() {
				So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
				So(svc.GetStats()["started"], ShouldEqual, false)
			})
		})

		Convey("When starting it twice", func() {
			So(svc.Start(ctx), ShouldBeNil)
			So(svc.Start(ctx), ShouldBeNil)
			defer svc.Stop()

			Convey("Then it should be marked as started with an empty registry", func() {
				stats := svc.GetStats()
				So(stats["started"], ShouldEqual, true)
				So(stats["jobCount"], ShouldEqual, 0)
				So(stats["scenarios"], ShouldResemble, []string{"utopia", "dystopia"})
			})
		})

		Convey("When restarting after jobs were stored", func() {
			So(svc.Start(ctx), ShouldBeNil)
			_, err := svc.CreateJob(ctx, model.Job{JobNumber: "J-1"})
			So(err, ShouldBeNil)
			svc.Stop()
			So(svc.Start(ctx), ShouldBeNil)
			defer svc.Stop()

			Convey("Then the registry should be empty again", func() {
				_, count, err := svc.ListJobs(ctx)
				So(err, ShouldBeNil)
				So(count, ShouldEqual, 0)
			})
		})
	})
}

func TestService_Jobs(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := startedService()
		defer svc.Stop()
		ctx := context.Background()

		job := model.Job{
			JobNumber:  "24-0117",
			Customer:   "Acme Aero",
			PartNumber: "BRKT-7741",
			Operations: []string{"saw", "mill", "wire edm", "inspect"},
		}

		Convey("When creating and fetching a job", func() {
			replaced, err := svc.CreateJob(ctx, job)
			So(err, ShouldBeNil)
			got, err := svc.GetJob(ctx, job.JobNumber)

			Convey("Then the round trip should be exact", func() {
				So(replaced, ShouldBeFalse)
				So(err, ShouldBeNil)
				So(got, ShouldResemble, job)
			})
		})

		Convey("When re-posting the same job number", func() {
			_, _ = svc.CreateJob(ctx, job)
			second := job
			second.Customer = "Globex"
			replaced, err := svc.CreateJob(ctx, second)

			Convey("Then the last write should win without error", func() {
				So(err, ShouldBeNil)
				So(replaced, ShouldBeTrue)
				got, _ := svc.GetJob(ctx, job.JobNumber)
				So(got.Customer, ShouldEqual, "Globex")
				_, count, _ := svc.ListJobs(ctx)
				So(count, ShouldEqual, 1)
			})
		})

		Convey("When fetching an unknown job", func() {
			_, err := svc.GetJob(ctx, "nope")

			Convey("Then it should be not found", func() {
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When posting an empty job number", func() {
			_, err := svc.CreateJob(ctx, model.Job{})

			Convey("Then it should be rejected as invalid", func() {
				So(errors.Is(err, repository.ErrInvalidJob), ShouldBeTrue)
			})
		})

		Convey("When many clients post concurrently", func() {
			var wg sync.WaitGroup
			for i := 0; i < 20; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					_, _ = svc.CreateJob(ctx, model.Job{JobNumber: fmt.Sprintf("J-%d", i%10)})
				}(i)
			}
			wg.Wait()

			Convey("Then the count should equal the distinct job numbers", func() {
				jobs, count, err := svc.ListJobs(ctx)
				So(err, ShouldBeNil)
				So(count, ShouldEqual, 10)
				So(len(jobs), ShouldEqual, 10)
			})
		})
	})
}

func TestService_Fixtures(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := startedService()
		defer svc.Stop()
		ctx := context.Background()

		Convey("When asking for a kickoff checklist of a stored job", func() {
			_, _ = svc.CreateJob(ctx, model.Job{JobNumber: "J-1", Operations: []string{"mill"}})
			checklist, err := svc.KickoffChecklist(ctx, "J-1")

			Convey("Then it should still be the all-open stub", func() {
				So(err, ShouldBeNil)
				So(checklist.DrawingReviewed, ShouldBeFalse)
				So(checklist.OperationsDefined, ShouldBeFalse)
				So(checklist.RisksFlagged, ShouldBeEmpty)
			})
		})

		Convey("When asking for scenarios", func() {
			utopia, err := svc.Scenario(ctx, "Utopia")
			So(err, ShouldBeNil)
			_, invalid := svc.Scenario(ctx, "meh")

			Convey("Then known types resolve and others are invalid", func() {
				So(len(utopia.Timeline), ShouldEqual, 5)
				So(errors.Is(invalid, scenario.ErrInvalidScenario), ShouldBeTrue)
			})
		})
	})
}

func TestService_InjectedStore(t *testing.T) {
	Convey("Given a service with an injected store", t, func() {
		store := repository.NewMemoryStore()
		_, _ = store.Put(context.Background(), model.Job{JobNumber: "seed"})
		svc := service.New(service.WithJobStore(store), service.WithStoreCapacity(4))
		So(svc.Start(context.Background()), ShouldBeNil)
		defer svc.Stop()

		Convey("Then the service should read through it", func() {
			job, err := svc.GetJob(context.Background(), "seed")
			So(err, ShouldBeNil)
			So(job.JobNumber, ShouldEqual, "seed")
		})

		Convey("When the service is stopped and started again", func() {
			ctx := context.Background()
			_, err := svc.CreateJob(ctx, model.Job{JobNumber: "added"})
			So(err, ShouldBeNil)
			svc.Stop()
			So(svc.Start(ctx), ShouldBeNil)

			Convey("Then the injected store should keep its jobs", func() {
				_, count, err := svc.ListJobs(ctx)
				So(err, ShouldBeNil)
				So(count, ShouldEqual, 2)
				So(store.Count(ctx), ShouldEqual, 2)
			})
		})
	})

	Convey("Given a service with the default registry", t, func() {
		ctx := context.Background()
		svc := service.New()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()
		_, err := svc.CreateJob(ctx, model.Job{JobNumber: "gone"})
		So(err, ShouldBeNil)

		Convey("When the service is stopped and started again", func() {
			svc.Stop()
			So(svc.Start(ctx), ShouldBeNil)

			Convey("Then the registry should be empty", func() {
				_, count, err := svc.ListJobs(ctx)
				So(err, ShouldBeNil)
				So(count, ShouldEqual, 0)
			})
		})
	})
}
