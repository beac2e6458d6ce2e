package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			m := NewManager()

			Convey("Then it should own a fresh registry", func() {
				So(m, ShouldNotBeNil)
				So(m.Registry(), ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			m := NewManager(
				WithNamespace("test"),
				WithSubsystem("unit"),
				WithHistogramBuckets([]float64{1, 5, 10}),
				WithConstLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then collectors should be registered under the namespace", func() {
				m.jobsCreated.Inc()
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				names := make([]string, 0, len(families))
				for _, f := range families {
					names = append(names, f.GetName())
				}
				So(names, ShouldContain, "test_unit_jobs_created_total")
			})
		})

		Convey("When installing a nil manager", func() {
			Convey("Then Use should refuse it", func() {
				So(Use(nil), ShouldEqual, ErrNilManager)
			})
		})
	})
}

func TestRecording(t *testing.T) {
	Convey("Given a freshly installed global manager", t, func() {
		m := Init()

		Convey("When recording job posts", func() {
			RecordJobCreated(false)
			RecordJobCreated(true)
			UpdateJobsStored(1)

			Convey("Then created and replaced counters should move independently", func() {
				So(testutil.ToFloat64(m.jobsCreated), ShouldEqual, 2.0)
				So(testutil.ToFloat64(m.jobsReplaced), ShouldEqual, 1.0)
				So(testutil.ToFloat64(m.jobsStored), ShouldEqual, 1.0)
			})
		})

		Convey("When recording lookups", func() {
			RecordJobLookup(true)
			RecordJobLookup(false)
			RecordJobLookup(false)

			Convey("Then results should be split by label", func() {
				So(testutil.ToFloat64(m.jobLookups.WithLabelValues("found")), ShouldEqual, 1.0)
				So(testutil.ToFloat64(m.jobLookups.WithLabelValues("not_found")), ShouldEqual, 2.0)
			})
		})

		Convey("When recording fixture requests", func() {
			RecordKickoffRequest()
			RecordScenarioRequest("utopia")
			RecordScenarioRequest("invalid")

			Convey("Then counters should reflect them", func() {
				So(testutil.ToFloat64(m.kickoffRequests), ShouldEqual, 1.0)
				So(testutil.ToFloat64(m.scenarioRequests.WithLabelValues("utopia")), ShouldEqual, 1.0)
				So(testutil.ToFloat64(m.scenarioRequests.WithLabelValues("invalid")), ShouldEqual, 1.0)
			})
		})

		Convey("When recording HTTP, error and system metrics", func() {
			Convey("Then nothing should panic", func() {
				So(func() {
					RecordHTTPRequest("/api/jobs", "POST", "200")
					RecordHTTPRequestDuration("/api/jobs", "POST", "200", 1.5)
					RecordErrorByType("not_found", "medium")
					RecordErrorByEndpoint("/api/jobs/{job_id}", "GET", "not_found")
					UpdateSystemMemoryUsage(1024)
					UpdateSystemGoroutineCount(12)
					RecordSystemGCPauseTime(0.3)
				}, ShouldNotPanic)
				So(GetRegistry(), ShouldEqual, m.Registry())
			})
		})
	})
}
