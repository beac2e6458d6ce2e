package scenario_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopsteward/hub/internal/domain/model"
	"github.com/shopsteward/hub/internal/domain/scenario"
	"github.com/smartystreets/goconvey/convey"
)

func TestCatalog_Get(t *testing.T) {
	convey.Convey("Given the scenario catalog", t, func() {
		c := scenario.New()
		ctx := context.Background()

		convey.Convey("When fetching utopia", func() {
			s, err := c.Get(ctx, "utopia")

			convey.Convey("Then it should have five successful events and end on a boat", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(s.Timeline), convey.ShouldEqual, 5)
				convey.So(s.Outcome.Profit, convey.ShouldEqual, 35000)
				convey.So(s.Outcome.CustomerSatisfaction, convey.ShouldEqual, model.SatisfactionHigh)
				convey.So(s.Outcome.Ending, convey.ShouldEqual, "boat")
				for _, ev := range s.Timeline {
					convey.So(ev.Status, convey.ShouldEqual, model.StatusSuccess)
				}
				convey.So(*s.Timeline[0].Day, convey.ShouldEqual, 1)
				convey.So(s.Timeline[0].Week, convey.ShouldBeNil)
				convey.So(*s.Timeline[4].Week, convey.ShouldEqual, 18)
			})
		})

		convey.Convey("When fetching dystopia", func() {
			s, err := c.Get(ctx, "dystopia")

			convey.Convey("Then it should have seven events and a lost customer", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(s.Timeline), convey.ShouldEqual, 7)
				convey.So(s.Outcome.Profit, convey.ShouldEqual, -135000)
				convey.So(s.Outcome.CustomerSatisfaction, convey.ShouldEqual, model.SatisfactionLost)
				convey.So(s.Outcome.Ending, convey.ShouldEqual, "for_sale_sign")
				convey.So(s.Timeline[2].Event, convey.ShouldEqual, "First article FAILURE - EDM feature discovered too late")
				convey.So(s.Timeline[6].Status, convey.ShouldEqual, model.StatusFailure)
			})
		})

		convey.Convey("When fetching with mixed case", func() {
			upper, err := c.Get(ctx, "UTOPIA")
			convey.So(err, convey.ShouldBeNil)
			lower, _ := c.Get(ctx, "utopia")

			convey.Convey("Then it should match the lowercase scenario", func() {
				convey.So(upper, convey.ShouldResemble, lower)
			})
		})

		convey.Convey("When fetching an unknown type", func() {
			_, err := c.Get(ctx, "Atlantis")

			convey.Convey("Then it should fail with an invalid scenario error naming both options", func() {
				convey.So(errors.Is(err, scenario.ErrInvalidScenario), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldEqual, "Invalid scenario type: Atlantis. Use 'utopia' or 'dystopia'")
			})
		})

		convey.Convey("When fetching a padded type", func() {
			_, err := c.Get(ctx, " utopia ")

			convey.Convey("Then whitespace should not be trimmed", func() {
				convey.So(errors.Is(err, scenario.ErrInvalidScenario), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When a caller mutates a returned scenario", func() {
			s, _ := c.Get(ctx, "utopia")
			s.Timeline[0].Event = "changed"
			s.Outcome.Profit = 0

			convey.Convey("Then the next lookup should be pristine", func() {
				again, _ := c.Get(ctx, "utopia")
				convey.So(again.Timeline[0].Event, convey.ShouldEqual, "Kickoff meeting - EDM feature caught early")
				convey.So(again.Outcome.Profit, convey.ShouldEqual, 35000)
			})
		})

		convey.Convey("Then Names should list utopia before dystopia", func() {
			convey.So(c.Names(), convey.ShouldResemble, []string{"utopia", "dystopia"})
		})
	})
}
