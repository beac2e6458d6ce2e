package kickoff_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopsteward/hub/internal/domain/kickoff"
	"github.com/smartystreets/goconvey/convey"
)

func TestProvider_Checklist(t *testing.T) {
	convey.Convey("Given a kickoff provider", t, func() {
		p := kickoff.New()
		ctx := context.Background()

		convey.Convey("When asking for any job id", func() {
			a := p.Checklist(ctx, "J-1")
			b := p.Checklist(ctx, "never-posted")

			convey.Convey("Then every flag should be false and no risks flagged", func() {
				convey.So(a.DrawingReviewed, convey.ShouldBeFalse)
				convey.So(a.OperationsDefined, convey.ShouldBeFalse)
				convey.So(a.MaterialConfirmed, convey.ShouldBeFalse)
				convey.So(a.ToolingVerified, convey.ShouldBeFalse)
				convey.So(a.RisksFlagged, convey.ShouldBeEmpty)
				convey.So(b, convey.ShouldResemble, a)
			})

			convey.Convey("And the risk list should encode as an empty array", func() {
				data, err := json.Marshal(a)
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(data), convey.ShouldContainSubstring, `"risks_flagged":[]`)
			})
		})

		convey.Convey("When a caller mutates a returned checklist", func() {
			first := p.Checklist(ctx, "J-1")
			first.RisksFlagged = append(first.RisksFlagged, "edm")
			first.DrawingReviewed = true

			convey.Convey("Then later checklists should be unaffected", func() {
				next := p.Checklist(ctx, "J-1")
				convey.So(next.DrawingReviewed, convey.ShouldBeFalse)
				convey.So(next.RisksFlagged, convey.ShouldBeEmpty)
			})
		})
	})
}
