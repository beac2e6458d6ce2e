package scenario

import "github.com/shopsteward/hub/internal/domain/model"

// utopia is the job run with a proper kickoff: the EDM feature is caught
// on day one and priced in.
func utopia() model.Scenario {
	return model.Scenario{
		Timeline: []model.TimelineEvent{
			model.OnDay(1, "Kickoff meeting - EDM feature caught early", model.StatusSuccess),
			model.OnDay(2, "Customer approved upcharge for EDM work", model.StatusSuccess),
			model.OnDay(5, "Material ordered with correct specs", model.StatusSuccess),
			model.InWeek(2, "First article inspection - PASSED", model.StatusSuccess),
			model.InWeek(18, "Parts shipped on time, customer thrilled", model.StatusSuccess),
		},
		Outcome: model.ScenarioOutcome{
			Profit:               35000,
			CustomerSatisfaction: model.SatisfactionHigh,
			Ending:               "boat",
		},
	}
}

// dystopia is the same job entered without a kickoff.
func dystopia() model.Scenario {
	return model.Scenario{
		Timeline: []model.TimelineEvent{
			model.OnDay(1, "Job entered without kickoff meeting", model.StatusWarning),
			model.InWeek(1, "Started machining without drawing review", model.StatusWarning),
			model.InWeek(3, "First article FAILURE - EDM feature discovered too late", model.StatusCritical),
			model.InWeek(5, "Customer refuses upcharge, demands rework", model.StatusCritical),
			model.InWeek(12, "Scrambling for EDM vendor, losing money daily", model.StatusCritical),
			model.InWeek(16, "Parts shipped late, customer furious", model.StatusFailure),
			model.InWeek(18, "Customer moves business to competitor", model.StatusFailure),
		},
		Outcome: model.ScenarioOutcome{
			Profit:               -135000,
			CustomerSatisfaction: model.SatisfactionLost,
			Ending:               "for_sale_sign",
		},
	}
}
