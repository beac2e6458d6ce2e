package model

// EventStatus grades a timeline event.
type EventStatus string

const (
	StatusSuccess  EventStatus = "success"
	StatusWarning  EventStatus = "warning"
	StatusCritical EventStatus = "critical"
	StatusFailure  EventStatus = "failure"
)

// Satisfaction is the customer's final disposition.
type Satisfaction string

const (
	SatisfactionHigh Satisfaction = "high"
	SatisfactionLost Satisfaction = "lost"
)

// TimelineEvent is one step of a scenario. At most one of Day and Week is
// set; the other encodes as null.
type TimelineEvent struct {
	Day    *int        `json:"day"`
	Week   *int        `json:"week"`
	Event  string      `json:"event"`
	Status EventStatus `json:"status"`
}

// OnDay builds an event offset in days.
func OnDay(day int, event string, status EventStatus) TimelineEvent {
	return TimelineEvent{Day: &day, Event: event, Status: status}
}

// InWeek builds an event offset in weeks.
func InWeek(week int, event string, status EventStatus) TimelineEvent {
	return TimelineEvent{Week: &week, Event: event, Status: status}
}

// ScenarioOutcome is how a scenario ends.
type ScenarioOutcome struct {
	Profit               int          `json:"profit"`
	CustomerSatisfaction Satisfaction `json:"customer_satisfaction"`
	Ending               string       `json:"ending"`
}

// Scenario is a narrative timeline plus its outcome.
type Scenario struct {
	Timeline []TimelineEvent `json:"timeline"`
	Outcome  ScenarioOutcome `json:"outcome"`
}
