package model

// KickoffChecklist captures the readiness checks run before a job is released
// to the floor.
type KickoffChecklist struct {
	DrawingReviewed   bool     `json:"drawing_reviewed"`
	OperationsDefined bool     `json:"operations_defined"`
	MaterialConfirmed bool     `json:"material_confirmed"`
	ToolingVerified   bool     `json:"tooling_verified"`
	RisksFlagged      []string `json:"risks_flagged"`
}
