package models

import "time"

// Category names used in a HealthReport.
const (
	CategoryStructural    = "Structural"
	CategorySystems       = "Systems"
	CategorySafety        = "Safety"
	CategoryEnvironmental = "Environmental"
)

// Task priorities in a maintenance schedule, in rank order.
const (
	PriorityHigh      = "high"
	PriorityImportant = "important"
	PriorityRoutine   = "routine"
)

// CategoryScore is one weighted sub-score group with its labeled components.
type CategoryScore struct {
	Score      float64            `json:"score"`
	Components map[string]float64 `json:"components"`
}

// HealthReport is the full scoring result for a single property.
type HealthReport struct {
	OverallScore   float64                  `json:"overall_score"`
	CategoryScores map[string]CategoryScore `json:"category_scores"`
}

// RegionalInfo describes the cost region resolved for a ZIP code.
type RegionalInfo struct {
	Multiplier float64 `json:"multiplier"`
	Region     string  `json:"region"`
	Confidence string  `json:"confidence"`
}

// CostEstimate is a regionally adjusted repair or replacement cost range in
// whole dollars, alongside the unscaled national average.
type CostEstimate struct {
	Min         int    `json:"min"`
	Max         int    `json:"max"`
	Avg         int    `json:"avg"`
	Confidence  string `json:"confidence"`
	Region      string `json:"region"`
	NationalAvg int    `json:"national_avg"`
}

// ScheduleTask is one entry in a generated maintenance schedule.
type ScheduleTask struct {
	Task          string    `json:"task"`
	Frequency     string    `json:"frequency"`
	NextDue       time.Time `json:"next_due"`
	Priority      string    `json:"priority"`
	EstimatedCost int       `json:"estimated_cost"`
	Description   string    `json:"description"`
}

// PortfolioSummary aggregates health and maintenance spend across every
// property on file.
type PortfolioSummary struct {
	PropertyCount    int                  `json:"property_count"`
	AverageScore     float64              `json:"average_score"`
	BestScore        float64              `json:"best_score"`
	WorstScore       float64              `json:"worst_score"`
	Properties       []PropertyScoreEntry `json:"properties"`
	MaintenanceCount int                  `json:"maintenance_count"`
	MaintenanceSpend float64              `json:"maintenance_spend"`
}

// PropertyScoreEntry pairs a property with its computed overall score for
// portfolio-wide comparisons.
type PropertyScoreEntry struct {
	PropertyID string  `json:"property_id"`
	Address    string  `json:"address"`
	Score      float64 `json:"score"`
}
