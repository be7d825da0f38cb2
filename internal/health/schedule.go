package health

import (
	"sort"

	"github.com/jesquared/prophealth/internal/domain/models"
)

var priorityRank = map[string]int{
	models.PriorityHigh:      0,
	models.PriorityImportant: 1,
	models.PriorityRoutine:   2,
}

// Schedule derives a prioritized, cost-estimated maintenance plan from the
// property's component ages. Each threshold rule is independent and fires at
// most once per call; costs come from the regional estimator using the
// property's ZIP. The result is stable-sorted by priority rank, then due date.
//
// Aside from the dependency on the current date (which shifts the absolute
// due dates), the output is fully determined by the property snapshot.
func (c *Calculator) Schedule(p models.Property) []models.ScheduleTask {
	var schedule []models.ScheduleTask
	now := c.now()
	zip := p.ZipCode

	switch {
	case p.HVACAge <= 1:
		est := c.EstimateCost("hvac_service", zip)
		schedule = append(schedule, models.ScheduleTask{
			Task:          "HVAC Filter Check/Replacement",
			Frequency:     "Every 3 months",
			NextDue:       now.AddDate(0, 0, 90),
			Priority:      models.PriorityRoutine,
			EstimatedCost: maxInt(20, est.Min/10),
			Description:   "Check and replace air filters as needed.",
		})
	case float64(p.HVACAge) <= hvacExpectedLife*0.8:
		est := c.EstimateCost("hvac_service", zip)
		schedule = append(schedule, models.ScheduleTask{
			Task:          "HVAC Annual Service",
			Frequency:     "Annually",
			NextDue:       now.AddDate(0, 0, 365),
			Priority:      models.PriorityImportant,
			EstimatedCost: est.Avg,
			Description:   "Professional tune-up and inspection.",
		})
	default:
		est := c.EstimateCost("hvac_replacement", zip)
		schedule = append(schedule, models.ScheduleTask{
			Task:          "HVAC Replacement Planning",
			Frequency:     "Within 1-2 years",
			NextDue:       now.AddDate(0, 0, 365),
			Priority:      models.PriorityHigh,
			EstimatedCost: est.Avg,
			Description:   "Budget and plan for HVAC system replacement.",
		})
	}

	if p.RoofAge > 10 {
		est := c.EstimateCost("roof_repair", zip)
		schedule = append(schedule, models.ScheduleTask{
			Task:          "Roof Inspection (detailed for age)",
			Frequency:     "Annually",
			NextDue:       now.AddDate(0, 0, 365),
			Priority:      models.PriorityImportant,
			EstimatedCost: maxInt(150, est.Min),
			Description:   "Inspect roof for wear, potential leaks, especially if older than 10 years.",
		})
	}

	if p.ElectricalAge > 30 {
		est := c.EstimateCost("electrical_panel", zip)
		schedule = append(schedule, models.ScheduleTask{
			Task:          "Electrical System Inspection",
			Frequency:     "Consider within 1 year",
			NextDue:       now.AddDate(0, 0, 365),
			Priority:      models.PriorityImportant,
			EstimatedCost: maxInt(150, est.Min/5),
			Description:   "Inspect aging electrical panel and system, especially if over 30 years old.",
		})
	}
	if float64(p.ElectricalAge) > electricalExpectedLife*0.9 {
		est := c.EstimateCost("electrical_panel", zip)
		schedule = append(schedule, models.ScheduleTask{
			Task:          "Consider Electrical Panel Upgrade",
			Frequency:     "Within 2-3 years",
			NextDue:       now.AddDate(0, 0, 730),
			Priority:      models.PriorityHigh,
			EstimatedCost: est.Avg,
			Description:   "Plan for upgrading an old electrical panel if original.",
		})
	}

	if p.PlumbingAge > 8 {
		est := c.EstimateCost("water_heater", zip)
		schedule = append(schedule, models.ScheduleTask{
			Task:          "Water Heater Check/Service",
			Frequency:     "Annually if >8yrs old",
			NextDue:       now.AddDate(0, 0, 365),
			Priority:      models.PriorityImportant,
			EstimatedCost: maxInt(100, est.Min/10),
			Description:   "Inspect water heater. Plan for replacement if near end-of-life.",
		})
	}
	if float64(p.PlumbingAge) > plumbingExpectedLife*0.8 {
		est := c.EstimateCost("plumbing_repair", zip)
		schedule = append(schedule, models.ScheduleTask{
			Task:          "Major Plumbing Inspection (Pipes)",
			Frequency:     "Consider within 2 years",
			NextDue:       now.AddDate(0, 0, 730),
			Priority:      models.PriorityHigh,
			EstimatedCost: est.Avg,
			Description:   "Inspect for potential major plumbing updates (pipes, main lines) if original.",
		})
	}

	gutterEst := c.EstimateCost("gutter_replacement", zip)
	gutterCleanCost := 150
	if gutterEst.Min > 0 {
		gutterCleanCost = maxInt(150, gutterEst.Min/10)
	}
	schedule = append(schedule,
		models.ScheduleTask{
			Task:          "Gutter Cleaning (Spring)",
			Frequency:     "Annually (Spring)",
			NextDue:       now.AddDate(0, 0, 120),
			Priority:      models.PriorityRoutine,
			EstimatedCost: gutterCleanCost,
			Description:   "Clean gutters and downspouts after winter.",
		},
		models.ScheduleTask{
			Task:          "Gutter Cleaning (Fall)",
			Frequency:     "Annually (Fall)",
			NextDue:       now.AddDate(0, 0, 300),
			Priority:      models.PriorityRoutine,
			EstimatedCost: gutterCleanCost,
			Description:   "Clean gutters and downspouts before winter.",
		},
		models.ScheduleTask{
			Task:          "Exterior Caulking & Sealing Check",
			Frequency:     "Annually",
			NextDue:       now.AddDate(0, 0, 270),
			Priority:      models.PriorityRoutine,
			EstimatedCost: 100,
			Description:   "Check windows, doors, and siding for gaps to prevent drafts and water intrusion.",
		},
		models.ScheduleTask{
			Task:          "Smoke & CO Detector Test/Battery Change",
			Frequency:     "Semi-Annually",
			NextDue:       now.AddDate(0, 0, 180),
			Priority:      models.PriorityImportant,
			EstimatedCost: 10,
			Description:   "Test all detectors and replace batteries as needed.",
		},
	)

	sort.SliceStable(schedule, func(i, j int) bool {
		ri, rj := priorityRank[schedule[i].Priority], priorityRank[schedule[j].Priority]
		if ri != rj {
			return ri < rj
		}
		return schedule[i].NextDue.Before(schedule[j].NextDue)
	})

	return schedule
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
