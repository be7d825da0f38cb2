package health

import "github.com/jesquared/prophealth/internal/domain/models"

// costRange is a national baseline price band in whole dollars.
type costRange struct {
	Min int
	Max int
	Avg int
}

// National baseline costs for the repair and replacement items the schedule
// generator knows about.
var nationalCostBaseline = map[string]costRange{
	"hvac_service":       {Min: 200, Max: 500, Avg: 350},
	"hvac_replacement":   {Min: 5000, Max: 12000, Avg: 7500},
	"roof_repair":        {Min: 400, Max: 2000, Avg: 1000},
	"roof_replacement":   {Min: 10000, Max: 30000, Avg: 15000},
	"electrical_panel":   {Min: 1500, Max: 4000, Avg: 2500},
	"plumbing_repair":    {Min: 250, Max: 1000, Avg: 600},
	"water_heater":       {Min: 1000, Max: 3500, Avg: 1800},
	"foundation_repair":  {Min: 3000, Max: 25000, Avg: 10000},
	"gutter_replacement": {Min: 1000, Max: 3000, Avg: 1700},
}

// Regional multipliers keyed by exact 5-digit ZIP or by a single leading
// digit. Prefix entries carry lower confidence than exact matches.
var regionalMultipliers = map[string]models.RegionalInfo{
	"22701": {Multiplier: 0.85, Region: "Central Virginia - Rural", Confidence: "high"},
	"22102": {Multiplier: 1.35, Region: "Northern Virginia - DC Metro", Confidence: "high"},
	"10001": {Multiplier: 1.85, Region: "Manhattan, NY", Confidence: "high"},
	"90210": {Multiplier: 1.65, Region: "Los Angeles Metro", Confidence: "high"},
	"94102": {Multiplier: 1.75, Region: "San Francisco Bay Area", Confidence: "high"},
	"60601": {Multiplier: 1.25, Region: "Chicago Metro", Confidence: "high"},
	"2":     {Multiplier: 1.45, Region: "Northeast Corridor", Confidence: "medium"},
	"9":     {Multiplier: 1.40, Region: "West Coast", Confidence: "medium"},
}

var defaultRegion = models.RegionalInfo{Multiplier: 1.00, Region: "National Average", Confidence: "low"}

// RegionalInfo resolves the cost region for a ZIP code: exact match first,
// then first-digit prefix, then the national average.
func (c *Calculator) RegionalInfo(zipCode string) models.RegionalInfo {
	if info, ok := regionalMultipliers[zipCode]; ok {
		return info
	}
	if zipCode != "" {
		if info, ok := regionalMultipliers[zipCode[:1]]; ok {
			return info
		}
	}
	return defaultRegion
}

// EstimateCost scales the national baseline for itemType by the regional
// multiplier for zipCode, truncating to whole dollars. An unknown item type
// yields a zero-valued estimate rather than an error.
func (c *Calculator) EstimateCost(itemType, zipCode string) models.CostEstimate {
	baseline, ok := nationalCostBaseline[itemType]
	if !ok {
		return models.CostEstimate{Confidence: "low", Region: "Unknown"}
	}

	info := c.RegionalInfo(zipCode)
	return models.CostEstimate{
		Min:         int(float64(baseline.Min) * info.Multiplier),
		Max:         int(float64(baseline.Max) * info.Multiplier),
		Avg:         int(float64(baseline.Avg) * info.Multiplier),
		Confidence:  info.Confidence,
		Region:      info.Region,
		NationalAvg: baseline.Avg,
	}
}
