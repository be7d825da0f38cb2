package health

import (
	"math"
	"time"

	"github.com/jesquared/prophealth/internal/domain/models"
)

// Weights applied to the four category scores. They must sum to 1.0.
const (
	weightStructural    = 0.3
	weightSystems       = 0.4
	weightSafety        = 0.2
	weightEnvironmental = 0.1
)

// Expected design lifespans in years for the mechanical systems.
const (
	hvacExpectedLife       = 18
	electricalExpectedLife = 35
	plumbingExpectedLife   = 50
	buildingExpectedLife   = 80
)

// defaultRoofLife is used when the roof material is not in the lifespan table.
const defaultRoofLife = 20

// defaultFoundationScore is used for unknown foundation types.
const defaultFoundationScore = 75

var roofLifespans = map[string]int{
	"Asphalt Shingles":     20,
	"Metal":                50,
	"Tile":                 50,
	"Slate":                75,
	"Wood":                 25,
	"Composite":            30,
	"Flat Roof (TPO/EPDM)": 20,
}

var foundationScores = map[string]float64{
	"Concrete Slab": 85,
	"Basement":      90,
	"Crawl Space":   75,
	"Pier & Beam":   70,
}

// Calculator converts a property's physical attributes into health scores,
// maintenance schedules and cost estimates. It holds only static lookup
// tables and is safe for concurrent use. All scoring methods are total over
// valid Property values: they never return an error.
type Calculator struct {
	now func() time.Time // injectable for deterministic tests
}

// NewCalculator returns a Calculator using the wall clock.
func NewCalculator() *Calculator {
	return &Calculator{now: time.Now}
}

// AgeScore maps a component age against its expected design life to a
// condition score in [0, 100].
//
// The curve is piecewise-linear in ratio = age/expectedLife and keeps the
// early-life plateau: anything within the first 10% of expected life scores a
// flat 100, which makes the function discontinuous at the 0.1 boundary.
//
//	ratio <= 0.5:  100 → 90
//	ratio <= 0.8:   90 → 60
//	ratio <  1.0:   60 → 20
//	ratio >= 1.0:   20 → 0, hitting zero at 20% past expected life
func AgeScore(age, expectedLife float64) float64 {
	if age < 0 {
		age = 0
	}
	if expectedLife <= 0 {
		return 0
	}
	if age <= expectedLife*0.1 {
		return 100
	}

	ratio := age / expectedLife
	switch {
	case ratio <= 0.5:
		return 100 - ratio*20
	case ratio <= 0.8:
		return 90 - (ratio-0.5)/0.3*30
	case ratio < 1.0:
		return 60 - (ratio-0.8)/0.2*40
	default:
		overRatio := (age - expectedLife) / (expectedLife * 0.2)
		return math.Max(0, 20-overRatio*20)
	}
}

// StructuralScore weighs overall building age, foundation type and roof
// condition (age adjusted for material) into one category score.
func (c *Calculator) StructuralScore(p models.Property) models.CategoryScore {
	buildingAge := float64(c.now().Year() - p.YearBuilt)

	buildingScore := AgeScore(buildingAge, buildingExpectedLife)

	foundationScore, ok := foundationScores[p.FoundationType]
	if !ok {
		foundationScore = defaultFoundationScore
	}

	roofLife, ok := roofLifespans[p.RoofMaterial]
	if !ok {
		roofLife = defaultRoofLife
	}
	roofScore := AgeScore(float64(p.RoofAge), float64(roofLife))

	overall := buildingScore*0.4 + foundationScore*0.3 + roofScore*0.3

	return models.CategoryScore{
		Score: round1(overall),
		Components: map[string]float64{
			"Overall Building Age Factor":            round1(buildingScore),
			"Foundation Type":                        foundationScore,
			"Roof Condition (Age/Material Adjusted)": round1(roofScore),
		},
	}
}

// SystemsScore weighs HVAC, electrical and plumbing ages against their
// expected lifespans.
func (c *Calculator) SystemsScore(p models.Property) models.CategoryScore {
	hvac := AgeScore(float64(p.HVACAge), hvacExpectedLife)
	electrical := AgeScore(float64(p.ElectricalAge), electricalExpectedLife)
	plumbing := AgeScore(float64(p.PlumbingAge), plumbingExpectedLife)

	overall := hvac*0.4 + electrical*0.3 + plumbing*0.3

	return models.CategoryScore{
		Score: round1(overall),
		Components: map[string]float64{
			"HVAC":       round1(hvac),
			"Electrical": round1(electrical),
			"Plumbing":   round1(plumbing),
		},
	}
}

// SafetyScore starts from a 90-point baseline and deducts for building age,
// aging electrical service and a missing or stale inspection. Only the
// explicit "N/A" sentinel counts as missing; a value that fails to parse as a
// date draws no penalty and no error.
func (c *Calculator) SafetyScore(p models.Property) models.CategoryScore {
	score := 90.0
	age := c.now().Year() - p.YearBuilt

	if age > 50 {
		score -= 15
	} else if age > 30 {
		score -= 7
	}

	if p.ElectricalAge > 30 {
		score -= 5
	}

	if p.LastInspection == models.InspectionUnknown {
		if age > 20 {
			score -= 5
		}
	} else if inspected, ok := p.LastInspectionDate(); ok {
		if c.now().Sub(inspected) > 5*365*24*time.Hour {
			score -= 5
		}
	}

	score = math.Max(0, score)

	return models.CategoryScore{
		Score:      round1(score),
		Components: map[string]float64{"General Safety Factors": round1(score)},
	}
}

// EnvironmentalScore is a fixed placeholder pending real hazard data feeds.
func (c *Calculator) EnvironmentalScore(p models.Property) models.CategoryScore {
	return models.CategoryScore{
		Score:      80,
		Components: map[string]float64{"General Environmental": 80},
	}
}

// OverallScore combines the four category scores under the fixed weights.
func (c *Calculator) OverallScore(p models.Property) models.HealthReport {
	structural := c.StructuralScore(p)
	systems := c.SystemsScore(p)
	safety := c.SafetyScore(p)
	environmental := c.EnvironmentalScore(p)

	overall := structural.Score*weightStructural +
		systems.Score*weightSystems +
		safety.Score*weightSafety +
		environmental.Score*weightEnvironmental

	return models.HealthReport{
		OverallScore: round1(overall),
		CategoryScores: map[string]models.CategoryScore{
			models.CategoryStructural:    structural,
			models.CategorySystems:       systems,
			models.CategorySafety:        safety,
			models.CategoryEnvironmental: environmental,
		},
	}
}

// round1 rounds to one decimal place, the precision every score is reported at.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
