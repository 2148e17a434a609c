// Package projection forecasts survival, biomass and risk for one planting
// from its site conditions and monitoring history. It is a fixed heuristic,
// not a fitted model, and has no I/O.
package projection

import (
	"math"
	"strings"
)

const (
	biomassPerTreeKg = 50.0
	carbonFraction   = 0.5

	year1Decay = 0.95
	year3Decay = 0.85
	year5Decay = 0.80

	minHistoryForConfidence = 3
)

const (
	RecWatering    = "Increase watering frequency during dry season"
	RecPestControl = "Implement integrated pest management"
	RecMulching    = "Add mulching to improve moisture retention"
	RecMonitoring  = "Schedule regular monitoring visits"
)

// Observation is the part of a monitoring visit the model looks at.
// History passed to Project must be ordered oldest first.
type Observation struct {
	SurvivalCount         int
	HealthStatus          string
	MaintenanceActivities string
}

type Input struct {
	SeedlingsPlanted int
	SoilPH           *float64
	Mulching         bool
	InitialHealth    string
	SoilMoisture     string
	ClimateZone      string
	History          []Observation
}

type Factors struct {
	SoilQuality   float64 `json:"soil_quality"`
	Mulching      float64 `json:"mulching"`
	InitialHealth float64 `json:"initial_health"`
	Maintenance   float64 `json:"maintenance"`
}

// Result holds probabilities as fractions in [0,1].
type Result struct {
	CurrentSurvival       float64
	Survival1Year         float64
	Survival3Year         float64
	Survival5Year         float64
	BiomassGainKg         float64
	CarbonSequestrationKg float64
	DroughtRisk           float64
	PestRisk              float64
	FireRisk              float64
	Confidence            float64
	Factors               Factors
	Recommendations       []string
}

func Project(in Input) Result {
	var r Result

	r.CurrentSurvival = 1.0
	if n := len(in.History); n > 0 && in.SeedlingsPlanted > 0 {
		r.CurrentSurvival = float64(in.History[n-1].SurvivalCount) / float64(in.SeedlingsPlanted)
	}

	r.Factors = factorsFor(in)
	adj := r.Factors.Adjustment()

	r.Survival1Year = math.Min(r.CurrentSurvival*adj*year1Decay, 1)
	r.Survival3Year = math.Min(r.Survival1Year*year3Decay, 1)
	r.Survival5Year = math.Min(r.Survival3Year*year5Decay, 1)

	r.BiomassGainKg = float64(in.SeedlingsPlanted) * r.Survival5Year * biomassPerTreeKg
	r.CarbonSequestrationKg = r.BiomassGainKg * carbonFraction

	r.DroughtRisk = 0.3
	if in.SoilMoisture == "dry" {
		r.DroughtRisk = 0.7
	}
	r.PestRisk = 0.2
	for _, o := range in.History {
		if o.HealthStatus == "pests" {
			r.PestRisk = 0.6
			break
		}
	}
	r.FireRisk = 0.2
	if in.ClimateZone == "dry" {
		r.FireRisk = 0.5
	}

	r.Confidence = 0.60
	if len(in.History) >= minHistoryForConfidence {
		r.Confidence = 0.85
	}

	r.Recommendations = recommend(in, r)
	return r
}

// Adjustment is the product of the four factors divided by four.
func (f Factors) Adjustment() float64 {
	return f.SoilQuality * f.Mulching * f.InitialHealth * f.Maintenance / 4
}

func factorsFor(in Input) Factors {
	f := Factors{SoilQuality: 0.9, Mulching: 1.0, InitialHealth: 0.85, Maintenance: 1.0}
	if in.SoilPH != nil && *in.SoilPH >= 6 && *in.SoilPH <= 7 {
		f.SoilQuality = 1.1
	}
	if in.Mulching {
		f.Mulching = 1.15
	}
	if in.InitialHealth == "healthy" {
		f.InitialHealth = 1.1
	}
	for _, o := range in.History {
		if strings.TrimSpace(o.MaintenanceActivities) != "" {
			f.Maintenance = 1.2
			break
		}
	}
	return f
}

func recommend(in Input, r Result) []string {
	var out []string
	if r.DroughtRisk > 0.5 {
		out = append(out, RecWatering)
	}
	if r.PestRisk > 0.4 {
		out = append(out, RecPestControl)
	}
	if !in.Mulching {
		out = append(out, RecMulching)
	}
	if len(in.History) == 0 {
		out = append(out, RecMonitoring)
	}
	return out
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
