// Package analytics reduces per-planting outcome rows into dashboard metrics.
// Every function here is pure and tolerates empty input.
package analytics

import (
	"sort"
	"time"
)

// PlantingOutcome is one planting joined with what the dashboard needs to know about it.
type PlantingOutcome struct {
	PlantingID        uint
	SeedlingsPlanted  int
	SiteID            uint
	SiteName          string
	SpeciesID         uint
	SpeciesName       string
	OwnerID           uint
	OwnerName         string
	OwnerOrganization string
	OwnerRole         string
	// LatestSurvival is the survival count of the most recent monitoring visit, nil if never monitored.
	LatestSurvival *int
	// TotalCost is the sum of cost entries for the planting, nil if none were recorded.
	TotalCost *float64
}

// SurvivalRate is the planting's contribution to averaged survival, in percent.
// An unmonitored planting counts as full survival.
func (o PlantingOutcome) SurvivalRate() float64 {
	if o.LatestSurvival == nil || o.SeedlingsPlanted <= 0 {
		return 100
	}
	return float64(*o.LatestSurvival) * 100 / float64(o.SeedlingsPlanted)
}

// SurvivingTrees falls back to the planted count when there is no monitoring.
func (o PlantingOutcome) SurvivingTrees() int {
	if o.LatestSurvival == nil {
		return o.SeedlingsPlanted
	}
	return *o.LatestSurvival
}

type Overall struct {
	TotalPlanted int64   `json:"total_planted"`
	SurvivalRate float64 `json:"survival_rate"`
	Plantings    int     `json:"plantings"`
}

type MortalityCause struct {
	Cause string `json:"mortality_cause"`
	Count int64  `json:"count"`
}

type SpeciesSurvival struct {
	ID           uint    `json:"id"`
	CommonName   string  `json:"common_name"`
	Plantings    int     `json:"plantings"`
	TotalPlanted int64   `json:"total_planted"`
	SurvivalRate float64 `json:"survival_rate"`
}

type SitePerformance struct {
	ID           uint    `json:"id"`
	SiteName     string  `json:"site_name"`
	Plantings    int     `json:"plantings"`
	TotalPlanted int64   `json:"total_planted"`
	SurvivalRate float64 `json:"survival_rate"`
}

type FarmerProductivity struct {
	ID              uint    `json:"id"`
	FullName        string  `json:"full_name"`
	Organization    string  `json:"organization"`
	TotalPlantings  int     `json:"total_plantings"`
	TotalSeedlings  int64   `json:"total_seedlings"`
	AvgSurvivalRate float64 `json:"avg_survival_rate"`
}

type CostPerTree struct {
	ID                   uint    `json:"id"`
	SiteName             string  `json:"site_name"`
	Species              string  `json:"species"`
	SeedlingsPlanted     int     `json:"seedlings_planted"`
	SurvivingTrees       int     `json:"surviving_trees"`
	TotalCost            float64 `json:"total_cost"`
	CostPerSurvivingTree float64 `json:"cost_per_surviving_tree"`
}

type Dashboard struct {
	Overall         Overall           `json:"overall"`
	MortalityCauses []MortalityCause  `json:"mortality_causes"`
	SpeciesSurvival []SpeciesSurvival `json:"species_survival"`
	SitePerformance []SitePerformance `json:"site_performance"`
}

const (
	MortalityLimit = 5
	SiteLimit      = 10
	FarmerLimit    = 20
	RoleFarmer     = "farmer"
)

// OverallSurvival averages per-planting rates without weighting by seedlings.
// No plantings gives zero for both totals.
func OverallSurvival(rows []PlantingOutcome) Overall {
	var out Overall
	if len(rows) == 0 {
		return out
	}
	var sum float64
	for _, r := range rows {
		out.TotalPlanted += int64(r.SeedlingsPlanted)
		sum += r.SurvivalRate()
	}
	out.Plantings = len(rows)
	out.SurvivalRate = sum / float64(len(rows))
	return out
}

// TopCauses orders causes by count, highest first, breaking ties by name.
func TopCauses(causes []MortalityCause, limit int) []MortalityCause {
	out := make([]MortalityCause, 0, len(causes))
	for _, c := range causes {
		if c.Cause != "" && c.Count > 0 {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Cause < out[j].Cause
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

type group struct {
	id        uint
	name      string
	plantings int
	planted   int64
	rateSum   float64
}

func (g *group) add(r PlantingOutcome) {
	g.plantings++
	g.planted += int64(r.SeedlingsPlanted)
	g.rateSum += r.SurvivalRate()
}

func (g *group) rate() float64 { return g.rateSum / float64(g.plantings) }

// groupBy keeps first-seen order so equal rates sort deterministically by id.
func groupBy(rows []PlantingOutcome, key func(PlantingOutcome) (uint, string)) []*group {
	idx := map[uint]*group{}
	var out []*group
	for _, r := range rows {
		id, name := key(r)
		g, ok := idx[id]
		if !ok {
			g = &group{id: id, name: name}
			idx[id] = g
			out = append(out, g)
		}
		g.add(r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

func SpeciesSurvivalRates(rows []PlantingOutcome) []SpeciesSurvival {
	groups := groupBy(rows, func(r PlantingOutcome) (uint, string) { return r.SpeciesID, r.SpeciesName })
	out := make([]SpeciesSurvival, 0, len(groups))
	for _, g := range groups {
		out = append(out, SpeciesSurvival{ID: g.id, CommonName: g.name, Plantings: g.plantings, TotalPlanted: g.planted, SurvivalRate: g.rate()})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SurvivalRate > out[j].SurvivalRate })
	return out
}

func SiteRanking(rows []PlantingOutcome, limit int) []SitePerformance {
	groups := groupBy(rows, func(r PlantingOutcome) (uint, string) { return r.SiteID, r.SiteName })
	out := make([]SitePerformance, 0, len(groups))
	for _, g := range groups {
		out = append(out, SitePerformance{ID: g.id, SiteName: g.name, Plantings: g.plantings, TotalPlanted: g.planted, SurvivalRate: g.rate()})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SurvivalRate > out[j].SurvivalRate })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// FarmerRanking ranks owners with the farmer role by seedlings planted.
func FarmerRanking(rows []PlantingOutcome, limit int) []FarmerProductivity {
	var farmers []PlantingOutcome
	org := map[uint]string{}
	for _, r := range rows {
		if r.OwnerRole == RoleFarmer {
			farmers = append(farmers, r)
			org[r.OwnerID] = r.OwnerOrganization
		}
	}
	groups := groupBy(farmers, func(r PlantingOutcome) (uint, string) { return r.OwnerID, r.OwnerName })
	out := make([]FarmerProductivity, 0, len(groups))
	for _, g := range groups {
		out = append(out, FarmerProductivity{
			ID:              g.id,
			FullName:        g.name,
			Organization:    org[g.id],
			TotalPlantings:  g.plantings,
			TotalSeedlings:  g.planted,
			AvgSurvivalRate: g.rate(),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalSeedlings > out[j].TotalSeedlings })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// CostPerSurvivingTree skips plantings with no recorded cost and sorts cheapest first.
func CostPerSurvivingTree(rows []PlantingOutcome) []CostPerTree {
	out := []CostPerTree{}
	for _, r := range rows {
		if r.TotalCost == nil {
			continue
		}
		c := CostPerTree{
			ID:               r.PlantingID,
			SiteName:         r.SiteName,
			Species:          r.SpeciesName,
			SeedlingsPlanted: r.SeedlingsPlanted,
			SurvivingTrees:   r.SurvivingTrees(),
			TotalCost:        *r.TotalCost,
		}
		if c.SurvivingTrees > 0 {
			c.CostPerSurvivingTree = c.TotalCost / float64(c.SurvivingTrees)
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CostPerSurvivingTree != out[j].CostPerSurvivingTree {
			return out[i].CostPerSurvivingTree < out[j].CostPerSurvivingTree
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func BuildDashboard(rows []PlantingOutcome, causes []MortalityCause) Dashboard {
	return Dashboard{
		Overall:         OverallSurvival(rows),
		MortalityCauses: TopCauses(causes, MortalityLimit),
		SpeciesSurvival: SpeciesSurvivalRates(rows),
		SitePerformance: SiteRanking(rows, SiteLimit),
	}
}

// SurvivalSample is one monitoring visit with its planting's seedling count.
type SurvivalSample struct {
	PlantingID       uint
	MonitoringDate   time.Time
	SurvivalCount    int
	SeedlingsPlanted int
}

type SurvivalPoint struct {
	Date               string  `json:"date"`
	SurvivalRate       float64 `json:"survival_rate"`
	PlantingsMonitored int     `json:"plantings_monitored"`
}

// SurvivalSeries averages visit survival per calendar day (UTC), oldest day first.
func SurvivalSeries(samples []SurvivalSample) []SurvivalPoint {
	type day struct {
		sum       float64
		n         int
		plantings map[uint]struct{}
	}
	days := map[string]*day{}
	var keys []string
	for _, s := range samples {
		if s.SeedlingsPlanted <= 0 {
			continue
		}
		k := s.MonitoringDate.UTC().Format("2006-01-02")
		d, ok := days[k]
		if !ok {
			d = &day{plantings: map[uint]struct{}{}}
			days[k] = d
			keys = append(keys, k)
		}
		d.sum += float64(s.SurvivalCount) * 100 / float64(s.SeedlingsPlanted)
		d.n++
		d.plantings[s.PlantingID] = struct{}{}
	}
	sort.Strings(keys)
	out := make([]SurvivalPoint, 0, len(keys))
	for _, k := range keys {
		d := days[k]
		out = append(out, SurvivalPoint{Date: k, SurvivalRate: d.sum / float64(d.n), PlantingsMonitored: len(d.plantings)})
	}
	return out
}
