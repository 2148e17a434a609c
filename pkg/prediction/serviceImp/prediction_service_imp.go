package serviceImp

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
	"gorm.io/datatypes"

	"msitumum/entities"
	"msitumum/pkg/apperr"
	monrepo "msitumum/pkg/monitoring/repository"
	plantrepo "msitumum/pkg/planting/repository"
	"msitumum/pkg/prediction/repository"
	svc "msitumum/pkg/prediction/service"
	"msitumum/pkg/projection"
	siterepo "msitumum/pkg/site/repository"
)

const (
	MaxAge        = 30 * 24 * time.Hour
	SummaryWindow = 60 * 24 * time.Hour
)

type service struct {
	repo       repository.PredictionRepository
	plantings  plantrepo.PlantingRepository
	monitoring monrepo.MonitoringRepository
	sites      siterepo.SiteRepository
	now        func() time.Time
	group      singleflight.Group
}

func New(r repository.PredictionRepository, plantings plantrepo.PlantingRepository, monitoring monrepo.MonitoringRepository, sites siterepo.SiteRepository, now func() time.Time) svc.PredictionService {
	if now == nil {
		now = time.Now
	}
	return &service{repo: r, plantings: plantings, monitoring: monitoring, sites: sites, now: now}
}

// Fresh reports whether a snapshot taken at at can still be served at now.
// A snapshot exactly MaxAge old is stale.
func Fresh(at, now time.Time) bool {
	return now.Sub(at) < MaxAge
}

func (s *service) ForPlanting(ctx context.Context, plantingID uint) (*entities.Prediction, error) {
	if p, err := s.repo.Latest(ctx, plantingID); err != nil {
		return nil, err
	} else if p != nil && Fresh(p.PredictionDate, s.now()) {
		return p, nil
	}

	// The flight is shared by every waiting caller, so it must not die with
	// the request that happened to start it.
	shared := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do(strconv.FormatUint(uint64(plantingID), 10), func() (any, error) {
		// another caller may have stored one while we waited
		if p, err := s.repo.Latest(shared, plantingID); err != nil {
			return nil, err
		} else if p != nil && Fresh(p.PredictionDate, s.now()) {
			return p, nil
		}
		return s.recompute(shared, plantingID)
	})
	if err != nil {
		return nil, err
	}
	return v.(*entities.Prediction), nil
}

func (s *service) recompute(ctx context.Context, plantingID uint) (*entities.Prediction, error) {
	planting, err := s.plantings.FindByID(ctx, plantingID)
	if err != nil {
		return nil, err
	}
	site, err := s.sites.FindByID(ctx, planting.SiteID)
	if err != nil && !apperr.Is(err, apperr.KindNotFound) {
		return nil, err
	}
	history, err := s.monitoring.ListByPlanting(ctx, plantingID)
	if err != nil {
		return nil, err
	}

	in := projection.Input{
		SeedlingsPlanted: planting.SeedlingsPlanted,
		SoilPH:           planting.SoilPH,
		Mulching:         planting.Mulching,
		InitialHealth:    planting.InitialHealth,
		SoilMoisture:     planting.SoilMoisture,
	}
	if site != nil {
		in.ClimateZone = site.ClimateZone
	}
	for _, m := range history {
		in.History = append(in.History, projection.Observation{
			SurvivalCount:         m.SurvivalCount,
			HealthStatus:          m.HealthStatus,
			MaintenanceActivities: m.MaintenanceActivities,
		})
	}
	res := projection.Project(in)

	factors, err := json.Marshal(res.Factors)
	if err != nil {
		return nil, err
	}
	p := &entities.Prediction{
		PlantingID:               plantingID,
		PredictionDate:           s.now().UTC(),
		SurvivalProbability1Year: projection.Round(res.Survival1Year*100, 1),
		SurvivalProbability3Year: projection.Round(res.Survival3Year*100, 1),
		SurvivalProbability5Year: projection.Round(res.Survival5Year*100, 1),
		BiomassGainKg:            projection.Round(res.BiomassGainKg, 1),
		CarbonSequestrationKg:    projection.Round(res.CarbonSequestrationKg, 1),
		DroughtRiskScore:         projection.Round(res.DroughtRisk, 2),
		PestRiskScore:            projection.Round(res.PestRisk, 2),
		FireRiskScore:            projection.Round(res.FireRisk, 2),
		ConfidenceScore:          projection.Round(res.Confidence, 2),
		InfluencingFactors:       datatypes.JSON(factors),
		Recommendations:          strings.Join(res.Recommendations, "; "),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Summary(ctx context.Context, siteID *uint) (*svc.Summary, error) {
	list, err := s.repo.LatestPerPlanting(ctx, s.now().UTC().Add(-SummaryWindow), siteID)
	if err != nil {
		return nil, err
	}
	out := &svc.Summary{TotalPlantings: len(list)}
	if len(list) == 0 {
		return out, nil
	}
	for _, p := range list {
		out.AvgSurvival1Year += p.SurvivalProbability1Year
		out.AvgSurvival3Year += p.SurvivalProbability3Year
		out.AvgSurvival5Year += p.SurvivalProbability5Year
		out.TotalBiomass += p.BiomassGainKg
		out.TotalCarbon += p.CarbonSequestrationKg
		out.AvgDroughtRisk += p.DroughtRiskScore
		out.AvgPestRisk += p.PestRiskScore
		out.AvgConfidence += p.ConfidenceScore
	}
	n := float64(len(list))
	out.AvgSurvival1Year /= n
	out.AvgSurvival3Year /= n
	out.AvgSurvival5Year /= n
	out.AvgDroughtRisk /= n
	out.AvgPestRisk /= n
	out.AvgConfidence /= n
	return out, nil
}
