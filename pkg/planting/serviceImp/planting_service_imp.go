package serviceImp

import (
	"context"

	"msitumum/entities"
	"msitumum/pkg/apperr"
	monrepo "msitumum/pkg/monitoring/repository"
	"msitumum/pkg/planting/repository"
	"msitumum/pkg/planting/service"
	"msitumum/pkg/projection"
	siterepo "msitumum/pkg/site/repository"
	sprepo "msitumum/pkg/species/repository"
)

type plantingSvc struct {
	plantings  repository.PlantingRepository
	monitoring monrepo.MonitoringRepository
	sites      siterepo.SiteRepository
	species    sprepo.SpeciesRepository
}

func NewPlantingService(
	plantings repository.PlantingRepository,
	monitoring monrepo.MonitoringRepository,
	sites siterepo.SiteRepository,
	species sprepo.SpeciesRepository,
) service.PlantingService {
	return &plantingSvc{plantings: plantings, monitoring: monitoring, sites: sites, species: species}
}

func (s *plantingSvc) Create(ctx context.Context, p *entities.PlantingRecord) error {
	if p.SeedlingsPlanted <= 0 {
		return apperr.Validation("seedlings_planted must be greater than 0")
	}
	if p.InitialHealth == "" {
		p.InitialHealth = entities.InitialHealthy
	}
	if p.InitialHealth != entities.InitialHealthy && p.InitialHealth != entities.InitialStressed {
		return apperr.Validation("initial_health must be one of: healthy stressed")
	}
	if _, err := s.sites.FindByID(ctx, p.SiteID); err != nil {
		return err
	}
	if _, err := s.species.FindByID(ctx, p.SpeciesID); err != nil {
		return err
	}
	return s.plantings.Create(ctx, p)
}

func (s *plantingSvc) Get(ctx context.Context, id uint) (*service.PlantingDetail, error) {
	v, err := s.plantings.View(ctx, id)
	if err != nil {
		return nil, err
	}
	history, err := s.monitoring.ListByPlanting(ctx, id)
	if err != nil {
		return nil, err
	}
	d := &service.PlantingDetail{PlantingView: *v, Monitoring: history, CurrentSurvivalRate: 100}
	if n := len(history); n > 0 && v.SeedlingsPlanted > 0 {
		latest := history[n-1]
		d.CurrentSurvivalRate = projection.Round(float64(latest.SurvivalCount)/float64(v.SeedlingsPlanted)*100, 1)
	}
	return d, nil
}

func (s *plantingSvc) List(ctx context.Context, f repository.Filter) ([]repository.PlantingView, error) {
	return s.plantings.List(ctx, f)
}

func (s *plantingSvc) Update(ctx context.Context, id, uid uint, p service.PlantingPatch) error {
	m := map[string]any{}
	if p.PlantingMethod != nil {
		m["planting_method"] = *p.PlantingMethod
	}
	if p.PitSizeCM != nil {
		m["pit_size_cm"] = *p.PitSizeCM
	}
	if p.SpacingMeters != nil {
		m["spacing_meters"] = *p.SpacingMeters
	}
	if p.Mulching != nil {
		m["mulching"] = *p.Mulching
	}
	if p.SoilCondition != nil {
		m["soil_condition"] = *p.SoilCondition
	}
	if p.SoilMoisture != nil {
		m["soil_moisture"] = *p.SoilMoisture
	}
	if p.SoilPH != nil {
		m["soil_ph"] = *p.SoilPH
	}
	if p.Notes != nil {
		m["notes"] = *p.Notes
	}
	return s.plantings.UpdateOwned(ctx, id, uid, m)
}
