package serviceImp

import (
	"context"
	"strings"

	"msitumum/entities"
	"msitumum/pkg/apperr"
	"msitumum/pkg/monitoring/repository"
	"msitumum/pkg/monitoring/service"
	plantrepo "msitumum/pkg/planting/repository"
)

type monitoringSvc struct {
	r         repository.MonitoringRepository
	plantings plantrepo.PlantingRepository
}

func NewMonitoringService(r repository.MonitoringRepository, plantings plantrepo.PlantingRepository) service.MonitoringService {
	return &monitoringSvc{r: r, plantings: plantings}
}

func checkSurvival(count, planted int) error {
	if count < 0 {
		return apperr.Validation("survival_count must not be negative")
	}
	if count > planted {
		return apperr.Validationf("survival_count %d exceeds seedlings_planted %d", count, planted)
	}
	return nil
}

// blankToNil keeps "no cause recorded" as NULL so cause counts ignore it.
func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func (s *monitoringSvc) Create(ctx context.Context, m *entities.MonitoringRecord) error {
	p, err := s.plantings.FindByID(ctx, m.PlantingID)
	if err != nil {
		return err
	}
	if err := checkSurvival(m.SurvivalCount, p.SeedlingsPlanted); err != nil {
		return err
	}
	if m.HealthStatus == "" {
		m.HealthStatus = entities.HealthHealthy
	}
	m.MortalityCause = blankToNil(m.MortalityCause)
	return s.r.Create(ctx, m)
}

func (s *monitoringSvc) ListByPlanting(ctx context.Context, plantingID uint) ([]repository.MonitoringView, error) {
	return s.r.ListByPlanting(ctx, plantingID)
}

func (s *monitoringSvc) Update(ctx context.Context, id, uid uint, p service.MonitoringPatch) error {
	m := map[string]any{}
	if p.SurvivalCount != nil {
		cur, err := s.r.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if cur.UserID != uid {
			return apperr.NotFound("Monitoring record not found")
		}
		planting, err := s.plantings.FindByID(ctx, cur.PlantingID)
		if err != nil {
			return err
		}
		if err := checkSurvival(*p.SurvivalCount, planting.SeedlingsPlanted); err != nil {
			return err
		}
		m["survival_count"] = *p.SurvivalCount
	}
	if p.AverageHeightCM != nil {
		m["average_height_cm"] = *p.AverageHeightCM
	}
	if p.AverageCanopyCM != nil {
		m["average_canopy_cm"] = *p.AverageCanopyCM
	}
	if p.HealthStatus != nil {
		m["health_status"] = *p.HealthStatus
	}
	if p.MortalityCause != nil {
		m["mortality_cause"] = blankToNil(p.MortalityCause)
	}
	if p.RainfallMM != nil {
		m["rainfall_mm"] = *p.RainfallMM
	}
	if p.MaintenanceActivities != nil {
		m["maintenance_activities"] = *p.MaintenanceActivities
	}
	if p.Notes != nil {
		m["notes"] = *p.Notes
	}
	return s.r.UpdateOwned(ctx, id, uid, m)
}
