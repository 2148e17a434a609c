package serviceImp

import (
	"context"
	"time"

	"msitumum/entities"
	"msitumum/pkg/apperr"
	"msitumum/pkg/nursery/repository"
	"msitumum/pkg/nursery/service"
	"msitumum/pkg/params"
	"msitumum/pkg/projection"
	sprepo "msitumum/pkg/species/repository"
)

const defaultForecastMonths = 3

type nurserySvc struct {
	r       repository.NurseryRepository
	species sprepo.SpeciesRepository
	now     func() time.Time
}

func NewNurseryService(r repository.NurseryRepository, species sprepo.SpeciesRepository, now func() time.Time) service.NurseryService {
	if now == nil {
		now = time.Now
	}
	return &nurserySvc{r: r, species: species, now: now}
}

func (s *nurserySvc) Create(ctx context.Context, n *entities.Nursery) error {
	if n.TotalCapacity < 0 || n.TotalBeds < 0 {
		return apperr.Validation("capacity and beds must not be negative")
	}
	return s.r.Create(ctx, n)
}

func (s *nurserySvc) List(ctx context.Context) ([]repository.NurserySummary, error) {
	return s.r.List(ctx)
}

func (s *nurserySvc) Get(ctx context.Context, id uint) (*service.NurseryDetail, error) {
	sum, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	inv, err := s.r.Inventory(ctx, id)
	if err != nil {
		return nil, err
	}
	var total int64
	for _, it := range inv {
		total += int64(it.CurrentCount)
	}
	d := &service.NurseryDetail{NurserySummary: *sum, Inventory: inv}
	d.TotalSeedlings = total
	if sum.TotalCapacity > 0 {
		d.CapacityUtilization = projection.Round(float64(total)/float64(sum.TotalCapacity)*100, 1)
	}
	return d, nil
}

func (s *nurserySvc) AddInventory(ctx context.Context, uid uint, item *entities.NurseryInventory) error {
	n, err := s.r.FindByID(ctx, item.NurseryID)
	if err != nil {
		return err
	}
	if n.UserID != uid {
		return apperr.NotFound("Nursery not found")
	}
	if _, err := s.species.FindByID(ctx, item.SpeciesID); err != nil {
		return err
	}
	if item.CurrentCount < 0 {
		return apperr.Validation("current_count must not be negative")
	}
	if item.SeedlingStage == "" {
		item.SeedlingStage = entities.StageSowing
	}
	return s.r.AddInventory(ctx, item)
}

func (s *nurserySvc) UpdateInventory(ctx context.Context, id, uid uint, p service.InventoryPatch) error {
	m := map[string]any{}
	if p.CurrentCount != nil {
		m["current_count"] = *p.CurrentCount
	}
	if p.GerminationRate != nil {
		m["germination_rate"] = *p.GerminationRate
	}
	if p.SeedlingStage != nil {
		m["seedling_stage"] = *p.SeedlingStage
	}
	if p.ExpectedReadyDate != nil {
		d, err := params.OptionalDate("expected_ready_date", p.ExpectedReadyDate)
		if err != nil {
			return err
		}
		m["expected_ready_date"] = d
	}
	if p.BedNumber != nil {
		m["bed_number"] = *p.BedNumber
	}
	if p.DiseaseNotes != nil {
		m["disease_notes"] = *p.DiseaseNotes
	}
	if p.PestNotes != nil {
		m["pest_notes"] = *p.PestNotes
	}
	return s.r.UpdateInventoryOwned(ctx, id, uid, m)
}

func (s *nurserySvc) Forecast(ctx context.Context, nurseryID uint, months int) ([]repository.InventoryView, error) {
	if months <= 0 {
		months = defaultForecastMonths
	}
	if _, err := s.r.FindByID(ctx, nurseryID); err != nil {
		return nil, err
	}
	return s.r.Forecast(ctx, nurseryID, s.now().UTC().AddDate(0, months, 0))
}
