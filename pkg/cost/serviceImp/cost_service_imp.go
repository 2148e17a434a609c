package serviceImp

import (
	"context"
	"strings"

	"msitumum/entities"
	"msitumum/pkg/apperr"
	"msitumum/pkg/cost/repository"
	svc "msitumum/pkg/cost/service"
	nurseryrepo "msitumum/pkg/nursery/repository"
	plantrepo "msitumum/pkg/planting/repository"
)

const defaultCurrency = "KES"

type service struct {
	repo      repository.CostRepository
	plantings plantrepo.PlantingRepository
	nurseries nurseryrepo.NurseryRepository
}

func New(r repository.CostRepository, plantings plantrepo.PlantingRepository, nurseries nurseryrepo.NurseryRepository) svc.CostService {
	return &service{repo: r, plantings: plantings, nurseries: nurseries}
}

func (s *service) Create(ctx context.Context, c *entities.CostEntry) error {
	if c.PlantingID == nil && c.NurseryID == nil {
		return apperr.Validation("planting_id or nursery_id is required")
	}
	if !entities.ValidCostCategory(c.CostCategory) {
		return apperr.Validationf("cost_category must be one of: %s", strings.Join(entities.CostCategories, " "))
	}
	if c.Amount <= 0 {
		return apperr.Validation("amount must be greater than 0")
	}
	if c.Currency == "" {
		c.Currency = defaultCurrency
	}
	c.Currency = strings.ToUpper(c.Currency)
	if c.PlantingID != nil {
		if _, err := s.plantings.FindByID(ctx, *c.PlantingID); err != nil {
			return err
		}
	}
	if c.NurseryID != nil {
		if _, err := s.nurseries.FindByID(ctx, *c.NurseryID); err != nil {
			return err
		}
	}
	return s.repo.Create(ctx, c)
}

func (s *service) List(ctx context.Context, f repository.Filter) ([]entities.CostEntry, error) {
	return s.repo.List(ctx, f)
}
