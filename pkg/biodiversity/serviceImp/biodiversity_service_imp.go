package serviceImp

import (
	"context"

	"msitumum/entities"
	"msitumum/pkg/apperr"
	"msitumum/pkg/biodiversity/repository"
	"msitumum/pkg/biodiversity/service"
	siterepo "msitumum/pkg/site/repository"
)

type biodiversitySvc struct {
	r     repository.BiodiversityRepository
	sites siterepo.SiteRepository
}

func NewBiodiversityService(r repository.BiodiversityRepository, sites siterepo.SiteRepository) service.BiodiversityService {
	return &biodiversitySvc{r: r, sites: sites}
}

func (s *biodiversitySvc) Create(ctx context.Context, b *entities.BiodiversityRecord) error {
	if b.ObservationType != entities.ObservationBaseline && b.ObservationType != entities.ObservationFollowUp {
		return apperr.Validation("observation_type must be one of: baseline follow_up")
	}
	if _, err := s.sites.FindByID(ctx, b.SiteID); err != nil {
		return err
	}
	return s.r.Create(ctx, b)
}

func (s *biodiversitySvc) ListBySite(ctx context.Context, siteID uint) ([]repository.ObservationView, error) {
	return s.r.ListBySite(ctx, siteID)
}

func (s *biodiversitySvc) Compare(ctx context.Context, siteID uint) (*service.Comparison, error) {
	base, err := s.r.EarliestOf(ctx, siteID, entities.ObservationBaseline)
	if err != nil {
		return nil, err
	}
	latest, err := s.r.LatestOf(ctx, siteID, entities.ObservationFollowUp)
	if err != nil {
		return nil, err
	}
	return &service.Comparison{Baseline: base, Latest: latest, Improvement: Diff(base, latest)}, nil
}

// Diff subtracts baseline from follow-up field by field. It is nil unless both records exist.
func Diff(base, latest *entities.BiodiversityRecord) *service.Improvement {
	if base == nil || latest == nil {
		return nil
	}
	return &service.Improvement{
		BirdSpecies:       subInt(latest.BirdSpeciesCount, base.BirdSpeciesCount),
		PollinatorSpecies: subInt(latest.PollinatorSpeciesCount, base.PollinatorSpeciesCount),
		PlantSpecies:      subInt(latest.PlantSpeciesCount, base.PlantSpeciesCount),
		CanopyCover:       subFloat(latest.CanopyCoverPercent, base.CanopyCoverPercent),
		RichnessIndex:     subFloat(latest.SpeciesRichnessIndex, base.SpeciesRichnessIndex),
	}
}

func subInt(a, b *int) *int {
	if a == nil || b == nil {
		return nil
	}
	v := *a - *b
	return &v
}

func subFloat(a, b *float64) *float64 {
	if a == nil || b == nil {
		return nil
	}
	v := *a - *b
	return &v
}
