package serviceImp

import (
	"context"
	"strings"

	"msitumum/entities"
	"msitumum/pkg/apperr"
	"msitumum/pkg/site/repository"
	svc "msitumum/pkg/site/service"
)

type service struct{ repo repository.SiteRepository }

func NewSiteService(r repository.SiteRepository) svc.SiteService { return &service{repo: r} }

func (s *service) List(ctx context.Context) ([]repository.SiteSummary, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, id uint) (*repository.SiteSummary, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) Create(ctx context.Context, site *entities.PlantingSite) error {
	site.SiteName = strings.TrimSpace(site.SiteName)
	if site.SiteName == "" {
		return apperr.Validation("site_name is required")
	}
	return s.repo.Create(ctx, site)
}

func (s *service) Update(ctx context.Context, id, uid uint, updates map[string]any) error {
	if v, ok := updates["site_name"].(string); ok {
		v = strings.TrimSpace(v)
		if v == "" {
			return apperr.Validation("site_name cannot be empty")
		}
		updates["site_name"] = v
	}
	return s.repo.UpdateOwned(ctx, id, uid, updates)
}

func (s *service) Delete(ctx context.Context, id, uid uint) error {
	return s.repo.DeleteOwned(ctx, id, uid)
}
