package serviceImp

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"msitumum/pkg/analytics"
	"msitumum/pkg/analytics/repository"
	svc "msitumum/pkg/analytics/service"
	"msitumum/pkg/apperr"
)

const DefaultPeriodMonths = 12

type service struct {
	repo repository.AnalyticsRepository
	now  func() time.Time
}

func New(r repository.AnalyticsRepository, now func() time.Time) svc.AnalyticsService {
	if now == nil {
		now = time.Now
	}
	return &service{repo: r, now: now}
}

func (s *service) Dashboard(ctx context.Context) (*analytics.Dashboard, error) {
	var (
		rows   []analytics.PlantingOutcome
		causes []analytics.MortalityCause
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rows, err = s.repo.Outcomes(gctx)
		return err
	})
	g.Go(func() (err error) {
		causes, err = s.repo.MortalityCauses(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	d := analytics.BuildDashboard(rows, causes)
	return &d, nil
}

func (s *service) SurvivalRates(ctx context.Context, q svc.SurvivalQuery) ([]analytics.SurvivalPoint, error) {
	months := q.Months
	if months == 0 {
		months = DefaultPeriodMonths
	}
	if months < 0 {
		return nil, apperr.Validation("period must be a positive number of months")
	}
	samples, err := s.repo.SurvivalSamples(ctx, repository.SampleFilter{
		Since:     s.now().UTC().AddDate(0, -months, 0),
		SiteID:    q.SiteID,
		SpeciesID: q.SpeciesID,
	})
	if err != nil {
		return nil, err
	}
	return analytics.SurvivalSeries(samples), nil
}

func (s *service) FarmerProductivity(ctx context.Context) ([]analytics.FarmerProductivity, error) {
	rows, err := s.repo.Outcomes(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.FarmerRanking(rows, analytics.FarmerLimit), nil
}

func (s *service) CostPerTree(ctx context.Context) ([]analytics.CostPerTree, error) {
	rows, err := s.repo.Outcomes(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.CostPerSurvivingTree(rows), nil
}

func (s *service) CostReport(ctx context.Context) ([]byte, error) {
	rows, err := s.CostPerTree(ctx)
	if err != nil {
		return nil, err
	}
	data, err := analytics.CostReportXLSX(rows)
	if err != nil {
		return nil, apperr.Upstream("Failed to build cost report", err)
	}
	return data, nil
}
