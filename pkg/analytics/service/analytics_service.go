package service

import (
	"context"

	"msitumum/pkg/analytics"
)

type SurvivalQuery struct {
	SiteID    *uint
	SpeciesID *uint
	Months    int
}

type AnalyticsService interface {
	Dashboard(ctx context.Context) (*analytics.Dashboard, error)
	SurvivalRates(ctx context.Context, q SurvivalQuery) ([]analytics.SurvivalPoint, error)
	FarmerProductivity(ctx context.Context) ([]analytics.FarmerProductivity, error)
	CostPerTree(ctx context.Context) ([]analytics.CostPerTree, error)
	CostReport(ctx context.Context) ([]byte, error)
}
