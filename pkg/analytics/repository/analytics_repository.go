package repository

import (
	"context"
	"time"

	"msitumum/pkg/analytics"
)

type SampleFilter struct {
	Since     time.Time
	SiteID    *uint
	SpeciesID *uint
}

type AnalyticsRepository interface {
	// Outcomes returns one row per planting with its latest survival count and summed cost.
	Outcomes(ctx context.Context) ([]analytics.PlantingOutcome, error)
	MortalityCauses(ctx context.Context) ([]analytics.MortalityCause, error)
	SurvivalSamples(ctx context.Context, f SampleFilter) ([]analytics.SurvivalSample, error)
}
