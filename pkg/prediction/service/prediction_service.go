package service

import (
	"context"

	"msitumum/entities"
)

// Summary averages survival and risk over the newest snapshot of each planting.
type Summary struct {
	TotalPlantings   int     `json:"total_plantings"`
	AvgSurvival1Year float64 `json:"avg_survival_1year"`
	AvgSurvival3Year float64 `json:"avg_survival_3year"`
	AvgSurvival5Year float64 `json:"avg_survival_5year"`
	TotalBiomass     float64 `json:"total_biomass"`
	TotalCarbon      float64 `json:"total_carbon"`
	AvgDroughtRisk   float64 `json:"avg_drought_risk"`
	AvgPestRisk      float64 `json:"avg_pest_risk"`
	AvgConfidence    float64 `json:"avg_confidence"`
}

type PredictionService interface {
	ForPlanting(ctx context.Context, plantingID uint) (*entities.Prediction, error)
	Summary(ctx context.Context, siteID *uint) (*Summary, error)
}
