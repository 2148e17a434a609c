package entities

import (
	"time"

	"gorm.io/datatypes"
)

// Prediction is one stored projection snapshot. Rows are only ever appended.
// Survival values are percentages, risk and confidence scores are 0..1.
type Prediction struct {
	ID                       uint           `gorm:"primaryKey" json:"id"`
	PlantingID               uint           `gorm:"index;not null" json:"planting_id"`
	PredictionDate           time.Time      `gorm:"index" json:"prediction_date"`
	SurvivalProbability1Year float64        `gorm:"column:survival_probability_1year" json:"survival_probability_1year"`
	SurvivalProbability3Year float64        `gorm:"column:survival_probability_3year" json:"survival_probability_3year"`
	SurvivalProbability5Year float64        `gorm:"column:survival_probability_5year" json:"survival_probability_5year"`
	BiomassGainKg            float64        `json:"biomass_gain_kg"`
	CarbonSequestrationKg    float64        `json:"carbon_sequestration_kg"`
	DroughtRiskScore         float64        `json:"drought_risk_score"`
	PestRiskScore            float64        `json:"pest_risk_score"`
	FireRiskScore            float64        `json:"fire_risk_score"`
	ConfidenceScore          float64        `json:"confidence_score"`
	InfluencingFactors       datatypes.JSON `json:"influencing_factors"`
	Recommendations          string         `json:"recommendations"`
	CreatedAt                time.Time      `json:"created_at"`
}

func (Prediction) TableName() string { return "predictions" }
