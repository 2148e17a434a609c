package entities

import "time"

var CostCategories = []string{"seedlings", "labor", "transport", "materials", "maintenance"}

func ValidCostCategory(c string) bool {
	for _, v := range CostCategories {
		if v == c {
			return true
		}
	}
	return false
}

type CostEntry struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"index" json:"user_id"`
	PlantingID      *uint     `gorm:"index" json:"planting_id"`
	NurseryID       *uint     `gorm:"index" json:"nursery_id"`
	CostCategory    string    `gorm:"not null" json:"cost_category"`
	Amount          float64   `gorm:"not null" json:"amount"`
	Currency        string    `gorm:"default:KES" json:"currency"`
	Description     string    `json:"description"`
	TransactionDate time.Time `json:"transaction_date"`
	CreatedAt       time.Time `json:"created_at"`
}

func (CostEntry) TableName() string { return "cost_tracking" }
