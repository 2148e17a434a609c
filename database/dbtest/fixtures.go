package dbtest

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"msitumum/entities"
)

func must(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
}

func User(t testing.TB, db *gorm.DB, username, role string) *entities.User {
	t.Helper()
	u := &entities.User{
		Username:     username,
		Email:        fmt.Sprintf("%s@example.org", username),
		PasswordHash: "x",
		Role:         role,
		FullName:     username,
	}
	must(t, db.Create(u).Error)
	return u
}

func Site(t testing.TB, db *gorm.DB, owner uint, name, climate string) *entities.PlantingSite {
	t.Helper()
	s := &entities.PlantingSite{UserID: owner, SiteName: name, ClimateZone: climate}
	must(t, db.Create(s).Error)
	return s
}

// Species returns a seeded species by position in DefaultSpecies order.
func Species(t testing.TB, db *gorm.DB, n int) *entities.TreeSpecies {
	t.Helper()
	var sp entities.TreeSpecies
	must(t, db.Order("id ASC").Offset(n).First(&sp).Error)
	return &sp
}

func Planting(t testing.TB, db *gorm.DB, owner, site, species uint, seedlings int) *entities.PlantingRecord {
	t.Helper()
	p := &entities.PlantingRecord{
		UserID:           owner,
		SiteID:           site,
		SpeciesID:        species,
		SeedlingsPlanted: seedlings,
		PlantingDate:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		InitialHealth:    entities.InitialHealthy,
	}
	must(t, db.Create(p).Error)
	return p
}

func Monitoring(t testing.TB, db *gorm.DB, owner, planting uint, on time.Time, survival int, cause string) *entities.MonitoringRecord {
	t.Helper()
	m := &entities.MonitoringRecord{
		UserID:         owner,
		PlantingID:     planting,
		MonitoringDate: on.UTC(),
		SurvivalCount:  survival,
		HealthStatus:   entities.HealthHealthy,
	}
	if cause != "" {
		m.MortalityCause = &cause
	}
	must(t, db.Create(m).Error)
	return m
}

func Cost(t testing.TB, db *gorm.DB, owner, planting uint, amount float64) *entities.CostEntry {
	t.Helper()
	c := &entities.CostEntry{
		UserID:          owner,
		PlantingID:      &planting,
		CostCategory:    "labor",
		Amount:          amount,
		Currency:        "KES",
		TransactionDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	must(t, db.Create(c).Error)
	return c
}
