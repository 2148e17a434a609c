package database_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msitumum/config"
	"msitumum/database"
	"msitumum/database/dbtest"
	"msitumum/entities"
)

func TestMigrateSeedsSpeciesOnce(t *testing.T) {
	db := dbtest.Open(t)

	var n int64
	require.NoError(t, db.Model(&entities.TreeSpecies{}).Count(&n).Error)
	assert.EqualValues(t, len(database.DefaultSpecies), n)

	require.NoError(t, database.Migrate(db))
	require.NoError(t, db.Model(&entities.TreeSpecies{}).Count(&n).Error)
	assert.EqualValues(t, len(database.DefaultSpecies), n)

	var teak entities.TreeSpecies
	require.NoError(t, db.Where("common_name = ?", "Teak").First(&teak).Error)
	assert.Equal(t, "Tectona grandis", teak.ScientificName)
	assert.False(t, teak.Native)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := database.Open(config.DBConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestSQLiteEnforcesForeignKeysAndUTC(t *testing.T) {
	db := dbtest.Open(t)

	var on int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&on).Error)
	assert.Equal(t, 1, on)

	u := dbtest.User(t, db, "amina", entities.RoleFarmer)
	assert.Equal(t, time.UTC, u.CreatedAt.Location())

	orphan := &entities.PlantingRecord{UserID: u.ID, SiteID: 4242, SpeciesID: 1, SeedlingsPlanted: 10}
	assert.Error(t, db.Create(orphan).Error)
}
