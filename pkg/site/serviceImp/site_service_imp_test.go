package serviceImp_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msitumum/database/dbtest"
	"msitumum/entities"
	"msitumum/pkg/apperr"
	"msitumum/pkg/site/repositoryImp"
	"msitumum/pkg/site/serviceImp"
)

func TestCreateTrimsAndRequiresName(t *testing.T) {
	db := dbtest.Open(t)
	s := serviceImp.NewSiteService(repositoryImp.New(db))
	owner := dbtest.User(t, db, "amina", entities.RoleFarmer)
	ctx := context.Background()

	err := s.Create(ctx, &entities.PlantingSite{UserID: owner.ID, SiteName: "   "})
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	site := &entities.PlantingSite{UserID: owner.ID, SiteName: "  Kakamega Ridge ", ClimateZone: "humid"}
	require.NoError(t, s.Create(ctx, site))
	assert.NotZero(t, site.ID)
	assert.Equal(t, "Kakamega Ridge", site.SiteName)
	assert.Equal(t, time.UTC, site.CreatedAt.Location())
}

func TestListAndGetSummaries(t *testing.T) {
	db := dbtest.Open(t)
	s := serviceImp.NewSiteService(repositoryImp.New(db))
	owner := dbtest.User(t, db, "amina", entities.RoleFarmer)
	require.NoError(t, db.Model(owner).Updates(map[string]any{"organization": "GreenBelt", "phone": "0700000000"}).Error)
	busy := dbtest.Site(t, db, owner.ID, "Kakamega", "humid")
	dbtest.Site(t, db, owner.ID, "Nyeri", "highland")
	sp := dbtest.Species(t, db, 0)
	dbtest.Planting(t, db, owner.ID, busy.ID, sp.ID, 100)
	dbtest.Planting(t, db, owner.ID, busy.ID, sp.ID, 40)
	ctx := context.Background()

	got, err := s.Get(ctx, busy.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kakamega", got.SiteName)
	assert.Equal(t, "amina", got.OwnerName)
	assert.Equal(t, "GreenBelt", got.Organization)
	assert.Equal(t, "0700000000", got.OwnerPhone)
	assert.EqualValues(t, 2, got.TotalPlantings)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	counts := map[string]int64{}
	for _, row := range list {
		counts[row.SiteName] = row.TotalPlantings
		assert.Empty(t, row.OwnerPhone, "list must not expose phone numbers")
	}
	assert.Equal(t, map[string]int64{"Kakamega": 2, "Nyeri": 0}, counts)

	_, err = s.Get(ctx, 9999)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestUpdateIsOwnerScoped(t *testing.T) {
	db := dbtest.Open(t)
	s := serviceImp.NewSiteService(repositoryImp.New(db))
	owner := dbtest.User(t, db, "amina", entities.RoleFarmer)
	stranger := dbtest.User(t, db, "otieno", entities.RoleFarmer)
	site := dbtest.Site(t, db, owner.ID, "Kakamega", "humid")
	ctx := context.Background()

	err := s.Update(ctx, site.ID, stranger.ID, map[string]any{"site_name": "Taken"})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	err = s.Update(ctx, site.ID, owner.ID, map[string]any{"site_name": "  "})
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	require.NoError(t, s.Update(ctx, site.ID, owner.ID, map[string]any{"site_name": " Kakamega East ", "climate_zone": "dry"}))
	var got entities.PlantingSite
	require.NoError(t, db.First(&got, site.ID).Error)
	assert.Equal(t, "Kakamega East", got.SiteName)
	assert.Equal(t, "dry", got.ClimateZone)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("empty site", func(t *testing.T) {
		db := dbtest.Open(t)
		s := serviceImp.NewSiteService(repositoryImp.New(db))
		owner := dbtest.User(t, db, "amina", entities.RoleFarmer)
		stranger := dbtest.User(t, db, "otieno", entities.RoleFarmer)
		site := dbtest.Site(t, db, owner.ID, "Kakamega", "humid")

		err := s.Delete(ctx, site.ID, stranger.ID)
		assert.True(t, apperr.Is(err, apperr.KindNotFound))

		require.NoError(t, s.Delete(ctx, site.ID, owner.ID))
		_, err = s.Get(ctx, site.ID)
		assert.True(t, apperr.Is(err, apperr.KindNotFound))
	})

	t.Run("site with plantings is kept", func(t *testing.T) {
		db := dbtest.Open(t)
		s := serviceImp.NewSiteService(repositoryImp.New(db))
		owner := dbtest.User(t, db, "amina", entities.RoleFarmer)
		site := dbtest.Site(t, db, owner.ID, "Kakamega", "humid")
		p := dbtest.Planting(t, db, owner.ID, site.ID, dbtest.Species(t, db, 0).ID, 100)

		err := s.Delete(ctx, site.ID, owner.ID)
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.KindValidation))

		got, err := s.Get(ctx, site.ID)
		require.NoError(t, err)
		assert.Equal(t, "Kakamega", got.SiteName)
		var planting entities.PlantingRecord
		require.NoError(t, db.First(&planting, p.ID).Error)
		assert.Equal(t, site.ID, planting.SiteID)
	})

	t.Run("site with biodiversity records is kept", func(t *testing.T) {
		db := dbtest.Open(t)
		s := serviceImp.NewSiteService(repositoryImp.New(db))
		owner := dbtest.User(t, db, "amina", entities.RoleFarmer)
		site := dbtest.Site(t, db, owner.ID, "Kakamega", "humid")
		require.NoError(t, db.Create(&entities.BiodiversityRecord{
			SiteID: site.ID, UserID: owner.ID, ObservationType: entities.ObservationBaseline,
			ObservationDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		}).Error)

		err := s.Delete(ctx, site.ID, owner.ID)
		assert.True(t, apperr.Is(err, apperr.KindValidation))
		_, err = s.Get(ctx, site.ID)
		assert.NoError(t, err)
	})
}
