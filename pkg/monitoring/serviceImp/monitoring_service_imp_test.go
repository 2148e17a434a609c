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
	"msitumum/pkg/monitoring/repositoryImp"
	"msitumum/pkg/monitoring/service"
	"msitumum/pkg/monitoring/serviceImp"
	plantrepo "msitumum/pkg/planting/repositoryImp"
)

func TestMonitoringLifecycle(t *testing.T) {
	db := dbtest.Open(t)
	s := serviceImp.NewMonitoringService(repositoryImp.New(db), plantrepo.New(db))
	ctx := context.Background()

	owner := dbtest.User(t, db, "amina", entities.RoleFarmer)
	other := dbtest.User(t, db, "baraka", entities.RoleFarmer)
	site := dbtest.Site(t, db, owner.ID, "Kakamega", "humid")
	p := dbtest.Planting(t, db, owner.ID, site.ID, dbtest.Species(t, db, 0).ID, 50)

	blank := "  "
	m := &entities.MonitoringRecord{PlantingID: p.ID, UserID: owner.ID, MonitoringDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), SurvivalCount: 45, MortalityCause: &blank}
	require.NoError(t, s.Create(ctx, m))
	assert.Equal(t, entities.HealthHealthy, m.HealthStatus)
	assert.Nil(t, m.MortalityCause)

	tooMany := &entities.MonitoringRecord{PlantingID: p.ID, UserID: owner.ID, SurvivalCount: 51}
	assert.True(t, apperr.Is(s.Create(ctx, tooMany), apperr.KindValidation))

	missing := &entities.MonitoringRecord{PlantingID: 999, UserID: owner.ID, SurvivalCount: 1}
	assert.True(t, apperr.Is(s.Create(ctx, missing), apperr.KindNotFound))

	count := 40
	cause := "drought"
	require.NoError(t, s.Update(ctx, m.ID, owner.ID, service.MonitoringPatch{SurvivalCount: &count, MortalityCause: &cause}))

	over := 60
	err := s.Update(ctx, m.ID, owner.ID, service.MonitoringPatch{SurvivalCount: &over})
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	// a stranger gets not-found before the count is checked
	err = s.Update(ctx, m.ID, other.ID, service.MonitoringPatch{SurvivalCount: &over})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	notes := "x"
	err = s.Update(ctx, m.ID, other.ID, service.MonitoringPatch{Notes: &notes})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	list, err := s.ListByPlanting(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 40, list[0].SurvivalCount)
	require.NotNil(t, list[0].MortalityCause)
	assert.Equal(t, "drought", *list[0].MortalityCause)
	assert.Equal(t, "amina", list[0].ObserverName)
}
