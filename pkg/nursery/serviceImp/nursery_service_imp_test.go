package serviceImp_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"msitumum/database/dbtest"
	"msitumum/entities"
	"msitumum/pkg/apperr"
	"msitumum/pkg/nursery/repositoryImp"
	"msitumum/pkg/nursery/service"
	"msitumum/pkg/nursery/serviceImp"
	sprepo "msitumum/pkg/species/repositoryImp"
)

var now = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*gorm.DB, service.NurseryService, *entities.User, *entities.Nursery) {
	db := dbtest.Open(t)
	s := serviceImp.NewNurseryService(repositoryImp.New(db), sprepo.New(db), func() time.Time { return now })
	owner := dbtest.User(t, db, "wanjiku", entities.RoleNGO)
	n := &entities.Nursery{UserID: owner.ID, NurseryName: "Karura", TotalCapacity: 1000}
	require.NoError(t, s.Create(context.Background(), n))
	return db, s, owner, n
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestGetReportsTotalsAndUtilization(t *testing.T) {
	db, s, owner, n := setup(t)
	ctx := context.Background()
	sp := dbtest.Species(t, db, 0)

	require.NoError(t, s.AddInventory(ctx, owner.ID, &entities.NurseryInventory{NurseryID: n.ID, SpeciesID: sp.ID, CurrentCount: 300}))
	require.NoError(t, s.AddInventory(ctx, owner.ID, &entities.NurseryInventory{NurseryID: n.ID, SpeciesID: sp.ID, CurrentCount: 155, SeedlingStage: entities.StageReady}))

	d, err := s.Get(ctx, n.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 455, d.TotalSeedlings)
	assert.InDelta(t, 45.5, d.CapacityUtilization, 1e-9)
	require.Len(t, d.Inventory, 2)
	assert.Equal(t, entities.StageSowing, d.Inventory[0].SeedlingStage)
	assert.Equal(t, entities.StageReady, d.Inventory[1].SeedlingStage)
}

func TestAddInventoryRequiresOwner(t *testing.T) {
	db, s, _, n := setup(t)
	stranger := dbtest.User(t, db, "stranger", entities.RoleFarmer)
	sp := dbtest.Species(t, db, 0)

	err := s.AddInventory(context.Background(), stranger.ID, &entities.NurseryInventory{NurseryID: n.ID, SpeciesID: sp.ID, CurrentCount: 10})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestAddInventoryUnknownSpecies(t *testing.T) {
	_, s, owner, n := setup(t)
	err := s.AddInventory(context.Background(), owner.ID, &entities.NurseryInventory{NurseryID: n.ID, SpeciesID: 9999, CurrentCount: 10})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestUpdateInventoryOwned(t *testing.T) {
	db, s, owner, n := setup(t)
	ctx := context.Background()
	sp := dbtest.Species(t, db, 0)
	item := &entities.NurseryInventory{NurseryID: n.ID, SpeciesID: sp.ID, CurrentCount: 50}
	require.NoError(t, s.AddInventory(ctx, owner.ID, item))

	stage := entities.StageHardening
	count := 45
	require.NoError(t, s.UpdateInventory(ctx, item.ID, owner.ID, service.InventoryPatch{SeedlingStage: &stage, CurrentCount: &count}))

	var got entities.NurseryInventory
	require.NoError(t, db.First(&got, item.ID).Error)
	assert.Equal(t, stage, got.SeedlingStage)
	assert.Equal(t, 45, got.CurrentCount)

	err := s.UpdateInventory(ctx, item.ID, owner.ID+100, service.InventoryPatch{CurrentCount: &count})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	bad := "next week"
	err = s.UpdateInventory(ctx, item.ID, owner.ID, service.InventoryPatch{ExpectedReadyDate: &bad})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestForecast(t *testing.T) {
	db, s, owner, n := setup(t)
	ctx := context.Background()
	sp := dbtest.Species(t, db, 0)

	add := func(stage string, ready *time.Time) uint {
		it := &entities.NurseryInventory{NurseryID: n.ID, SpeciesID: sp.ID, CurrentCount: 10, SeedlingStage: stage, ExpectedReadyDate: ready}
		require.NoError(t, s.AddInventory(ctx, owner.ID, it))
		return it.ID
	}
	late := add(entities.StageHardening, date(2024, 8, 20))
	soon := add(entities.StageGermination, date(2024, 6, 10))
	add(entities.StageReady, date(2024, 6, 5))
	add(entities.StageSowing, date(2024, 12, 1))
	add(entities.StageSowing, nil)

	got, err := s.Forecast(ctx, n.ID, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, soon, got[0].ID)
	assert.Equal(t, late, got[1].ID)

	wide, err := s.Forecast(ctx, n.ID, 12)
	require.NoError(t, err)
	assert.Len(t, wide, 3)

	_, err = s.Forecast(ctx, 9999, 3)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}
