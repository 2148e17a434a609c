package serviceImp_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msitumum/database/dbtest"
	"msitumum/entities"
	"msitumum/pkg/analytics/repositoryImp"
	svc "msitumum/pkg/analytics/service"
	"msitumum/pkg/analytics/serviceImp"
	"msitumum/pkg/apperr"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T) (svc.AnalyticsService, func() fixture) {
	db := dbtest.Open(t)
	s := serviceImp.New(repositoryImp.New(db), func() time.Time { return now })
	return s, func() fixture {
		farmer := dbtest.User(t, db, "amina", entities.RoleFarmer)
		ngo := dbtest.User(t, db, "greenbelt", entities.RoleNGO)
		site := dbtest.Site(t, db, farmer.ID, "Kakamega", "humid")
		mukau := dbtest.Species(t, db, 0)
		grev := dbtest.Species(t, db, 1)

		p1 := dbtest.Planting(t, db, farmer.ID, site.ID, mukau.ID, 100)
		p2 := dbtest.Planting(t, db, ngo.ID, site.ID, grev.ID, 50)

		day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		dbtest.Monitoring(t, db, farmer.ID, p1.ID, day.AddDate(0, -1, 0), 95, "")
		// same date: the later row wins
		dbtest.Monitoring(t, db, farmer.ID, p1.ID, day, 70, "drought")
		dbtest.Monitoring(t, db, farmer.ID, p1.ID, day, 80, "drought")
		dbtest.Monitoring(t, db, ngo.ID, p2.ID, day, 25, "pests")

		dbtest.Cost(t, db, farmer.ID, p1.ID, 3000)
		dbtest.Cost(t, db, farmer.ID, p1.ID, 1000)
		dbtest.Cost(t, db, ngo.ID, p2.ID, 500)
		return fixture{p1: p1.ID, p2: p2.ID, site: site.ID, mukau: mukau.ID}
	}
}

type fixture struct{ p1, p2, site, mukau uint }

func TestDashboardEmpty(t *testing.T) {
	s, _ := newService(t)
	d, err := s.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Zero(t, d.Overall.TotalPlanted)
	assert.Zero(t, d.Overall.SurvivalRate)
	assert.Empty(t, d.MortalityCauses)
}

func TestDashboard(t *testing.T) {
	s, seed := newService(t)
	seed()

	d, err := s.Dashboard(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 150, d.Overall.TotalPlanted)
	assert.InDelta(t, 65.0, d.Overall.SurvivalRate, 1e-9)

	require.Len(t, d.MortalityCauses, 2)
	assert.Equal(t, "drought", d.MortalityCauses[0].Cause)
	assert.EqualValues(t, 2, d.MortalityCauses[0].Count)

	require.Len(t, d.SpeciesSurvival, 2)
	assert.InDelta(t, 80.0, d.SpeciesSurvival[0].SurvivalRate, 1e-9)
	require.Len(t, d.SitePerformance, 1)
	assert.Equal(t, "Kakamega", d.SitePerformance[0].SiteName)
}

func TestFarmerProductivityAndCost(t *testing.T) {
	s, seed := newService(t)
	f := seed()
	ctx := context.Background()

	farmers, err := s.FarmerProductivity(ctx)
	require.NoError(t, err)
	require.Len(t, farmers, 1)
	assert.Equal(t, "amina", farmers[0].FullName)
	assert.EqualValues(t, 100, farmers[0].TotalSeedlings)

	costs, err := s.CostPerTree(ctx)
	require.NoError(t, err)
	require.Len(t, costs, 2)
	assert.Equal(t, f.p2, costs[0].ID)
	assert.InDelta(t, 20.0, costs[0].CostPerSurvivingTree, 1e-9)
	assert.Equal(t, f.p1, costs[1].ID)
	assert.InDelta(t, 4000.0, costs[1].TotalCost, 1e-9)
	assert.Equal(t, 80, costs[1].SurvivingTrees)

	data, err := s.CostReport(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestSurvivalRates(t *testing.T) {
	s, seed := newService(t)
	f := seed()
	ctx := context.Background()

	all, err := s.SurvivalRates(ctx, svc.SurvivalQuery{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "2024-04-01", all[0].Date)
	assert.InDelta(t, 95.0, all[0].SurvivalRate, 1e-9)
	assert.Equal(t, "2024-05-01", all[1].Date)
	assert.Equal(t, 2, all[1].PlantingsMonitored)

	recent, err := s.SurvivalRates(ctx, svc.SurvivalQuery{Months: 2})
	require.NoError(t, err)
	require.Len(t, recent, 1)

	bySpecies, err := s.SurvivalRates(ctx, svc.SurvivalQuery{SpeciesID: &f.mukau})
	require.NoError(t, err)
	require.Len(t, bySpecies, 2)
	assert.Equal(t, 1, bySpecies[1].PlantingsMonitored)
}

func TestSurvivalRatesRejectsNegativePeriod(t *testing.T) {
	s, _ := newService(t)
	_, err := s.SurvivalRates(context.Background(), svc.SurvivalQuery{Months: -1})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}
