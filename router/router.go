package router

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	analyticsCtrl "msitumum/pkg/analytics/controller"
	authCtrl "msitumum/pkg/auth/controller"
	"msitumum/pkg/auth/identity"
	bioCtrl "msitumum/pkg/biodiversity/controller"
	costCtrl "msitumum/pkg/cost/controller"
	"msitumum/pkg/middleware"
	monCtrl "msitumum/pkg/monitoring/controller"
	nurseryCtrl "msitumum/pkg/nursery/controller"
	plantCtrl "msitumum/pkg/planting/controller"
	predCtrl "msitumum/pkg/prediction/controller"
	siteCtrl "msitumum/pkg/site/controller"
	speciesCtrl "msitumum/pkg/species/controller"
)

type Controllers struct {
	Auth         authCtrl.AuthController
	Sites        siteCtrl.SiteController
	Species      speciesCtrl.SpeciesController
	Plantings    plantCtrl.PlantingController
	Monitoring   monCtrl.MonitoringController
	Nurseries    nurseryCtrl.NurseryController
	Biodiversity bioCtrl.BiodiversityController
	Costs        costCtrl.CostController
	Analytics    analyticsCtrl.AnalyticsController
	Predictions  predCtrl.PredictionController
	Health       interface{ Health(echo.Context) error }
}

type Options struct {
	Verifier    identity.Verifier
	LoginLimit  int
	LoginWindow time.Duration
	Metrics     http.Handler
}

func New(e *echo.Echo, ctl Controllers, opt Options) *echo.Echo {
	e.GET("/health", ctl.Health.Health)
	if opt.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(opt.Metrics))
	}

	api := e.Group("/api")
	api.GET("/health", ctl.Health.Health)

	authed := middleware.Auth(opt.Verifier)

	// auth
	auth := api.Group("/auth")
	limited := middleware.RateLimit(opt.LoginLimit, opt.LoginWindow)
	auth.POST("/register", ctl.Auth.Register, limited)
	auth.POST("/login", ctl.Auth.Login, limited)
	auth.POST("/logout", ctl.Auth.Logout, authed)
	auth.GET("/me", ctl.Auth.Me, authed)

	// species catalogue is public
	api.GET("/species", ctl.Species.List)
	api.GET("/species/:id", ctl.Species.Get)

	// The gate is attached per route. A gated group would register catch-all
	// routes under /api and answer unknown paths with 401 instead of 404.
	api.GET("/sites", ctl.Sites.List, authed)
	api.GET("/sites/:id", ctl.Sites.Get, authed)
	api.POST("/sites", ctl.Sites.Create, authed)
	api.PUT("/sites/:id", ctl.Sites.Update, authed)
	api.DELETE("/sites/:id", ctl.Sites.Delete, authed)

	api.GET("/planting", ctl.Plantings.List, authed)
	api.GET("/planting/:id", ctl.Plantings.Get, authed)
	api.POST("/planting", ctl.Plantings.Create, authed)
	api.PUT("/planting/:id", ctl.Plantings.Update, authed)

	api.GET("/monitoring/planting/:id", ctl.Monitoring.ListByPlanting, authed)
	api.POST("/monitoring", ctl.Monitoring.Create, authed)
	api.PUT("/monitoring/:id", ctl.Monitoring.Update, authed)

	api.GET("/nurseries", ctl.Nurseries.List, authed)
	api.GET("/nurseries/:id", ctl.Nurseries.Get, authed)
	api.POST("/nurseries", ctl.Nurseries.Create, authed)
	api.POST("/nurseries/:id/inventory", ctl.Nurseries.AddInventory, authed)
	api.PUT("/nurseries/inventory/:id", ctl.Nurseries.UpdateInventory, authed)
	api.GET("/nurseries/:id/forecast", ctl.Nurseries.Forecast, authed)

	api.GET("/biodiversity/site/:id", ctl.Biodiversity.ListBySite, authed)
	api.POST("/biodiversity", ctl.Biodiversity.Create, authed)
	api.GET("/biodiversity/comparison/:id", ctl.Biodiversity.Compare, authed)

	api.GET("/costs", ctl.Costs.List, authed)
	api.POST("/costs", ctl.Costs.Create, authed)

	api.GET("/analytics/dashboard", ctl.Analytics.Dashboard, authed)
	api.GET("/analytics/survival-rates", ctl.Analytics.SurvivalRates, authed)
	api.GET("/analytics/farmer-productivity", ctl.Analytics.FarmerProductivity, authed)
	api.GET("/analytics/cost-per-tree", ctl.Analytics.CostPerTree, authed)
	api.GET("/analytics/cost-per-tree/export", ctl.Analytics.ExportCostPerTree, authed)

	api.GET("/predictions/planting/:id", ctl.Predictions.ForPlanting, authed)
	api.GET("/predictions/summary", ctl.Predictions.Summary, authed)
	return e
}
