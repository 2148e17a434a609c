// Package app assembles repositories, services and controllers into an echo server.
package app

import (
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"msitumum/config"
	"msitumum/pkg/apperr"
	"msitumum/pkg/logger"
	"msitumum/pkg/middleware"
	"msitumum/pkg/validate"
	"msitumum/router"

	analyticsCtrlImp "msitumum/pkg/analytics/controllerImp"
	analyticsRepoImp "msitumum/pkg/analytics/repositoryImp"
	analyticsSvc "msitumum/pkg/analytics/serviceImp"

	authCtrlImp "msitumum/pkg/auth/controllerImp"
	"msitumum/pkg/auth/identity"
	authRepoImp "msitumum/pkg/auth/repositoryImp"
	authSvc "msitumum/pkg/auth/serviceImp"

	bioCtrlImp "msitumum/pkg/biodiversity/controllerImp"
	bioRepoImp "msitumum/pkg/biodiversity/repositoryImp"
	bioSvc "msitumum/pkg/biodiversity/serviceImp"

	costCtrlImp "msitumum/pkg/cost/controllerImp"
	costRepoImp "msitumum/pkg/cost/repositoryImp"
	costSvc "msitumum/pkg/cost/serviceImp"

	healthCtrlImp "msitumum/pkg/health/controllerImp"

	monCtrlImp "msitumum/pkg/monitoring/controllerImp"
	monRepoImp "msitumum/pkg/monitoring/repositoryImp"
	monSvc "msitumum/pkg/monitoring/serviceImp"

	nurseryCtrlImp "msitumum/pkg/nursery/controllerImp"
	nurseryRepoImp "msitumum/pkg/nursery/repositoryImp"
	nurserySvc "msitumum/pkg/nursery/serviceImp"

	plantCtrlImp "msitumum/pkg/planting/controllerImp"
	plantRepoImp "msitumum/pkg/planting/repositoryImp"
	plantSvc "msitumum/pkg/planting/serviceImp"

	predCtrlImp "msitumum/pkg/prediction/controllerImp"
	predRepoImp "msitumum/pkg/prediction/repositoryImp"
	predSvc "msitumum/pkg/prediction/serviceImp"

	siteCtrlImp "msitumum/pkg/site/controllerImp"
	siteRepoImp "msitumum/pkg/site/repositoryImp"
	siteSvc "msitumum/pkg/site/serviceImp"

	speciesCtrlImp "msitumum/pkg/species/controllerImp"
	speciesRepoImp "msitumum/pkg/species/repositoryImp"
	speciesSvc "msitumum/pkg/species/serviceImp"
)

const speciesCacheTTL = 10 * time.Minute

type Deps struct {
	DB  *gorm.DB
	Log *logger.Logger
	// Redis is optional; without it revoked tokens are kept in the database.
	Redis redis.UniversalClient
	// Registry is optional; a fresh one with runtime collectors is created when nil.
	Registry *prometheus.Registry
	// Now is optional and only overridden in tests.
	Now func() time.Time
}

type App struct {
	Echo   *echo.Echo
	Tokens *identity.JWTProvider
}

func New(cfg config.AppConfig, d Deps) *App {
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Registry == nil {
		d.Registry = prometheus.NewRegistry()
		d.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	db := d.DB

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validate.New()
	e.HTTPErrorHandler = apperr.Handler(d.Log)

	metrics := middleware.NewMetrics(d.Registry)
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{AllowOrigins: cfg.CORS.Origins}))
	e.Use(middleware.RequestLog(d.Log))
	e.Use(metrics.Middleware())

	// Auth
	var revoked identity.RevocationStore
	if d.Redis != nil {
		revoked = authRepoImp.NewRedisRevocations(d.Redis)
	} else {
		revoked = authRepoImp.NewSQLRevocations(db)
	}
	tokens := identity.NewJWT(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, revoked, identity.WithClock(d.Now))
	users := authRepoImp.New(db)

	// Repos
	sites := siteRepoImp.New(db)
	species := speciesRepoImp.New(db)
	plantings := plantRepoImp.New(db)
	monitoring := monRepoImp.New(db)
	nurseries := nurseryRepoImp.New(db)

	ctl := router.Controllers{
		Auth:         authCtrlImp.NewAuthController(authSvc.NewAuthService(users, tokens)),
		Sites:        siteCtrlImp.New(siteSvc.NewSiteService(sites)),
		Species:      speciesCtrlImp.New(speciesSvc.NewSpeciesService(species, speciesCacheTTL)),
		Plantings:    plantCtrlImp.New(plantSvc.NewPlantingService(plantings, monitoring, sites, species)),
		Monitoring:   monCtrlImp.New(monSvc.NewMonitoringService(monitoring, plantings)),
		Nurseries:    nurseryCtrlImp.New(nurserySvc.NewNurseryService(nurseries, species, d.Now)),
		Biodiversity: bioCtrlImp.New(bioSvc.NewBiodiversityService(bioRepoImp.New(db), sites)),
		Costs:        costCtrlImp.New(costSvc.New(costRepoImp.New(db), plantings, nurseries)),
		Analytics:    analyticsCtrlImp.New(analyticsSvc.New(analyticsRepoImp.New(db), d.Now)),
		Predictions:  predCtrlImp.New(predSvc.New(predRepoImp.New(db), plantings, monitoring, sites, d.Now)),
		Health:       healthCtrlImp.NewHealthCtrl(db),
	}

	router.New(e, ctl, router.Options{
		Verifier:    tokens,
		LoginLimit:  cfg.Auth.LoginRate,
		LoginWindow: cfg.Auth.LoginWindow,
		Metrics:     promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}),
	})
	return &App{Echo: e, Tokens: tokens}
}
