package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"msitumum/entities"
	"msitumum/pkg/middleware"
	"msitumum/pkg/params"
	"msitumum/pkg/planting/repository"
	"msitumum/pkg/planting/service"
)

type PlantingCtrl struct{ s service.PlantingService }

func New(s service.PlantingService) *PlantingCtrl { return &PlantingCtrl{s} }

type createReq struct {
	SiteID           uint     `json:"site_id" validate:"required"`
	SpeciesID        uint     `json:"species_id" validate:"required"`
	SeedlingsPlanted int      `json:"seedlings_planted" validate:"gt=0"`
	PlantingDate     string   `json:"planting_date"`
	PlantingMethod   string   `json:"planting_method"`
	PitSizeCM        *float64 `json:"pit_size_cm" validate:"omitempty,gte=0"`
	SpacingMeters    *float64 `json:"spacing_meters" validate:"omitempty,gte=0"`
	Mulching         bool     `json:"mulching"`
	SoilCondition    string   `json:"soil_condition"`
	SoilMoisture     string   `json:"soil_moisture"`
	SoilPH           *float64 `json:"soil_ph" validate:"omitempty,gte=0,lte=14"`
	InitialHealth    string   `json:"initial_health" validate:"omitempty,oneof=healthy stressed"`
	PhotoURL         string   `json:"photo_url"`
	GPSAccuracy      *float64 `json:"gps_accuracy"`
	Notes            string   `json:"notes"`
}

func (h *PlantingCtrl) List(c echo.Context) error {
	siteID, err := params.OptionalUint(c, "site_id")
	if err != nil {
		return err
	}
	speciesID, err := params.OptionalUint(c, "species_id")
	if err != nil {
		return err
	}
	out, err := h.s.List(c.Request().Context(), repository.Filter{SiteID: siteID, SpeciesID: speciesID})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PlantingCtrl) Get(c echo.Context) error {
	id, err := params.ID(c, "id")
	if err != nil {
		return err
	}
	d, err := h.s.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

func (h *PlantingCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	pd, err := params.Date("planting_date", req.PlantingDate, time.Now().UTC())
	if err != nil {
		return err
	}
	p := &entities.PlantingRecord{
		SiteID:           req.SiteID,
		UserID:           middleware.UID(c),
		SpeciesID:        req.SpeciesID,
		SeedlingsPlanted: req.SeedlingsPlanted,
		PlantingDate:     pd,
		PlantingMethod:   req.PlantingMethod,
		PitSizeCM:        req.PitSizeCM,
		SpacingMeters:    req.SpacingMeters,
		Mulching:         req.Mulching,
		SoilCondition:    req.SoilCondition,
		SoilMoisture:     req.SoilMoisture,
		SoilPH:           req.SoilPH,
		InitialHealth:    req.InitialHealth,
		PhotoURL:         req.PhotoURL,
		GPSAccuracy:      req.GPSAccuracy,
		Notes:            req.Notes,
	}
	if err := h.s.Create(c.Request().Context(), p); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"message": "Planting record created successfully", "id": p.ID})
}

func (h *PlantingCtrl) Update(c echo.Context) error {
	id, err := params.ID(c, "id")
	if err != nil {
		return err
	}
	var patch service.PlantingPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if err := c.Validate(&patch); err != nil {
		return err
	}
	if err := h.s.Update(c.Request().Context(), id, middleware.UID(c), patch); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Planting record updated successfully"})
}
