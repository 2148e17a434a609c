package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"msitumum/entities"
	"msitumum/pkg/middleware"
	"msitumum/pkg/nursery/service"
	"msitumum/pkg/params"
)

type NurseryCtrl struct{ s service.NurseryService }

func New(s service.NurseryService) *NurseryCtrl { return &NurseryCtrl{s} }

type nurseryReq struct {
	NurseryName           string   `json:"nursery_name" validate:"required"`
	LocationName          string   `json:"location_name"`
	Latitude              *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude             *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	TotalCapacity         int      `json:"total_capacity" validate:"gte=0"`
	TotalBeds             int      `json:"total_beds" validate:"gte=0"`
	SoilMixSandPercent    *float64 `json:"soil_mix_sand_percent" validate:"omitempty,gte=0,lte=100"`
	SoilMixLoamPercent    *float64 `json:"soil_mix_loam_percent" validate:"omitempty,gte=0,lte=100"`
	SoilMixCompostPercent *float64 `json:"soil_mix_compost_percent" validate:"omitempty,gte=0,lte=100"`
	WateringSchedule      string   `json:"watering_schedule"`
	ManagerName           string   `json:"manager_name"`
	ManagerPhone          string   `json:"manager_phone"`
}

type inventoryReq struct {
	SpeciesID         uint     `json:"species_id" validate:"required"`
	CurrentCount      int      `json:"current_count" validate:"gte=0"`
	SowingDate        *string  `json:"sowing_date"`
	GerminationRate   *float64 `json:"germination_rate" validate:"omitempty,gte=0,lte=100"`
	SeedlingStage     string   `json:"seedling_stage" validate:"omitempty,oneof=sowing germination hardening ready"`
	ExpectedReadyDate *string  `json:"expected_ready_date"`
	BedNumber         string   `json:"bed_number"`
	DiseaseNotes      string   `json:"disease_notes"`
	PestNotes         string   `json:"pest_notes"`
	PhotoURL          string   `json:"photo_url"`
}

func (h *NurseryCtrl) List(c echo.Context) error {
	out, err := h.s.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *NurseryCtrl) Get(c echo.Context) error {
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

func (h *NurseryCtrl) Create(c echo.Context) error {
	var req nurseryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	n := &entities.Nursery{
		UserID:                middleware.UID(c),
		NurseryName:           req.NurseryName,
		LocationName:          req.LocationName,
		Latitude:              req.Latitude,
		Longitude:             req.Longitude,
		TotalCapacity:         req.TotalCapacity,
		TotalBeds:             req.TotalBeds,
		SoilMixSandPercent:    req.SoilMixSandPercent,
		SoilMixLoamPercent:    req.SoilMixLoamPercent,
		SoilMixCompostPercent: req.SoilMixCompostPercent,
		WateringSchedule:      req.WateringSchedule,
		ManagerName:           req.ManagerName,
		ManagerPhone:          req.ManagerPhone,
	}
	if err := h.s.Create(c.Request().Context(), n); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"message": "Nursery created successfully", "id": n.ID})
}

func (h *NurseryCtrl) AddInventory(c echo.Context) error {
	nid, err := params.ID(c, "id")
	if err != nil {
		return err
	}
	var req inventoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	sowing, err := params.OptionalDate("sowing_date", req.SowingDate)
	if err != nil {
		return err
	}
	ready, err := params.OptionalDate("expected_ready_date", req.ExpectedReadyDate)
	if err != nil {
		return err
	}
	item := &entities.NurseryInventory{
		NurseryID:         nid,
		SpeciesID:         req.SpeciesID,
		CurrentCount:      req.CurrentCount,
		SowingDate:        sowing,
		GerminationRate:   req.GerminationRate,
		SeedlingStage:     req.SeedlingStage,
		ExpectedReadyDate: ready,
		BedNumber:         req.BedNumber,
		DiseaseNotes:      req.DiseaseNotes,
		PestNotes:         req.PestNotes,
		PhotoURL:          req.PhotoURL,
	}
	if err := h.s.AddInventory(c.Request().Context(), middleware.UID(c), item); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"message": "Inventory updated successfully", "id": item.ID})
}

func (h *NurseryCtrl) UpdateInventory(c echo.Context) error {
	id, err := params.ID(c, "id")
	if err != nil {
		return err
	}
	var patch service.InventoryPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if err := c.Validate(&patch); err != nil {
		return err
	}
	if err := h.s.UpdateInventory(c.Request().Context(), id, middleware.UID(c), patch); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Inventory item updated successfully"})
}

func (h *NurseryCtrl) Forecast(c echo.Context) error {
	id, err := params.ID(c, "id")
	if err != nil {
		return err
	}
	months, err := params.IntDefault(c, "months", 3)
	if err != nil {
		return err
	}
	out, err := h.s.Forecast(c.Request().Context(), id, months)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}
