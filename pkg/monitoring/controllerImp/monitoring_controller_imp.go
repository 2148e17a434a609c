package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"msitumum/entities"
	"msitumum/pkg/middleware"
	"msitumum/pkg/monitoring/service"
	"msitumum/pkg/params"
)

type MonitoringCtrl struct{ s service.MonitoringService }

func New(s service.MonitoringService) *MonitoringCtrl { return &MonitoringCtrl{s} }

type monitoringReq struct {
	PlantingID            uint     `json:"planting_id" validate:"required"`
	MonitoringDate        string   `json:"monitoring_date"`
	SurvivalCount         int      `json:"survival_count" validate:"gte=0"`
	AverageHeightCM       *float64 `json:"average_height_cm" validate:"omitempty,gte=0"`
	AverageCanopyCM       *float64 `json:"average_canopy_cm" validate:"omitempty,gte=0"`
	HealthStatus          string   `json:"health_status" validate:"omitempty,oneof=healthy pests drought_stress disease"`
	MortalityCause        *string  `json:"mortality_cause"`
	RainfallMM            *float64 `json:"rainfall_mm" validate:"omitempty,gte=0"`
	MaintenanceActivities string   `json:"maintenance_activities"`
	PhotoURL              string   `json:"photo_url"`
	Notes                 string   `json:"notes"`
}

func (h *MonitoringCtrl) ListByPlanting(c echo.Context) error {
	pid, err := params.ID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.s.ListByPlanting(c.Request().Context(), pid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MonitoringCtrl) Create(c echo.Context) error {
	var req monitoringReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	d, err := params.Date("monitoring_date", req.MonitoringDate, time.Now().UTC())
	if err != nil {
		return err
	}
	m := &entities.MonitoringRecord{
		PlantingID:            req.PlantingID,
		UserID:                middleware.UID(c),
		MonitoringDate:        d,
		SurvivalCount:         req.SurvivalCount,
		AverageHeightCM:       req.AverageHeightCM,
		AverageCanopyCM:       req.AverageCanopyCM,
		HealthStatus:          req.HealthStatus,
		MortalityCause:        req.MortalityCause,
		RainfallMM:            req.RainfallMM,
		MaintenanceActivities: req.MaintenanceActivities,
		PhotoURL:              req.PhotoURL,
		Notes:                 req.Notes,
	}
	if err := h.s.Create(c.Request().Context(), m); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"message": "Monitoring record created successfully", "id": m.ID})
}

func (h *MonitoringCtrl) Update(c echo.Context) error {
	id, err := params.ID(c, "id")
	if err != nil {
		return err
	}
	var patch service.MonitoringPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if err := c.Validate(&patch); err != nil {
		return err
	}
	if err := h.s.Update(c.Request().Context(), id, middleware.UID(c), patch); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Monitoring record updated successfully"})
}
