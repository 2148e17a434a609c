package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"msitumum/entities"
	"msitumum/pkg/middleware"
	"msitumum/pkg/params"
	"msitumum/pkg/site/service"
)

type SiteCtrl struct{ s service.SiteService }

func New(s service.SiteService) *SiteCtrl { return &SiteCtrl{s} }

type createReq struct {
	SiteName     string   `json:"site_name" validate:"required"`
	LocationName string   `json:"location_name"`
	Latitude     *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	AreaHectares *float64 `json:"area_hectares" validate:"omitempty,gte=0"`
	SoilType     string   `json:"soil_type"`
	ClimateZone  string   `json:"climate_zone"`
}

type patchReq struct {
	SiteName     *string  `json:"site_name" validate:"omitempty,min=1"`
	LocationName *string  `json:"location_name"`
	Latitude     *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	AreaHectares *float64 `json:"area_hectares" validate:"omitempty,gte=0"`
	SoilType     *string  `json:"soil_type"`
	ClimateZone  *string  `json:"climate_zone"`
}

func (p patchReq) updates() map[string]any {
	m := map[string]any{}
	if p.SiteName != nil {
		m["site_name"] = *p.SiteName
	}
	if p.LocationName != nil {
		m["location_name"] = *p.LocationName
	}
	if p.Latitude != nil {
		m["latitude"] = *p.Latitude
	}
	if p.Longitude != nil {
		m["longitude"] = *p.Longitude
	}
	if p.AreaHectares != nil {
		m["area_hectares"] = *p.AreaHectares
	}
	if p.SoilType != nil {
		m["soil_type"] = *p.SoilType
	}
	if p.ClimateZone != nil {
		m["climate_zone"] = *p.ClimateZone
	}
	return m
}

func (h *SiteCtrl) List(c echo.Context) error {
	out, err := h.s.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SiteCtrl) Get(c echo.Context) error {
	id, err := params.ID(c, "id")
	if err != nil {
		return err
	}
	s, err := h.s.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SiteCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	s := &entities.PlantingSite{
		UserID:       middleware.UID(c),
		SiteName:     req.SiteName,
		LocationName: req.LocationName,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		AreaHectares: req.AreaHectares,
		SoilType:     req.SoilType,
		ClimateZone:  req.ClimateZone,
	}
	if err := h.s.Create(c.Request().Context(), s); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"message": "Site created successfully", "id": s.ID})
}

func (h *SiteCtrl) Update(c echo.Context) error {
	id, err := params.ID(c, "id")
	if err != nil {
		return err
	}
	var req patchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if err := h.s.Update(c.Request().Context(), id, middleware.UID(c), req.updates()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Site updated successfully"})
}

func (h *SiteCtrl) Delete(c echo.Context) error {
	id, err := params.ID(c, "id")
	if err != nil {
		return err
	}
	if err := h.s.Delete(c.Request().Context(), id, middleware.UID(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Site deleted successfully"})
}
