package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"msitumum/entities"
	"msitumum/pkg/biodiversity/service"
	"msitumum/pkg/middleware"
	"msitumum/pkg/params"
)

type BiodiversityCtrl struct{ s service.BiodiversityService }

func New(s service.BiodiversityService) *BiodiversityCtrl { return &BiodiversityCtrl{s} }

type observationReq struct {
	SiteID                 uint     `json:"site_id" validate:"required"`
	ObservationDate        string   `json:"observation_date"`
	ObservationType        string   `json:"observation_type" validate:"required,oneof=baseline follow_up"`
	BirdSpeciesCount       *int     `json:"bird_species_count" validate:"omitempty,gte=0"`
	PollinatorSpeciesCount *int     `json:"pollinator_species_count" validate:"omitempty,gte=0"`
	PlantSpeciesCount      *int     `json:"plant_species_count" validate:"omitempty,gte=0"`
	WildlifeSightings      string   `json:"wildlife_sightings"`
	CanopyCoverPercent     *float64 `json:"canopy_cover_percent" validate:"omitempty,gte=0,lte=100"`
	QuadratSamplingData    string   `json:"quadrat_sampling_data"`
	SpeciesRichnessIndex   *float64 `json:"species_richness_index" validate:"omitempty,gte=0"`
	PhotoURL               string   `json:"photo_url"`
	Notes                  string   `json:"notes"`
}

func (h *BiodiversityCtrl) ListBySite(c echo.Context) error {
	sid, err := params.ID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.s.ListBySite(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BiodiversityCtrl) Create(c echo.Context) error {
	var req observationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	d, err := params.Date("observation_date", req.ObservationDate, time.Now().UTC())
	if err != nil {
		return err
	}
	b := &entities.BiodiversityRecord{
		SiteID:                 req.SiteID,
		UserID:                 middleware.UID(c),
		ObservationDate:        d,
		ObservationType:        req.ObservationType,
		BirdSpeciesCount:       req.BirdSpeciesCount,
		PollinatorSpeciesCount: req.PollinatorSpeciesCount,
		PlantSpeciesCount:      req.PlantSpeciesCount,
		WildlifeSightings:      req.WildlifeSightings,
		CanopyCoverPercent:     req.CanopyCoverPercent,
		QuadratSamplingData:    req.QuadratSamplingData,
		SpeciesRichnessIndex:   req.SpeciesRichnessIndex,
		PhotoURL:               req.PhotoURL,
		Notes:                  req.Notes,
	}
	if err := h.s.Create(c.Request().Context(), b); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"message": "Biodiversity record created successfully", "id": b.ID})
}

func (h *BiodiversityCtrl) Compare(c echo.Context) error {
	sid, err := params.ID(c, "id")
	if err != nil {
		return err
	}
	out, err := h.s.Compare(c.Request().Context(), sid)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}
