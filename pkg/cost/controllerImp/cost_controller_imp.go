package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"msitumum/entities"
	"msitumum/pkg/cost/repository"
	csvc "msitumum/pkg/cost/service"
	"msitumum/pkg/middleware"
	"msitumum/pkg/params"
)

type CostCtrl struct{ s csvc.CostService }

func New(s csvc.CostService) *CostCtrl { return &CostCtrl{s: s} }

type costReq struct {
	PlantingID      *uint   `json:"planting_id"`
	NurseryID       *uint   `json:"nursery_id"`
	CostCategory    string  `json:"cost_category" validate:"required,oneof=seedlings labor transport materials maintenance"`
	Amount          float64 `json:"amount" validate:"gt=0"`
	Currency        string  `json:"currency" validate:"omitempty,len=3"`
	Description     string  `json:"description"`
	TransactionDate string  `json:"transaction_date"`
}

func (h *CostCtrl) Create(c echo.Context) error {
	var req costReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	d, err := params.Date("transaction_date", req.TransactionDate, time.Now().UTC())
	if err != nil {
		return err
	}
	in := &entities.CostEntry{
		UserID:          middleware.UID(c),
		PlantingID:      req.PlantingID,
		NurseryID:       req.NurseryID,
		CostCategory:    req.CostCategory,
		Amount:          req.Amount,
		Currency:        req.Currency,
		Description:     req.Description,
		TransactionDate: d,
	}
	if err := h.s.Create(c.Request().Context(), in); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{"message": "Cost recorded successfully", "id": in.ID})
}

func (h *CostCtrl) List(c echo.Context) error {
	var f repository.Filter
	var err error
	if f.PlantingID, err = params.OptionalUint(c, "planting_id"); err != nil {
		return err
	}
	if f.NurseryID, err = params.OptionalUint(c, "nursery_id"); err != nil {
		return err
	}
	if v := c.QueryParam("from"); v != "" {
		t, err := params.Date("from", v, time.Time{})
		if err != nil {
			return err
		}
		f.From = &t
	}
	if v := c.QueryParam("to"); v != "" {
		t, err := params.Date("to", v, time.Time{})
		if err != nil {
			return err
		}
		f.To = &t
	}
	list, err := h.s.List(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}
