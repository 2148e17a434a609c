package controller

import "github.com/labstack/echo/v4"

type NurseryController interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	AddInventory(c echo.Context) error
	UpdateInventory(c echo.Context) error
	Forecast(c echo.Context) error
}
