package controller

import "github.com/labstack/echo/v4"

type CostController interface {
	List(c echo.Context) error
	Create(c echo.Context) error
}
