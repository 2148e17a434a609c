package controller

import "github.com/labstack/echo/v4"

type PredictionController interface {
	ForPlanting(c echo.Context) error
	Summary(c echo.Context) error
}
