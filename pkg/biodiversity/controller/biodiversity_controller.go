package controller

import "github.com/labstack/echo/v4"

type BiodiversityController interface {
	ListBySite(c echo.Context) error
	Create(c echo.Context) error
	Compare(c echo.Context) error
}
