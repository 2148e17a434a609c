// Package params parses path and query values shared by the HTTP handlers.
package params

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"msitumum/pkg/apperr"
)

const dateLayout = "2006-01-02"

func ID(c echo.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		return 0, apperr.Validationf("invalid %s", name)
	}
	return uint(v), nil
}

// OptionalUint reads a query value; an empty value yields nil.
func OptionalUint(c echo.Context, name string) (*uint, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, apperr.Validationf("invalid %s", name)
	}
	u := uint(v)
	return &u, nil
}

func IntDefault(c echo.Context, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, apperr.Validationf("invalid %s", name)
	}
	return v, nil
}

// Date accepts YYYY-MM-DD or RFC3339. An empty string returns fallback.
func Date(field, raw string, fallback time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, apperr.Validationf("%s must be a date (YYYY-MM-DD)", field)
}

// OptionalDate is Date for nullable columns.
func OptionalDate(field string, raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := Date(field, *raw, time.Time{})
	if err != nil {
		return nil, err
	}
	return &t, nil
}
