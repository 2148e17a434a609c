package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"msitumum/pkg/apperr"
	"msitumum/pkg/auth/identity"
)

const (
	ctxPrincipal = "principal"
	ctxUID       = "uid"
	ctxToken     = "token"
)

// Auth rejects requests without a valid bearer token before any handler runs.
// On success the principal, its id and the raw token are stored on the context.
func Auth(v identity.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				return apperr.Unauthorized("Access token required")
			}
			p, err := v.Verify(c.Request().Context(), token)
			if err != nil {
				return err
			}
			c.Set(ctxPrincipal, p)
			c.Set(ctxUID, p.ID)
			c.Set(ctxToken, token)
			return next(c)
		}
	}
}

func bearerToken(h string) string {
	h = strings.TrimSpace(h)
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}

func Principal(c echo.Context) *identity.Principal {
	p, _ := c.Get(ctxPrincipal).(*identity.Principal)
	return p
}

// UID is the authenticated user id, 0 on public routes.
func UID(c echo.Context) uint {
	uid, _ := c.Get(ctxUID).(uint)
	return uid
}

func Token(c echo.Context) string {
	t, _ := c.Get(ctxToken).(string)
	return t
}
