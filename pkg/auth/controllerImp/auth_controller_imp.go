package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"msitumum/pkg/auth/controller"
	svc "msitumum/pkg/auth/service"
	"msitumum/pkg/middleware"
)

type authCtrl struct{ s svc.AuthService }

func NewAuthController(s svc.AuthService) controller.AuthController { return &authCtrl{s: s} }

func (h *authCtrl) Register(c echo.Context) error {
	var in svc.RegisterInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if err := c.Validate(&in); err != nil {
		return err
	}
	sess, err := h.s.Register(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"token":   sess.Token,
		"user":    sess.User,
	})
}

func (h *authCtrl) Login(c echo.Context) error {
	var in svc.LoginInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if err := c.Validate(&in); err != nil {
		return err
	}
	sess, err := h.s.Login(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   sess.Token,
		"user":    sess.User,
	})
}

func (h *authCtrl) Logout(c echo.Context) error {
	if err := h.s.Logout(c.Request().Context(), middleware.Token(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

func (h *authCtrl) Me(c echo.Context) error {
	u, err := h.s.Me(c.Request().Context(), middleware.UID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"user": u})
}
