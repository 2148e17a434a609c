package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
	"github.com/labstack/echo/v4"
)

// RateLimit caps requests per client IP. Over the limit the client gets 429 {"error": ...}.
func RateLimit(limit int, window time.Duration) echo.MiddlewareFunc {
	limiter := httprate.NewRateLimiter(
		limit,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"Too many requests, please try again later"}`))
		}),
	)
	return echo.WrapMiddleware(limiter.Handler)
}
