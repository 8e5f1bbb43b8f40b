package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/datalab/sample-tracker/internal/api/metrics"
	"github.com/datalab/sample-tracker/internal/core/domain"
	"github.com/datalab/sample-tracker/internal/core/ports"
)

// Guard wraps a protected route. The session is re-read on every request;
// allowed requests get the Identity injected under ContextIdentity, all
// others receive a 303 to the decision's redirect target with the
// decision itself as the JSON body.
func Guard(guard ports.AccessGuard, required domain.AccessLevel) echo.MiddlewareFunc {
	label := string(required)
	if label == "" {
		label = string(domain.LevelMember)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			from := c.Request().URL.RequestURI()

			var d domain.Decision
			if origin, _ := c.Get(ContextOrigin).(string); origin != "" {
				d = guard.Evaluate(c.Request().Context(), origin, required, from)
			} else {
				d = domain.Decide(required, nil, from)
			}
			metrics.GuardDecisionsTotal.WithLabelValues(label, string(d.State)).Inc()

			if !d.Allowed() {
				c.Response().Header().Set(echo.HeaderLocation, d.Location())
				return c.JSON(http.StatusSeeOther, d)
			}

			c.Set(ContextIdentity, d.Identity)
			return next(c)
		}
	}
}
