package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopfront/admin-api/internal/api/metrics"
	"github.com/shopfront/admin-api/internal/core/domain"
)

// AttemptLimiter counts attempts per key in a window.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
	Reset(ctx context.Context, key string) error
}

// LoginThrottle limits sign-in attempts per client IP. A successful sign-in
// clears the counter. Limiter failures let the request through.
func LoginThrottle(limiter AttemptLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if limiter == nil {
			return next
		}
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := c.RealIP()

			ok, retryAfter, err := limiter.Allow(ctx, key)
			if err != nil {
				log.Warn().Err(err).Str("ip", key).Msg("login limiter unavailable")
				return next(c)
			}
			if !ok {
				metrics.LoginAttemptsTotal.WithLabelValues("throttled").Inc()
				log.Warn().Str("ip", key).Dur("retry_after", retryAfter).Msg("login throttled")
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
				return domain.ErrTooManyAttempts
			}

			if err := next(c); err != nil {
				return err
			}
			if c.Response().Status == http.StatusOK {
				if err := limiter.Reset(ctx, key); err != nil {
					log.Warn().Err(err).Str("ip", key).Msg("login limiter reset failed")
				}
			}
			return nil
		}
	}
}
