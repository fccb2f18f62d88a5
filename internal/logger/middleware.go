package logger

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogger attaches a request-scoped logger to the request context and
// logs one line per request once the handler chain has finished.
// It expects the RequestID middleware to run first.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			reqID := c.Response().Header().Get(echo.HeaderXRequestID)
			if reqID == "" {
				reqID = req.Header.Get(echo.HeaderXRequestID)
			}

			ctx := WithLogger(req.Context(), map[string]interface{}{
				"request_id": reqID,
				"method":     req.Method,
				"path":       req.URL.Path,
			})
			c.SetRequest(req.WithContext(ctx))

			if err := next(c); err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			l := getLogger(ctx)
			evt := l.Info()
			if status >= http.StatusInternalServerError {
				evt = l.Error()
			} else if status >= http.StatusBadRequest {
				evt = l.Warn()
			}
			evt.Int("status", status).
				Int64("bytes_out", c.Response().Size).
				Dur("latency", time.Since(start)).
				Msg("request completed")
			return nil
		}
	}
}
