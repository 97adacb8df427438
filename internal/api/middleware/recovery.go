package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
)

// Recovery returns Echo middleware that recovers from handler panics,
// logs the stack trace, and responds 500 to the client. The request id
// assigned by RequestLog is carried into the log line and the response
// body so a client report can be matched to the stack trace.
func Recovery(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					buf := make([]byte, 4096)
					n := runtime.Stack(buf, false)

					reqID, _ := c.Get("request_id").(string)

					log.Error("panic recovered",
						"error", fmt.Sprint(r),
						"method", c.Request().Method,
						"path", c.Request().URL.Path,
						"request_id", reqID,
						"stack", string(buf[:n]),
					)

					body := map[string]string{"error": "internal server error"}
					if reqID != "" {
						body["request_id"] = reqID
					}
					err = c.JSON(http.StatusInternalServerError, body)
				}
			}()
			return next(c)
		}
	}
}
