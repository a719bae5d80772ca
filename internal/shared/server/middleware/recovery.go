package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"resume-styler/internal/shared/server/respond"
	"resume-styler/internal/shared/telemetry"
)

// Recovery turns handler panics into a 500 `internal` error body. If a
// download already started streaming, the connection is only aborted so the
// partial file is not followed by JSON.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}
			telemetry.Error("handler.panic", map[string]any{
				"request_id":  RequestIDFromContext(c),
				"error":       rec,
				"stack":       string(debug.Stack()),
				"path":        c.Request.URL.Path,
				"method":      c.Request.Method,
				"template":    c.GetString("template"),
				"document_id": c.GetString("documentId"),
				"written":     c.Writer.Written(),
			})
			if c.Writer.Written() {
				c.Abort()
				return
			}
			respond.Error(c, http.StatusInternalServerError, "internal", "Unexpected server error", nil)
		}()
		c.Next()
	}
}
