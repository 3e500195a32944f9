package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BodyLimit rejects request bodies larger than limit bytes with 413.
// Requests that announce their size are refused before the handler runs;
// the rest are capped by http.MaxBytesReader while the handler reads.
func BodyLimit(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit <= 0 || c.Request.Body == nil {
			c.Next()
			return
		}
		if c.Request.ContentLength > limit {
			RequestLogger(c).Warn("Request body too large",
				"content_length", c.Request.ContentLength,
				"limit", limit)
			c.AbortWithStatus(http.StatusRequestEntityTooLarge)
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
