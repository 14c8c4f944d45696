package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// the API only ever answers JSON or an xlsx download
	apiCSP = "default-src 'none'; frame-ancestors 'none'"
	// donation photos render as bare images, never as documents
	photoCSP = "default-src 'none'; img-src 'self'; sandbox"
)

// SecurityHeaders hardening headers. Responses under photoPrefix may be
// embedded by the shop front end on another origin; everything else stays same-origin.
func SecurityHeaders(photoPrefix string) gin.HandlerFunc {
	photoPrefix = strings.TrimRight(photoPrefix, "/") + "/"

	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		if photoPrefix != "/" && strings.HasPrefix(c.Request.URL.Path, photoPrefix) {
			c.Header("Content-Security-Policy", photoCSP)
			c.Header("Cross-Origin-Resource-Policy", "cross-origin")
			c.Header("Cache-Control", "public, max-age=86400")
		} else {
			c.Header("Content-Security-Policy", apiCSP)
			c.Header("Cross-Origin-Resource-Policy", "same-origin")
			c.Header("X-Frame-Options", "DENY")
			c.Header("Cache-Control", "no-store")
		}

		c.Next()
	}
}
