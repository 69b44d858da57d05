package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/verdantgarden/verdant/internal/config"
)

// SecurityHeadersMiddleware adds security headers to all responses
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		// Prevent clickjacking
		c.Header("X-Frame-Options", "SAMEORIGIN")

		// Content Security Policy. Inline styles are required: the
		// whole product is per-garden generated CSS.
		csp := "default-src 'self'; " +
			"script-src 'self'; " +
			"style-src 'self' 'unsafe-inline'; " +
			"img-src 'self' data:; " +
			"font-src 'self' data:; " +
			"connect-src 'self'"
		c.Header("Content-Security-Policy", csp)

		// HTTP Strict Transport Security (HSTS) - only if TLS is enabled
		if config.GetBool("server.tls_enabled") {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}
