// SPDX-License-Identifier: MIT
package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const acmeChallengePrefix = "/.well-known/acme-challenge/"

// HTTPSRedirectMiddleware sends plain-HTTP requests to their HTTPS
// equivalent. ACME HTTP-01 challenges must stay on port 80, so they
// pass through untouched.
func HTTPSRedirectMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.TLS != nil || strings.HasPrefix(c.Request.URL.Path, acmeChallengePrefix) {
			c.Next()
			return
		}

		host := c.Request.Host
		if h, _, err := net.SplitHostPort(host); err == nil {
			host = h
		}
		c.Redirect(http.StatusMovedPermanently, "https://"+host+c.Request.RequestURI)
		c.Abort()
	}
}
