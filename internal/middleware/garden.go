package middleware

import (
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/verdantgarden/verdant/internal/gardens"
	"github.com/verdantgarden/verdant/internal/models"
	"gorm.io/gorm"
)

// CacheEntry represents a cached garden with expiration
type CacheEntry struct {
	Garden    *models.Garden
	ExpiresAt time.Time
}

var (
	gardenCache sync.Map
	cacheTTL    = 60 * time.Second
)

// GardenResolutionMiddleware resolves the garden based on Host header
func GardenResolutionMiddleware(db *gorm.DB, baseDomain string) gin.HandlerFunc {
	return func(c *gin.Context) {
		host := strings.ToLower(c.Request.Host)

		// Remove port if present
		if idx := strings.Index(host, ":"); idx != -1 {
			host = host[:idx]
		}

		// Check cache first
		if entry, ok := gardenCache.Load(host); ok {
			cacheEntry := entry.(CacheEntry)
			if time.Now().Before(cacheEntry.ExpiresAt) {
				c.Set("garden", cacheEntry.Garden)
				c.Next()
				return
			}
			// Cache expired, remove it
			gardenCache.Delete(host)
		}

		// Cache miss - query database
		var garden *models.Garden
		var err error

		// Try custom domain first
		garden, err = gardens.GetGardenByDomain(db, host)

		// If not found by custom domain, try subdomain
		if err != nil {
			subdomain := extractSubdomain(host, baseDomain)
			if subdomain != "" {
				garden, err = gardens.GetGardenBySubdomain(db, subdomain)
			}
		}

		// Garden not found - return 404
		if err != nil || garden == nil {
			c.AbortWithStatus(404)
			return
		}

		// Cache the garden
		gardenCache.Store(host, CacheEntry{
			Garden:    garden,
			ExpiresAt: time.Now().Add(cacheTTL),
		})

		// Set garden in context
		c.Set("garden", garden)
		c.Next()
	}
}

// extractSubdomain extracts the subdomain from a host
// e.g., "ferns.verdant.garden" with baseDomain "verdant.garden" returns "ferns"
func extractSubdomain(host, baseDomain string) string {
	if !strings.HasSuffix(host, "."+baseDomain) {
		return ""
	}

	// Remove base domain and trailing dot
	subdomain := strings.TrimSuffix(host, "."+baseDomain)

	// Check if there are any remaining dots (nested subdomains not supported)
	if strings.Contains(subdomain, ".") {
		return ""
	}

	return subdomain
}

// ClearGardenCache clears the entire garden cache (useful for testing)
func ClearGardenCache() {
	gardenCache = sync.Map{}
}
