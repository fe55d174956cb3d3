package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware adds baseline security headers to all responses.
// The service only serves JSON, apart from the Swagger UI.
func SecurityHeadersMiddleware(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if production {
			c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		}

		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// Extraction results contain personal data
		c.Header("Cache-Control", "no-store")

		c.Next()
	}
}
