package server

import (
	"github.com/gin-gonic/gin"
)

const adminSubjectHeader = "X-Admin-Subject"

// RequireAdmin trusts the fronting proxy to authenticate operators and
// forward the admin principal. Requests without one are rejected.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := c.GetHeader(adminSubjectHeader)
		if subject == "" {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		c.Set("admin_subject", subject)
		c.Next()
	}
}
