package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"healthportal/internal/domain"
	jwtsvc "healthportal/internal/pkg/jwt"
)

const patientKey = "patient"

// Identity validates the Bearer token issued by the auth collaborator and
// places the patient profile into the request context.
func Identity(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			abortUnauthorized(c, "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			abortUnauthorized(c, "Invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			abortUnauthorized(c, "Empty token")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set(patientKey, claims.Patient())

		c.Next()
	}
}

// PatientFrom returns the identity stored by Identity.
func PatientFrom(c *gin.Context) (domain.Patient, bool) {
	v, ok := c.Get(patientKey)
	if !ok {
		return domain.Patient{}, false
	}
	p, ok := v.(domain.Patient)
	return p, ok
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
