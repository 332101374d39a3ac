package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
	"github.com/fokanendapascal/internship-management-app/internal/security"
	"github.com/fokanendapascal/internship-management-app/pkg/response"
)

// Authorize evaluates the route authorization matrix against the
// principal bound by Authenticate. Runs after Authenticate on every
// route; exempted requests were already let through without a principal
// and match the matrix's public rules.
func Authorize(matrix *security.Matrix) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		principal := security.PrincipalFromContext(c.Request.Context())
		err := matrix.Evaluate(c.Request.Method, c.Request.URL.Path, principal)
		if err == nil {
			c.Next()
			return
		}

		if errors.Is(err, domain.ErrForbidden) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Insufficient role for this operation", "")
		} else {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", "")
		}
		c.Abort()
	}
}
