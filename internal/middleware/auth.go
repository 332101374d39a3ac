package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fokanendapascal/internship-management-app/internal/security"
)

const bearerPrefix = "Bearer "

// exemptPaths are matched by equality or prefix before any token work
// happens: API documentation and the endpoints that hand out tokens.
var exemptPaths = []string{
	"/docs",
	"/swagger",
	"/api/v1/auth/login",
	"/api/v1/auth/register",
}

func isExempt(path string) bool {
	for _, p := range exemptPaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// Authenticate resolves the bearer token once per request and binds the
// resulting principal to the request context. It never rejects by
// itself: exempted paths and CORS preflights pass through untouched,
// and a missing or unresolvable token simply leaves the request
// anonymous for the authorization layer to judge.
func Authenticate(resolver *security.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions || isExempt(c.Request.URL.Path) {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			c.Next()
			return
		}

		raw := strings.TrimPrefix(authHeader, bearerPrefix)
		principal, err := resolver.Resolve(c.Request.Context(), raw)
		if err != nil {
			// Proceed unauthenticated; the matrix produces the
			// uniform 401/403 surface.
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(security.WithPrincipal(c.Request.Context(), principal))
		c.Next()
	}
}
