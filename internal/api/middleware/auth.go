package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/w4d32001/admin-eapiis/pkg/jwt"
	"github.com/w4d32001/admin-eapiis/pkg/response"
)

// Context keys set by JWTAuth.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
	CtxClaims = "claims"
)

// Revocations looks up access tokens revoked on logout.
type Revocations interface {
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

// JWTAuth validates the Bearer access token and injects user_id, role and
// claims into the context. revoked may be nil when Redis is not available.
func JWTAuth(jwtMgr *jwt.Manager, revoked Revocations) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "No autenticado.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "Cabecera de autorización inválida.")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "La sesión no es válida o ha expirado.")
			c.Abort()
			return
		}

		if revoked != nil && claims.ID != "" {
			// a lookup error lets the token through until it expires
			if hit, err := revoked.IsBlacklisted(c.Request.Context(), claims.ID); err == nil && hit {
				response.Unauthorized(c, 10002, "La sesión ha sido cerrada.")
				c.Abort()
				return
			}
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxClaims, claims)

		c.Next()
	}
}

// RoleAuth lets the request through only for one of the allowed roles.
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxRole)
		if !exists {
			response.Unauthorized(c, 10002, "No autenticado.")
			c.Abort()
			return
		}

		userRole, _ := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "No tienes permiso para realizar esta acción.")
		c.Abort()
	}
}
