package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/w4d32001/admin-eapiis/internal/api/middleware"
	"github.com/w4d32001/admin-eapiis/internal/service"
	"github.com/w4d32001/admin-eapiis/pkg/jwt"
	"github.com/w4d32001/admin-eapiis/pkg/response"
)

const msgUnauthenticated = "No autenticado."

// MustGetUserID extracts the user id injected by JWTAuth. On false a 401 has
// already been written and the caller must return.
func MustGetUserID(c *gin.Context) (string, bool) {
	s := c.GetString(middleware.CtxUserID)
	if s == "" {
		response.Unauthorized(c, 10002, msgUnauthenticated)
		return "", false
	}
	return s, true
}

// MustGetClaims extracts the parsed access token.
func MustGetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get(middleware.CtxClaims)
	if !exists {
		response.Unauthorized(c, 10002, msgUnauthenticated)
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	if !ok || claims == nil {
		response.Unauthorized(c, 10002, msgUnauthenticated)
		return nil, false
	}
	return claims, true
}

// MustGetRequestContext builds the acting administrator for a service call.
func MustGetRequestContext(c *gin.Context) (service.RequestContext, bool) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return service.RequestContext{}, false
	}
	return service.RequestContext{ActorID: userID, Role: c.GetString(middleware.CtxRole)}, true
}
