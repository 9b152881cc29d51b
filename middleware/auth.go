package middleware

import (
	"net/http"
	"strings"
	"time"

	ctxkit "Immob/pkg/context"
	"Immob/pkg/jwt"
	"Immob/pkg/response"

	"github.com/gin-gonic/gin"
)

const rotateBuffer = 5 * time.Minute

// Auth requires a valid bearer access token and puts the caller's identity
// into the request context. Tokens close to expiry get a fresh one back in
// the X-New-Access-Token header.
func Auth(secret []byte, accessExpire time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "malformed Authorization header")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TypeAccess, parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		if jwt.ShouldRotateRefreshToken(claims, rotateBuffer) {
			newToken, err := jwt.GenerateToken(secret, claims.UserID, claims.Email, claims.Admin, jwt.TypeAccess, accessExpire)
			if err == nil {
				c.Header("X-New-Access-Token", newToken)
			}
		}

		c.Set(ctxkit.CtxUserID, claims.UserID)
		c.Set(ctxkit.CtxEmail, claims.Email)
		c.Set(ctxkit.CtxIsAdmin, claims.Admin)

		c.Next()
	}
}

// OptionalAuth populates identity when a valid token is present but lets
// anonymous requests through untouched.
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := jwt.ParseToken(secret, jwt.TypeAccess, parts[1]); err == nil {
				c.Set(ctxkit.CtxUserID, claims.UserID)
				c.Set(ctxkit.CtxEmail, claims.Email)
				c.Set(ctxkit.CtxIsAdmin, claims.Admin)
			}
		}
		c.Next()
	}
}

// AdminOnly must run after Auth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ctxkit.IsAdmin(c) {
			response.Abort(c, http.StatusForbidden, "admin access required")
			return
		}
		c.Next()
	}
}
