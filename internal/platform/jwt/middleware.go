package jwtmw

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var errSecretUnset = errors.New("JWT_SECRET is not set")

// EnvKeyJWTSecret is the environment variable holding the signing secret.
const EnvKeyJWTSecret = "JWT_SECRET"

// ContextUserID is the Gin context key under which the authenticated user's
// ID is stored.
const ContextUserID = "userID"

// AuthRequired returns a Gin middleware that validates JWT tokens and
// rejects unauthenticated requests with 401.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok, err := callerFromRequest(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// AuthOptional returns a Gin middleware that resolves the caller when a
// valid bearer token is present and otherwise lets the request through
// anonymously. Used by endpoints that degrade for anonymous callers (the
// entry list returns an empty journal) instead of rejecting them.
func AuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok, err := callerFromRequest(c); err == nil && ok {
			c.Set(ContextUserID, userID)
		}
		c.Next()
	}
}

// callerFromRequest extracts and verifies the bearer token. The boolean is
// false when no valid token is attached; the error reports server
// misconfiguration only.
func callerFromRequest(c *gin.Context) (uint, bool, error) {
	auth := c.GetHeader("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return 0, false, nil
	}
	tokenStr := strings.TrimPrefix(auth, "Bearer ")

	secret := os.Getenv(EnvKeyJWTSecret)
	if secret == "" {
		return 0, false, errSecretUnset
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, false, nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false, nil
	}
	sub, ok := claims["sub"].(float64) // JWT numbers decode as float64
	if !ok {
		return 0, false, nil
	}
	return uint(sub), true, nil
}
