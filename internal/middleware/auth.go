package middleware

import (
	"github.com/gin-gonic/gin"
	"portfolio-backend/internal/auth"
)

const (
	UserIDKey   = "user_id"
	IdentityKey = "identity"
)

// AuthMiddleware rejects requests without a valid bearer token. Use it on
// routes where every call is a mutation.
func AuthMiddleware(resolver auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := Authenticate(c, resolver); err != nil {
			AbortWithError(c, err)
			return
		}
		c.Next()
	}
}

// Authenticate resolves the caller from the Authorization header and stores
// the identity on the context. Handlers that mix public and private actions
// call it only for the private ones.
func Authenticate(c *gin.Context, resolver auth.Resolver) (auth.Identity, error) {
	if identity, ok := GetIdentity(c); ok {
		return identity, nil
	}

	token, err := auth.BearerToken(c.GetHeader("Authorization"))
	if err != nil {
		return auth.Identity{}, err
	}

	identity, err := resolver.Resolve(c.Request.Context(), token)
	if err != nil {
		return auth.Identity{}, err
	}

	c.Set(UserIDKey, identity.UserID)
	c.Set(IdentityKey, identity)
	return identity, nil
}

func GetIdentity(c *gin.Context) (auth.Identity, bool) {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return auth.Identity{}, false
	}
	identity, ok := v.(auth.Identity)
	return identity, ok
}
