package auth

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"portfolio-backend/internal/apperrors"
)

// Identity is the caller resolved from a bearer credential.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// Resolver turns a bearer token into the caller's identity.
type Resolver interface {
	Resolve(ctx context.Context, token string) (Identity, error)
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func BearerToken(header string) (string, error) {
	if header == "" {
		return "", apperrors.Unauthorized("missing authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", apperrors.Unauthorized("invalid authorization header format")
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", apperrors.Unauthorized("empty token")
	}
	// Some clients URL-encode the token
	if decoded, err := url.QueryUnescape(token); err == nil {
		token = decoded
	}
	return token, nil
}

// JWTResolver verifies Supabase access tokens locally with the project's
// HS256 JWT secret.
type JWTResolver struct {
	secret []byte
}

func NewJWTResolver(secret string) *JWTResolver {
	return &JWTResolver{secret: []byte(secret)}
}

func (r *JWTResolver) Resolve(_ context.Context, tokenString string) (Identity, error) {
	if len(r.secret) == 0 {
		return Identity{}, apperrors.Unauthorized("token verification is not configured")
	}
	if strings.Count(tokenString, ".") != 2 {
		return Identity{}, apperrors.Unauthorized("invalid token format")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return r.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			msg = "token has expired"
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			msg = "token signature is invalid"
		case errors.Is(err, jwt.ErrTokenMalformed):
			msg = "token is malformed"
		default:
			msg = "invalid token"
		}
		return Identity{}, apperrors.Wrap(err, apperrors.KindUnauthorized, msg)
	}
	if !token.Valid {
		return Identity{}, apperrors.Unauthorized("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, apperrors.Unauthorized("invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return Identity{}, apperrors.Unauthorized("missing user id in token")
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return Identity{UserID: sub, Email: email, Role: role}, nil
}
