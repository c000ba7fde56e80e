package supabase

import (
	"context"

	"github.com/supabase-community/supabase-go"
	"portfolio-backend/internal/apperrors"
	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/config"
)

type Client struct {
	Supabase *supabase.Client
	Config   *config.Config
}

func NewClient(cfg *config.Config) (*Client, error) {
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		Supabase: client,
		Config:   cfg,
	}, nil
}

// Resolve asks the hosted auth service which user owns the access token.
// It is used when no JWT secret is configured for local verification.
func (c *Client) Resolve(_ context.Context, token string) (auth.Identity, error) {
	user, err := c.Supabase.Auth.WithToken(token).GetUser()
	if err != nil {
		return auth.Identity{}, apperrors.Wrap(err, apperrors.KindUnauthorized, "invalid or expired session")
	}
	return auth.Identity{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   user.Role,
	}, nil
}
