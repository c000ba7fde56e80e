package auth

import (
	"strings"

	"portfolio-backend/internal/apperrors"
	"portfolio-backend/internal/models"
)

// Resource names the content type an action targets.
type Resource string

const (
	ResourceBlogs    Resource = "blogs"
	ResourceProjects Resource = "projects"
	ResourceWorks    Resource = "works"
	ResourceUploads  Resource = "uploads"
	ResourcePages    Resource = "pages"
)

// Policy decides whether an authenticated caller may run an action. It runs
// after identity resolution and before dispatch.
type Policy interface {
	Authorize(identity Identity, resource Resource, action models.Action) error
}

// AllowAuthenticated lets any resolved identity mutate any record.
type AllowAuthenticated struct{}

func (AllowAuthenticated) Authorize(identity Identity, _ Resource, _ models.Action) error {
	if identity.UserID == "" {
		return apperrors.Unauthorized("not signed in")
	}
	return nil
}

// RequireRole only admits identities whose role is in the allowed set.
type RequireRole struct {
	roles map[string]struct{}
}

func NewRequireRole(roles []string) *RequireRole {
	p := &RequireRole{roles: make(map[string]struct{}, len(roles))}
	for _, r := range roles {
		if r = strings.TrimSpace(r); r != "" {
			p.roles[r] = struct{}{}
		}
	}
	return p
}

func (p *RequireRole) Authorize(identity Identity, resource Resource, action models.Action) error {
	if err := (AllowAuthenticated{}).Authorize(identity, resource, action); err != nil {
		return err
	}
	if _, ok := p.roles[identity.Role]; !ok {
		return apperrors.Forbidden("role " + identity.Role + " may not " + string(action) + " " + string(resource))
	}
	return nil
}

// PolicyFor picks the policy matching the configured admin roles.
func PolicyFor(adminRoles []string) Policy {
	if len(adminRoles) == 0 {
		return AllowAuthenticated{}
	}
	return NewRequireRole(adminRoles)
}
