package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"portfolio-backend/internal/apperrors"
	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/revalidate"
)

type CacheInvalidator interface {
	InvalidateCache()
}

type PathRevalidator interface {
	Revalidate(ctx context.Context, path string, kind revalidate.Kind) error
}

type RevalidateHandler struct {
	revalidator PathRevalidator
	policy      auth.Policy
	blogs       CacheInvalidator
	projects    CacheInvalidator
	works       CacheInvalidator
}

func NewRevalidateHandler(revalidator PathRevalidator, policy auth.Policy, blogs, projects, works CacheInvalidator) *RevalidateHandler {
	if policy == nil {
		policy = auth.AllowAuthenticated{}
	}
	return &RevalidateHandler{
		revalidator: revalidator,
		policy:      policy,
		blogs:       blogs,
		projects:    projects,
		works:       works,
	}
}

// Revalidate godoc
// @Summary     Revalidate a page
// @Description Drops the list caches behind a site path and asks the rendering layer to rebuild it.
// @Description A "layout" revalidation of "/" clears every list cache.
// @Tags        revalidate
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.RevalidateRequest true "Path to revalidate"
// @Success     200 {object} models.RevalidateResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /revalidate [post]
func (h *RevalidateHandler) Revalidate(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)
	if err := h.policy.Authorize(identity, auth.ResourcePages, models.ActionUpdate); err != nil {
		middleware.RespondError(c, err)
		return
	}

	var req models.RevalidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondError(c, apperrors.Wrap(err, apperrors.KindValidation, "path is required"))
		return
	}
	path := strings.TrimSpace(req.Path)
	if !strings.HasPrefix(path, "/") {
		middleware.RespondError(c, apperrors.Validation("path must start with /"))
		return
	}
	kind, err := revalidate.ParseKind(req.Type)
	if err != nil {
		middleware.RespondError(c, apperrors.Validation(err.Error()))
		return
	}

	for _, inv := range h.affected(path, kind) {
		if inv != nil {
			inv.InvalidateCache()
		}
	}

	if h.revalidator != nil {
		if err := h.revalidator.Revalidate(c.Request.Context(), path, kind); err != nil {
			middleware.RespondError(c, apperrors.Wrap(err, apperrors.KindUpstream, "failed to revalidate "+path))
			return
		}
	}

	c.JSON(http.StatusOK, models.RevalidateResponse{
		Revalidated: true,
		Path:        path,
		Type:        string(kind),
	})
}

// affected returns the list caches that feed the page at path. The home page
// shows projects and works.
func (h *RevalidateHandler) affected(path string, kind revalidate.Kind) []CacheInvalidator {
	switch {
	case path == "/" && kind == revalidate.KindLayout:
		return []CacheInvalidator{h.blogs, h.projects, h.works}
	case path == "/":
		return []CacheInvalidator{h.projects, h.works}
	case underPath(path, "/blog"):
		return []CacheInvalidator{h.blogs}
	case underPath(path, "/projects"):
		return []CacheInvalidator{h.projects}
	case underPath(path, "/works"):
		return []CacheInvalidator{h.works}
	}
	return nil
}

func underPath(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
