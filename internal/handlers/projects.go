package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/models"
)

type ProjectService interface {
	List(ctx context.Context) ([]models.Project, error)
	GetBySlug(ctx context.Context, slug string) (*models.Project, error)
	Create(ctx context.Context, raw map[string]interface{}) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, raw map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	Validate(raw map[string]interface{}) error
}

type ProjectsHandler struct {
	service ProjectService
	guard   *Guard
}

func NewProjectsHandler(service ProjectService, guard *Guard) *ProjectsHandler {
	return &ProjectsHandler{service: service, guard: guard}
}

// Handle godoc
// @Summary     Project actions
// @Description Runs one action on case-study projects. "list" is public; every other action needs a bearer token.
// @Description Deleting a project leaves its thumb and gallery images in storage.
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.ActionEnvelope true "Action envelope (list, create, update, delete, validate)"
// @Success     200 {object} models.ProjectListResponse
// @Success     201 {object} models.IDResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /projects [post]
func (h *ProjectsHandler) Handle(c *gin.Context) {
	req, err := bindAction(c, contentActions)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	if err := h.guard.authorize(c, auth.ResourceProjects, req.Action()); err != nil {
		middleware.RespondError(c, err)
		return
	}

	ctx := c.Request.Context()
	switch r := req.(type) {
	case models.ListRequest:
		h.list(c)
	case models.CreateRequest:
		id, err := h.service.Create(ctx, r.Data)
		if err != nil {
			middleware.RespondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.IDResponse{ID: id.String()})
	case models.UpdateRequest:
		if err := h.service.Update(ctx, r.ID, r.Data); err != nil {
			middleware.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.IDResponse{ID: r.ID.String()})
	case models.DeleteRequest:
		if err := h.service.Delete(ctx, r.ID); err != nil {
			middleware.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.IDResponse{ID: r.ID.String()})
	case models.ValidateRequest:
		if err := h.service.Validate(r.Data); err != nil {
			middleware.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.ValidateResponse{Valid: true})
	default:
		middleware.RespondError(c, unsupported(req))
	}
}

// List godoc
// @Summary     List projects
// @Description Returns every project ordered by title
// @Tags        projects
// @Produce     json
// @Success     200 {object} models.ProjectListResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /projects [get]
func (h *ProjectsHandler) List(c *gin.Context) {
	h.list(c)
}

func (h *ProjectsHandler) list(c *gin.Context) {
	projects, err := h.service.List(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	if projects == nil {
		projects = []models.Project{}
	}
	c.JSON(http.StatusOK, models.ProjectListResponse{Projects: projects})
}

// Get godoc
// @Summary     Get project
// @Description Returns one project by slug
// @Tags        projects
// @Produce     json
// @Param       slug path string true "Project slug"
// @Success     200 {object} models.Project
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /projects/{slug} [get]
func (h *ProjectsHandler) Get(c *gin.Context) {
	slug := strings.ToLower(strings.TrimSpace(c.Param("slug")))
	project, err := h.service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}
