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

type BlogService interface {
	List(ctx context.Context) ([]models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	Create(ctx context.Context, raw map[string]interface{}) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, raw map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	Validate(raw map[string]interface{}) error
}

type BlogsHandler struct {
	service BlogService
	guard   *Guard
}

func NewBlogsHandler(service BlogService, guard *Guard) *BlogsHandler {
	return &BlogsHandler{service: service, guard: guard}
}

// Handle godoc
// @Summary     Blog post actions
// @Description Runs one action on blog posts. "list" is public; every other action needs a bearer token.
// @Tags        blogs
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.ActionEnvelope true "Action envelope (list, create, update, delete, validate)"
// @Success     200 {object} models.BlogListResponse
// @Success     201 {object} models.IDResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /blogs [post]
func (h *BlogsHandler) Handle(c *gin.Context) {
	req, err := bindAction(c, contentActions)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	if err := h.guard.authorize(c, auth.ResourceBlogs, req.Action()); err != nil {
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
// @Summary     List blog posts
// @Description Returns every blog post, newest first
// @Tags        blogs
// @Produce     json
// @Success     200 {object} models.BlogListResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /blogs [get]
func (h *BlogsHandler) List(c *gin.Context) {
	h.list(c)
}

func (h *BlogsHandler) list(c *gin.Context) {
	blogs, err := h.service.List(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	if blogs == nil {
		blogs = []models.BlogPost{}
	}
	c.JSON(http.StatusOK, models.BlogListResponse{Blogs: blogs})
}

// Get godoc
// @Summary     Get blog post
// @Description Returns one blog post by slug
// @Tags        blogs
// @Produce     json
// @Param       slug path string true "Post slug"
// @Success     200 {object} models.BlogPost
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /blogs/{slug} [get]
func (h *BlogsHandler) Get(c *gin.Context) {
	slug := strings.ToLower(strings.TrimSpace(c.Param("slug")))
	post, err := h.service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}
