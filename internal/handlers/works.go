package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/models"
)

type WorkService interface {
	List(ctx context.Context) ([]models.Work, error)
	Create(ctx context.Context, raw map[string]interface{}) (uuid.UUID, error)
	BatchCreate(ctx context.Context, items []map[string]interface{}) ([]uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, raw map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, ids []uuid.UUID) error
	Validate(raw map[string]interface{}) error
}

type WorksHandler struct {
	service WorkService
	guard   *Guard
}

func NewWorksHandler(service WorkService, guard *Guard) *WorksHandler {
	return &WorksHandler{service: service, guard: guard}
}

// Handle godoc
// @Summary     Featured work actions
// @Description Runs one action on featured works. "list" is public; every other action needs a bearer token.
// @Description
// @Description **reorder** takes ids, the full new sequence of work ids, and applies it in one transaction.
// @Description **batch_create** takes items and appends them after the existing works in the given order.
// @Tags        works
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.ActionEnvelope true "Action envelope (list, create, update, delete, validate, reorder, batch_create)"
// @Success     200 {object} models.WorkListResponse
// @Success     201 {object} models.IDsResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /works [post]
func (h *WorksHandler) Handle(c *gin.Context) {
	req, err := bindAction(c, workActions)
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	if err := h.guard.authorize(c, auth.ResourceWorks, req.Action()); err != nil {
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
	case models.BatchCreateRequest:
		ids, err := h.service.BatchCreate(ctx, r.Items)
		if err != nil {
			middleware.RespondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.IDsResponse{IDs: idStrings(ids)})
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
	case models.ReorderRequest:
		if err := h.service.Reorder(ctx, r.IDs); err != nil {
			middleware.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.IDsResponse{IDs: idStrings(r.IDs)})
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
// @Summary     List featured works
// @Description Returns every work in display order
// @Tags        works
// @Produce     json
// @Success     200 {object} models.WorkListResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /works [get]
func (h *WorksHandler) List(c *gin.Context) {
	h.list(c)
}

func (h *WorksHandler) list(c *gin.Context) {
	works, err := h.service.List(c.Request.Context())
	if err != nil {
		middleware.RespondError(c, err)
		return
	}
	if works == nil {
		works = []models.Work{}
	}
	c.JSON(http.StatusOK, models.WorkListResponse{Works: works})
}
