package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"portfolio-backend/internal/apperrors"
	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/models"
)

func blogsRouter(svc *stubBlogs, policy auth.Policy) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewBlogsHandler(svc, handlers.NewGuard(stubResolver{role: "authenticated"}, policy))
	router := gin.New()
	router.GET("/blogs", h.List)
	router.GET("/blogs/:slug", h.Get)
	router.POST("/blogs", h.Handle)
	return router
}

func TestBlogsHandler_ListIsPublic(t *testing.T) {
	svc := &stubBlogs{posts: []models.BlogPost{{ID: uuid.New(), BlogFields: models.BlogFields{Slug: "hello"}}}}
	router := blogsRouter(svc, nil)

	w := doJSON(t, router, http.MethodPost, "/blogs", "", map[string]string{"action": "list"})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.BlogListResponse
	decodeBody(t, w, &resp)
	assert.Len(t, resp.Blogs, 1)
	assert.Equal(t, "hello", resp.Blogs[0].Slug)

	w = doJSON(t, router, http.MethodGet, "/blogs", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"blogs"`)
}

func TestBlogsHandler_EmptyListIsArray(t *testing.T) {
	router := blogsRouter(&stubBlogs{}, nil)

	w := doJSON(t, router, http.MethodGet, "/blogs", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"blogs":[]}`, w.Body.String())
}

func TestBlogsHandler_Get(t *testing.T) {
	svc := &stubBlogs{posts: []models.BlogPost{{ID: uuid.New(), BlogFields: models.BlogFields{Slug: "hello"}}}}
	router := blogsRouter(svc, nil)

	assert.Equal(t, http.StatusOK, doJSON(t, router, http.MethodGet, "/blogs/Hello", "", nil).Code)

	w := doJSON(t, router, http.MethodGet, "/blogs/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), apperrors.MsgNotFound)
}

func TestBlogsHandler_MutationsNeedToken(t *testing.T) {
	svc := &stubBlogs{}
	router := blogsRouter(svc, nil)

	body := map[string]interface{}{"action": "create", "data": map[string]interface{}{"title": "x"}}
	assert.Equal(t, http.StatusUnauthorized, doJSON(t, router, http.MethodPost, "/blogs", "", body).Code)
	assert.Equal(t, http.StatusUnauthorized, doJSON(t, router, http.MethodPost, "/blogs", "wrong", body).Code)
	assert.Empty(t, svc.created)
}

func TestBlogsHandler_Create(t *testing.T) {
	svc := &stubBlogs{newID: uuid.New()}
	router := blogsRouter(svc, nil)

	body := map[string]interface{}{
		"action": "create",
		"data":   map[string]interface{}{"title": "Hello", "featured_order": 2},
	}
	w := doJSON(t, router, http.MethodPost, "/blogs", adminToken, body)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.IDResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, svc.newID.String(), resp.ID)
	if assert.Len(t, svc.created, 1) {
		assert.Equal(t, "Hello", svc.created[0]["title"])
	}
}

func TestBlogsHandler_BadEnvelopes(t *testing.T) {
	router := blogsRouter(&stubBlogs{}, nil)

	tests := []struct {
		name string
		body interface{}
		want string
	}{
		{"unknown action", map[string]interface{}{"action": "publish"}, `unknown action "publish"`},
		{"works only action", map[string]interface{}{"action": "reorder", "ids": []string{uuid.NewString()}}, "unknown action"},
		{"missing action", map[string]interface{}{"data": map[string]interface{}{}}, "action is required"},
		{"update without id", map[string]interface{}{"action": "update", "data": map[string]interface{}{}}, "id is required"},
		{"delete bad id", map[string]interface{}{"action": "delete", "id": "nope"}, "id must be a valid id"},
		{"create without data", map[string]interface{}{"action": "create"}, "data is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/blogs", adminToken, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp models.ErrorResponse
			decodeBody(t, w, &resp)
			assert.Contains(t, resp.Error, tt.want)
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPost, "/blogs", strings.NewReader("{"))
		w := doRaw(router, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBlogsHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"conflict", apperrors.Conflict(), http.StatusConflict},
		{"not found", apperrors.NotFound(), http.StatusNotFound},
		{"validation", apperrors.Validation("date must be a valid ISO-8601 timestamp"), http.StatusBadRequest},
		{"internal", assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := blogsRouter(&stubBlogs{err: tt.err}, nil)
			body := map[string]interface{}{"action": "update", "id": uuid.NewString(), "data": map[string]interface{}{}}
			w := doJSON(t, router, http.MethodPost, "/blogs", adminToken, body)
			assert.Equal(t, tt.status, w.Code)

			var resp models.ErrorResponse
			decodeBody(t, w, &resp)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestBlogsHandler_DeleteAndValidate(t *testing.T) {
	svc := &stubBlogs{}
	router := blogsRouter(svc, nil)
	id := uuid.New()

	w := doJSON(t, router, http.MethodPost, "/blogs", adminToken, map[string]interface{}{"action": "delete", "id": id.String()})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []uuid.UUID{id}, svc.deleted)

	w = doJSON(t, router, http.MethodPost, "/blogs", adminToken, map[string]interface{}{"action": "validate", "data": map[string]interface{}{"title": "x"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"valid":true}`, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/blogs", adminToken, map[string]interface{}{"action": "validate"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"title"`)
}

func TestBlogsHandler_RolePolicy(t *testing.T) {
	svc := &stubBlogs{}
	router := blogsRouter(svc, auth.NewRequireRole([]string{"admin"}))

	body := map[string]interface{}{"action": "delete", "id": uuid.NewString()}
	w := doJSON(t, router, http.MethodPost, "/blogs", adminToken, body)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, svc.deleted)

	// list stays public under any policy
	w = doJSON(t, router, http.MethodPost, "/blogs", "", map[string]string{"action": "list"})
	assert.Equal(t, http.StatusOK, w.Code)
}
