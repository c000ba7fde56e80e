package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"portfolio-backend/internal/apperrors"
	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/models"
)

const adminToken = "admin-token"

// stubResolver accepts adminToken and rejects everything else.
type stubResolver struct {
	role string
}

func (r stubResolver) Resolve(_ context.Context, token string) (auth.Identity, error) {
	if token != adminToken {
		return auth.Identity{}, apperrors.Unauthorized("invalid token")
	}
	return auth.Identity{UserID: "user-1", Email: "admin@example.com", Role: r.role}, nil
}

// stubBlogs records what the handler passed through.
type stubBlogs struct {
	mu          sync.Mutex
	posts       []models.BlogPost
	created     []map[string]interface{}
	updated     []uuid.UUID
	deleted     []uuid.UUID
	err         error
	newID       uuid.UUID
	invalidated int
}

func (s *stubBlogs) List(context.Context) ([]models.BlogPost, error) { return s.posts, s.err }

func (s *stubBlogs) GetBySlug(_ context.Context, slug string) (*models.BlogPost, error) {
	for _, p := range s.posts {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, apperrors.NotFound()
}

func (s *stubBlogs) Create(_ context.Context, raw map[string]interface{}) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return uuid.Nil, s.err
	}
	s.created = append(s.created, raw)
	return s.newID, nil
}

func (s *stubBlogs) Update(_ context.Context, id uuid.UUID, _ map[string]interface{}) error {
	s.updated = append(s.updated, id)
	return s.err
}

func (s *stubBlogs) Delete(_ context.Context, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	return s.err
}

func (s *stubBlogs) Validate(raw map[string]interface{}) error {
	if _, ok := raw["title"]; !ok {
		return apperrors.InvalidFields(map[string]string{"title": "title is required"})
	}
	return nil
}

func (s *stubBlogs) InvalidateCache() { s.invalidated++ }

type stubWorks struct {
	works       []models.Work
	reordered   []uuid.UUID
	batch       []map[string]interface{}
	ids         []uuid.UUID
	err         error
	invalidated int
}

func (s *stubWorks) List(context.Context) ([]models.Work, error) { return s.works, s.err }

func (s *stubWorks) Create(context.Context, map[string]interface{}) (uuid.UUID, error) {
	return uuid.New(), s.err
}

func (s *stubWorks) BatchCreate(_ context.Context, items []map[string]interface{}) ([]uuid.UUID, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.batch = items
	return s.ids, nil
}

func (s *stubWorks) Update(context.Context, uuid.UUID, map[string]interface{}) error { return s.err }

func (s *stubWorks) Delete(context.Context, uuid.UUID) error { return s.err }

func (s *stubWorks) Reorder(_ context.Context, ids []uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	s.reordered = ids
	return nil
}

func (s *stubWorks) Validate(map[string]interface{}) error { return nil }

func (s *stubWorks) InvalidateCache() { s.invalidated++ }

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func doRaw(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
