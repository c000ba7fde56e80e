package services_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"portfolio-backend/internal/apperrors"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/revalidate"
)

// memBlogs is an in-memory BlogStore. Like the database it rejects duplicate
// slugs on write.
type memBlogs struct {
	mu        sync.Mutex
	rows      map[uuid.UUID]models.BlogPost
	listCalls int
}

func newMemBlogs() *memBlogs {
	return &memBlogs{rows: map[uuid.UUID]models.BlogPost{}}
}

func (m *memBlogs) ListBlogs(context.Context) ([]models.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	out := make([]models.BlogPost, 0, len(m.rows))
	for _, r := range m.rows {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (m *memBlogs) GetBlog(_ context.Context, id uuid.UUID) (*models.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return nil, apperrors.NotFound()
	}
	return &r, nil
}

func (m *memBlogs) GetBlogBySlug(_ context.Context, slug string) (*models.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.Slug == slug {
			return &r, nil
		}
	}
	return nil, apperrors.NotFound()
}

func (m *memBlogs) BlogSlugTaken(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.taken(slug, excludeID), nil
}

func (m *memBlogs) taken(slug string, excludeID uuid.UUID) bool {
	for id, r := range m.rows {
		if r.Slug == slug && id != excludeID {
			return true
		}
	}
	return false
}

func (m *memBlogs) CreateBlog(_ context.Context, f models.BlogFields) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.taken(f.Slug, uuid.Nil) {
		return uuid.Nil, apperrors.Conflict()
	}
	id := uuid.New()
	m.rows[id] = models.BlogPost{ID: id, BlogFields: f}
	return id, nil
}

func (m *memBlogs) UpdateBlog(_ context.Context, id uuid.UUID, f models.BlogFields) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return apperrors.NotFound()
	}
	if m.taken(f.Slug, id) {
		return apperrors.Conflict()
	}
	r.BlogFields = f
	m.rows[id] = r
	return nil
}

func (m *memBlogs) DeleteBlog(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return apperrors.NotFound()
	}
	delete(m.rows, id)
	return nil
}

type memProjects struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.Project
}

func newMemProjects() *memProjects {
	return &memProjects{rows: map[uuid.UUID]models.Project{}}
}

func (m *memProjects) ListProjects(context.Context) ([]models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Project, 0, len(m.rows))
	for _, r := range m.rows {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (m *memProjects) GetProject(_ context.Context, id uuid.UUID) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return nil, apperrors.NotFound()
	}
	return &r, nil
}

func (m *memProjects) GetProjectBySlug(_ context.Context, slug string) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.Slug == slug {
			return &r, nil
		}
	}
	return nil, apperrors.NotFound()
}

func (m *memProjects) ProjectSlugTaken(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, r := range m.rows {
		if r.Slug == slug && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memProjects) CreateProject(_ context.Context, f models.ProjectFields) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.New()
	m.rows[id] = models.Project{ID: id, ProjectFields: f}
	return id, nil
}

func (m *memProjects) UpdateProject(_ context.Context, id uuid.UUID, f models.ProjectFields) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return apperrors.NotFound()
	}
	r.ProjectFields = f
	m.rows[id] = r
	return nil
}

func (m *memProjects) DeleteProject(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return apperrors.NotFound()
	}
	delete(m.rows, id)
	return nil
}

type memWorks struct {
	mu   sync.Mutex
	rows map[uuid.UUID]models.Work
	seq  int
}

func newMemWorks() *memWorks {
	return &memWorks{rows: map[uuid.UUID]models.Work{}}
}

func (m *memWorks) ListWorks(context.Context) ([]models.Work, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Work, 0, len(m.rows))
	for _, r := range m.rows {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FeaturedOrder != out[j].FeaturedOrder {
			return out[i].FeaturedOrder < out[j].FeaturedOrder
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memWorks) GetWork(_ context.Context, id uuid.UUID) (*models.Work, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return nil, apperrors.NotFound()
	}
	return &r, nil
}

func (m *memWorks) WorkSlugTaken(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, r := range m.rows {
		if r.Slug == slug && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memWorks) insert(f models.WorkFields, order int) uuid.UUID {
	id := uuid.New()
	m.seq++
	m.rows[id] = models.Work{
		ID:            id,
		Title:         f.Title,
		Slug:          f.Slug,
		Description:   f.Description,
		Image:         f.Image,
		AspectRatio:   f.AspectRatio,
		FeaturedOrder: order,
		Link:          f.Link,
		CreatedAt:     baseTime.Add(timeStep * time.Duration(m.seq)),
	}
	return id
}

func (m *memWorks) CreateWork(_ context.Context, f models.WorkFields) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order := 0
	for _, r := range m.rows {
		if r.FeaturedOrder >= order {
			order = r.FeaturedOrder + 1
		}
	}
	if f.FeaturedOrder != nil {
		order = *f.FeaturedOrder
	}
	return m.insert(f, order), nil
}

func (m *memWorks) CreateWorks(_ context.Context, items []models.WorkFields) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing := len(m.rows)
	ids := make([]uuid.UUID, 0, len(items))
	for i, f := range items {
		ids = append(ids, m.insert(f, existing+i))
	}
	return ids, nil
}

func (m *memWorks) UpdateWork(_ context.Context, id uuid.UUID, f models.WorkFields) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return apperrors.NotFound()
	}
	r.Title, r.Slug, r.Description, r.Image, r.AspectRatio, r.Link =
		f.Title, f.Slug, f.Description, f.Image, f.AspectRatio, f.Link
	if f.FeaturedOrder != nil {
		r.FeaturedOrder = *f.FeaturedOrder
	}
	m.rows[id] = r
	return nil
}

func (m *memWorks) DeleteWork(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return apperrors.NotFound()
	}
	delete(m.rows, id)
	return nil
}

func (m *memWorks) ReorderWorks(_ context.Context, ids []uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(ids) != len(m.rows) {
		return apperrors.Validation("reorder must list every work exactly once")
	}
	for _, id := range ids {
		if _, ok := m.rows[id]; !ok {
			return apperrors.NotFound()
		}
	}
	for i, id := range ids {
		r := m.rows[id]
		r.FeaturedOrder = i
		m.rows[id] = r
	}
	return nil
}

// fakeStorage records removals and can be told to fail.
type fakeStorage struct {
	mu      sync.Mutex
	objects map[string]bool
	removed []string
	err     error
}

func newFakeStorage(urls ...string) *fakeStorage {
	s := &fakeStorage{objects: map[string]bool{}}
	for _, u := range urls {
		s.objects[u] = true
	}
	return s
}

func (s *fakeStorage) RemoveByURL(publicURL string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return false, s.err
	}
	if !s.objects[publicURL] {
		return false, nil
	}
	delete(s.objects, publicURL)
	s.removed = append(s.removed, publicURL)
	return true, nil
}

type recordedRevalidation struct {
	Path string
	Kind revalidate.Kind
}

// fakeRevalidator records calls. With block set it hangs until the context
// ends, like a rendering layer that never answers.
type fakeRevalidator struct {
	mu    sync.Mutex
	calls []recordedRevalidation
	err   error
	block bool
}

func (r *fakeRevalidator) Revalidate(ctx context.Context, path string, kind revalidate.Kind) error {
	r.mu.Lock()
	r.calls = append(r.calls, recordedRevalidation{Path: path, Kind: kind})
	block, err := r.block, r.err
	r.mu.Unlock()

	if block {
		<-ctx.Done()
		return ctx.Err()
	}
	return err
}

func (r *fakeRevalidator) paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.Path
	}
	return out
}

var errStorageDown = errors.New("storage unavailable")

var baseTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

const timeStep = time.Second
