package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"portfolio-backend/internal/cache"
	"portfolio-backend/internal/content"
	"portfolio-backend/internal/models"
)

type ProjectService struct {
	store     ProjectStore
	cache     *cache.Cache[[]models.Project]
	validator *content.FormValidator
	notifier
}

func NewProjectService(
	store ProjectStore,
	listCache *cache.Cache[[]models.Project],
	validator *content.FormValidator,
	revalidator Revalidator,
) *ProjectService {
	if listCache == nil {
		listCache = cache.New[[]models.Project]()
	}
	if validator == nil {
		validator = content.NewFormValidator()
	}
	return &ProjectService{
		store:     store,
		cache:     listCache,
		validator: validator,
		notifier:  notifier{revalidator: revalidator},
	}
}

func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	return s.cache.GetOrFetch(ctx, listKey, s.store.ListProjects)
}

func (s *ProjectService) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	return s.store.GetProjectBySlug(ctx, slug)
}

func (s *ProjectService) Create(ctx context.Context, raw map[string]interface{}) (uuid.UUID, error) {
	fields, err := content.NormalizeProject(raw)
	if err != nil {
		return uuid.Nil, err
	}
	if err := checkSlug(ctx, s.store.ProjectSlugTaken, fields.Slug, uuid.Nil); err != nil {
		return uuid.Nil, err
	}

	id, err := s.store.CreateProject(ctx, fields)
	if err != nil {
		return uuid.Nil, err
	}
	log.Printf("Created project %s (%s)", id, fields.Slug)

	s.changed(ctx, fields.Slug)
	return id, nil
}

func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, raw map[string]interface{}) error {
	fields, err := content.NormalizeProject(raw)
	if err != nil {
		return err
	}
	existing, err := s.store.GetProject(ctx, id)
	if err != nil {
		return err
	}
	if err := checkSlug(ctx, s.store.ProjectSlugTaken, fields.Slug, id); err != nil {
		return err
	}

	if err := s.store.UpdateProject(ctx, id, fields); err != nil {
		return err
	}
	log.Printf("Updated project %s (%s)", id, fields.Slug)

	s.changed(ctx, fields.Slug, existing.Slug)
	return nil
}

// Delete removes the row only. The thumb and gallery images stay in storage
// since other projects may still reference them.
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.store.GetProject(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteProject(ctx, id); err != nil {
		return err
	}
	log.Printf("Deleted project %s (%s)", id, existing.Slug)

	s.changed(ctx, existing.Slug)
	return nil
}

func (s *ProjectService) Validate(raw map[string]interface{}) error {
	return s.validator.ValidateProject(raw)
}

func (s *ProjectService) InvalidateCache() {
	s.cache.InvalidateAll()
}

func (s *ProjectService) changed(ctx context.Context, slugs ...string) {
	s.cache.Invalidate(listKey)
	paths := []string{"/projects"}
	for _, slug := range slugs {
		paths = append(paths, "/projects/"+slug)
	}
	paths = append(paths, "/")
	s.notify(ctx, "project", paths...)
}
