package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"portfolio-backend/internal/cache"
	"portfolio-backend/internal/content"
	"portfolio-backend/internal/models"
)

type BlogService struct {
	store     BlogStore
	storage   ObjectStorage
	cache     *cache.Cache[[]models.BlogPost]
	validator *content.FormValidator
	notifier
}

func NewBlogService(
	store BlogStore,
	storage ObjectStorage,
	listCache *cache.Cache[[]models.BlogPost],
	validator *content.FormValidator,
	revalidator Revalidator,
) *BlogService {
	if listCache == nil {
		listCache = cache.New[[]models.BlogPost]()
	}
	if validator == nil {
		validator = content.NewFormValidator()
	}
	return &BlogService{
		store:     store,
		storage:   storage,
		cache:     listCache,
		validator: validator,
		notifier:  notifier{revalidator: revalidator},
	}
}

// List returns posts newest first, served from the list cache when warm.
func (s *BlogService) List(ctx context.Context) ([]models.BlogPost, error) {
	return s.cache.GetOrFetch(ctx, listKey, s.store.ListBlogs)
}

func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	return s.store.GetBlogBySlug(ctx, slug)
}

func (s *BlogService) Create(ctx context.Context, raw map[string]interface{}) (uuid.UUID, error) {
	fields, err := content.NormalizeBlog(raw)
	if err != nil {
		return uuid.Nil, err
	}
	if err := checkSlug(ctx, s.store.BlogSlugTaken, fields.Slug, uuid.Nil); err != nil {
		return uuid.Nil, err
	}

	id, err := s.store.CreateBlog(ctx, fields)
	if err != nil {
		return uuid.Nil, err
	}
	log.Printf("Created blog %s (%s)", id, fields.Slug)

	s.changed(ctx, fields.Slug)
	return id, nil
}

func (s *BlogService) Update(ctx context.Context, id uuid.UUID, raw map[string]interface{}) error {
	fields, err := content.NormalizeBlog(raw)
	if err != nil {
		return err
	}
	existing, err := s.store.GetBlog(ctx, id)
	if err != nil {
		return err
	}
	if err := checkSlug(ctx, s.store.BlogSlugTaken, fields.Slug, id); err != nil {
		return err
	}

	if err := s.store.UpdateBlog(ctx, id, fields); err != nil {
		return err
	}
	log.Printf("Updated blog %s (%s)", id, fields.Slug)

	s.changed(ctx, fields.Slug, existing.Slug)
	return nil
}

// Delete removes the cover image first and then the row. Only the row delete
// can fail the call.
func (s *BlogService) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.store.GetBlog(ctx, id)
	if err != nil {
		return err
	}

	removeImage(s.storage, "blog", id, existing.Cover)

	if err := s.store.DeleteBlog(ctx, id); err != nil {
		return err
	}
	log.Printf("Deleted blog %s (%s)", id, existing.Slug)

	s.changed(ctx, existing.Slug)
	return nil
}

func (s *BlogService) Validate(raw map[string]interface{}) error {
	return s.validator.ValidateBlog(raw)
}

// InvalidateCache drops everything cached for blogs so the next read hits
// the store.
func (s *BlogService) InvalidateCache() {
	s.cache.InvalidateAll()
}

func (s *BlogService) changed(ctx context.Context, slugs ...string) {
	s.cache.Invalidate(listKey)
	paths := []string{"/blog"}
	for _, slug := range slugs {
		paths = append(paths, "/blog/"+slug)
	}
	s.notify(ctx, "blog", paths...)
}
