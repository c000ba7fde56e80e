package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"portfolio-backend/internal/apperrors"
	"portfolio-backend/internal/cache"
	"portfolio-backend/internal/content"
	"portfolio-backend/internal/models"
)

type WorkService struct {
	store     WorkStore
	storage   ObjectStorage
	cache     *cache.Cache[[]models.Work]
	validator *content.FormValidator
	notifier
}

func NewWorkService(
	store WorkStore,
	storage ObjectStorage,
	listCache *cache.Cache[[]models.Work],
	validator *content.FormValidator,
	revalidator Revalidator,
) *WorkService {
	if listCache == nil {
		listCache = cache.New[[]models.Work]()
	}
	if validator == nil {
		validator = content.NewFormValidator()
	}
	return &WorkService{
		store:     store,
		storage:   storage,
		cache:     listCache,
		validator: validator,
		notifier:  notifier{revalidator: revalidator},
	}
}

// List returns works in display order.
func (s *WorkService) List(ctx context.Context) ([]models.Work, error) {
	return s.cache.GetOrFetch(ctx, listKey, s.store.ListWorks)
}

func (s *WorkService) Create(ctx context.Context, raw map[string]interface{}) (uuid.UUID, error) {
	fields, err := content.NormalizeWork(raw)
	if err != nil {
		return uuid.Nil, err
	}
	if err := checkSlug(ctx, s.store.WorkSlugTaken, fields.Slug, uuid.Nil); err != nil {
		return uuid.Nil, err
	}

	id, err := s.store.CreateWork(ctx, fields)
	if err != nil {
		return uuid.Nil, err
	}
	log.Printf("Created work %s (%s)", id, fields.Slug)

	s.changed(ctx)
	return id, nil
}

// BatchCreate inserts works created from one upload batch. New tiles are
// placed after the existing ones in the order given.
func (s *WorkService) BatchCreate(ctx context.Context, items []map[string]interface{}) ([]uuid.UUID, error) {
	if len(items) == 0 {
		return nil, apperrors.Validation("items must contain at least one work")
	}

	batch := make([]models.WorkFields, 0, len(items))
	seen := make(map[string]int, len(items))
	for i, raw := range items {
		fields, err := content.NormalizeWork(raw)
		if err != nil {
			return nil, itemError(i, err)
		}
		if first, ok := seen[fields.Slug]; ok {
			return nil, apperrors.New(apperrors.KindConflict,
				fmt.Sprintf("items[%d]: slug %q repeats items[%d]", i, fields.Slug, first))
		}
		seen[fields.Slug] = i
		if err := checkSlug(ctx, s.store.WorkSlugTaken, fields.Slug, uuid.Nil); err != nil {
			return nil, itemError(i, err)
		}
		fields.FeaturedOrder = nil
		batch = append(batch, fields)
	}

	ids, err := s.store.CreateWorks(ctx, batch)
	if err != nil {
		return nil, err
	}
	log.Printf("Created %d works in batch", len(ids))

	s.changed(ctx)
	return ids, nil
}

func (s *WorkService) Update(ctx context.Context, id uuid.UUID, raw map[string]interface{}) error {
	fields, err := content.NormalizeWork(raw)
	if err != nil {
		return err
	}
	if err := checkSlug(ctx, s.store.WorkSlugTaken, fields.Slug, id); err != nil {
		return err
	}

	if err := s.store.UpdateWork(ctx, id, fields); err != nil {
		return err
	}
	log.Printf("Updated work %s (%s)", id, fields.Slug)

	s.changed(ctx)
	return nil
}

// Delete removes the tile image first and then the row. Only the row delete
// can fail the call.
func (s *WorkService) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.store.GetWork(ctx, id)
	if err != nil {
		return err
	}

	removeImage(s.storage, "work", id, existing.Image)

	if err := s.store.DeleteWork(ctx, id); err != nil {
		return err
	}
	log.Printf("Deleted work %s (%s)", id, existing.Slug)

	s.changed(ctx)
	return nil
}

// Reorder stores ids as the new display sequence. ids must name every stored
// work exactly once; the store applies it in a single transaction.
func (s *WorkService) Reorder(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return apperrors.Validation("ids must contain at least one work id")
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for i, id := range ids {
		if id == uuid.Nil {
			return apperrors.Validation(fmt.Sprintf("ids[%d] is not a valid id", i))
		}
		if _, ok := seen[id]; ok {
			return apperrors.Validation(fmt.Sprintf("ids[%d] repeats %s", i, id))
		}
		seen[id] = struct{}{}
	}

	if err := s.store.ReorderWorks(ctx, ids); err != nil {
		return err
	}
	log.Printf("Reordered %d works", len(ids))

	s.changed(ctx)
	return nil
}

func (s *WorkService) Validate(raw map[string]interface{}) error {
	return s.validator.ValidateWork(raw)
}

func (s *WorkService) InvalidateCache() {
	s.cache.InvalidateAll()
}

func (s *WorkService) changed(ctx context.Context) {
	s.cache.Invalidate(listKey)
	s.notify(ctx, "work", "/", "/works")
}

// itemError prefixes the message with the batch position and keeps the kind.
func itemError(i int, err error) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return &apperrors.Error{
			Kind:    appErr.Kind,
			Message: fmt.Sprintf("items[%d]: %s", i, appErr.Message),
			Fields:  appErr.Fields,
			Err:     appErr.Err,
		}
	}
	return fmt.Errorf("items[%d]: %w", i, err)
}
