package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"portfolio-backend/internal/apperrors"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/revalidate"
)

type BlogStore interface {
	ListBlogs(ctx context.Context) ([]models.BlogPost, error)
	GetBlog(ctx context.Context, id uuid.UUID) (*models.BlogPost, error)
	GetBlogBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	BlogSlugTaken(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	CreateBlog(ctx context.Context, f models.BlogFields) (uuid.UUID, error)
	UpdateBlog(ctx context.Context, id uuid.UUID, f models.BlogFields) error
	DeleteBlog(ctx context.Context, id uuid.UUID) error
}

type ProjectStore interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error)
	ProjectSlugTaken(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	CreateProject(ctx context.Context, f models.ProjectFields) (uuid.UUID, error)
	UpdateProject(ctx context.Context, id uuid.UUID, f models.ProjectFields) error
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

type WorkStore interface {
	ListWorks(ctx context.Context) ([]models.Work, error)
	GetWork(ctx context.Context, id uuid.UUID) (*models.Work, error)
	WorkSlugTaken(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	CreateWork(ctx context.Context, f models.WorkFields) (uuid.UUID, error)
	CreateWorks(ctx context.Context, items []models.WorkFields) ([]uuid.UUID, error)
	UpdateWork(ctx context.Context, id uuid.UUID, f models.WorkFields) error
	DeleteWork(ctx context.Context, id uuid.UUID) error
	ReorderWorks(ctx context.Context, ids []uuid.UUID) error
}

// ObjectStorage removes the stored object a public URL points at. It reports
// false when the URL is not a managed object.
type ObjectStorage interface {
	RemoveByURL(publicURL string) (bool, error)
}

type Revalidator interface {
	Revalidate(ctx context.Context, path string, kind revalidate.Kind) error
}

const listKey = "list"

// DefaultRevalidateTimeout bounds the whole revalidation fan-out after a
// mutation.
const DefaultRevalidateTimeout = 2 * time.Second

// notifier tells the rendering layer which pages went stale. Failures are
// logged and never reach the caller.
type notifier struct {
	revalidator Revalidator
	timeout     time.Duration
}

// SetRevalidateTimeout changes how long a mutation waits on revalidation.
func (n *notifier) SetRevalidateTimeout(d time.Duration) {
	n.timeout = d
}

func (n notifier) notify(ctx context.Context, resource string, paths ...string) {
	if n.revalidator == nil {
		return
	}
	timeout := n.timeout
	if timeout <= 0 {
		timeout = DefaultRevalidateTimeout
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	pending := dedupe(paths)
	for i, path := range pending {
		if ctx.Err() != nil {
			log.Printf("Warning: revalidation after %s mutation timed out, skipped %v", resource, pending[i:])
			return
		}
		if err := n.revalidator.Revalidate(ctx, path, revalidate.KindPage); err != nil {
			log.Printf("Warning: failed to revalidate %s after %s mutation: %v", path, resource, err)
		}
	}
}

// removeImage deletes the object behind imageURL. Storage failures are
// logged so the row delete can still go ahead.
func removeImage(storage ObjectStorage, resource string, id uuid.UUID, imageURL string) {
	if storage == nil || imageURL == "" {
		return
	}
	removed, err := storage.RemoveByURL(imageURL)
	if err != nil {
		log.Printf("Warning: failed to remove image for %s %s: %v", resource, id, err)
		return
	}
	if removed {
		log.Printf("Removed image for %s %s: %s", resource, id, imageURL)
	}
}

func checkSlug(ctx context.Context, taken func(context.Context, string, uuid.UUID) (bool, error), slug string, excludeID uuid.UUID) error {
	exists, err := taken(ctx, slug, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.Conflict()
	}
	return nil
}

func dedupe(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := paths[:0:0]
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
