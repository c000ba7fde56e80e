package supabase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"portfolio-backend/internal/apperrors"
	"portfolio-backend/internal/models"
)

const (
	blogColumns = `id, title, slug, excerpt, cover, content, tags, date, created_at, updated_at`

	projectColumns = `id, title, slug, excerpt, thumb, video, roles, tools, type, featured,
		alt, credits, problem, solution, approach, outcome, year, client, mobile_hero_src,
		gallery, highlights, deliverables, process, created_at, updated_at`

	workColumns = `id, title, slug, description, image, aspect_ratio, featured_order, link, created_at, updated_at`
)

type DatabaseClient struct {
	db *sqlx.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sqlx.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

// NewDatabaseClientFromDB wraps an existing connection pool.
func NewDatabaseClientFromDB(db *sqlx.DB) *DatabaseClient {
	return &DatabaseClient{db: db}
}

// DB exposes the underlying pool, e.g. for running migrations.
func (d *DatabaseClient) DB() *sql.DB {
	return d.db.DB
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}

// Blogs

func (d *DatabaseClient) ListBlogs(ctx context.Context) ([]models.BlogPost, error) {
	posts := []models.BlogPost{}
	err := d.db.SelectContext(ctx, &posts, `SELECT `+blogColumns+` FROM blogs ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	return posts, nil
}

func (d *DatabaseClient) GetBlog(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	var post models.BlogPost
	err := d.db.GetContext(ctx, &post, `SELECT `+blogColumns+` FROM blogs WHERE id = $1`, id)
	if err != nil {
		return nil, readError(err, "get blog")
	}
	return &post, nil
}

func (d *DatabaseClient) GetBlogBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := d.db.GetContext(ctx, &post, `SELECT `+blogColumns+` FROM blogs WHERE slug = $1`, slug)
	if err != nil {
		return nil, readError(err, "get blog")
	}
	return &post, nil
}

func (d *DatabaseClient) BlogSlugTaken(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	return d.slugTaken(ctx, "blogs", slug, excludeID)
}

func (d *DatabaseClient) CreateBlog(ctx context.Context, f models.BlogFields) (uuid.UUID, error) {
	var id uuid.UUID
	err := d.db.QueryRowContext(ctx, `
		INSERT INTO blogs (title, slug, excerpt, cover, content, tags, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, f.Title, f.Slug, f.Excerpt, f.Cover, f.Content, f.Tags, f.Date).Scan(&id)
	if err != nil {
		return uuid.Nil, writeError(err, "create blog")
	}
	return id, nil
}

func (d *DatabaseClient) UpdateBlog(ctx context.Context, id uuid.UUID, f models.BlogFields) error {
	res, err := d.db.ExecContext(ctx, `
		UPDATE blogs
		SET title = $1, slug = $2, excerpt = $3, cover = $4, content = $5, tags = $6, date = $7
		WHERE id = $8
	`, f.Title, f.Slug, f.Excerpt, f.Cover, f.Content, f.Tags, f.Date, id)
	return affectedOne(res, err, "update blog")
}

func (d *DatabaseClient) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	return affectedOne(res, err, "delete blog")
}

// Projects

func (d *DatabaseClient) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects := []models.Project{}
	err := d.db.SelectContext(ctx, &projects, `SELECT `+projectColumns+` FROM projects ORDER BY title ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (d *DatabaseClient) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := d.db.GetContext(ctx, &project, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	if err != nil {
		return nil, readError(err, "get project")
	}
	return &project, nil
}

func (d *DatabaseClient) GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var project models.Project
	err := d.db.GetContext(ctx, &project, `SELECT `+projectColumns+` FROM projects WHERE slug = $1`, slug)
	if err != nil {
		return nil, readError(err, "get project")
	}
	return &project, nil
}

func (d *DatabaseClient) ProjectSlugTaken(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	return d.slugTaken(ctx, "projects", slug, excludeID)
}

func projectArgs(f models.ProjectFields) []interface{} {
	return []interface{}{
		f.Title, f.Slug, f.Excerpt, f.Thumb, f.Video, f.Roles, f.Tools, f.Type, f.Featured,
		f.Alt, f.Credits, f.Problem, f.Solution, f.Approach, f.Outcome, f.Year, f.Client,
		f.MobileHeroSrc, f.Gallery, f.Highlights, f.Deliverables, f.Process,
	}
}

func (d *DatabaseClient) CreateProject(ctx context.Context, f models.ProjectFields) (uuid.UUID, error) {
	var id uuid.UUID
	err := d.db.QueryRowContext(ctx, `
		INSERT INTO projects (title, slug, excerpt, thumb, video, roles, tools, type, featured,
			alt, credits, problem, solution, approach, outcome, year, client, mobile_hero_src,
			gallery, highlights, deliverables, process)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22)
		RETURNING id
	`, projectArgs(f)...).Scan(&id)
	if err != nil {
		return uuid.Nil, writeError(err, "create project")
	}
	return id, nil
}

func (d *DatabaseClient) UpdateProject(ctx context.Context, id uuid.UUID, f models.ProjectFields) error {
	args := append(projectArgs(f), id)
	res, err := d.db.ExecContext(ctx, `
		UPDATE projects
		SET title = $1, slug = $2, excerpt = $3, thumb = $4, video = $5, roles = $6, tools = $7,
			type = $8, featured = $9, alt = $10, credits = $11, problem = $12, solution = $13,
			approach = $14, outcome = $15, year = $16, client = $17, mobile_hero_src = $18,
			gallery = $19, highlights = $20, deliverables = $21, process = $22
		WHERE id = $23
	`, args...)
	return affectedOne(res, err, "update project")
}

func (d *DatabaseClient) DeleteProject(ctx context.Context, id uuid.UUID) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	return affectedOne(res, err, "delete project")
}

// Works

func (d *DatabaseClient) ListWorks(ctx context.Context) ([]models.Work, error) {
	works := []models.Work{}
	err := d.db.SelectContext(ctx, &works, `SELECT `+workColumns+` FROM works ORDER BY featured_order ASC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list works: %w", err)
	}
	return works, nil
}

func (d *DatabaseClient) GetWork(ctx context.Context, id uuid.UUID) (*models.Work, error) {
	var work models.Work
	err := d.db.GetContext(ctx, &work, `SELECT `+workColumns+` FROM works WHERE id = $1`, id)
	if err != nil {
		return nil, readError(err, "get work")
	}
	return &work, nil
}

func (d *DatabaseClient) WorkSlugTaken(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	return d.slugTaken(ctx, "works", slug, excludeID)
}

// CreateWork inserts a work. Without an explicit order the tile goes after
// the highest existing featured_order, so gaps left by deletes or manual
// orders never put it in front of an existing tile.
func (d *DatabaseClient) CreateWork(ctx context.Context, f models.WorkFields) (uuid.UUID, error) {
	var id uuid.UUID
	err := d.db.QueryRowContext(ctx, `
		INSERT INTO works (title, slug, description, image, aspect_ratio, featured_order, link)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6::int, (SELECT COALESCE(MAX(featured_order) + 1, 0) FROM works)), $7)
		RETURNING id
	`, f.Title, f.Slug, f.Description, f.Image, f.AspectRatio, f.FeaturedOrder, f.Link).Scan(&id)
	if err != nil {
		return uuid.Nil, writeError(err, "create work")
	}
	return id, nil
}

// CreateWorks inserts a batch in one transaction. Each new work gets
// featured_order = existing count + its index in the batch.
func (d *DatabaseClient) CreateWorks(ctx context.Context, items []models.WorkFields) ([]uuid.UUID, error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `LOCK TABLE works IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		return nil, fmt.Errorf("failed to lock works: %w", err)
	}

	var existing int
	if err := tx.GetContext(ctx, &existing, `SELECT COUNT(*) FROM works`); err != nil {
		return nil, fmt.Errorf("failed to count works: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(items))
	for i, f := range items {
		var id uuid.UUID
		err := tx.QueryRowContext(ctx, `
			INSERT INTO works (title, slug, description, image, aspect_ratio, featured_order, link)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, f.Title, f.Slug, f.Description, f.Image, f.AspectRatio, existing+i, f.Link).Scan(&id)
		if err != nil {
			return nil, writeError(err, "create work")
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit works: %w", err)
	}
	return ids, nil
}

func (d *DatabaseClient) UpdateWork(ctx context.Context, id uuid.UUID, f models.WorkFields) error {
	res, err := d.db.ExecContext(ctx, `
		UPDATE works
		SET title = $1, slug = $2, description = $3, image = $4, aspect_ratio = $5,
			featured_order = COALESCE($6::int, featured_order), link = $7
		WHERE id = $8
	`, f.Title, f.Slug, f.Description, f.Image, f.AspectRatio, f.FeaturedOrder, f.Link, id)
	return affectedOne(res, err, "update work")
}

func (d *DatabaseClient) DeleteWork(ctx context.Context, id uuid.UUID) error {
	res, err := d.db.ExecContext(ctx, `DELETE FROM works WHERE id = $1`, id)
	return affectedOne(res, err, "delete work")
}

// ReorderWorks sets featured_order to each id's index in ids. The ids must
// be a permutation of every stored work; the whole reorder is one
// transaction and only featured_order is written.
func (d *DatabaseClient) ReorderWorks(ctx context.Context, ids []uuid.UUID) error {
	idArgs := make([]string, len(ids))
	orders := make([]int64, len(ids))
	for i, id := range ids {
		idArgs[i] = id.String()
		orders[i] = int64(i)
	}

	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var total int
	if err := tx.GetContext(ctx, &total, `SELECT COUNT(*) FROM works`); err != nil {
		return fmt.Errorf("failed to count works: %w", err)
	}
	if total != len(ids) {
		return apperrors.Validation(fmt.Sprintf("reorder must list every work exactly once (got %d of %d)", len(ids), total))
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE works AS w
		SET featured_order = v.ord
		FROM unnest($1::uuid[], $2::int[]) AS v(id, ord)
		WHERE w.id = v.id
	`, pq.Array(idArgs), pq.Array(orders))
	if err != nil {
		return fmt.Errorf("failed to reorder works: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to reorder works: %w", err)
	}
	if affected != int64(len(ids)) {
		return apperrors.NotFound()
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reorder: %w", err)
	}
	return nil
}

func (d *DatabaseClient) slugTaken(ctx context.Context, table, slug string, excludeID uuid.UUID) (bool, error) {
	var ids []uuid.UUID
	if err := d.db.SelectContext(ctx, &ids, `SELECT id FROM `+table+` WHERE slug = $1`, slug); err != nil {
		return false, fmt.Errorf("failed to check %s slug: %w", table, err)
	}
	for _, id := range ids {
		if id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func readError(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound()
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

func writeError(err error, op string) error {
	if apperrors.IsUniqueViolation(err) {
		return apperrors.Wrap(err, apperrors.KindConflict, apperrors.MsgSlugConflict)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

func affectedOne(res sql.Result, err error, op string) error {
	if err != nil {
		return writeError(err, op)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if n == 0 {
		return apperrors.NotFound()
	}
	return nil
}
