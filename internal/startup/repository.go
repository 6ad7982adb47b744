// AngelaMos | 2026
// repository.go

package startup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/solacehq/solace/internal/core"
)

type Repository interface {
	Insert(ctx context.Context, s *Startup) error
	GetByID(ctx context.Context, id string) (*Startup, error)
	ListByOwner(ctx context.Context, userID string) ([]Startup, error)
	ListPublic(ctx context.Context) ([]Startup, error)
	ListAll(ctx context.Context) ([]Startup, error)
	Update(ctx context.Context, s *Startup) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const startupColumns = `id, user_id, name, description, image_url, visibility, created_at`

func (r *repository) Insert(ctx context.Context, s *Startup) error {
	query := `
		INSERT INTO startups (id, user_id, name, description, image_url, visibility)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &s.CreatedAt, query,
		s.ID,
		s.UserID,
		s.Name,
		s.Description,
		s.ImageURL,
		s.Visibility,
	)
	if err != nil {
		return fmt.Errorf("insert startup: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Startup, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM startups
		WHERE id = $1`, startupColumns)

	var s Startup
	err := r.db.GetContext(ctx, &s, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get startup: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get startup: %w", err)
	}

	return &s, nil
}

func (r *repository) ListByOwner(
	ctx context.Context,
	userID string,
) ([]Startup, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM startups
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`, startupColumns)

	var startups []Startup
	if err := r.db.SelectContext(ctx, &startups, query, userID); err != nil {
		return nil, fmt.Errorf("list startups by owner: %w", err)
	}

	return startups, nil
}

func (r *repository) ListPublic(ctx context.Context) ([]Startup, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM startups
		WHERE visibility = 'public'
		ORDER BY created_at DESC, id DESC`, startupColumns)

	var startups []Startup
	if err := r.db.SelectContext(ctx, &startups, query); err != nil {
		return nil, fmt.Errorf("list public startups: %w", err)
	}

	return startups, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Startup, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM startups
		ORDER BY created_at DESC, id DESC`, startupColumns)

	var startups []Startup
	if err := r.db.SelectContext(ctx, &startups, query); err != nil {
		return nil, fmt.Errorf("list all startups: %w", err)
	}

	return startups, nil
}

// Update never touches user_id or created_at; both are immutable after
// insert.
func (r *repository) Update(ctx context.Context, s *Startup) error {
	query := `
		UPDATE startups
		SET name = $2, description = $3, image_url = $4, visibility = $5
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Name,
		s.Description,
		s.ImageURL,
		s.Visibility,
	)
	if err != nil {
		return fmt.Errorf("update startup: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update startup: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update startup: %w", core.ErrNotFound)
	}

	return nil
}

// Delete is permanent; there is no tombstone or soft-delete state.
func (r *repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM startups WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete startup: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete startup: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete startup: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM startups`)
	if err != nil {
		return 0, fmt.Errorf("count startups: %w", err)
	}

	return count, nil
}
