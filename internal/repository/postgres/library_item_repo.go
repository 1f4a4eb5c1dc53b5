package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstbook/internal/domain"
	"gstbook/internal/port"
)

const libraryItemColumns = `id, description, hsn_code, sac_code, gst_rate, unit, category,
	is_active, created_at, updated_at`

type libraryItemRepo struct {
	db *sqlx.DB
}

// NewLibraryItemRepo creates a new PostgreSQL-backed LibraryItemRepository.
func NewLibraryItemRepo(db *sqlx.DB) port.LibraryItemRepository {
	return &libraryItemRepo{db: db}
}

func (r *libraryItemRepo) Create(ctx context.Context, item *domain.LibraryItem) error {
	item.ID = uuid.New()
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO library_items (id, description, hsn_code, sac_code, gst_rate, unit, category,
			is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		item.ID, item.Description, item.HSNCode, item.SACCode, item.GSTRate, item.Unit, item.Category,
		item.IsActive, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("libraryItemRepo.Create: %w", err)
	}
	return nil
}

func (r *libraryItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LibraryItem, error) {
	var item domain.LibraryItem
	err := r.db.GetContext(ctx, &item, `SELECT `+libraryItemColumns+` FROM library_items WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLibraryItemNotFound
		}
		return nil, fmt.Errorf("libraryItemRepo.GetByID: %w", err)
	}
	return &item, nil
}

func (r *libraryItemRepo) List(ctx context.Context, query string) ([]domain.LibraryItem, error) {
	clause := ""
	args := []interface{}{}
	if query != "" {
		clause = `WHERE LOWER(description) LIKE $1 OR LOWER(hsn_code) LIKE $1 OR LOWER(category) LIKE $1`
		args = append(args, likePattern(query))
	}

	items := []domain.LibraryItem{}
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+libraryItemColumns+` FROM library_items `+clause+` ORDER BY LOWER(description), created_at`,
		args...)
	if err != nil {
		return nil, fmt.Errorf("libraryItemRepo.List: %w", err)
	}
	return items, nil
}

func (r *libraryItemRepo) Update(ctx context.Context, item *domain.LibraryItem) error {
	item.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE library_items SET description = $1, hsn_code = $2, sac_code = $3, gst_rate = $4,
			unit = $5, category = $6, is_active = $7, updated_at = $8
		 WHERE id = $9`,
		item.Description, item.HSNCode, item.SACCode, item.GSTRate,
		item.Unit, item.Category, item.IsActive, item.UpdatedAt, item.ID)
	if err != nil {
		return fmt.Errorf("libraryItemRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrLibraryItemNotFound
	}
	return nil
}

func (r *libraryItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM library_items WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("libraryItemRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrLibraryItemNotFound
	}
	return nil
}
