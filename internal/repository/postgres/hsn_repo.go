package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstbook/internal/domain"
	"gstbook/internal/port"
)

const hsnColumns = `id, code, description, gst_rate, type, category, subcategory,
	keywords, unit, usage_count, is_active, created_at, updated_at`

type hsnRepo struct {
	db *sqlx.DB
}

// NewHSNRepo creates a new PostgreSQL-backed HSNRepository.
func NewHSNRepo(db *sqlx.DB) port.HSNRepository {
	return &hsnRepo{db: db}
}

func (r *hsnRepo) LoadAll(ctx context.Context) ([]domain.HSNCode, error) {
	var codes []domain.HSNCode
	err := r.db.SelectContext(ctx, &codes,
		`SELECT `+hsnColumns+` FROM hsn_codes WHERE is_active ORDER BY code, gst_rate`)
	if err != nil {
		return nil, fmt.Errorf("hsnRepo.LoadAll: %w", err)
	}
	return codes, nil
}

func (r *hsnRepo) Search(ctx context.Context, filter *domain.HSNFilter) ([]domain.HSNCode, error) {
	args := []interface{}{likePattern(filter.Query)}
	clause := `WHERE is_active AND (LOWER(code) LIKE $1 OR LOWER(description) LIKE $1 OR LOWER(keywords) LIKE $1)`
	argN := 2

	if filter.Category != "" {
		clause += fmt.Sprintf(" AND LOWER(category) = LOWER($%d)", argN)
		args = append(args, filter.Category)
		argN++
	}
	if filter.Type != "" {
		clause += fmt.Sprintf(" AND LOWER(type) = LOWER($%d)", argN)
		args = append(args, filter.Type)
		argN++
	}
	args = append(args, filter.Limit)

	var codes []domain.HSNCode
	err := r.db.SelectContext(ctx, &codes,
		fmt.Sprintf(`SELECT %s FROM hsn_codes %s ORDER BY usage_count DESC, code LIMIT $%d`, hsnColumns, clause, argN),
		args...)
	if err != nil {
		return nil, fmt.Errorf("hsnRepo.Search: %w", err)
	}
	return codes, nil
}

func (r *hsnRepo) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE hsn_codes SET usage_count = usage_count + 1, updated_at = $1 WHERE id = $2`,
		time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("hsnRepo.IncrementUsage: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrHSNCodeNotFound
	}
	return nil
}

func (r *hsnRepo) Categories(ctx context.Context, codeType string) ([]string, error) {
	var categories []string
	err := r.db.SelectContext(ctx, &categories,
		`SELECT DISTINCT category FROM hsn_codes
		 WHERE is_active AND type = $1 AND category <> ''
		 ORDER BY category`, codeType)
	if err != nil {
		return nil, fmt.Errorf("hsnRepo.Categories: %w", err)
	}
	return categories, nil
}
