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

const templateColumns = `id, name, description, is_default, created_at, updated_at`

type templateRepo struct {
	db *sqlx.DB
}

// NewTemplateRepo creates a new PostgreSQL-backed InvoiceTemplateRepository.
func NewTemplateRepo(db *sqlx.DB) port.InvoiceTemplateRepository {
	return &templateRepo{db: db}
}

func (r *templateRepo) Create(ctx context.Context, t *domain.InvoiceTemplate) error {
	t.ID = uuid.New()
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invoice_templates (id, name, description, is_default, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.Name, t.Description, t.IsDefault, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("templateRepo.Create: %w", err)
	}
	return nil
}

func (r *templateRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.InvoiceTemplate, error) {
	var t domain.InvoiceTemplate
	err := r.db.GetContext(ctx, &t, `SELECT `+templateColumns+` FROM invoice_templates WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("templateRepo.GetByID: %w", err)
	}
	return &t, nil
}

func (r *templateRepo) List(ctx context.Context) ([]domain.InvoiceTemplate, error) {
	templates := []domain.InvoiceTemplate{}
	err := r.db.SelectContext(ctx, &templates,
		`SELECT `+templateColumns+` FROM invoice_templates ORDER BY is_default DESC, LOWER(name), created_at`)
	if err != nil {
		return nil, fmt.Errorf("templateRepo.List: %w", err)
	}
	return templates, nil
}

func (r *templateRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM invoice_templates`); err != nil {
		return 0, fmt.Errorf("templateRepo.Count: %w", err)
	}
	return n, nil
}

func (r *templateRepo) Update(ctx context.Context, t *domain.InvoiceTemplate) error {
	t.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE invoice_templates SET name = $1, description = $2, updated_at = $3 WHERE id = $4`,
		t.Name, t.Description, t.UpdatedAt, t.ID)
	if err != nil {
		return fmt.Errorf("templateRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrTemplateNotFound
	}
	return nil
}

func (r *templateRepo) SetDefault(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("templateRepo.SetDefault begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx,
		`UPDATE invoice_templates SET is_default = FALSE, updated_at = $1 WHERE is_default AND id <> $2`,
		now, id); err != nil {
		return fmt.Errorf("templateRepo.SetDefault clear: %w", err)
	}
	result, err := tx.ExecContext(ctx,
		`UPDATE invoice_templates SET is_default = TRUE, updated_at = $1 WHERE id = $2`, now, id)
	if err != nil {
		return fmt.Errorf("templateRepo.SetDefault: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrTemplateNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("templateRepo.SetDefault commit: %w", err)
	}
	return nil
}

func (r *templateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM invoice_templates WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("templateRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrTemplateNotFound
	}
	return nil
}
