package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gstbook/internal/domain"
	"gstbook/internal/port"
)

const masterServiceColumns = `id, name, description, sac_code, gst_rate, hsn_code, category,
	subcategory, business_type, keywords, tags, unit, is_active, usage_count, created_at, updated_at`

type masterServiceRepo struct {
	db *sqlx.DB
}

// NewMasterServiceRepo creates a new PostgreSQL-backed MasterServiceRepository.
func NewMasterServiceRepo(db *sqlx.DB) port.MasterServiceRepository {
	return &masterServiceRepo{db: db}
}

// masterServiceConds returns the category and business type conditions shared
// by Search and Match, numbering placeholders from argN.
func masterServiceConds(filter *domain.MasterServiceFilter, argN int) (conds []string, args []interface{}) {
	if filter.Category != "" {
		conds = append(conds, fmt.Sprintf("LOWER(category) = LOWER($%d)", argN))
		args = append(args, filter.Category)
		argN++
	}
	if filter.BusinessType != "" {
		conds = append(conds, fmt.Sprintf("(business_type = $%d OR business_type = 'both')", argN))
		args = append(args, filter.BusinessType)
	}
	return conds, args
}

// buildMasterServiceSearch returns the query and args for a name search.
func buildMasterServiceSearch(filter *domain.MasterServiceFilter) (string, []interface{}) {
	conds := []string{"is_active", "LOWER(name) LIKE $1"}
	args := []interface{}{likePattern(filter.Query)}

	extra, extraArgs := masterServiceConds(filter, len(args)+1)
	conds = append(conds, extra...)
	args = append(args, extraArgs...)
	args = append(args, filter.Limit)

	return fmt.Sprintf(`SELECT %s FROM master_services WHERE %s ORDER BY usage_count DESC, name LIMIT $%d`,
		masterServiceColumns, strings.Join(conds, " AND "), len(args)), args
}

// buildMasterServiceMatch returns the query and args for a widened match.
func buildMasterServiceMatch(filter *domain.MasterServiceFilter) (string, []interface{}) {
	conds := []string{
		"is_active",
		"(LOWER(name) LIKE $2 OR LOWER(keywords) LIKE $2 OR LOWER(description) LIKE $2)",
	}
	args := []interface{}{strings.ToLower(strings.TrimSpace(filter.Query)), likePattern(filter.Query)}

	extra, extraArgs := masterServiceConds(filter, len(args)+1)
	conds = append(conds, extra...)
	args = append(args, extraArgs...)
	args = append(args, filter.Limit)

	return fmt.Sprintf(`SELECT %s FROM master_services WHERE %s
		ORDER BY (LOWER(name) = $1) DESC, (LOWER(name) LIKE $2) DESC, usage_count DESC, name
		LIMIT $%d`,
		masterServiceColumns, strings.Join(conds, " AND "), len(args)), args
}

func (r *masterServiceRepo) Search(ctx context.Context, filter *domain.MasterServiceFilter) ([]domain.MasterService, error) {
	query, args := buildMasterServiceSearch(filter)
	services := []domain.MasterService{}
	if err := r.db.SelectContext(ctx, &services, query, args...); err != nil {
		return nil, fmt.Errorf("masterServiceRepo.Search: %w", err)
	}
	return services, nil
}

func (r *masterServiceRepo) Match(ctx context.Context, filter *domain.MasterServiceFilter) ([]domain.MasterService, error) {
	query, args := buildMasterServiceMatch(filter)
	services := []domain.MasterService{}
	if err := r.db.SelectContext(ctx, &services, query, args...); err != nil {
		return nil, fmt.Errorf("masterServiceRepo.Match: %w", err)
	}
	return services, nil
}

func (r *masterServiceRepo) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.SelectContext(ctx, &categories,
		`SELECT DISTINCT category FROM master_services WHERE is_active ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("masterServiceRepo.Categories: %w", err)
	}
	return categories, nil
}

func (r *masterServiceRepo) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE master_services SET usage_count = usage_count + 1, updated_at = $1 WHERE id = $2`,
		time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("masterServiceRepo.IncrementUsage: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrMasterServiceNotFound
	}
	return nil
}
