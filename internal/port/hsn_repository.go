package port

import (
	"context"

	"github.com/google/uuid"

	"gstbook/internal/domain"
)

// HSNRepository defines the contract for HSN/SAC master table access.
type HSNRepository interface {
	// LoadAll returns every active code, ordered by code.
	LoadAll(ctx context.Context) ([]domain.HSNCode, error)
	// Search runs a substring filter over code, description and keywords,
	// most used codes first.
	Search(ctx context.Context, filter *domain.HSNFilter) ([]domain.HSNCode, error)
	IncrementUsage(ctx context.Context, id uuid.UUID) error
	// Categories returns the distinct non-empty categories of active codes
	// of codeType.
	Categories(ctx context.Context, codeType string) ([]string, error)
}
