package port

import (
	"context"

	"github.com/google/uuid"

	"gstbook/internal/domain"
)

// LibraryItemRepository persists the saved item library.
type LibraryItemRepository interface {
	Create(ctx context.Context, item *domain.LibraryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LibraryItem, error)
	// List returns items ordered by description. A non-empty query filters
	// on description, HSN code and category.
	List(ctx context.Context, query string) ([]domain.LibraryItem, error)
	Update(ctx context.Context, item *domain.LibraryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// MasterServiceRepository reads the curated services catalog.
type MasterServiceRepository interface {
	// Search filters active services by name, most used first.
	Search(ctx context.Context, filter *domain.MasterServiceFilter) ([]domain.MasterService, error)
	// Match finds active services whose name, keywords or description
	// contain filter.Query. Exact name matches come first, then name
	// matches, then by usage.
	Match(ctx context.Context, filter *domain.MasterServiceFilter) ([]domain.MasterService, error)
	Categories(ctx context.Context) ([]string, error)
	IncrementUsage(ctx context.Context, id uuid.UUID) error
}

// InvoiceTemplateRepository persists invoice templates.
type InvoiceTemplateRepository interface {
	Create(ctx context.Context, tmpl *domain.InvoiceTemplate) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InvoiceTemplate, error)
	List(ctx context.Context) ([]domain.InvoiceTemplate, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, tmpl *domain.InvoiceTemplate) error
	// SetDefault makes id the only default template.
	SetDefault(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}
