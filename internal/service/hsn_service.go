package service

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gstbook/internal/domain"
	"gstbook/internal/hsn"
	"gstbook/internal/metrics"
	"gstbook/internal/port"
)

// HSNServiceConfig holds result limits for catalog searches.
type HSNServiceConfig struct {
	SearchLimit    int
	MaxSearchLimit int
}

// HSNSearchInput is the DTO for filtering the HSN master table.
type HSNSearchInput struct {
	Query    string `form:"q"`
	Category string `form:"category"`
	Type     string `form:"type"`
	Limit    int    `form:"limit"`
}

// HSNService suggests and looks up HSN/SAC codes.
type HSNService interface {
	// Suggest ranks the loaded catalog against a free-text query.
	Suggest(ctx context.Context, query string) ([]hsn.Match, error)
	Search(ctx context.Context, input HSNSearchInput) ([]domain.HSNCode, error)
	Lookup(ctx context.Context, code string) ([]hsn.Code, error)
	RecordUsage(ctx context.Context, id uuid.UUID) error
	// Reload replaces the in-memory catalog with the current table contents.
	Reload(ctx context.Context) error
	LineChecker
}

type hsnService struct {
	repo    port.HSNRepository
	matcher *hsn.Matcher
	cfg     HSNServiceConfig
	metrics *metrics.Metrics
	log     *zap.Logger

	mu      sync.RWMutex
	catalog *hsn.Catalog
}

// NewHSNService creates a new HSNService. The catalog is loaded lazily on the
// first Suggest or Lookup.
func NewHSNService(
	repo port.HSNRepository,
	matcher *hsn.Matcher,
	cfg HSNServiceConfig,
	m *metrics.Metrics,
	log *zap.Logger,
) HSNService {
	if matcher == nil {
		matcher = hsn.NewMatcher()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &hsnService{
		repo:    repo,
		matcher: matcher,
		cfg:     cfg,
		metrics: m,
		log:     log.Named("hsn.service"),
	}
}

func (s *hsnService) Suggest(ctx context.Context, query string) ([]hsn.Match, error) {
	if strings.TrimSpace(query) == "" {
		return []hsn.Match{}, nil
	}
	catalog := s.currentCatalog(ctx)
	results := s.matcher.Search(query, catalog.Entries())
	s.metrics.ObserveSuggest(len(results))
	return results, nil
}

func (s *hsnService) Search(ctx context.Context, input HSNSearchInput) ([]domain.HSNCode, error) {
	q := strings.TrimSpace(input.Query)
	if q == "" {
		return nil, domain.ErrEmptySearchQuery
	}

	limit := input.Limit
	if limit <= 0 {
		limit = s.cfg.SearchLimit
	}
	if s.cfg.MaxSearchLimit > 0 && limit > s.cfg.MaxSearchLimit {
		limit = s.cfg.MaxSearchLimit
	}

	codes, err := s.repo.Search(ctx, &domain.HSNFilter{
		Query:    q,
		Category: strings.TrimSpace(input.Category),
		Type:     strings.ToUpper(strings.TrimSpace(input.Type)),
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveSearch(len(codes))
	return codes, nil
}

func (s *hsnService) Lookup(ctx context.Context, code string) ([]hsn.Code, error) {
	entries := s.currentCatalog(ctx).Lookup(strings.TrimSpace(code))
	if len(entries) == 0 {
		return nil, domain.ErrHSNCodeNotFound
	}
	return entries, nil
}

func (s *hsnService) CheckLines(ctx context.Context, items []domain.InvoiceItem) []LineWarning {
	return checkLines(s.currentCatalog(ctx), items)
}

func (s *hsnService) RecordUsage(ctx context.Context, id uuid.UUID) error {
	return s.repo.IncrementUsage(ctx, id)
}

func (s *hsnService) Reload(ctx context.Context) error {
	rows, err := s.repo.LoadAll(ctx)
	if err != nil {
		return err
	}

	catalog := hsn.DefaultCatalog()
	if len(rows) > 0 {
		entries := make([]hsn.Code, 0, len(rows))
		for i := range rows {
			entries = append(entries, rows[i].CatalogEntry())
		}
		catalog = hsn.NewCatalog(entries)
	} else {
		s.log.Warn("hsn_codes table is empty, using built-in catalog")
	}

	s.mu.Lock()
	s.catalog = catalog
	s.mu.Unlock()

	s.metrics.SetCatalogSize(catalog.Len())
	s.log.Info("hsn catalog loaded", zap.Int("entries", catalog.Len()))
	return nil
}

// currentCatalog returns the loaded catalog, loading it on first use. A
// failed load serves the built-in catalog and is retried on the next call.
func (s *hsnService) currentCatalog(ctx context.Context) *hsn.Catalog {
	s.mu.RLock()
	catalog := s.catalog
	s.mu.RUnlock()
	if catalog != nil {
		return catalog
	}

	if err := s.Reload(ctx); err != nil {
		s.log.Error("loading hsn catalog", zap.Error(err))
		return hsn.DefaultCatalog()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}
