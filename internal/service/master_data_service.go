package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"gstbook/internal/domain"
	"gstbook/internal/port"
)

// Result limits for the master catalogs.
const (
	masterSearchLimit    = 10
	masterMaxSearchLimit = 50
	unifiedSearchLimit   = 15
)

// Relevance scores for unified search rows.
const (
	scoreExactName   = 100
	scoreNameMatch   = 80
	scoreKeywordHit  = 60
	scoreDescription = 40
)

const productCodeType = "HSN"

// MasterSearchInput is the DTO for the master services, products and
// unified searches.
type MasterSearchInput struct {
	Query        string `form:"q"`
	Category     string `form:"category"`
	BusinessType string `form:"business_type"`
	DataType     string `form:"data_type"`
	Limit        int    `form:"limit"`
}

// MasterDataService searches the curated services catalog and the HSN
// product catalog.
type MasterDataService interface {
	SearchServices(ctx context.Context, input MasterSearchInput) ([]domain.MasterService, error)
	ServiceCategories(ctx context.Context) ([]domain.Category, error)
	RecordServiceUsage(ctx context.Context, id uuid.UUID) error
	SearchProducts(ctx context.Context, input MasterSearchInput) ([]domain.HSNCode, error)
	ProductCategories(ctx context.Context) ([]domain.Category, error)
	// Search merges both catalogs, ranked by relevance then usage.
	Search(ctx context.Context, input MasterSearchInput) ([]domain.MasterDataResult, error)
	Categories(ctx context.Context) (*domain.MasterDataCategories, error)
}

type masterDataService struct {
	services port.MasterServiceRepository
	products port.HSNRepository
	title    cases.Caser
}

// NewMasterDataService creates a new MasterDataService implementation.
func NewMasterDataService(services port.MasterServiceRepository, products port.HSNRepository) MasterDataService {
	return &masterDataService{
		services: services,
		products: products,
		title:    cases.Title(language.Und),
	}
}

func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > masterMaxSearchLimit {
		return masterMaxSearchLimit
	}
	return limit
}

func (s *masterDataService) SearchServices(ctx context.Context, input MasterSearchInput) ([]domain.MasterService, error) {
	q := strings.TrimSpace(input.Query)
	if q == "" {
		return nil, domain.ErrEmptySearchQuery
	}
	return s.services.Search(ctx, &domain.MasterServiceFilter{
		Query:        q,
		Category:     strings.TrimSpace(input.Category),
		BusinessType: strings.ToLower(strings.TrimSpace(input.BusinessType)),
		Limit:        clampLimit(input.Limit, masterSearchLimit),
	})
}

func (s *masterDataService) ServiceCategories(ctx context.Context) ([]domain.Category, error) {
	names, err := s.services.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return s.categories(names), nil
}

func (s *masterDataService) RecordServiceUsage(ctx context.Context, id uuid.UUID) error {
	return s.services.IncrementUsage(ctx, id)
}

func (s *masterDataService) SearchProducts(ctx context.Context, input MasterSearchInput) ([]domain.HSNCode, error) {
	q := strings.TrimSpace(input.Query)
	if q == "" {
		return nil, domain.ErrEmptySearchQuery
	}
	return s.products.Search(ctx, &domain.HSNFilter{
		Query:    q,
		Category: strings.TrimSpace(input.Category),
		Type:     productCodeType,
		Limit:    clampLimit(input.Limit, masterSearchLimit),
	})
}

func (s *masterDataService) ProductCategories(ctx context.Context) ([]domain.Category, error) {
	names, err := s.products.Categories(ctx, productCodeType)
	if err != nil {
		return nil, err
	}
	return s.categories(names), nil
}

func (s *masterDataService) Search(ctx context.Context, input MasterSearchInput) ([]domain.MasterDataResult, error) {
	q := strings.TrimSpace(input.Query)
	if q == "" {
		return nil, domain.ErrEmptySearchQuery
	}
	kind, err := domain.ParseMasterDataKind(input.DataType)
	if err != nil {
		return nil, err
	}

	limit := clampLimit(input.Limit, unifiedSearchLimit)
	perKind := limit
	if kind == domain.MasterDataAll {
		perKind = max(1, limit/2)
	}
	category := strings.TrimSpace(input.Category)

	results := []domain.MasterDataResult{}
	if kind != domain.MasterDataProduct {
		rows, err := s.services.Match(ctx, &domain.MasterServiceFilter{
			Query:    q,
			Category: category,
			Limit:    perKind,
		})
		if err != nil {
			return nil, err
		}
		for i := range rows {
			results = append(results, serviceResult(&rows[i], q))
		}
	}
	if kind != domain.MasterDataService {
		rows, err := s.products.Search(ctx, &domain.HSNFilter{
			Query:    q,
			Category: category,
			Type:     productCodeType,
			Limit:    perKind,
		})
		if err != nil {
			return nil, err
		}
		for i := range rows {
			results = append(results, productResult(&rows[i], q))
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.RelevanceScore != b.RelevanceScore {
			return a.RelevanceScore > b.RelevanceScore
		}
		if a.UsageCount != b.UsageCount {
			return a.UsageCount > b.UsageCount
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (s *masterDataService) Categories(ctx context.Context) (*domain.MasterDataCategories, error) {
	services, err := s.ServiceCategories(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.ProductCategories(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.MasterDataCategories{Services: services, Products: products}, nil
}

// categories labels raw names, so IT_SERVICES reads "It Services".
func (s *masterDataService) categories(names []string) []domain.Category {
	out := make([]domain.Category, 0, len(names))
	for _, name := range names {
		out = append(out, domain.Category{
			Name:        name,
			DisplayName: s.title.String(strings.ReplaceAll(name, "_", " ")),
		})
	}
	return out
}

// relevance scores a row against the lowercased query.
func relevance(q, name, keywords, description string) int {
	name = strings.ToLower(name)
	switch {
	case name == q:
		return scoreExactName
	case strings.Contains(name, q):
		return scoreNameMatch
	case strings.Contains(strings.ToLower(keywords), q):
		return scoreKeywordHit
	case strings.Contains(strings.ToLower(description), q):
		return scoreDescription
	}
	return 0
}

func serviceResult(svc *domain.MasterService, q string) domain.MasterDataResult {
	return domain.MasterDataResult{
		ID:             svc.ID.String(),
		Name:           svc.Name,
		Description:    svc.Description,
		Category:       svc.Category,
		Subcategory:    svc.Subcategory,
		Code:           svc.SACCode,
		GSTRate:        svc.GSTRate,
		Type:           domain.MasterDataService,
		UsageCount:     svc.UsageCount,
		RelevanceScore: relevance(strings.ToLower(q), svc.Name, svc.Keywords, svc.Description),
	}
}

// productResult names a product by its description. A code hit scores as
// an exact name match.
func productResult(code *domain.HSNCode, q string) domain.MasterDataResult {
	lq := strings.ToLower(q)
	score := relevance(lq, code.Description, code.Keywords, code.Code)
	if strings.HasPrefix(strings.ToLower(code.Code), lq) {
		score = scoreExactName
	}
	return domain.MasterDataResult{
		ID:             code.ID.String(),
		Name:           code.Description,
		Description:    code.Description,
		Category:       code.Category,
		Subcategory:    code.Subcategory,
		Code:           code.Code,
		GSTRate:        code.GSTRate,
		Type:           domain.MasterDataProduct,
		UsageCount:     code.UsageCount,
		RelevanceScore: score,
	}
}
