package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LibraryItem is a saved line the business invoices often.
type LibraryItem struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	Description string          `db:"description" json:"description"`
	HSNCode     string          `db:"hsn_code" json:"hsn_code"`
	SACCode     string          `db:"sac_code" json:"sac_code"`
	GSTRate     decimal.Decimal `db:"gst_rate" json:"gst_rate"`
	Unit        string          `db:"unit" json:"unit"`
	Category    string          `db:"category" json:"category"`
	IsActive    bool            `db:"is_active" json:"is_active"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// MasterService is a row of the curated services catalog.
type MasterService struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Description  string    `db:"description" json:"description"`
	SACCode      string    `db:"sac_code" json:"sac_code"`
	GSTRate      float64   `db:"gst_rate" json:"gst_rate"`
	HSNCode      string    `db:"hsn_code" json:"hsn_code"`
	Category     string    `db:"category" json:"category"`
	Subcategory  string    `db:"subcategory" json:"subcategory"`
	BusinessType string    `db:"business_type" json:"business_type"`
	Keywords     string    `db:"keywords" json:"keywords"`
	Tags         string    `db:"tags" json:"tags"`
	Unit         string    `db:"unit" json:"unit"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	UsageCount   int       `db:"usage_count" json:"usage_count"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// InvoiceTemplate names a print layout. At most one template is the default.
type InvoiceTemplate struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	IsDefault   bool      `db:"is_default" json:"is_default"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// MasterServiceFilter narrows master service searches. Query matches the
// service name only; Match widens it to keywords and description.
type MasterServiceFilter struct {
	Query        string
	Category     string
	BusinessType string
	Limit        int
}

// MasterDataKind selects which catalogs a unified search covers.
type MasterDataKind string

const (
	MasterDataAll     MasterDataKind = "all"
	MasterDataService MasterDataKind = "service"
	MasterDataProduct MasterDataKind = "product"
)

// ParseMasterDataKind accepts any letter case. An empty kind means all.
func ParseMasterDataKind(s string) (MasterDataKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return MasterDataAll, nil
	}
	switch k := MasterDataKind(s); k {
	case MasterDataAll, MasterDataService, MasterDataProduct:
		return k, nil
	}
	return "", ErrInvalidDataType
}

// MasterDataResult is one row of a unified services and products search.
type MasterDataResult struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Category       string         `json:"category"`
	Subcategory    string         `json:"subcategory,omitempty"`
	Code           string         `json:"code"`
	GSTRate        float64        `json:"gst_rate"`
	Type           MasterDataKind `json:"type"`
	UsageCount     int            `json:"usage_count"`
	RelevanceScore int            `json:"relevance_score"`
}

// Category is a catalog grouping with a human readable label.
type Category struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// MasterDataCategories lists the groupings of both catalogs.
type MasterDataCategories struct {
	Services []Category `json:"services"`
	Products []Category `json:"products"`
}
