// Package hsn ranks HSN (goods) and SAC (services) classification codes
// against free-text product descriptions.
package hsn

import "strings"

// sacPrefix marks service accounting codes; every SAC code begins with "99".
const sacPrefix = "99"

// CodeType distinguishes goods codes from service codes.
type CodeType string

const (
	TypeHSN CodeType = "HSN"
	TypeSAC CodeType = "SAC"
)

// TypeForCode derives the code type from its numeric prefix.
func TypeForCode(code string) CodeType {
	if strings.HasPrefix(strings.TrimSpace(code), sacPrefix) {
		return TypeSAC
	}
	return TypeHSN
}

// Code is a single catalog entry. Several entries may share a Code when
// distinct sub-products fall under one tax heading.
type Code struct {
	Code        string
	Description string
	GSTRate     float64
	Type        CodeType
	Category    string
	Subcategory string
	Keywords    string
	Unit        string
}

// Match is one ranked search result.
type Match struct {
	Code        string   `json:"code"`
	Description string   `json:"desc"`
	GSTRate     float64  `json:"gst"`
	Type        CodeType `json:"type"`
	Confidence  int      `json:"confidence"`
	Score       int      `json:"-"`
}
