package gst

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var gstinPattern = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

// ExtractStateCode returns the two-character state prefix of a GSTIN, or ""
// when gstin is shorter than two characters. The GSTIN is not validated.
func ExtractStateCode(gstin string) string {
	if utf8.RuneCountInString(gstin) < 2 {
		return ""
	}
	_, n1 := utf8.DecodeRuneInString(gstin)
	_, n2 := utf8.DecodeRuneInString(gstin[n1:])
	return gstin[:n1+n2]
}

// IsIntrastate reports whether a supply stays within one state. A missing
// state on either side counts as intrastate.
//
// TODO: confirm with a GST practitioner whether an unknown place of supply
// should instead be rejected; callers currently rely on the lenient default.
func IsIntrastate(sellerState, buyerState string) bool {
	if sellerState == "" || buyerState == "" {
		return true
	}
	return sellerState == buyerState
}

// ResolveState prefers an explicitly stored state code and falls back to the
// GSTIN prefix.
func ResolveState(stateCode, gstin string) string {
	if s := strings.TrimSpace(stateCode); s != "" {
		return s
	}
	return ExtractStateCode(strings.TrimSpace(gstin))
}

// ValidGSTIN reports whether s has the 15-character GSTIN shape.
func ValidGSTIN(s string) bool {
	return gstinPattern.MatchString(s)
}

// ValidStateCode reports whether s is a two-digit state code from 01 to 38.
func ValidStateCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	code, err := strconv.Atoi(s)
	return err == nil && code >= 1 && code <= 38
}
