package service

import (
	"strings"

	"gstbook/internal/domain"
	"gstbook/internal/gst"
)

// normalizeParty upper-cases and validates a GSTIN and state code pair in
// place. Empty values are allowed.
func normalizeParty(gstin, stateCode *string) error {
	*gstin = strings.ToUpper(strings.TrimSpace(*gstin))
	*stateCode = strings.TrimSpace(*stateCode)

	if *gstin != "" && !gst.ValidGSTIN(*gstin) {
		return domain.ErrInvalidGSTIN
	}
	if *stateCode != "" && !gst.ValidStateCode(*stateCode) {
		return domain.ErrInvalidStateCode
	}
	return nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
