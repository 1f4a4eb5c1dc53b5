package main

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"gstbook/internal/hsn"
)

const sacSheet = "SAC_Master"

// HSN_Master_v1 columns: F=4-digit code, H=its description, I=6-digit code,
// J=its description, K=8-digit code, M=its description, N=GST rate.
// Data starts on the sixth row.
const (
	hsnFirstRow = 5
	hsnCode4    = 5
	hsnDesc4    = 7
	hsnCode6    = 8
	hsnDesc6    = 9
	hsnCode8    = 10
	hsnDesc8    = 12
	hsnRate     = 13
	sacFirstRow = 3
	sacCode4    = 0
	sacDesc4    = 1
	sacCode6    = 2
	sacDesc6    = 3
	sacRate     = 4
	headingLen  = 4
	chapterLen  = 2
)

// ratePattern matches a number followed by "%".
var ratePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)%`)

type seedEntry struct {
	code        string
	description string
	gstRate     float64
	codeType    hsn.CodeType
	category    string
	subcategory string
}

// entrySet keeps the first entry seen per (code, rate) in insertion order.
type entrySet struct {
	seen    map[string]bool
	entries []seedEntry
}

func newEntrySet() *entrySet {
	return &entrySet{seen: make(map[string]bool)}
}

func (s *entrySet) add(code, description string, gstRate float64) bool {
	code = strings.TrimSpace(code)
	if !isNumeric(code) {
		return false
	}
	key := fmt.Sprintf("%s|%.2f", code, gstRate)
	if s.seen[key] {
		return false
	}
	s.seen[key] = true

	e := seedEntry{
		code:        code,
		description: strings.TrimSpace(description),
		gstRate:     gstRate,
		codeType:    hsn.TypeForCode(code),
	}
	if len(code) >= chapterLen {
		e.category = "Chapter " + code[:chapterLen]
	}
	if len(code) > headingLen {
		e.subcategory = code[:headingLen]
	}
	s.entries = append(s.entries, e)
	return true
}

// parseHSNRows adds the goods codes of every row, most specific first, and
// returns how many new entries were added.
func parseHSNRows(rows [][]string, set *entrySet) int {
	added := 0
	for i := hsnFirstRow; i < len(rows); i++ {
		row := rows[i]
		rate, ok := parsePercent(cellVal(row, hsnRate))
		if !ok {
			continue
		}
		for _, col := range [][2]int{{hsnCode8, hsnDesc8}, {hsnCode6, hsnDesc6}, {hsnCode4, hsnDesc4}} {
			if set.add(cellVal(row, col[0]), cellVal(row, col[1]), rate) {
				added++
			}
		}
	}
	return added
}

// parseSACRows adds the service codes of every row once per listed rate.
func parseSACRows(rows [][]string, set *entrySet) int {
	added := 0
	for i := sacFirstRow; i < len(rows); i++ {
		row := rows[i]
		for _, rate := range parseSACRate(cellVal(row, sacRate)) {
			if set.add(cellVal(row, sacCode6), cellVal(row, sacDesc6), rate) {
				added++
			}
			if set.add(cellVal(row, sacCode4), cellVal(row, sacDesc4), rate) {
				added++
			}
		}
	}
	return added
}

// parsePercent reads a rate cell such as "18%" or "0.25".
func parsePercent(s string) (float64, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	if s == "" {
		return 0, false
	}
	rate, err := strconv.ParseFloat(s, 64)
	return rate, err == nil
}

// parseSACRate extracts GST rate(s) from free-text SAC rate strings.
//
//	"18%"                                   → [18]
//	"Exempt"                                → [0]
//	"12%-18%"                               → [12, 18]
//	"1% (without ITC) or 5% (without ITC)"  → [1, 5]
func parseSACRate(s string) []float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if lower := strings.ToLower(s); lower == "exempt" || lower == "nil" {
		return []float64{0}
	}

	var rates []float64
	seen := make(map[float64]bool)
	for _, m := range ratePattern.FindAllStringSubmatch(s, -1) {
		rate, err := strconv.ParseFloat(m[1], 64)
		if err != nil || seen[rate] {
			continue
		}
		seen[rate] = true
		rates = append(rates, rate)
	}
	return rates
}

// writeSeed writes entries as batched multi-row INSERTs inside one transaction.
func writeSeed(w io.Writer, entries []seedEntry, size int) error {
	header := fmt.Sprintf("-- HSN/SAC code seed data generated from Excel.\n-- %d entries in batches of %d.\nBEGIN;\n\n", len(entries), size)
	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := 0; i < len(entries); i += size {
		end := min(i+size, len(entries))
		if err := writeBatch(w, entries[i:end]); err != nil {
			return fmt.Errorf("write batch at offset %d: %w", i, err)
		}
	}
	if _, err := io.WriteString(w, "\nCOMMIT;\n"); err != nil {
		return fmt.Errorf("write footer: %w", err)
	}
	return nil
}

func writeBatch(w io.Writer, batch []seedEntry) error {
	if len(batch) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO hsn_codes (code, description, gst_rate, type, category, subcategory) VALUES\n")
	for i := range batch {
		e := &batch[i]
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "  ('%s', '%s', %.2f, '%s', '%s', '%s')",
			escapeSQL(e.code), escapeSQL(e.description), e.gstRate, e.codeType,
			escapeSQL(e.category), escapeSQL(e.subcategory))
	}
	b.WriteString("\nON CONFLICT (code, gst_rate) DO NOTHING;\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
