package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbook/internal/hsn"
)

func TestParseSACRate(t *testing.T) {
	tests := []struct {
		in   string
		want []float64
	}{
		{"18%", []float64{18}},
		{"Exempt", []float64{0}},
		{"NIL", []float64{0}},
		{"0%", []float64{0}},
		{"12%-18%", []float64{12, 18}},
		{"1% (without ITC) or 5% (without ITC)", []float64{1, 5}},
		{"5%(With ITC restriction) or 18% or 5%", []float64{5, 18}},
		{"as applicable", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSACRate(tt.in))
		})
	}
}

func TestParseHSNRows(t *testing.T) {
	row := make([]string, 14)
	row[hsnCode4], row[hsnDesc4] = "1006", "Rice"
	row[hsnCode6], row[hsnDesc6] = "100630", "Semi-milled or wholly milled rice"
	row[hsnCode8], row[hsnDesc8] = "10063010", "Rice, parboiled"
	row[hsnRate] = "5%"

	noRate := make([]string, 14)
	noRate[hsnCode4] = "1007"

	rows := append(make([][]string, hsnFirstRow), row, row, noRate, []string{"short"})
	set := newEntrySet()

	added := parseHSNRows(rows, set)

	require.Equal(t, 3, added)
	assert.Equal(t, "10063010", set.entries[0].code)
	assert.Equal(t, "100630", set.entries[1].code)
	assert.Equal(t, "1006", set.entries[2].code)

	e := set.entries[0]
	assert.Equal(t, 5.0, e.gstRate)
	assert.Equal(t, hsn.TypeHSN, e.codeType)
	assert.Equal(t, "Chapter 10", e.category)
	assert.Equal(t, "1006", e.subcategory)
	assert.Empty(t, set.entries[2].subcategory)
}

func TestParseSACRows(t *testing.T) {
	rows := append(make([][]string, sacFirstRow),
		[]string{"9983", "Other professional services", "998314", "IT consulting", "12%-18%"},
		[]string{"9954", "Construction services", "", "", "Exempt"},
		[]string{"abcd", "Header noise", "", "", "18%"},
	)
	set := newEntrySet()

	added := parseSACRows(rows, set)

	require.Equal(t, 5, added)
	for _, e := range set.entries {
		assert.Equal(t, hsn.TypeSAC, e.codeType, e.code)
	}
	assert.Equal(t, "998314", set.entries[0].code)
	assert.Equal(t, 12.0, set.entries[0].gstRate)
	assert.Equal(t, "9983", set.entries[1].code)
	assert.Equal(t, 18.0, set.entries[2].gstRate)
}

func TestWriteSeed(t *testing.T) {
	set := newEntrySet()
	set.add("998314", "Consultant's services", 18)
	set.add("1006", "Rice", 5)
	set.add("0901", "Coffee", 5)

	var b strings.Builder
	require.NoError(t, writeSeed(&b, set.entries, 2))
	sql := b.String()

	assert.True(t, strings.HasPrefix(sql, "-- HSN/SAC code seed data"))
	assert.Equal(t, 2, strings.Count(sql, "INSERT INTO hsn_codes"))
	assert.Equal(t, 2, strings.Count(sql, "ON CONFLICT (code, gst_rate) DO NOTHING;"))
	assert.Contains(t, sql, "('998314', 'Consultant''s services', 18.00, 'SAC', 'Chapter 99', '9983')")
	assert.Contains(t, sql, "('1006', 'Rice', 5.00, 'HSN', 'Chapter 10', '')")
	assert.True(t, strings.HasSuffix(sql, "COMMIT;\n"))
}
