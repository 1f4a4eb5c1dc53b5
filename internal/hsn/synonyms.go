package hsn

import (
	"slices"
	"strings"
)

// Synonyms expands a single query token into related catalog vocabulary.
// The zero value expands nothing. A Synonyms value is never mutated after
// construction and may be shared between goroutines.
type Synonyms struct {
	m map[string][]string
}

// NewSynonyms copies table into an immutable Synonyms. Keys are lower-cased.
func NewSynonyms(table map[string][]string) Synonyms {
	m := make(map[string][]string, len(table))
	for k, v := range table {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		m[k] = slices.Clone(v)
	}
	return Synonyms{m: m}
}

// Expand returns the related terms for token, or nil.
func (s Synonyms) Expand(token string) []string {
	return slices.Clone(s.m[token])
}

// Len reports the number of tokens with expansions.
func (s Synonyms) Len() int { return len(s.m) }

var defaultSynonyms = NewSynonyms(map[string][]string{
	"tv":           {"television", "led", "lcd"},
	"brake":        {"brake", "brakes", "pad", "pads"},
	"saree":        {"saree", "sari", "cotton"},
	"shirt":        {"shirt", "shirts"},
	"rice":         {"rice", "basmati"},
	"oil":          {"engine oil", "lubricant"},
	"speaker":      {"speaker", "sound bar", "soundbar"},
	"laptop":       {"laptop", "computer", "automatic data processing", "machines"},
	"computer":     {"computer", "laptop", "automatic data processing", "machines", "computing"},
	"phone":        {"mobile", "cellphone", "smartphone"},
	"consulting":   {"consulting", "consultation", "it", "software"},
	"marketing":    {"advertising", "digital marketing"},
	"construction": {"works contract", "civil", "construction"},
	"electronic":   {"electronic", "electrical", "apparatus"},
	"machine":      {"machine", "machines", "equipment"},
	"software":     {"software", "programs", "data processing"},
})

// DefaultSynonyms returns the built-in expansion table.
func DefaultSynonyms() Synonyms { return defaultSynonyms }

// DefaultServiceWords lists description words that mark an entry as a
// service even when it carries a goods code.
func DefaultServiceWords() []string {
	return []string{"service", "services", "repair", "maintenance", "consulting"}
}
