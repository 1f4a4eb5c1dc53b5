package hsn

import (
	"regexp"
	"slices"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// minAlphaTokenLen drops short words ("a", "is", "of") from the query.
// Numeric tokens are kept at any length.
const minAlphaTokenLen = 3

var (
	queryTokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	descWordPattern   = regexp.MustCompile(`[a-z0-9]+`)
	nonAlphanumeric   = regexp.MustCompile(`[^a-z0-9]+`)
	whitespaceRun     = regexp.MustCompile(`\s+`)
)

// Matcher ranks catalog entries against a query. A Matcher holds only
// read-only tables and is safe for concurrent use.
type Matcher struct {
	weights      Weights
	synonyms     Synonyms
	serviceWords []string
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithWeights replaces the scoring table.
func WithWeights(w Weights) Option {
	return func(m *Matcher) { m.weights = w }
}

// WithSynonyms replaces the token expansion table.
func WithSynonyms(s Synonyms) Option {
	return func(m *Matcher) { m.synonyms = s }
}

// WithServiceWords replaces the words that mark a description as a service.
func WithServiceWords(words []string) Option {
	return func(m *Matcher) { m.serviceWords = slices.Clone(words) }
}

// NewMatcher builds a Matcher with the default tables, then applies opts.
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{
		weights:      DefaultWeights(),
		synonyms:     DefaultSynonyms(),
		serviceWords: DefaultServiceWords(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Weights returns the scoring table in use.
func (m *Matcher) Weights() Weights { return m.weights }

var defaultMatcher = NewMatcher()

// Search ranks catalog against query using the default tables.
func Search(query string, catalog []Code) []Match {
	return defaultMatcher.Search(query, catalog)
}

// Search returns at most MaxResults entries ordered by descending score,
// ties broken by (type, code) ascending. Entries scoring zero or less are
// dropped. An empty query or catalog yields an empty slice.
func (m *Matcher) Search(query string, catalog []Code) []Match {
	q := strings.TrimSpace(strings.ToLower(query))
	if q == "" || len(catalog) == 0 {
		return []Match{}
	}

	terms := m.terms(q)
	qNorm := normalize(q)

	type scored struct {
		score int
		code  *Code
	}
	ranked := make([]scored, 0, len(catalog))
	for i := range catalog {
		c := &catalog[i]
		if s := m.score(c, q, qNorm, terms); s > 0 {
			ranked = append(ranked, scored{score: s, code: c})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.code.Type != b.code.Type {
			return a.code.Type < b.code.Type
		}
		return a.code.Code < b.code.Code
	})

	limit := m.weights.MaxResults
	if limit <= 0 || limit > len(ranked) {
		limit = len(ranked)
	}
	results := make([]Match, 0, limit)
	for _, r := range ranked[:limit] {
		results = append(results, Match{
			Code:        r.code.Code,
			Description: r.code.Description,
			GSTRate:     r.code.GSTRate,
			Type:        r.code.Type,
			Confidence:  m.weights.confidence(r.score),
			Score:       r.score,
		})
	}
	return results
}

func (m *Matcher) score(c *Code, q, qNorm string, terms []string) int {
	w := &m.weights
	desc := strings.ToLower(c.Description)
	words := descWordPattern.FindAllString(desc, -1)
	descNorm := normalize(desc)

	sc := 0
	if !strings.HasPrefix(c.Code, sacPrefix) {
		if m.isServiceDescription(desc) {
			sc -= w.ServicePenalty
		} else {
			sc += w.Goods
		}
	}

	if qNorm != "" && descNorm == qNorm {
		sc += w.ExactDescription
	}
	if qNorm != "" && strings.HasPrefix(descNorm, qNorm) {
		sc += w.DescriptionPrefix
	}
	if strings.Contains(desc, q) {
		sc += w.DescriptionSubstring
	}

	for _, t := range terms {
		if isNumeric(t) && strings.HasPrefix(c.Code, t) {
			sc += w.CodePrefix
			continue
		}
		if slices.Contains(words, t) {
			sc += w.WholeWord
		}
		if slices.ContainsFunc(words, func(word string) bool { return strings.HasPrefix(word, t) }) {
			sc += w.WordPrefix
		}
		if strings.Contains(desc, t) {
			sc += w.TokenSubstring
		}
		best := bestSimilarity(t, words, w.FuzzyWindow)
		switch {
		case best >= w.FuzzyHighThreshold:
			sc += w.FuzzyHigh
		case best >= w.FuzzyLowThreshold:
			sc += w.FuzzyLow
		}
	}
	return sc
}

func (m *Matcher) isServiceDescription(desc string) bool {
	for _, sw := range m.serviceWords {
		if strings.Contains(desc, sw) {
			return true
		}
	}
	return false
}

// terms tokenizes q and unions the kept tokens with their synonyms,
// preserving first-seen order. Numeric tokens are kept at any length and
// alphabetic tokens from three runes up. A shorter token still contributes
// its synonyms ("tv" expands to "television") without being scored itself.
func (m *Matcher) terms(q string) []string {
	raw := queryTokenPattern.FindAllString(q, -1)
	seen := make(map[string]struct{}, len(raw))
	terms := make([]string, 0, len(raw))
	add := func(t string) {
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		terms = append(terms, t)
	}
	for _, t := range raw {
		if isNumeric(t) || utf8.RuneCountInString(t) >= minAlphaTokenLen {
			add(t)
		}
	}
	for _, t := range raw {
		for _, s := range m.synonyms.Expand(t) {
			add(s)
		}
	}
	return terms
}

// normalize lower-cases s, replaces non-alphanumerics with spaces and
// collapses whitespace.
func normalize(s string) string {
	s = nonAlphanumeric.ReplaceAllString(strings.ToLower(s), " ")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
