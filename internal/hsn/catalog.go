package hsn

import "math"

// rateTolerance absorbs float noise when comparing percentage rates.
const rateTolerance = 0.01

// Catalog is an in-memory index over a set of codes.
// It is immutable after construction and safe for concurrent access.
type Catalog struct {
	entries []Code
	byCode  map[string][]int
}

// NewCatalog builds a Catalog. Entries with an empty Type get one derived
// from the code prefix.
func NewCatalog(entries []Code) *Catalog {
	c := &Catalog{
		entries: make([]Code, len(entries)),
		byCode:  make(map[string][]int, len(entries)),
	}
	copy(c.entries, entries)
	for i := range c.entries {
		e := &c.entries[i]
		if e.Type == "" {
			e.Type = TypeForCode(e.Code)
		}
		c.byCode[e.Code] = append(c.byCode[e.Code], i)
	}
	return c
}

// Entries returns the catalog contents. Callers must not modify the slice.
func (c *Catalog) Entries() []Code { return c.entries }

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Lookup returns all entries for code. It tries the exact code first, then
// falls back from 8 to 6 to 4 digit headings.
func (c *Catalog) Lookup(code string) []Code {
	if len(c.byCode) == 0 || code == "" {
		return nil
	}
	if idx, ok := c.byCode[code]; ok {
		return c.collect(idx)
	}
	for _, prefixLen := range []int{6, 4} {
		if len(code) > prefixLen {
			if idx, ok := c.byCode[code[:prefixLen]]; ok {
				return c.collect(idx)
			}
		}
	}
	return nil
}

// RateMatches reports whether gstRate is a valid rate for code, along with
// the rates the catalog knows for it.
func (c *Catalog) RateMatches(code string, gstRate float64) (matched bool, validRates []float64) {
	for _, e := range c.Lookup(code) {
		validRates = append(validRates, e.GSTRate)
		if math.Abs(e.GSTRate-gstRate) < rateTolerance {
			matched = true
		}
	}
	return matched, validRates
}

func (c *Catalog) collect(idx []int) []Code {
	out := make([]Code, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.entries[i])
	}
	return out
}

// DefaultCatalog is the small built-in catalog used when no code table has
// been loaded.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Code{
		{Code: "8708", Description: "Parts and accessories of motor vehicles", GSTRate: 28, Type: TypeHSN},
		{Code: "6204", Description: "Women's or girls' suits, ensembles, jackets, dresses", GSTRate: 5, Type: TypeHSN},
		{Code: "6205", Description: "Men's or boys' shirts", GSTRate: 5, Type: TypeHSN},
		{Code: "1006", Description: "Rice", GSTRate: 5, Type: TypeHSN},
		{Code: "8528", Description: "Monitors and projectors, reception apparatus for television", GSTRate: 18, Type: TypeHSN},
		{Code: "8518", Description: "Microphones and loudspeakers; sound amplifiers", GSTRate: 18, Type: TypeHSN},
		{Code: "998314", Description: "IT and consulting services", GSTRate: 18, Type: TypeSAC},
	})
}
