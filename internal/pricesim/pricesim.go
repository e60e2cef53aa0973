// Package pricesim simulates current product prices. There is no live
// scraping anywhere in this service; every sweep consults a Source, and the
// default Source draws uniformly from a fixed range.
package pricesim

import "math/rand/v2"

// Default price bounds, both inclusive.
const (
	DefaultMin = 30
	DefaultMax = 180
)

// Source produces the current price for a product check. Implementations
// must be safe for concurrent use.
type Source interface {
	Current() int
}

// Random is a Source drawing integers uniformly from [Min, Max] inclusive.
// Each call is independent; no seed is persisted.
type Random struct {
	Min int
	Max int
}

// NewRandom creates a Random source with the given inclusive bounds.
// Non-positive or inverted bounds fall back to the defaults.
func NewRandom(minPrice, maxPrice int) *Random {
	if minPrice <= 0 || maxPrice < minPrice {
		minPrice, maxPrice = DefaultMin, DefaultMax
	}
	return &Random{Min: minPrice, Max: maxPrice}
}

// Current returns a fresh simulated price.
func (r *Random) Current() int {
	return r.Min + rand.IntN(r.Max-r.Min+1)
}

// Fixed is a Source that always returns the same price. Used by tests and
// by anything that needs deterministic sweep outcomes.
type Fixed int

// Current returns the fixed price.
func (f Fixed) Current() int { return int(f) }
