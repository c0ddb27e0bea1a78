package dataset

import "math/rand"

// rng wraps a single seeded math/rand source. Every generation stage draws
// from the same instance, which is what makes Generate reproducible for a
// given seed.
type rng struct {
	r *rand.Rand
}

func newRNG(seed int64) *rng {
	return &rng{r: rand.New(rand.NewSource(seed))}
}

// intBetween returns an integer in [min, max], both inclusive.
func (g *rng) intBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.r.Intn(max-min+1)
}

// chance reports true with probability p.
func (g *rng) chance(p float64) bool {
	return g.r.Float64() < p
}

// floatBetween returns a float in [min, max] rounded to the given number of
// fractional digits.
func (g *rng) floatBetween(min, max float64, digits int) float64 {
	v := min + g.r.Float64()*(max-min)
	return roundTo(v, digits)
}

func roundTo(v float64, digits int) float64 {
	pow := 1.0
	for i := 0; i < digits; i++ {
		pow *= 10
	}
	return float64(int64(v*pow+0.5)) / pow
}

// pickOne returns a uniformly random element.
func pickOne[T any](g *rng, items []T) T {
	return items[g.intBetween(0, len(items)-1)]
}

// sample returns up to n distinct elements via a partial Fisher-Yates
// shuffle over a copy of items.
func sample[T any](g *rng, items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	if n <= 0 {
		return nil
	}
	pool := make([]T, len(items))
	copy(pool, items)
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		j := g.intBetween(i, len(pool)-1)
		pool[i], pool[j] = pool[j], pool[i]
		out = append(out, pool[i])
	}
	return out
}

// weightedChoice associates a relative probability weight with a value.
type weightedChoice[T any] struct {
	Weight int
	Value  T
}

// weightedPick draws a value from the table proportionally to its weight
// using a cumulative linear scan.
func weightedPick[T any](g *rng, table []weightedChoice[T]) T {
	total := 0
	for _, c := range table {
		total += c.Weight
	}
	roll := g.intBetween(1, total)
	for _, c := range table {
		roll -= c.Weight
		if roll <= 0 {
			return c.Value
		}
	}
	return table[len(table)-1].Value
}
