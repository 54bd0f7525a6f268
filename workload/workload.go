// Package workload generates key streams for the demo and benchmark
// tools: uniform, ascending and Zipf-distributed integer keys, plus
// stable hash-derived keys for named demo records.
package workload

import (
	"math"
	"math/rand"
	"sort"

	"github.com/spaolacci/murmur3"
)

// Stream produces int64 keys, one per Next call.
type Stream interface {
	Next() int64
}

// Uniform draws keys uniformly from [0, n).
type Uniform struct {
	n   int64
	rng *rand.Rand
}

// NewUniform creates a uniform key stream over [0, n) seeded with seed.
func NewUniform(n int64, seed int64) *Uniform {
	if n < 1 {
		n = 1
	}
	return &Uniform{
		n:   n,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Next implements Stream.
func (u *Uniform) Next() int64 {
	return u.rng.Int63n(u.n)
}

// Ascending produces 0, 1, 2, ... wrapping at n.
type Ascending struct {
	n    int64
	next int64
}

// NewAscending creates an ascending key stream that wraps at n.
func NewAscending(n int64) *Ascending {
	if n < 1 {
		n = 1
	}
	return &Ascending{n: n}
}

// Next implements Stream.
func (a *Ascending) Next() int64 {
	key := a.next
	a.next = (a.next + 1) % a.n
	return key
}

// Zipf draws keys from [0, n) under a Zipf distribution with weight
// 1/(i+b)^a per rank, shuffled so hot keys are spread across the key
// space.
type Zipf struct {
	n   int
	cdf []float64
	rng *rand.Rand
}

// NewZipf creates a Zipf key stream over [0, n). Larger a skews the
// distribution harder towards the hot keys; b flattens the head.
func NewZipf(n int, a, b float64, seed int64) *Zipf {
	if n < 1 {
		n = 1
	}
	rng := rand.New(rand.NewSource(seed))

	weights := make([]float64, n)
	var sum float64
	for i := 1; i <= n; i++ {
		weights[i-1] = 1.0 / math.Pow(float64(i)+b, a)
		sum += weights[i-1]
	}
	for i := range weights {
		weights[i] /= sum
	}
	rng.Shuffle(len(weights), func(i, j int) {
		weights[i], weights[j] = weights[j], weights[i]
	})

	cdf := make([]float64, n)
	cdf[0] = weights[0]
	for i := 1; i < n; i++ {
		cdf[i] = cdf[i-1] + weights[i]
	}

	return &Zipf{
		n:   n,
		cdf: cdf,
		rng: rng,
	}
}

// Next implements Stream.
func (z *Zipf) Next() int64 {
	r := z.rng.Float64()
	idx := sort.SearchFloat64s(z.cdf, r)
	if idx >= z.n {
		idx = z.n - 1
	}
	return int64(idx)
}

// WordKey derives a stable non-negative key from a word by hashing its
// bytes. Content-derived keys keep demo output reproducible without a
// seed.
func WordKey(word string) int64 {
	return int64(murmur3.Sum64([]byte(word)) &^ (1 << 63))
}

// WordKeys maps each word to its WordKey.
func WordKeys(words []string) []int64 {
	keys := make([]int64, len(words))
	for i, w := range words {
		keys[i] = WordKey(w)
	}
	return keys
}
