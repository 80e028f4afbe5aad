package testutil

import (
	"math/rand"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/hupe1980/vecmath"
)

const (
	defaultMin    = -10
	defaultMax    = 10
	defaultPlaces = 3
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Decimal returns a pseudo-random decimal in [minVal, maxVal) with the given
// number of decimal places, like the three-place literals of textbook exercises.
func (r *RNG) Decimal(minVal, maxVal float64, places int32) decimal.Decimal {
	r.mu.Lock()
	f := minVal + r.rand.Float64()*(maxVal-minVal)
	r.mu.Unlock()
	return decimal.NewFromFloat(f).Truncate(places)
}

// Vector returns a vector of dimension dim with coordinates in [-10, 10).
func (r *RNG) Vector(dim int, optFns ...vecmath.Option) vecmath.Vector {
	coords := make([]decimal.Decimal, dim)
	for i := range coords {
		coords[i] = r.Decimal(defaultMin, defaultMax, defaultPlaces)
	}
	v, err := vecmath.New(coords, optFns...)
	if err != nil {
		panic(err)
	}
	return v
}

// Vectors returns num random vectors of dimension dim.
func (r *RNG) Vectors(num, dim int, optFns ...vecmath.Option) []vecmath.Vector {
	out := make([]vecmath.Vector, num)
	for i := range out {
		out[i] = r.Vector(dim, optFns...)
	}
	return out
}

// NonZeroVector returns a random vector whose magnitude is at least 1e-3.
func (r *RNG) NonZeroVector(dim int, optFns ...vecmath.Option) vecmath.Vector {
	for {
		v := r.Vector(dim, optFns...)
		if !v.IsZeroWithin(1e-3) {
			return v
		}
	}
}
