package random

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/wannabet/internal/random Source

// Source provides the random draws used to build rounds
type Source interface {
	// Intn returns a uniform value in [0, n)
	Intn(n int) int

	// Perm returns a uniform random permutation of [0, n)
	Perm(n int) []int
}

// Roller is the default Source backed by math/rand
type Roller struct {
	random *rand.Rand
}

// Config for the random roller
type Config struct {
	// Optional seed for reproducible games and tests
	Seed int64
}

// New creates a new roller
func New(cfg *Config) *Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &Roller{
		random: random,
	}
}

// Intn returns a uniform value in [0, n). Non-positive n yields 0.
func (r *Roller) Intn(n int) int {
	if n < 1 {
		return 0
	}
	return r.random.Intn(n)
}

// Perm returns a Fisher-Yates shuffle of the indices [0, n)
func (r *Roller) Perm(n int) []int {
	if n < 1 {
		return []int{}
	}
	return r.random.Perm(n)
}
