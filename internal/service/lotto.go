package service

import (
	"math/rand/v2"
	"slices"
	"sync"
)

const (
	// LottoPicks is how many numbers a ticket holds and how many are drawn.
	LottoPicks = 6
	// LottoMax is the highest number in the pool; the pool starts at 1.
	LottoMax = 20
)

// Drawer draws n distinct numbers from 1..poolSize.
type Drawer interface {
	Draw(n, poolSize int) []int
}

// randDrawer samples without replacement using a partial Fisher-Yates shuffle.
// math/rand/v2 generators are not safe for concurrent use, hence the mutex.
type randDrawer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandDrawer returns a Drawer backed by src. A nil src uses a randomly seeded PCG.
func NewRandDrawer(src rand.Source) Drawer {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &randDrawer{rng: rand.New(src)}
}

func (d *randDrawer) Draw(n, poolSize int) []int {
	if n > poolSize {
		n = poolSize
	}
	pool := make([]int, poolSize)
	for i := range pool {
		pool[i] = i + 1
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for i := 0; i < n; i++ {
		j := i + d.rng.IntN(poolSize-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return slices.Clone(pool[:n])
}

// FixedDrawer always returns its own numbers. Useful for deterministic draws.
type FixedDrawer []int

func (f FixedDrawer) Draw(n, _ int) []int {
	if n > len(f) {
		n = len(f)
	}
	return slices.Clone(f[:n])
}

// filterGuesses keeps the values that parse as integers inside 1..LottoMax.
// Duplicates are kept.
func filterGuesses(numbers []string) []int {
	guesses := make([]int, 0, len(numbers))
	for _, s := range numbers {
		n, ok := ParseIntPrefix(s)
		if !ok || n < 1 || n > LottoMax {
			continue
		}
		guesses = append(guesses, n)
	}
	return guesses
}

// countMissed returns how many winning numbers are absent from guesses.
func countMissed(winning, guesses []int) int {
	missed := 0
	for _, w := range winning {
		if !slices.Contains(guesses, w) {
			missed++
		}
	}
	return missed
}
