package service

import (
	"math/rand"
	"strconv"
	"sync"
)

// referenceMax bounds the numeric suffix of a booking reference.
const referenceMax = 10000000

// ReferenceGenerator produces human-readable booking codes such as
// "BKG-4821907". References are a display convenience, not collision
// checked; the booking id remains the primary key. The random source is
// injected at construction so tests can seed it deterministically.
type ReferenceGenerator struct {
	mu     sync.Mutex
	prefix string
	rng    *rand.Rand
}

// NewReferenceGenerator creates a generator with the given prefix and
// random source.
func NewReferenceGenerator(prefix string, src rand.Source) *ReferenceGenerator {
	return &ReferenceGenerator{
		prefix: prefix,
		rng:    rand.New(src),
	}
}

// Next returns a freshly generated booking reference.
func (g *ReferenceGenerator) Next() string {
	g.mu.Lock()
	n := g.rng.Intn(referenceMax)
	g.mu.Unlock()

	return g.prefix + strconv.Itoa(n)
}
