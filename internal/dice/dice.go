// Package dice rolls the dice that drive board movement.
//
// Randomness lives here, on the caller's side: the movement simulator only
// ever sees the resolved total.
package dice

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
)

// ErrInvalidSpec is returned when a spec has no dice or dice without sides.
var ErrInvalidSpec = errors.New("dice: count and sides must be positive")

// Source provides random integers. Intn returns a value in [0, n).
type Source interface {
	Intn(n int) int
}

// Spec describes a roll, e.g. {Count: 2, Sides: 6} for 2d6.
type Spec struct {
	Count int
	Sides int
}

// String formats the spec in NdM notation.
func (s Spec) String() string {
	return fmt.Sprintf("%dd%d", s.Count, s.Sides)
}

// Min returns the smallest possible total.
func (s Spec) Min() int {
	return s.Count
}

// Max returns the largest possible total.
func (s Spec) Max() int {
	return s.Count * s.Sides
}

// Result holds the individual faces and their sum.
type Result struct {
	Faces []int
	Total int
}

// Roll rolls spec.Count dice with spec.Sides faces each.
func Roll(src Source, spec Spec) (Result, error) {
	if spec.Count <= 0 || spec.Sides <= 0 {
		return Result{}, fmt.Errorf("%w: %s", ErrInvalidSpec, spec)
	}

	faces := make([]int, spec.Count)
	total := 0
	for i := range faces {
		faces[i] = src.Intn(spec.Sides) + 1
		total += faces[i]
	}
	return Result{Faces: faces, Total: total}, nil
}

// Doubles reports whether every die shows the same face.
func (r Result) Doubles() bool {
	if len(r.Faces) < 2 {
		return false
	}
	for _, f := range r.Faces[1:] {
		if f != r.Faces[0] {
			return false
		}
	}
	return true
}

// Seeded is a deterministic Source safe for concurrent use.
type Seeded struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeded returns a Source that yields the same sequence for the same seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: rand.New(rand.NewSource(seed))}
}

// Intn implements Source.
func (s *Seeded) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
