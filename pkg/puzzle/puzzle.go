// Package puzzle defines the contract shared by the daily solvers and a
// registry that the command line uses to find them.
package puzzle

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Part selects which answer of a day to compute.
type Part uint8

const (
	PartOne Part = 1
	PartTwo Part = 2
)

// ParsePart converts a 1 or 2 from the command line.
func ParsePart(n int) (Part, error) {
	switch n {
	case 1:
		return PartOne, nil
	case 2:
		return PartTwo, nil
	}
	return 0, fmt.Errorf("part must be 1 or 2, got %d", n)
}

func (p Part) String() string {
	return fmt.Sprintf("part %d", uint8(p))
}

// Solver computes the answers of one day from its raw input.
type Solver interface {
	Day() int
	Title() string
	Solve(ctx context.Context, part Part, input string) (int64, error)
}

// Registry maps days to solvers.
type Registry struct {
	mu      sync.RWMutex
	solvers map[int]Solver
}

// NewRegistry creates a registry holding solvers.
func NewRegistry(solvers ...Solver) (*Registry, error) {
	r := &Registry{solvers: make(map[int]Solver)}
	for _, s := range solvers {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds s. Registering a second solver for the same day is an
// error.
func (r *Registry) Register(s Solver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.solvers[s.Day()]; ok {
		return fmt.Errorf("day %d already registered by %q", s.Day(), prev.Title())
	}
	r.solvers[s.Day()] = s
	return nil
}

// Lookup returns the solver for day.
func (r *Registry) Lookup(day int) (Solver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("no solver for day %d", day)
	}
	return s, nil
}

// All returns the solvers ordered by day.
func (r *Registry) All() []Solver {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Solver, 0, len(r.solvers))
	for _, s := range r.solvers {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day() < out[j].Day() })
	return out
}
