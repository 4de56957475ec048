// Package flags converts between a set of power-of-two options stored as one
// integer and the ordered list of symbolic names used in export documents.
//
// Decomposition is table driven: only sums listed in the supported
// combination table can be turned back into names, every other sum is
// rejected even if its bits are individually known.
package flags

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
)

var (
	// ErrUnknownFlag is returned by Combine for a name outside the set.
	ErrUnknownFlag = errors.New("unknown flag")
	// ErrUnsupportedCombination is returned by Decompose for a sum missing
	// from the combination table.
	ErrUnsupportedCombination = errors.New("unsupported flag combination")
)

// Flag is one named option.
type Flag struct {
	Name  string
	Value int
}

// Set is an immutable flag table.
type Set struct {
	flags  []Flag
	values map[string]int
	combos map[int][]string
}

// NewSet builds a Set. combos maps every supported sum to its names in
// export order.
func NewSet(flags []Flag, combos map[int][]string) *Set {
	s := &Set{
		flags:  slices.Clone(flags),
		values: make(map[string]int, len(flags)),
		combos: make(map[int][]string, len(combos)),
	}
	for _, f := range flags {
		s.values[f.Name] = f.Value
	}
	for sum, names := range combos {
		s.combos[sum] = slices.Clone(names)
	}
	return s
}

// Combine sums the values of names. Repeated names are counted each time.
func (s *Set) Combine(names []string) (int, error) {
	total := 0
	for _, name := range names {
		v, ok := s.values[name]
		if !ok {
			return 0, fmt.Errorf("%w %q", ErrUnknownFlag, name)
		}
		total += v
	}
	return total, nil
}

// Decompose returns the names recorded for sum.
func (s *Set) Decompose(sum int) ([]string, error) {
	names, ok := s.combos[sum]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrUnsupportedCombination, sum)
	}
	return slices.Clone(names), nil
}

// DecomposeString is Decompose for the decimal text form used in documents.
func (s *Set) DecomposeString(sum string) ([]string, error) {
	n, err := strconv.Atoi(sum)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnsupportedCombination, sum)
	}
	return s.Decompose(n)
}

// Sums lists the supported sums in ascending order.
func (s *Set) Sums() []int {
	out := make([]int, 0, len(s.combos))
	for sum := range s.combos {
		out = append(out, sum)
	}
	slices.Sort(out)
	return out
}

// Flags returns the declared flags.
func (s *Set) Flags() []Flag {
	return slices.Clone(s.flags)
}
