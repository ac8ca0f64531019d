package almanac

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrNonPositiveLength = errors.New("length must be positive")
	ErrOverlappingRanges = errors.New("intervals overlap")
	ErrCategoryMismatch  = errors.New("range category does not match map source")
	ErrSelfMapping       = errors.New("map source and destination are the same category")
	ErrInvalidCategory   = errors.New("invalid category")
)

// Interval is an immutable half-open range [Start, Start+Length) in the source
// category's identifier space. Values inside it map to [Start+Delta,
// Start+Length+Delta) in the destination space.
type Interval struct {
	Start  int64
	Length int64
	Delta  int64
}

// NewInterval creates an Interval.
func NewInterval(start, length, delta int64) Interval {
	return Interval{Start: start, Length: length, Delta: delta}
}

// End returns the exclusive upper bound of the interval.
func (iv Interval) End() int64 {
	return iv.Start + iv.Length
}

// Contains returns true if id falls inside the interval.
func (iv Interval) Contains(id int64) bool {
	return iv.Start <= id && id < iv.End()
}

// CategoryMap describes how one category's identifier space maps onto the next
// category's space: an ascending-sorted list of pairwise disjoint intervals.
// Identifiers not covered by any interval pass through unchanged.
type CategoryMap struct {
	Source      CategoryEnum
	Destination CategoryEnum
	ranges      []Interval
}

// NewCategoryMap builds a CategoryMap from intervals given in any order.
// The intervals are copied and sorted ascending by Start; sortedness is an
// invariant the splitting sweep relies on, so it is established here rather
// than assumed from input order.
func NewCategoryMap(source, destination CategoryEnum, ranges []Interval) (CategoryMap, error) {
	if !source.IsValid() || !destination.IsValid() {
		return CategoryMap{}, fmt.Errorf("%w: %s -> %s", ErrInvalidCategory, source, destination)
	}

	if source == destination {
		return CategoryMap{}, fmt.Errorf("%w: %s", ErrSelfMapping, source.Name())
	}

	sorted := make([]Interval, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	for i, iv := range sorted {
		if iv.Length <= 0 {
			return CategoryMap{}, fmt.Errorf("%w: interval at %d has length %d", ErrNonPositiveLength, iv.Start, iv.Length)
		}

		if i > 0 && sorted[i-1].End() > iv.Start {
			return CategoryMap{}, fmt.Errorf("%w: [%d,%d) and [%d,%d)",
				ErrOverlappingRanges, sorted[i-1].Start, sorted[i-1].End(), iv.Start, iv.End())
		}
	}

	return CategoryMap{Source: source, Destination: destination, ranges: sorted}, nil
}

// Ranges returns the sorted intervals of the map.
func (m CategoryMap) Ranges() []Interval {
	return m.ranges
}
