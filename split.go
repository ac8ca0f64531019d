package almanac

import "fmt"

// Apply partitions r against the map's sorted intervals and returns the
// sub-ranges in the destination category. The outputs exactly cover
// [r.Start, r.End()): sub-ranges falling in a gap between intervals keep their
// values, sub-ranges covered by an interval are shifted by its delta. A
// positive-length input always produces at least one output and never a
// zero-length piece.
//
// The sweep is a single left-to-right pass over the intervals with an explicit
// cursor, O(len(ranges)) per input range.
func (m CategoryMap) Apply(r IdRange) ([]IdRange, error) {
	if r.Category != m.Source {
		return nil, fmt.Errorf("%w: range is %s, map is %s -> %s",
			ErrCategoryMismatch, r.Category.Name(), m.Source.Name(), m.Destination.Name())
	}

	if r.Length <= 0 {
		return nil, fmt.Errorf("%w: range at %d has length %d", ErrNonPositiveLength, r.Start, r.Length)
	}

	out := make([]IdRange, 0, 1)
	current := r.Start
	end := r.End()

	for _, iv := range m.ranges {
		// Gap before this interval: values pass through unchanged.
		if iv.Start > current {
			gapEnd := min(iv.Start, end)
			out = append(out, NewIdRange(m.Destination, current, gapEnd-current))
			current = iv.Start
		}

		if current >= end {
			break
		}

		// Overlap: shift the covered piece by the interval's delta.
		if iv.End() > current {
			covered := min(iv.End(), end)
			out = append(out, NewIdRange(m.Destination, current+iv.Delta, covered-current))
			current = covered
		}

		if current >= end {
			break
		}
	}

	// Tail past the last interval passes through unchanged.
	if current < end {
		out = append(out, NewIdRange(m.Destination, current, end-current))
	}

	return out, nil
}
