package almanac

import (
	"errors"
	"fmt"

	"almanac/utils"
)

var ErrOddSeedCount = errors.New("seed pair list has odd length")

// IdRange is a contiguous block of identifiers [Start, Start+Length) all
// currently in Category's space. Applying a CategoryMap never mutates an
// IdRange; each step produces new values tagged with the destination category.
type IdRange struct {
	Category CategoryEnum
	Start    int64
	Length   int64
}

// NewIdRange creates an IdRange.
func NewIdRange(category CategoryEnum, start, length int64) IdRange {
	return IdRange{Category: category, Start: start, Length: length}
}

// End returns the exclusive upper bound of the range.
func (r IdRange) End() int64 {
	return r.Start + r.Length
}

// SingleRanges treats every literal identifier as a length-1 range in the
// given category.
func SingleRanges(category CategoryEnum, ids []int64) []IdRange {
	ranges := make([]IdRange, len(ids))
	for i, id := range ids {
		ranges[i] = NewIdRange(category, id, 1)
	}

	return ranges
}

// PairRanges interprets the identifier list as (start, length) pairs in the
// given category. The list must have even length.
func PairRanges(category CategoryEnum, ids []int64) ([]IdRange, error) {
	pairs, ok := utils.Pairs(ids)
	if !ok {
		return nil, fmt.Errorf("%w: %d values", ErrOddSeedCount, len(ids))
	}

	ranges := make([]IdRange, len(pairs))
	for i, p := range pairs {
		ranges[i] = NewIdRange(category, p.First, p.Second)
	}

	return ranges, nil
}
