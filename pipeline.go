package almanac

import (
	"errors"
	"fmt"
)

var (
	ErrMixedCategories = errors.New("range set spans multiple categories")
	ErrEmptyRangeSet   = errors.New("range set is empty")
)

// Pipeline drives range sets through the category chain of a validated Graph
// until they reach the terminal category, then reduces them to the answer.
type Pipeline struct {
	graph    *Graph
	terminal CategoryEnum
}

// NewPipeline creates a Pipeline over the given graph and terminal category.
func NewPipeline(graph *Graph, terminal CategoryEnum) (*Pipeline, error) {
	if !terminal.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCategory, terminal)
	}

	return &Pipeline{graph: graph, terminal: terminal}, nil
}

// Terminal returns the pipeline's terminal category.
func (p *Pipeline) Terminal() CategoryEnum {
	return p.terminal
}

// currentCategory returns the single category shared by all ranges in the set.
func currentCategory(ranges []IdRange) (CategoryEnum, error) {
	if len(ranges) == 0 {
		return 0, ErrEmptyRangeSet
	}

	category := ranges[0].Category
	for _, r := range ranges[1:] {
		if r.Category != category {
			return 0, fmt.Errorf("%w: %s and %s", ErrMixedCategories, category.Name(), r.Category.Name())
		}
	}

	return category, nil
}

// Advance applies the current category's map to every range in the set and
// returns the concatenated outputs, all tagged with the destination category.
func (p *Pipeline) Advance(ranges []IdRange) ([]IdRange, error) {
	category, err := currentCategory(ranges)
	if err != nil {
		return nil, err
	}

	m, ok := p.graph.Map(category)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingMap, category.Name())
	}

	next := make([]IdRange, 0, len(ranges))

	for _, r := range ranges {
		split, err := m.Apply(r)
		if err != nil {
			return nil, err
		}

		next = append(next, split...)
	}

	return next, nil
}

// AdvanceTo repeatedly advances the set until it reaches the terminal
// category. The step count is bounded by the graph size, so a malformed
// chain surfaces as an error instead of an endless loop.
func (p *Pipeline) AdvanceTo(ranges []IdRange) ([]IdRange, error) {
	category, err := currentCategory(ranges)
	if err != nil {
		return nil, err
	}

	for steps := 0; category != p.terminal; steps++ {
		if steps > p.graph.Len() {
			return nil, fmt.Errorf("%w: no path from %s to %s", ErrCycle, category.Name(), p.terminal.Name())
		}

		ranges, err = p.Advance(ranges)
		if err != nil {
			return nil, err
		}

		category = ranges[0].Category
	}

	return ranges, nil
}

// Nearest advances the set to the terminal category and returns the minimum
// start value. Taking the minimum over starts is exact: deltas are additive
// and sub-ranges are contiguous, so the smallest reachable value in any
// emitted sub-range is always its start.
func (p *Pipeline) Nearest(ranges []IdRange) (int64, error) {
	final, err := p.AdvanceTo(ranges)
	if err != nil {
		return 0, err
	}

	nearest := final[0].Start
	for _, r := range final[1:] {
		if r.Start < nearest {
			nearest = r.Start
		}
	}

	return nearest, nil
}
