package almanac

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateSource = errors.New("duplicate map for source category")
	ErrMissingMap      = errors.New("no outgoing map for category")
	ErrCycle           = errors.New("category chain does not terminate")
)

// Graph is the lookup from a category to its outgoing CategoryMap. It is built
// once and read-only afterwards; the pipeline shares it across every step.
type Graph struct {
	maps map[CategoryEnum]CategoryMap
}

// NewGraph builds a Graph from the given maps. Each source category may have
// at most one outgoing map.
func NewGraph(maps ...CategoryMap) (*Graph, error) {
	byCategory := make(map[CategoryEnum]CategoryMap, len(maps))

	for _, m := range maps {
		if _, ok := byCategory[m.Source]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSource, m.Source.Name())
		}

		byCategory[m.Source] = m
	}

	return &Graph{maps: byCategory}, nil
}

// Map returns the outgoing CategoryMap for the given category.
func (g *Graph) Map(category CategoryEnum) (CategoryMap, bool) {
	m, ok := g.maps[category]
	return m, ok
}

// Len returns the number of maps in the graph.
func (g *Graph) Len() int {
	return len(g.maps)
}

// Validate walks the chain from source and checks that it reaches terminal:
// every intermediate category must have exactly one outgoing map and no
// category may repeat. A graph that fails here would otherwise make the
// pipeline loop or stop short of an answer.
func (g *Graph) Validate(source, terminal CategoryEnum) error {
	visited := make(map[CategoryEnum]struct{}, len(g.maps))
	current := source

	for current != terminal {
		if _, seen := visited[current]; seen {
			return fmt.Errorf("%w: revisited %s", ErrCycle, current.Name())
		}

		visited[current] = struct{}{}

		m, ok := g.maps[current]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingMap, current.Name())
		}

		current = m.Destination
	}

	return nil
}
