package manifest

import (
	"fmt"

	"almanac"
)

// Build constructs the core model from a manifest. The manifest must already
// be valid; Build surfaces the first construction error it hits rather than
// collecting a report (use Validate for that).
func Build(mf *ManifestFile) ([]int64, *almanac.Graph, error) {
	maps := make([]almanac.CategoryMap, 0, len(mf.Maps))

	for _, md := range mf.Maps {
		m, err := buildMap(md)
		if err != nil {
			return nil, nil, fmt.Errorf("map %s: %w", md.Pair(), err)
		}

		maps = append(maps, m)
	}

	graph, err := almanac.NewGraph(maps...)
	if err != nil {
		return nil, nil, err
	}

	return mf.Seeds, graph, nil
}

func buildMap(md MapDef) (almanac.CategoryMap, error) {
	source, err := almanac.ParseCategory(md.Source)
	if err != nil {
		return almanac.CategoryMap{}, err
	}

	target, err := almanac.ParseCategory(md.Target)
	if err != nil {
		return almanac.CategoryMap{}, err
	}

	ranges := make([]almanac.Interval, len(md.Ranges))

	for i, rd := range md.Ranges {
		ranges[i], err = rd.Interval()
		if err != nil {
			return almanac.CategoryMap{}, err
		}
	}

	return almanac.NewCategoryMap(source, target, ranges)
}
