package manifest

import (
	"errors"
	"fmt"

	"almanac"
	"almanac/internal/diagnostic"
)

// Validate performs structural validation of a manifest. It reports every
// problem it can find rather than stopping at the first, so a review pass
// over a manifest needs a single run.
func Validate(mf *ManifestFile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.AddError("manifest_is_nil", "manifest is nil", "", "")
		return res
	}

	if len(mf.Seeds) == 0 {
		res.AddError("no_seeds", "manifest declares no seeds", "", "")
	}

	if len(mf.Seeds)%2 != 0 {
		res.AddWarning("odd_seed_pairs", "seed list has odd length and cannot be used in pair mode", "", "")
	}

	if len(mf.Maps) == 0 {
		res.AddError("no_maps", "manifest declares no maps", "", "")
	}

	seenSources := map[string]struct{}{}

	for i := range mf.Maps {
		md := &mf.Maps[i]

		if _, ok := seenSources[md.Source]; ok {
			res.AddError("duplicate_source", fmt.Sprintf("more than one map out of %q", md.Source), md.Pair(), "")
		}

		seenSources[md.Source] = struct{}{}

		validateMap(res, md)
	}

	return res
}

func validateMap(res *diagnostic.Diagnostics, md *MapDef) {
	source, err := almanac.ParseCategory(md.Source)
	if err != nil {
		res.AddError("unknown_category", err.Error(), md.Pair(), md.Source)
	}

	target, err := almanac.ParseCategory(md.Target)
	if err != nil {
		res.AddError("unknown_category", err.Error(), md.Pair(), md.Target)
	}

	if !source.IsValid() || !target.IsValid() {
		return
	}

	if source == target {
		res.AddError("self_mapping", "source and target are the same category", md.Pair(), "")
		return
	}

	ranges := make([]almanac.Interval, 0, len(md.Ranges))

	for _, rd := range md.Ranges {
		iv, err := rd.Interval()

		switch {
		case errors.Is(err, ErrRangeConflict):
			res.AddError("range_conflict", err.Error(), md.Pair(), rd.String())
			continue
		case err != nil:
			res.AddError("range_incomplete", err.Error(), md.Pair(), rd.String())
			continue
		}

		if iv.Length <= 0 {
			res.AddError("bad_length", fmt.Sprintf("range length %d is not positive", iv.Length), md.Pair(), rd.String())
			continue
		}

		ranges = append(ranges, iv)
	}

	// Overlap detection is the core's concern; translate its error here so
	// the manifest report carries the map pair context.
	if _, err := almanac.NewCategoryMap(source, target, ranges); err != nil {
		code := "bad_map"
		if errors.Is(err, almanac.ErrOverlappingRanges) {
			code = "range_overlap"
		}

		res.AddError(code, err.Error(), md.Pair(), "")
	}
}
