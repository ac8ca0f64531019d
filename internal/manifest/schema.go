package manifest

import (
	"errors"
	"fmt"
	"strings"

	"almanac"
)

var (
	ErrRangeConflict   = errors.New("range mixes explicit and puzzle spellings")
	ErrRangeIncomplete = errors.New("range is missing required fields")
)

// ManifestFile represents the root of a YAML almanac definition file.
type ManifestFile struct {
	// Version of the manifest schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Seeds are the literal seed identifiers. Their interpretation (single
	// ids vs start/length pairs) is chosen by the caller, not the manifest.
	Seeds []int64 `yaml:"seeds"`

	// Maps is the list of category-to-category mapping definitions.
	Maps []MapDef `yaml:"maps"`
}

// MapDef defines one category transition and its delta-shifted ranges.
type MapDef struct {
	// Source category token (e.g. "seed").
	Source string `yaml:"source"`

	// Target category token (e.g. "soil").
	Target string `yaml:"target"`

	// Ranges are the mapping ranges, in any order; sorting happens on build.
	Ranges []RangeDef `yaml:"ranges"`
}

// Pair returns the "source->target" string used in diagnostics.
func (m MapDef) Pair() string {
	return m.Source + "->" + m.Target
}

// RangeDef is one mapping range. Two spellings are accepted:
//   - explicit: {start: 50, length: 48, delta: 2} (delta defaults to 0)
//   - puzzle:   {dst: 52, src: 50, len: 48} or positional [52, 50, 48]
//
// The puzzle spelling mirrors the text format's "dst src len" triples, where
// the delta is dst-src.
type RangeDef struct {
	Start  *int64 `yaml:"start"`
	Length *int64 `yaml:"length"`
	Delta  *int64 `yaml:"delta"`

	Dst *int64 `yaml:"dst"`
	Src *int64 `yaml:"src"`
	Len *int64 `yaml:"len"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
// Accepts the positional [dst, src, len] form in addition to the map forms.
func (r *RangeDef) UnmarshalYAML(unmarshal func(any) error) error {
	var triple []int64
	if err := unmarshal(&triple); err == nil {
		if len(triple) != 3 {
			return fmt.Errorf("positional range must have exactly 3 values, got %d", len(triple))
		}

		r.Dst, r.Src, r.Len = &triple[0], &triple[1], &triple[2]

		return nil
	}

	type plain RangeDef

	var p plain
	if err := unmarshal(&p); err != nil {
		return err
	}

	*r = RangeDef(p)

	return nil
}

// Interval normalizes the range into the core Interval type.
func (r RangeDef) Interval() (almanac.Interval, error) {
	explicit := r.Start != nil || r.Length != nil || r.Delta != nil
	puzzle := r.Dst != nil || r.Src != nil || r.Len != nil

	switch {
	case explicit && puzzle:
		return almanac.Interval{}, fmt.Errorf("%w: %s", ErrRangeConflict, r)

	case puzzle:
		if r.Dst == nil || r.Src == nil || r.Len == nil {
			return almanac.Interval{}, fmt.Errorf("%w: %s needs dst, src and len", ErrRangeIncomplete, r)
		}

		return almanac.NewInterval(*r.Src, *r.Len, *r.Dst-*r.Src), nil

	case explicit:
		if r.Start == nil || r.Length == nil {
			return almanac.Interval{}, fmt.Errorf("%w: %s needs start and length", ErrRangeIncomplete, r)
		}

		delta := int64(0)
		if r.Delta != nil {
			delta = *r.Delta
		}

		return almanac.NewInterval(*r.Start, *r.Length, delta), nil

	default:
		return almanac.Interval{}, fmt.Errorf("%w: empty range", ErrRangeIncomplete)
	}
}

// String renders the range in the spelling it was written in, for diagnostics.
func (r RangeDef) String() string {
	var parts []string

	appendField := func(name string, v *int64) {
		if v != nil {
			parts = append(parts, fmt.Sprintf("%s: %d", name, *v))
		}
	}

	appendField("start", r.Start)
	appendField("length", r.Length)
	appendField("delta", r.Delta)
	appendField("dst", r.Dst)
	appendField("src", r.Src)
	appendField("len", r.Len)

	return "{" + strings.Join(parts, ", ") + "}"
}
