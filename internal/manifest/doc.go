// Package manifest provides YAML schema definitions, parsing, validation,
// and construction of the core model from declarative almanac files.
//
// A manifest is a reviewable alternative to the raw puzzle text: fixtures and
// hand-written almanacs live in YAML instead of the positional triple format.
//
// # Schema Overview
//
//	version: "1"
//	seeds: [79, 14, 55, 13]
//	maps:
//	  - source: seed
//	    target: soil
//	    ranges:
//	      # explicit spelling
//	      - {start: 50, length: 48, delta: 2}
//	      # puzzle spelling (dst src len, as in the text format)
//	      - {dst: 50, src: 98, len: 2}
//	      # puzzle spelling, positional
//	      - [50, 98, 2]
//
// Mixing the explicit and puzzle spellings inside one range is rejected
// during validation.
package manifest
