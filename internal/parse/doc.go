// Package parse reads the raw almanac puzzle text into the core model.
//
// The format is a seeds header followed by mapping sections:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Each section row is "dst src len": identifiers in [src, src+len) map to
// [dst, dst+len), so the interval delta is dst-src.
package parse
