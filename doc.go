// Package almanac implements the interval-based remapping pipeline: a set of
// identifier ranges is carried through a chain of named categories, where each
// category-to-category transition is a sparse list of disjoint, delta-shifted
// intervals. Ranges are split against the intervals and re-tagged with the next
// category; individual identifiers are never materialized.
//
// Key types:
//   - CategoryEnum: closed enum of pipeline stages (seed ... location)
//   - Interval: half-open [Start, Start+Length) with an additive Delta
//   - CategoryMap: sorted, disjoint intervals for one stage transition
//   - Graph: CategoryEnum -> CategoryMap lookup forming a linear chain
//   - IdRange: a contiguous identifier block tagged with its current category
//   - Pipeline: drives range sets through the chain and reduces the answer
package almanac
