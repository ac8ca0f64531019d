// Package diagnostic provides structured errors and warnings for almanac
// manifest validation.
//
// Key capabilities:
//   - Stable codes per problem kind (unknown_category, range_overlap, ...)
//   - Map-pair context ("seed->soil") and offending-value subjects
//   - Aggregation into a single error for callers that want one
package diagnostic
