// Package matrix offers the dense int32 storage used by the multiplication engine.
//
// The matrix package provides:
//
//   - Dense, a row-major N×M grid of int32 with bounds-checked At/Set and an
//     aliasing Row(i) fast path for kernels.
//   - View, a no-copy band of consecutive rows. Disjoint views of one result
//     matrix are how parallel workers receive exclusive output regions.
//   - Builders (FromRows, NewIdentity, NewRandom) and central validators.
//
// All errors are package sentinels (errors.go) matched with errors.Is.
package matrix
