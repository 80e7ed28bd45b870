// Package blockmul benchmarks dense square-matrix multiplication under three
// strategies: a single-threaded reference kernel and two block-decomposition
// parallel engines modeled on Fox's and Cannon's methods.
//
// What is inside?
//
//	matrix/       int32 row-major Dense storage, row-band Views, validators, builders
//	partition/    row ranges and block grids for T workers (T must divide N)
//	kernel/       sequential triple loop, row-band kernel, tile accumulator
//	shift/        toroidal shift and skew of square grids (Cannon alignment)
//	parallel/     coordinator: fresh pool per call, Fox/Cannon workers, error aggregation
//	bench/        harness: YAML config, seeded inputs, thread sweep, timing, report
//	cmd/matbench  command-line front end of bench
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]int32{{1, 2}, {3, 4}})
//	c, err := blockmul.ParallelMultiply(a, a, 2, blockmul.Cannon)
//	// c == [[7, 10], [15, 22]]
//
// Guarantees:
//   - For every T dividing N, both policies return exactly SequentialMultiply(A, B).
//   - N % T != 0 fails with ErrInvalidConfiguration before any work starts.
//   - A failed worker makes the whole call fail with ErrWorkerFailure; a
//     partially assembled matrix is never returned.
//
//	go get github.com/katalvlaran/blockmul
package blockmul
