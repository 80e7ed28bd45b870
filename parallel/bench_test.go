// Package parallel_test provides benchmarks comparing the sequential kernel
// with the Fox and Cannon policies on seeded random operands.
package parallel_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/blockmul/kernel"
	"github.com/katalvlaran/blockmul/matrix"
	"github.com/katalvlaran/blockmul/parallel"
)

// benchSizes are the matrix orders to benchmark; every entry is divisible by benchThreads.
var (
	benchSizes   = []int{64, 128, 256}
	benchThreads = []int{1, 2, 4}
)

// sink to defeat dead-code elimination
var sinkM *matrix.Dense

func BenchmarkSequential(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustRandom(b, n, 1337, 100)
			B := mustRandom(b, n, 4242, 100)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := kernel.Multiply(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkParallel(b *testing.B) {
	b.ReportAllocs()
	for _, p := range parallel.Policies() {
		for _, n := range benchSizes {
			for _, threads := range benchThreads {
				b.Run(fmt.Sprintf("%s/n=%d/T=%d", p, n, threads), func(b *testing.B) {
					A := mustRandom(b, n, 11, 100)
					B := mustRandom(b, n, 22, 100)
					b.ResetTimer()
					for i := 0; i < b.N; i++ {
						m, err := parallel.Multiply(A, B, threads, p)
						if err != nil {
							b.Fatal(err)
						}
						sinkM = m
					}
				})
			}
		}
	}
}
