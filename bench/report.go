// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sys/cpu"
)

// displayNames maps result names to the labels of the classic report.
var displayNames = map[string]string{
	"sequential": "sequential",
	"fox":        "Fox's method",
	"cannon":     "Cannon's method",
}

// WriteHeader prints one line describing the run and the host.
func WriteHeader(w io.Writer, cfg Config) error {
	_, err := fmt.Fprintf(w, "matbench: n=%d seed=%d max=%d repeat=%d cpus=%d %s/%s %s\n",
		cfg.Size, cfg.Seed, cfg.MaxValue, cfg.Repeat, runtime.NumCPU(), runtime.GOOS, runtime.GOARCH, cpuFeatures())

	return err
}

// WriteResult prints one measurement. A "Number of threads" line precedes the
// first algorithm of each sweep step.
func WriteResult(w io.Writer, r Result) error {
	if r.Algorithm == 1 {
		if _, err := fmt.Fprintf(w, "Number of threads: %d\n", r.Threads); err != nil {
			return err
		}
	}
	name, ok := displayNames[r.Name]
	if !ok {
		name = r.Name
	}
	_, err := fmt.Fprintf(w, "Algorithm %d (%s) time: %.6f seconds\n", r.Algorithm, name, r.Seconds())

	return err
}

// WriteReport prints every result in order.
func WriteReport(w io.Writer, results []Result) error {
	for _, r := range results {
		if err := WriteResult(w, r); err != nil {
			return err
		}
	}

	return nil
}

// cpuFeatures summarizes the SIMD level of the host for the report header.
func cpuFeatures() string {
	switch runtime.GOARCH {
	case "amd64", "386":
		return fmt.Sprintf("avx2=%t avx512f=%t", cpu.X86.HasAVX2, cpu.X86.HasAVX512F)
	case "arm64":
		return fmt.Sprintf("asimd=%t sve=%t", cpu.ARM64.HasASIMD, cpu.ARM64.HasSVE)
	default:
		return "simd=unknown"
	}
}
