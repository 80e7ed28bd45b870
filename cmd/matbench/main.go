// Package main - matbench, the command-line front end of the bench harness.
//
// It generates two seeded random N×N matrices, sweeps the thread counts and
// prints the time of the sequential kernel and of every parallel policy:
//
//	matbench --size 1000 --threads 1,2,4 --verify
//	matbench --config bench.yaml --repeat 3 -v=1 --logtostderr
//
// Flags override values from --config; --config overrides the built-in defaults.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/blockmul/bench"
)

func main() {
	code := 0
	if err := newRootCommand().Execute(); err != nil {
		glog.Errorf("matbench: %v", err)
		code = 1
	}
	glog.Flush()
	os.Exit(code)
}

// newRootCommand wires flags, optional YAML config and the bench runner.
func newRootCommand() *cobra.Command {
	var (
		configPath string
		cfg        = bench.DefaultConfig()
	)

	cmd := &cobra.Command{
		Use:           "matbench",
		Short:         "Benchmark sequential, Fox and Cannon matrix multiplication",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			effective, err := resolveConfig(cmd.Flags(), configPath, cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err = bench.WriteHeader(out, effective); err != nil {
				return err
			}
			var writeErr error
			_, err = bench.Run(effective, func(r bench.Result) {
				if writeErr == nil {
					writeErr = bench.WriteResult(out, r)
				}
			})
			if err != nil {
				return err
			}

			return writeErr
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML file with bench settings")
	f.IntVar(&cfg.Size, "size", cfg.Size, "matrix order N")
	f.IntSliceVar(&cfg.Threads, "threads", cfg.Threads, "thread counts to sweep (each must divide size)")
	f.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for the input matrices")
	f.Int32Var(&cfg.MaxValue, "max", cfg.MaxValue, "cells are drawn from [0, max)")
	f.StringSliceVar(&cfg.Policies, "policies", cfg.Policies, "parallel policies to run (fox, cannon)")
	f.IntVar(&cfg.Repeat, "repeat", cfg.Repeat, "runs per measurement; the fastest is reported")
	f.BoolVar(&cfg.Verify, "verify", cfg.Verify, "check parallel results against the sequential kernel")
	f.BoolVar(&cfg.OverflowCheck, "overflow-check", cfg.OverflowCheck, "fail on int32 overflow instead of wrapping")

	// glog registers its flags (-v, -logtostderr, ...) on the standard flag set.
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	_ = flag.CommandLine.Parse(nil) // mark std flags parsed; pflag owns the real parsing

	return cmd
}

// resolveConfig layers defaults < YAML file < explicitly set flags.
func resolveConfig(flags *pflag.FlagSet, path string, fromFlags bench.Config) (bench.Config, error) {
	if path == "" {
		return fromFlags, nil
	}
	fileCfg, err := bench.LoadConfig(path)
	if err != nil {
		return bench.Config{}, err
	}
	overrides := map[string]func(){
		"size":           func() { fileCfg.Size = fromFlags.Size },
		"threads":        func() { fileCfg.Threads = fromFlags.Threads },
		"seed":           func() { fileCfg.Seed = fromFlags.Seed },
		"max":            func() { fileCfg.MaxValue = fromFlags.MaxValue },
		"policies":       func() { fileCfg.Policies = fromFlags.Policies },
		"repeat":         func() { fileCfg.Repeat = fromFlags.Repeat },
		"verify":         func() { fileCfg.Verify = fromFlags.Verify },
		"overflow-check": func() { fileCfg.OverflowCheck = fromFlags.OverflowCheck },
	}
	flags.Visit(func(fl *pflag.Flag) {
		if apply, ok := overrides[fl.Name]; ok {
			apply()
		}
	})
	if err = fileCfg.Validate(); err != nil {
		return bench.Config{}, fmt.Errorf("config %s with flags: %w", path, err)
	}

	return fileCfg, nil
}
