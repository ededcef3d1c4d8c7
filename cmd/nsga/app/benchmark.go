/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"sigs.k8s.io/nsga/pkg/benchmarks"
)

func newBenchmarkCommand(out io.Writer, opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "benchmark [problem...]",
		Short: "Measure how close NSGA-II gets to known Pareto fronts",
		Long: `Run NSGA-II on the given problems, or on the ZDT and DTLZ problems when
none is given, and report the inverted generational distance and hypervolume
of every archive.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Config(cmd.Flags())
			if err != nil {
				return err
			}

			reg, collector, err := newCollector()
			if err != nil {
				return err
			}

			suite := benchmarks.NewSuite(benchmarks.SuiteConfig{
				Population:       cfg.PopulationSize,
				Crossover:        cfg.CrossoverOdds.Framework(),
				Mutation:         cfg.MutationOdds.Framework(),
				StallGenerations: stallGenerationsOf(cfg),
				MaxGenerations:   maxGenerationsOf(cfg),
				Seed:             seedOf(cfg),
				Metrics:          collector,
			})
			if len(args) == 0 {
				suite.AddStandardProblems()
			}
			for _, name := range args {
				factory, err := benchmarks.Lookup(name)
				if err != nil {
					return err
				}
				suite.AddProblem(name, factory)
			}

			results, err := suite.Run(cmd.Context(), opts.PlotDir)
			if err != nil {
				return err
			}

			rows := make([][]string, len(results))
			for i, res := range results {
				rows[i] = []string{
					res.Problem,
					strconv.Itoa(res.Stats.Generations),
					strconv.Itoa(len(res.Points)),
					fmt.Sprintf("%.4f", res.IGD),
					fmt.Sprintf("%.4f", res.Hypervolume),
				}
			}
			if err := printTable(out, []string{"problem", "generations", "archived", "igd", "hypervolume"}, rows); err != nil {
				return err
			}

			if opts.PrintMetrics {
				return writeMetrics(out, reg)
			}
			return nil
		},
	}
}
