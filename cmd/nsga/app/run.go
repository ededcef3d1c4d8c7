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
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"sigs.k8s.io/nsga/pkg/algorithms"
	"sigs.k8s.io/nsga/pkg/api/v1alpha1"
	"sigs.k8s.io/nsga/pkg/benchmarks"
	"sigs.k8s.io/nsga/pkg/framework"
	"sigs.k8s.io/nsga/pkg/termination"
	"sigs.k8s.io/nsga/pkg/util"
	"sigs.k8s.io/nsga/pkg/warmstart"
)

func newRunCommand(out io.Writer, opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "run <problem> [samples]",
		Short: "Optimize an example problem and print the solutions found",
		Long: `Optimize an example problem and print up to samples of the
Pareto-optimal solutions found, with their objective values.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.Config(cmd.Flags())
			if err != nil {
				return err
			}

			samples := cfg.Samples
			if len(args) > 1 {
				samples, err = strconv.Atoi(args[1])
				if err != nil || samples < 0 {
					return fmt.Errorf("failed to parse the number of samples %q", args[1])
				}
			}
			return runProblem(cmd.Context(), out, opts, cfg, args[0], samples)
		},
	}
}

func runProblem(ctx context.Context, out io.Writer, opts *Options, cfg *v1alpha1.OptimizerConfiguration, name string, samples int) error {
	logger := klog.FromContext(ctx)

	factory, err := benchmarks.Lookup(name)
	if err != nil {
		return err
	}

	seed := seedOf(cfg)
	problem := factory(paramsOf(cfg, seed))
	logger.V(1).Info("Starting optimization", "problem", problem.Name(), "seed", seed)

	reg, collector, err := newCollector()
	if err != nil {
		return err
	}

	var meta framework.Meta = problem
	if cfg.WarmStart != nil {
		seeds := warmstart.WeightedSeeds(ctx, warmstart.Config{
			Meta:    problem,
			Samples: cfg.WarmStart.SamplesPerVector,
		}, cfg.PopulationSize)
		meta = warmstart.NewSeeded(problem, seeds)
	}

	nsga, err := algorithms.NewNSGAII(meta,
		algorithms.WithSeed(seed),
		algorithms.WithLogger(logger.WithValues("problem", problem.Name())),
		algorithms.WithMetrics(collector))
	if err != nil {
		return err
	}

	var (
		points    []framework.ObjectiveSpacePoint
		solutions []framework.Solution
	)
	eval := termination.AnyOf{
		termination.Build(stallGenerationsOf(cfg), maxGenerationsOf(cfg)),
		termination.UntilDone(ctx),
	}
	for point, sol := range nsga.OptimizePoints(eval) {
		points = append(points, point)
		solutions = append(solutions, sol)
	}
	if err := ctx.Err(); err != nil {
		logger.Info("Optimization interrupted", "problem", problem.Name(), "generations", nsga.Stats().Generations)
		return err
	}

	stats := nsga.Stats()
	logger.Info("Optimization finished",
		"problem", problem.Name(),
		"generations", stats.Generations,
		"reason", stats.Reason,
		"archived", len(points),
		"elapsed", stats.Elapsed)

	n := min(samples, len(solutions))
	if err := printSolutions(out, solutions[:n], points[:n]); err != nil {
		return err
	}

	if opts.PlotDir != "" && len(points) > 0 && len(points[0]) == 2 {
		if err := os.MkdirAll(opts.PlotDir, 0755); err != nil {
			return fmt.Errorf("failed to create plot directory: %w", err)
		}
		plotFile := filepath.Join(opts.PlotDir, fmt.Sprintf("%s_%s_results.html", problem.Name(), algorithms.Name))
		if err := util.PlotResults(points, problem, algorithms.Name, plotFile); err != nil {
			return fmt.Errorf("failed to plot results: %w", err)
		}
		logger.V(1).Info("Plotted results", "file", plotFile)
	}

	if opts.PrintMetrics {
		return writeMetrics(out, reg)
	}
	return nil
}

// printSolutions writes one row per solution. Real solutions with one or two
// variables get a column per variable, any other genome is printed whole.
func printSolutions(out io.Writer, solutions []framework.Solution, points []framework.ObjectiveSpacePoint) error {
	if len(solutions) == 0 {
		_, err := fmt.Fprintln(out, "no solutions found")
		return err
	}

	header := solutionHeader(solutions[0])
	for i := range points[0] {
		header = append(header, fmt.Sprintf("f%d", i+1))
	}

	rows := make([][]string, len(solutions))
	for i, sol := range solutions {
		rows[i] = append(solutionColumns(sol, len(header)-len(points[0])), pointOf(points[i])...)
	}
	return printTable(out, header, rows)
}

func solutionHeader(sol framework.Solution) []string {
	if rs, ok := sol.(*framework.RealSolution); ok {
		switch len(rs.Variables) {
		case 1:
			return []string{"x"}
		case 2:
			return []string{"x", "y"}
		}
	}
	return []string{"solution"}
}

func solutionColumns(sol framework.Solution, columns int) []string {
	if rs, ok := sol.(*framework.RealSolution); ok && len(rs.Variables) == columns && columns <= 2 {
		return pointOf(rs.Variables)
	}
	return []string{fmt.Sprint(sol)}
}

// printTable writes rows as fixed width columns under a header.
func printTable(out io.Writer, header []string, rows [][]string) error {
	line := func(cols []string) string {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = fmt.Sprintf("%-10s", c)
		}
		return strings.TrimRight(strings.Join(cells, " | "), " ")
	}

	title := line(header)
	if _, err := fmt.Fprintf(out, "%s\n%s\n", title, strings.Repeat("=", len(title))); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(out, line(row)); err != nil {
			return err
		}
	}
	return nil
}
