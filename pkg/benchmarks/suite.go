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

package benchmarks

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"

	"sigs.k8s.io/nsga/pkg/algorithms"
	"sigs.k8s.io/nsga/pkg/framework"
	"sigs.k8s.io/nsga/pkg/metrics"
	"sigs.k8s.io/nsga/pkg/termination"
	"sigs.k8s.io/nsga/pkg/util"
)

// FrontSamples is the number of true front points quality metrics compare
// against.
const FrontSamples = 500

// SuiteConfig contains the settings shared by every run of a suite.
type SuiteConfig struct {
	Population int
	Crossover  framework.Ratio
	Mutation   framework.Ratio

	// StallGenerations, when positive, stops a run after that many
	// generations without improvement. MaxGenerations, when positive, caps
	// the run length.
	StallGenerations int
	MaxGenerations   int

	Seed    uint64
	Metrics *metrics.Collector
}

// Result holds the outcome of one problem run.
type Result struct {
	Problem   string
	Points    []framework.ObjectiveSpacePoint
	Solutions []framework.Solution
	Stats     algorithms.RunStats

	// IGD and Hypervolume are NaN when the true front is unknown. Hypervolume
	// is only computed for two objectives.
	IGD         float64
	Hypervolume float64
}

type entry struct {
	name    string
	factory Factory
}

// Suite runs a set of benchmark problems
type Suite struct {
	config   SuiteConfig
	problems []entry
}

// NewSuite creates a new benchmark suite
func NewSuite(config SuiteConfig) *Suite {
	return &Suite{
		config: config,
	}
}

// AddProblem adds a problem to the suite
func (s *Suite) AddProblem(name string, f Factory) {
	s.problems = append(s.problems, entry{name: name, factory: f})
}

// AddStandardProblems adds the ZDT and DTLZ problems
func (s *Suite) AddStandardProblems() {
	for _, name := range []string{"zdt1", "zdt2", "zdt3", "dtlz1", "dtlz2", "dtlz2-3obj"} {
		s.AddProblem(name, registry[name])
	}
}

// Run executes every problem in turn. When outputDir is not empty, results of
// two-objective problems are also plotted there.
func (s *Suite) Run(ctx context.Context, outputDir string) ([]Result, error) {
	logger := klog.FromContext(ctx)

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	results := make([]Result, 0, len(s.problems))
	for i, e := range s.problems {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		problem, res, err := s.runOne(ctx, e, s.config.Seed+uint64(i))
		if err != nil {
			return results, fmt.Errorf("running %s: %w", e.name, err)
		}
		if err := ctx.Err(); err != nil {
			return results, err
		}

		if outputDir != "" && len(res.Points) > 0 && len(res.Points[0]) == 2 {
			plotFile := filepath.Join(outputDir, fmt.Sprintf("%s_%s_results.html", res.Problem, algorithms.Name))
			if err := util.PlotResults(res.Points, problem, algorithms.Name, plotFile); err != nil {
				logger.Error(err, "Failed to plot results", "problem", res.Problem)
			}
		}

		logger.Info("Benchmark finished",
			"problem", res.Problem,
			"generations", res.Stats.Generations,
			"archived", len(res.Points),
			"igd", res.IGD,
			"hypervolume", res.Hypervolume)
		results = append(results, res)
	}

	return results, nil
}

func (s *Suite) runOne(ctx context.Context, e entry, seed uint64) (Problem, Result, error) {
	logger := klog.FromContext(ctx)
	problem := e.factory(Params{
		Population: s.config.Population,
		Crossover:  s.config.Crossover,
		Mutation:   s.config.Mutation,
		Rand:       rand.New(rand.NewSource(seed)),
	})

	nsga, err := algorithms.NewNSGAII(problem,
		algorithms.WithSeed(seed),
		algorithms.WithLogger(logger.WithValues("problem", problem.Name())),
		algorithms.WithMetrics(s.config.Metrics))
	if err != nil {
		return nil, Result{}, err
	}

	eval := termination.AnyOf{
		termination.Build(s.config.StallGenerations, s.config.MaxGenerations),
		termination.UntilDone(ctx),
	}
	res := Result{Problem: problem.Name()}
	for point, sol := range nsga.OptimizePoints(eval) {
		res.Points = append(res.Points, point)
		res.Solutions = append(res.Solutions, sol)
	}
	res.Stats = nsga.Stats()

	res.IGD, res.Hypervolume = math.NaN(), math.NaN()
	if trueFront := problem.TrueParetoFront(FrontSamples); len(trueFront) > 0 {
		res.IGD = IGD(res.Points, trueFront)
		if len(trueFront[0]) == 2 {
			res.Hypervolume = Hypervolume2D(res.Points, ReferencePoint(trueFront))
		}
	}
	return problem, res, nil
}

// ReferencePoint returns a hypervolume reference point 10% beyond the worst
// value of every objective of the front.
func ReferencePoint(front []framework.ObjectiveSpacePoint) framework.ObjectiveSpacePoint {
	ref := make(framework.ObjectiveSpacePoint, len(front[0]))
	for m := range ref {
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, p := range front {
			lo, hi = math.Min(lo, p[m]), math.Max(hi, p[m])
		}
		ref[m] = hi + 0.1*(hi-lo)
	}
	return ref
}
