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

package algorithms

import (
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"

	"sigs.k8s.io/nsga/pkg/framework"
	"sigs.k8s.io/nsga/pkg/metrics"
)

const (
	Name = "NSGA-II"
)

// Option configures an NSGAII optimizer.
type Option func(*NSGAII)

// WithLogger sets the logger used for run and generation summaries.
func WithLogger(logger klog.Logger) Option {
	return func(n *NSGAII) {
		n.logger = logger
	}
}

// WithRand sets the random source for selection and genetic operators.
func WithRand(rng *rand.Rand) Option {
	return func(n *NSGAII) {
		n.rng = rng
	}
}

// WithSeed makes the run reproducible by seeding a dedicated random source.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithMetrics records run statistics in the given collector.
func WithMetrics(c *metrics.Collector) Option {
	return func(n *NSGAII) {
		n.metrics = c
	}
}

// RunStats summarizes a finished run.
type RunStats struct {
	Generations      int
	SolutionsCreated uint64
	Reason           string
	Elapsed          time.Duration
}

// NSGAII is the optimization engine. An instance drives a single run; create
// a new one to optimize again.
type NSGAII struct {
	meta        framework.Meta
	popSize     int
	crossover   framework.Ratio
	mutation    framework.Ratio
	objectives  []framework.Objective
	constraints []framework.Constraint

	rng     *rand.Rand
	logger  klog.Logger
	metrics *metrics.Collector

	lastID  framework.SolutionID
	archive *Archive
	started bool
	stats   RunStats
}

// NewNSGAII validates meta and creates an optimizer for it. Invalid
// meta-parameters yield a *framework.ConfigError.
func NewNSGAII(meta framework.Meta, opts ...Option) (*NSGAII, error) {
	if err := framework.ValidateMeta(meta); err != nil {
		return nil, err
	}

	n := &NSGAII{
		meta:        meta,
		popSize:     meta.PopulationSize(),
		crossover:   meta.CrossoverOdds(),
		mutation:    meta.MutationOdds(),
		objectives:  meta.Objectives(),
		constraints: meta.Constraints(),
		logger:      klog.Background(),
		archive:     NewArchive(),
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.rng == nil {
		n.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	n.logger = n.logger.WithValues("algorithm", Name, "run", uuid.NewString())

	return n, nil
}

// Optimize returns the solutions of the best-solutions archive. The search runs
// when the sequence is first iterated and stops only when a candidate is good
// enough for every objective or eval allows it; an evaluator that never does
// keeps the search running forever. A nil eval leaves termination to the
// objectives alone.
//
// The sequence is single-use: iterating it again yields nothing.
func (n *NSGAII) Optimize(eval framework.Evaluator) iter.Seq[framework.Solution] {
	return func(yield func(framework.Solution) bool) {
		for _, e := range n.run(eval) {
			if !yield(e.Solution) {
				return
			}
		}
	}
}

// OptimizePoints is like Optimize but also yields the objective vector of
// every archived solution.
func (n *NSGAII) OptimizePoints(eval framework.Evaluator) iter.Seq2[framework.ObjectiveSpacePoint, framework.Solution] {
	return func(yield func(framework.ObjectiveSpacePoint, framework.Solution) bool) {
		for _, e := range n.run(eval) {
			if !yield(e.Point, e.Solution) {
				return
			}
		}
	}
}

// Stats returns the summary of the finished run.
func (n *NSGAII) Stats() RunStats {
	return n.stats
}

// run executes the generational loop and hands over the archive.
func (n *NSGAII) run(eval framework.Evaluator) []ArchiveEntry {
	if n.started {
		return nil
	}
	n.started = true
	startTime := time.Now()

	n.logger.V(2).Info("Starting evolution",
		"populationSize", n.popSize,
		"objectives", len(n.objectives),
		"constraints", len(n.constraints),
		"crossoverOdds", n.crossover.String(),
		"mutationOdds", n.mutation.String())

	population := n.initialize()
	sortPopulation(population)

	for gen := 0; ; gen++ {
		// Ranks come from the last sort pass. Fronts are kept whole up to the
		// truncated one, so rank 0 members are the front of the population.
		for _, sol := range population {
			if sol.Rank == 0 {
				n.archive.Add(sol.Solution, sol.Value)
			}
		}
		n.observeGeneration(gen, population)

		if reason, done := n.canTerminate(eval, gen, population); done {
			n.stats.Generations = gen + 1
			n.stats.Reason = reason
			n.metrics.ObserveRunFinished(reason)
			break
		}

		offspring := n.reproduce(population)

		combined := make([]*NSGAIISolution, 0, len(population)+len(offspring))
		combined = append(combined, population...)
		combined = append(combined, offspring...)

		population = EnvironmentalSelection(sortPopulation(combined), n.popSize)
		if len(population) != n.popSize {
			panic(fmt.Sprintf("nsga: selected %d members for a population of %d", len(population), n.popSize))
		}
	}

	n.stats.SolutionsCreated = uint64(n.lastID)
	n.stats.Elapsed = time.Since(startTime)
	n.logger.V(2).Info("Evolution complete",
		"generations", n.stats.Generations,
		"reason", n.stats.Reason,
		"archived", n.archive.Len(),
		"solutionsCreated", n.stats.SolutionsCreated,
		"elapsed", n.stats.Elapsed)

	entries := n.archive.Entries()
	n.archive = NewArchive()
	return entries
}

// initialize creates the first population from random solutions.
func (n *NSGAII) initialize() []*NSGAIISolution {
	population := make([]*NSGAIISolution, n.popSize)
	for i := range population {
		id := n.nextID()
		sol := n.meta.RandomSolution(id)
		if sol == nil {
			panic(fmt.Sprintf("nsga: meta returned a nil random solution for ID %d", id))
		}
		sol.SetID(id)
		population[i] = n.evaluate(sol)
	}
	return population
}

// canTerminate checks the stop conditions in order and short-circuits on the
// first member that satisfies one.
func (n *NSGAII) canTerminate(eval framework.Evaluator, gen int, population []*NSGAIISolution) (string, bool) {
	for _, p := range population {
		if n.goodEnough(p.Value) {
			n.logger.V(2).Info("Found a good enough solution", "generation", gen, "objectives", p.Value)
			return metrics.ReasonGoodEnough, true
		}
	}

	if eval == nil {
		return "", false
	}
	for _, p := range population {
		if eval.CanTerminate(gen, p.Value) {
			n.logger.V(2).Info("Evaluator allowed termination", "generation", gen)
			return metrics.ReasonEvaluator, true
		}
	}
	return "", false
}

func (n *NSGAII) goodEnough(values framework.ObjectiveSpacePoint) bool {
	for i, obj := range n.objectives {
		if !obj.GoodEnough(values[i]) {
			return false
		}
	}
	return true
}

// reproduce generates exactly popSize offspring. Children come in pairs; when
// the population size is odd the second child of the last pair is dropped
// before it gets an identifier.
func (n *NSGAII) reproduce(population []*NSGAIISolution) []*NSGAIISolution {
	offspring := make([]*NSGAIISolution, 0, n.popSize)

	for len(offspring) < n.popSize {
		child1 := TournamentSelect(n.rng, population).Solution.Clone()
		child2 := TournamentSelect(n.rng, population).Solution.Clone()

		crossed := framework.Chance(n.rng, n.crossover)
		if crossed {
			child1.Crossover(child2)
		}
		mutated1 := framework.Chance(n.rng, n.mutation)
		if mutated1 {
			child1.Mutate()
		}
		mutated2 := framework.Chance(n.rng, n.mutation)
		if mutated2 {
			child2.Mutate()
		}

		offspring = append(offspring, n.adopt(child1))
		if len(offspring) < n.popSize {
			offspring = append(offspring, n.adopt(child2))
		}

		if loggerV := n.logger.V(5); loggerV.Enabled() {
			loggerV.Info("Created offspring pair",
				"child1", child1.ID(),
				"child2", child2.ID(),
				"crossover", crossed,
				"mutated1", mutated1,
				"mutated2", mutated2)
		}
	}

	return offspring
}

// adopt gives a fresh identifier to a new child and evaluates it.
func (n *NSGAII) adopt(sol framework.Solution) *NSGAIISolution {
	sol.SetID(n.nextID())
	return n.evaluate(sol)
}

func (n *NSGAII) evaluate(sol framework.Solution) *NSGAIISolution {
	n.metrics.ObserveEvaluation()
	return NewNSGAIISolution(sol, framework.Evaluate(sol, n.objectives, n.constraints))
}

func (n *NSGAII) nextID() framework.SolutionID {
	n.lastID++
	n.metrics.ObserveSolutionCreated()
	return n.lastID
}

func (n *NSGAII) observeGeneration(gen int, population []*NSGAIISolution) {
	sizes := frontSizes(population)
	n.metrics.ObserveGeneration(sizes, n.archive.Len())

	if gen%10 == 0 || gen < 5 {
		n.logger.V(4).Info("Generation",
			"generation", gen,
			"fronts", len(sizes),
			"frontSizes", sizes,
			"archived", n.archive.Len())
	}
}

// frontSizes counts population members per rank.
func frontSizes(population []*NSGAIISolution) []int {
	var sizes []int
	for _, p := range population {
		for len(sizes) <= p.Rank {
			sizes = append(sizes, 0)
		}
		sizes[p.Rank]++
	}
	return sizes
}
