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

// Package benchmarks contains example optimization problems, each a ready to
// use framework.Meta, and a suite measuring how close NSGA-II gets to their
// known Pareto fronts.
package benchmarks

import (
	"golang.org/x/exp/rand"

	"sigs.k8s.io/nsga/pkg/framework"
)

// Problem is an example problem the optimizer can run on.
type Problem interface {
	framework.Meta

	Name() string

	// TrueParetoFront samples numPoints points of the optimal front, or
	// returns nil when the front is unknown.
	TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint
}

// Params are the meta-parameters shared by all example problems.
type Params struct {
	Population int
	Crossover  framework.Ratio
	Mutation   framework.Ratio
	Rand       *rand.Rand
}

// DefaultParams returns a population of 20 with crossover odds of 6/10 and
// mutation odds of 1/1.
func DefaultParams(rng *rand.Rand) Params {
	return Params{
		Population: 20,
		Crossover:  framework.Ratio{Numerator: 6, Denominator: 10},
		Mutation:   framework.Ratio{Numerator: 1, Denominator: 1},
		Rand:       rng,
	}
}

func (p Params) PopulationSize() int {
	return p.Population
}

func (p Params) CrossoverOdds() framework.Ratio {
	return p.Crossover
}

func (p Params) MutationOdds() framework.Ratio {
	return p.Mutation
}

// RealProblem is a problem over real-valued variables.
type RealProblem struct {
	Params

	name        string
	bounds      []framework.Bounds
	geneOdds    framework.Ratio
	objectives  []framework.Objective
	constraints []framework.Constraint
	front       func(numPoints int) []framework.ObjectiveSpacePoint
}

func (p *RealProblem) Name() string {
	return p.name
}

func (p *RealProblem) Bounds() []framework.Bounds {
	return p.bounds
}

func (p *RealProblem) RandomSolution(framework.SolutionID) framework.Solution {
	sol := framework.RandomRealSolution(p.bounds, p.Rand)
	sol.GeneOdds = p.geneOdds
	return sol
}

func (p *RealProblem) Objectives() []framework.Objective {
	return p.objectives
}

func (p *RealProblem) Constraints() []framework.Constraint {
	return p.constraints
}

func (p *RealProblem) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	if p.front == nil || numPoints < 2 {
		return nil
	}
	return p.front(numPoints)
}

// unitBounds returns numVars bounds of [0, 1].
func unitBounds(numVars int) []framework.Bounds {
	b := make([]framework.Bounds, numVars)
	for i := range numVars {
		b[i] = framework.Bounds{L: 0.0, H: 1.0}
	}
	return b
}

// vars returns the variables of a real solution.
func vars(sol framework.Solution) []float64 {
	return sol.(*framework.RealSolution).Variables
}

func objectives(funcs ...framework.ObjectiveFunc) []framework.Objective {
	res := make([]framework.Objective, len(funcs))
	for i, f := range funcs {
		res[i] = f
	}
	return res
}
