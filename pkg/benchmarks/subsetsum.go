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
	"math"

	"sigs.k8s.io/nsga/pkg/framework"
)

// DefaultFlipOdds is the per-bit mutation chance of subset-sum solutions.
var DefaultFlipOdds = framework.Ratio{Numerator: 3, Denominator: 10}

// SubsetSum looks for a selection of items whose weights add up to Goal.
// Solutions are bit vectors with one bit per item, starting from the empty
// selection.
type SubsetSum struct {
	Params

	Goal      float64
	Items     []float64
	Tolerance float64

	// CountOnes adds a second objective minimizing the number of selected
	// items.
	CountOnes bool

	FlipOdds  framework.Ratio
	Recombine framework.CrossoverFunc[bool]
}

func NewSubsetSum(goal float64, items []float64, params Params) *SubsetSum {
	return &SubsetSum{
		Params:   params,
		Goal:     goal,
		Items:    items,
		FlipOdds: DefaultFlipOdds,
	}
}

func (p *SubsetSum) Name() string {
	return "SubsetSum"
}

func (p *SubsetSum) RandomSolution(framework.SolutionID) framework.Solution {
	sol := framework.NewBinarySolution(make([]bool, len(p.Items)), p.FlipOdds, p.Rand)
	sol.Recombine = p.Recombine
	return sol
}

func (p *SubsetSum) Objectives() []framework.Objective {
	res := []framework.Objective{
		framework.Target{Func: p.distance, Tolerance: p.Tolerance},
	}
	if p.CountOnes {
		res = append(res, framework.ObjectiveFunc(func(sol framework.Solution) float64 {
			return float64(len(sol.(*framework.BinarySolution).Selected()))
		}))
	}
	return res
}

func (p *SubsetSum) Constraints() []framework.Constraint {
	return nil
}

// distance is how far the selected weights are from the goal.
func (p *SubsetSum) distance(sol framework.Solution) float64 {
	sum := 0.0
	for _, i := range sol.(*framework.BinarySolution).Selected() {
		sum += p.Items[i]
	}
	return math.Abs(p.Goal - sum)
}

func (p *SubsetSum) TrueParetoFront(int) []framework.ObjectiveSpacePoint {
	return nil
}
