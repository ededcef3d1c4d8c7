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

package constraints

import (
	"math"

	"sigs.k8s.io/nsga/pkg/framework"
)

// Infeasible is the score given to solutions that break a hard constraint.
const Infeasible = math.MaxFloat64

// Feasible creates a hard constraint: solutions for which pred is false score
// Infeasible, the others keep their score.
func Feasible(pred func(framework.Solution) bool) framework.Constraint {
	return framework.ConstraintFunc(func(sol framework.Solution, current float64) float64 {
		if !pred(sol) {
			return Infeasible
		}
		return current
	})
}

// Penalty creates a soft constraint adding amount(sol) to the score.
func Penalty(amount func(framework.Solution) float64) framework.Constraint {
	return framework.ConstraintFunc(func(sol framework.Solution, current float64) float64 {
		return current + amount(sol)
	})
}

// Capacity creates a constraint function that checks the total weight of the
// selected items of a binary solution stays within limit.
func Capacity(weights []float64, limit float64) framework.Constraint {
	return Feasible(func(sol framework.Solution) bool {
		binSol, ok := sol.(*framework.BinarySolution)
		if !ok {
			return false
		}

		used := 0.0
		for _, i := range binSol.Selected() {
			if i >= len(weights) {
				return false // No weight for this item
			}
			used += weights[i]
		}
		return used <= limit
	})
}

// InBounds creates a constraint function that checks every variable of a real
// solution lies within its bounds.
func InBounds() framework.Constraint {
	return Feasible(func(sol framework.Solution) bool {
		realSol, ok := sol.(*framework.RealSolution)
		if !ok {
			return false
		}

		for i, v := range realSol.Variables {
			if v < realSol.Bounds[i].L || v > realSol.Bounds[i].H {
				return false
			}
		}
		return true
	})
}

// Combine folds multiple constraints into one, in order.
func Combine(constraints ...framework.Constraint) framework.Constraint {
	return framework.ConstraintFunc(func(sol framework.Solution, current float64) float64 {
		for _, constraint := range constraints {
			current = constraint.Value(sol, current)
		}
		return current
	})
}
