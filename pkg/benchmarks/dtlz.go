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

// dtlz builds a DTLZ problem with one objective function per index.
func dtlz(name string, numVars, numObjectives int, params Params, objective func(x []float64, objIdx int) float64,
	front func(numPoints int) []framework.ObjectiveSpacePoint) *RealProblem {
	funcs := make([]framework.ObjectiveFunc, numObjectives)
	for i := range funcs {
		funcs[i] = func(sol framework.Solution) float64 {
			return objective(vars(sol), i)
		}
	}

	return &RealProblem{
		Params:     params,
		name:       name,
		bounds:     unitBounds(numVars),
		geneOdds:   framework.Ratio{Numerator: 1, Denominator: uint32(numVars)},
		objectives: objectives(funcs...),
		front:      front,
	}
}

// NewDTLZ1 is scalable to any number of objectives.
// It has a linear Pareto front and many local fronts.
// Recommended: numVars = numObjectives + k - 1, where k = 5.
func NewDTLZ1(numVars, numObjectives int, params Params) *RealProblem {
	g := func(x []float64) float64 {
		k := numVars - numObjectives + 1
		sum := 0.0
		for i := numObjectives - 1; i < numVars; i++ {
			sum += math.Pow(x[i]-0.5, 2) - math.Cos(20*math.Pi*(x[i]-0.5))
		}
		return 100 * (float64(k) + sum)
	}

	objective := func(x []float64, objIdx int) float64 {
		f := 0.5 * (1 + g(x))
		for i := 0; i < numObjectives-objIdx-1; i++ {
			f *= x[i]
		}
		if objIdx > 0 {
			f *= (1 - x[numObjectives-objIdx-1])
		}
		return f
	}

	var front func(int) []framework.ObjectiveSpacePoint
	// For 2 objectives the front is the line from (0, 0.5) to (0.5, 0).
	if numObjectives == 2 {
		front = func(numPoints int) []framework.ObjectiveSpacePoint {
			points := make([]framework.ObjectiveSpacePoint, numPoints)
			for i := 0; i < numPoints; i++ {
				t := float64(i) / float64(numPoints-1)
				points[i] = framework.ObjectiveSpacePoint{0.5 * t, 0.5 * (1 - t)}
			}
			return points
		}
	}

	return dtlz("DTLZ1", numVars, numObjectives, params, objective, front)
}

// NewDTLZ2 has a spherical Pareto front.
// It's easier than DTLZ1 as it has no local fronts.
// Recommended: numVars = numObjectives + k - 1, where k = 10.
func NewDTLZ2(numVars, numObjectives int, params Params) *RealProblem {
	g := func(x []float64) float64 {
		sum := 0.0
		for i := numObjectives - 1; i < numVars; i++ {
			sum += math.Pow(x[i]-0.5, 2)
		}
		return sum
	}

	objective := func(x []float64, objIdx int) float64 {
		f := 1 + g(x)
		for i := 0; i < numObjectives-objIdx-1; i++ {
			f *= math.Cos(x[i] * math.Pi / 2)
		}
		// Last term is sin for all objectives except the first
		if objIdx > 0 {
			f *= math.Sin(x[numObjectives-objIdx-1] * math.Pi / 2)
		}
		return f
	}

	var front func(int) []framework.ObjectiveSpacePoint
	switch numObjectives {
	case 2:
		// A quarter circle
		front = func(numPoints int) []framework.ObjectiveSpacePoint {
			points := make([]framework.ObjectiveSpacePoint, numPoints)
			for i := 0; i < numPoints; i++ {
				theta := (math.Pi / 2) * float64(i) / float64(numPoints-1)
				points[i] = framework.ObjectiveSpacePoint{math.Cos(theta), math.Sin(theta)}
			}
			return points
		}
	case 3:
		// An eighth of the unit sphere
		front = func(numPoints int) []framework.ObjectiveSpacePoint {
			sqrtN := max(2, int(math.Sqrt(float64(numPoints))))
			points := make([]framework.ObjectiveSpacePoint, 0, sqrtN*sqrtN)
			for i := 0; i < sqrtN; i++ {
				theta := (math.Pi / 2) * float64(i) / float64(sqrtN-1)
				for j := 0; j < sqrtN; j++ {
					phi := (math.Pi / 2) * float64(j) / float64(sqrtN-1)
					points = append(points, framework.ObjectiveSpacePoint{
						math.Cos(theta) * math.Cos(phi),
						math.Sin(theta) * math.Cos(phi),
						math.Sin(phi),
					})
				}
			}
			return points
		}
	}

	return dtlz("DTLZ2", numVars, numObjectives, params, objective, front)
}
