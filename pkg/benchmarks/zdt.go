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

// zdt builds a ZDT problem: f1 = x1 and f2 = g * h(f1, g), with
// g = 1 + 9 * sum(x2..xn) / (n-1). Each variable mutates with odds 1/n.
func zdt(name string, numVars int, params Params, h func(f1, g float64) float64,
	front func(numPoints int) []framework.ObjectiveSpacePoint) *RealProblem {
	return &RealProblem{
		Params:   params,
		name:     name,
		bounds:   unitBounds(numVars),
		geneOdds: framework.Ratio{Numerator: 1, Denominator: uint32(numVars)},
		objectives: objectives(
			func(sol framework.Solution) float64 {
				return vars(sol)[0]
			},
			func(sol framework.Solution) float64 {
				xx := vars(sol)
				g := 1.0
				for i := 1; i < len(xx); i++ {
					g += 9.0 * xx[i] / float64(len(xx)-1)
				}
				return g * h(xx[0], g)
			},
		),
		front: front,
	}
}

// NewZDT1 has a convex Pareto front
func NewZDT1(numVars int, params Params) *RealProblem {
	return zdt("ZDT1", numVars, params,
		func(f1, g float64) float64 {
			return 1.0 - math.Sqrt(f1/g)
		},
		func(numPoints int) []framework.ObjectiveSpacePoint {
			points := make([]framework.ObjectiveSpacePoint, numPoints)
			for i := 0; i < numPoints; i++ {
				x := float64(i) / float64(numPoints-1)
				points[i] = framework.ObjectiveSpacePoint{x, 1.0 - math.Sqrt(x)}
			}
			return points
		})
}

// NewZDT2 has a non-convex Pareto front
func NewZDT2(numVars int, params Params) *RealProblem {
	return zdt("ZDT2", numVars, params,
		func(f1, g float64) float64 {
			// Note: ZDT2 uses (1 - (x1/g)^2) instead of sqrt
			return 1.0 - math.Pow(f1/g, 2)
		},
		func(numPoints int) []framework.ObjectiveSpacePoint {
			points := make([]framework.ObjectiveSpacePoint, numPoints)
			for i := 0; i < numPoints; i++ {
				x := float64(i) / float64(numPoints-1)
				points[i] = framework.ObjectiveSpacePoint{x, 1.0 - x*x}
			}
			return points
		})
}

// zdt3Regions are the x1 ranges forming the disconnected ZDT3 front.
var zdt3Regions = [][2]float64{
	{0.0, 0.0830015349},
	{0.1822287280, 0.2577623634},
	{0.4093136748, 0.4538821041},
	{0.6183967944, 0.6525117038},
	{0.8233317983, 0.8518328654},
}

// NewZDT3 has a disconnected Pareto front
func NewZDT3(numVars int, params Params) *RealProblem {
	h := func(f1, g float64) float64 {
		// ZDT3 has a disconnected front due to the sin term
		return 1.0 - math.Sqrt(f1/g) - (f1/g)*math.Sin(10*math.Pi*f1)
	}

	return zdt("ZDT3", numVars, params, h,
		func(numPoints int) []framework.ObjectiveSpacePoint {
			width := 0.0
			for _, r := range zdt3Regions {
				width += r[1] - r[0]
			}

			// Spread the points over the regions proportionally to their width.
			points := make([]framework.ObjectiveSpacePoint, 0, numPoints)
			for _, r := range zdt3Regions {
				n := max(2, int(float64(numPoints)*(r[1]-r[0])/width))
				for i := 0; i < n; i++ {
					x := r[0] + (r[1]-r[0])*float64(i)/float64(n-1)
					points = append(points, framework.ObjectiveSpacePoint{x, h(x, 1)})
				}
			}
			return points
		})
}
