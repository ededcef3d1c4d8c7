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

	"sigs.k8s.io/nsga/pkg/constraints"
	"sigs.k8s.io/nsga/pkg/framework"
)

// NewBinhKorn creates the Binh and Korn function, a constrained problem over
// x in [0, 5] and y in [0, 3]:
//
//	f1(x, y) = 4x^2 + 4y^2
//	f2(x, y) = (x-5)^2 + (y-5)^2
//
// subject to (x-5)^2 + y^2 <= 25 and (x-8)^2 + (y+3)^2 >= 7.7.
func NewBinhKorn(params Params) *RealProblem {
	return &RealProblem{
		Params: params,
		name:   "BinhKorn",
		bounds: []framework.Bounds{{L: 0, H: 5}, {L: 0, H: 3}},
		objectives: objectives(
			func(sol framework.Solution) float64 {
				v := vars(sol)
				return 4*v[0]*v[0] + 4*v[1]*v[1]
			},
			func(sol framework.Solution) float64 {
				v := vars(sol)
				return math.Pow(v[0]-5, 2) + math.Pow(v[1]-5, 2)
			},
		),
		constraints: []framework.Constraint{
			constraints.Feasible(func(sol framework.Solution) bool {
				v := vars(sol)
				return math.Pow(v[0]-5, 2)+v[1]*v[1] <= 25
			}),
			constraints.Feasible(func(sol framework.Solution) bool {
				v := vars(sol)
				return math.Pow(v[0]-8, 2)+math.Pow(v[1]+3, 2) >= 7.7
			}),
		},
		front: binhKornFront,
	}
}

// binhKornFront samples the optimal front: x = y on [0, 3], then y = 3 with
// x on [3, 5].
func binhKornFront(numPoints int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := range points {
		t := 5 * float64(i) / float64(numPoints-1)
		x, y := t, math.Min(t, 3)
		points[i] = framework.ObjectiveSpacePoint{
			4*x*x + 4*y*y,
			math.Pow(x-5, 2) + math.Pow(y-5, 2),
		}
	}
	return points
}
