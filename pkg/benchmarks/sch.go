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

// NewSCH creates Schaffer's function N.1: f1(x) = x^2 and f2(x) = (x-2)^2 over
// a single variable drawn from [-55, 56]. Every x in [0, 2] is Pareto optimal.
func NewSCH(params Params) *RealProblem {
	return &RealProblem{
		Params: params,
		name:   "SCH",
		bounds: []framework.Bounds{{L: -55, H: 56}},
		objectives: objectives(
			func(sol framework.Solution) float64 {
				x := vars(sol)[0]
				return x * x
			},
			func(sol framework.Solution) float64 {
				x := vars(sol)[0] - 2
				return x * x
			},
		),
		front: func(numPoints int) []framework.ObjectiveSpacePoint {
			points := make([]framework.ObjectiveSpacePoint, numPoints)
			for i := range points {
				x := 2 * float64(i) / float64(numPoints-1)
				points[i] = framework.ObjectiveSpacePoint{x * x, math.Pow(x-2, 2)}
			}
			return points
		},
	}
}
