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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"sigs.k8s.io/nsga/pkg/framework"
)

// IGD computes the Inverted Generational Distance: the mean Euclidean distance
// from every point of the true front to the closest obtained point. Lower is
// better; 0 means the true front is fully covered. It returns +Inf when
// nothing was obtained and NaN when the true front is empty.
func IGD(obtained, trueFront []framework.ObjectiveSpacePoint) float64 {
	if len(trueFront) == 0 {
		return math.NaN()
	}
	if len(obtained) == 0 {
		return math.Inf(1)
	}

	dists := make([]float64, len(trueFront))
	for i, truePoint := range trueFront {
		minDist := math.Inf(1)
		for _, obtPoint := range obtained {
			minDist = math.Min(minDist, floats.Distance(truePoint, obtPoint, 2))
		}
		dists[i] = minDist
	}
	return stat.Mean(dists, nil)
}

// Hypervolume2D computes the area dominated by the obtained points and bounded
// by the reference point. Points that do not dominate the reference point do
// not contribute.
func Hypervolume2D(obtained []framework.ObjectiveSpacePoint, ref framework.ObjectiveSpacePoint) float64 {
	var f1, f2 []float64
	for _, p := range obtained {
		if p[0] < ref[0] && p[1] < ref[1] {
			f1 = append(f1, p[0])
			f2 = append(f2, p[1])
		}
	}
	if len(f1) == 0 {
		return 0
	}

	// Sweep by increasing f1; every point improving f2 adds a horizontal slab.
	// Argsort sorts f1 in place and records where each value came from.
	inds := make([]int, len(f1))
	floats.Argsort(f1, inds)

	volume := 0.0
	bestF2 := ref[1]
	for i, idx := range inds {
		if y := f2[idx]; y < bestF2 {
			volume += (ref[0] - f1[i]) * (bestF2 - y)
			bestF2 = y
		}
	}
	return volume
}
