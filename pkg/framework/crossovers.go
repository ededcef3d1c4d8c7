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

package framework

import (
	"slices"

	"golang.org/x/exp/rand"
)

// CrossoverFunc recombines two chromosomes in place by exchanging genes.
// Chromosomes of different lengths only exchange within the shorter length.
type CrossoverFunc[T any] func(rng *rand.Rand, a, b []T)

// HalfSwap exchanges the back halves of both chromosomes.
func HalfSwap[T any](_ *rand.Rand, a, b []T) {
	n := min(len(a), len(b))
	swapRange(a, b, n/2, n)
}

// OnePointCrossover exchanges every gene after a random cut point
func OnePointCrossover[T any](rng *rand.Rand, a, b []T) {
	n := min(len(a), len(b))
	if n == 0 {
		return
	}
	swapRange(a, b, rng.Intn(n), n)
}

// TwoPointCrossover exchanges the genes between two random cut points
func TwoPointCrossover[T any](rng *rand.Rand, a, b []T) {
	n := min(len(a), len(b))
	if n == 0 {
		return
	}

	point1 := rng.Intn(n)
	point2 := rng.Intn(n)
	if point1 > point2 {
		point1, point2 = point2, point1
	}
	swapRange(a, b, point1, point2)
}

// UniformCrossover exchanges each gene with probability 1/2
func UniformCrossover[T any](rng *rand.Rand, a, b []T) {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if rng.Float64() < 0.5 {
			a[i], b[i] = b[i], a[i]
		}
	}
}

// KPointCrossover returns a crossover that alternates parents between k random
// cut points.
func KPointCrossover[T any](k int) CrossoverFunc[T] {
	return func(rng *rand.Rand, a, b []T) {
		n := min(len(a), len(b))
		if n < 2 || k <= 0 {
			return
		}
		cuts := min(k, n-1)

		// Generate unique random points
		used := make(map[int]bool, cuts)
		points := make([]int, 0, cuts+1)
		for len(points) < cuts {
			point := 1 + rng.Intn(n-1)
			if !used[point] {
				used[point] = true
				points = append(points, point)
			}
		}
		slices.Sort(points)
		points = append(points, n)

		swap := false
		start := 0
		for _, end := range points {
			if swap {
				swapRange(a, b, start, end)
			}
			swap = !swap
			start = end
		}
	}
}

func swapRange[T any](a, b []T, from, to int) {
	for i := from; i < to; i++ {
		a[i], b[i] = b[i], a[i]
	}
}
