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
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

const (
	// sbxDistributionIndex controls how far SBX children spread from their parents.
	sbxDistributionIndex = 2.0
	// polynomialDistributionIndex controls the size of polynomial mutation steps.
	polynomialDistributionIndex = 5.0
)

// Bounds is the closed range [L, H] a real variable may take.
type Bounds struct {
	L float64
	H float64
}

// Sample draws a uniformly distributed value from the bounds.
func (b Bounds) Sample(rng *rand.Rand) float64 {
	return b.L + rng.Float64()*(b.H-b.L)
}

func (b Bounds) clamp(v float64) float64 {
	return math.Max(b.L, math.Min(b.H, v))
}

// RealSolution represents a solution with real-valued variables.
type RealSolution struct {
	Identity

	Variables []float64
	Bounds    []Bounds

	// GeneOdds is the chance for each variable to be perturbed by Mutate.
	// A zero denominator means every variable is perturbed.
	GeneOdds Ratio

	rng *rand.Rand
}

func NewRealSolution(vars []float64, b []Bounds, rng *rand.Rand) *RealSolution {
	return &RealSolution{
		Variables: vars,
		Bounds:    b,
		rng:       rng,
	}
}

// RandomRealSolution samples every variable uniformly within its bounds.
func RandomRealSolution(b []Bounds, rng *rand.Rand) *RealSolution {
	vars := make([]float64, len(b))
	for i := range b {
		vars[i] = b[i].Sample(rng)
	}
	return NewRealSolution(vars, b, rng)
}

func (sol *RealSolution) Clone() Solution {
	c := *sol
	c.Variables = make([]float64, len(sol.Variables))
	copy(c.Variables, sol.Variables)
	return &c
}

// Crossover performs SBX (Simulated Binary Crossover) on every variable.
func (sol *RealSolution) Crossover(other Solution) {
	o := other.(*RealSolution)

	for i := range sol.Variables {
		u := sol.rng.Float64()

		var beta float64
		if u <= 0.5 {
			beta = math.Pow(2*u, 1/(sbxDistributionIndex+1))
		} else {
			beta = math.Pow(2*(1-u), -1/(sbxDistributionIndex+1))
		}

		mid := (sol.Variables[i] + o.Variables[i]) / 2
		half := math.Abs(sol.Variables[i]-o.Variables[i]) / 2

		// Bound checking
		sol.Variables[i] = sol.Bounds[i].clamp(mid + beta*half)
		o.Variables[i] = o.Bounds[i].clamp(mid - beta*half)
	}
}

// Mutate performs polynomial mutation.
func (sol *RealSolution) Mutate() {
	for i := range sol.Variables {
		if sol.GeneOdds.Denominator != 0 && !Chance(sol.rng, sol.GeneOdds) {
			continue
		}

		u := sol.rng.Float64()
		b := sol.Bounds[i]

		if u < 0.5 {
			delta := math.Pow(2*u, 1/(polynomialDistributionIndex+1)) - 1
			sol.Variables[i] += delta * (sol.Variables[i] - b.L)
		} else {
			delta := 1 - math.Pow(2*(1-u), 1/(polynomialDistributionIndex+1))
			sol.Variables[i] += delta * (b.H - sol.Variables[i])
		}

		sol.Variables[i] = b.clamp(sol.Variables[i])
	}
}

func (sol *RealSolution) String() string {
	return fmt.Sprintf("RealSolution{id: %d, vars: %v}", sol.ID(), sol.Variables)
}

// BinarySolution uses a binary encoding scheme, where each bit
// or group of bits can have a meaning in the context of the problem.
type BinarySolution struct {
	Identity

	Bits []bool

	// FlipOdds is the chance for each bit to flip during Mutate.
	FlipOdds Ratio
	// Recombine is the crossover operator; HalfSwap when nil.
	Recombine CrossoverFunc[bool]

	rng *rand.Rand
}

func NewBinarySolution(bits []bool, flipOdds Ratio, rng *rand.Rand) *BinarySolution {
	return &BinarySolution{
		Bits:     bits,
		FlipOdds: flipOdds,
		rng:      rng,
	}
}

func (sol *BinarySolution) Clone() Solution {
	c := *sol
	c.Bits = make([]bool, len(sol.Bits))
	copy(c.Bits, sol.Bits)
	return &c
}

func (sol *BinarySolution) Crossover(other Solution) {
	o := other.(*BinarySolution)

	recombine := sol.Recombine
	if recombine == nil {
		recombine = HalfSwap[bool]
	}
	recombine(sol.rng, sol.Bits, o.Bits)
}

// Mutate implements Solution interface using bit-flip mutation
func (sol *BinarySolution) Mutate() {
	for i := range sol.Bits {
		if Chance(sol.rng, sol.FlipOdds) {
			sol.Bits[i] = !sol.Bits[i]
		}
	}
}

// Selected returns the indices of the set bits.
func (sol *BinarySolution) Selected() []int {
	var res []int
	for i, b := range sol.Bits {
		if b {
			res = append(res, i)
		}
	}
	return res
}

func (sol *BinarySolution) String() string {
	buf := make([]byte, len(sol.Bits))
	for i, b := range sol.Bits {
		buf[i] = '0'
		if b {
			buf[i] = '1'
		}
	}
	return fmt.Sprintf("BinarySolution{id: %d, bits: %s}", sol.ID(), buf)
}

// Chance returns true with the probability described by r.
func Chance(rng *rand.Rand, r Ratio) bool {
	if r.Denominator == 0 {
		return false
	}
	return rng.Uint64n(uint64(r.Denominator)) < uint64(r.Numerator)
}
