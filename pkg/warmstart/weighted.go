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

// Package warmstart generates initial populations that already approximate the
// Pareto front, instead of starting NSGA-II from purely random solutions.
//
// Seeds are built by sweeping weight vectors over the objectives, from the
// first objective alone to the last one alone, and keeping for every weight
// vector the best weighted sum out of a number of random samples.
package warmstart

import (
	"context"
	"fmt"
	"math"

	"k8s.io/klog/v2"

	"sigs.k8s.io/nsga/pkg/framework"
)

// ObjectiveWeights defines the weights for objectives
type ObjectiveWeights []float64

// GenerateWeightVectors creates evenly distributed weight vectors. With two
// objectives this is a linear interpolation from (1, 0) to (0, 1); with more,
// the sweep moves the weight from each objective to the next one in turn.
func GenerateWeightVectors(count int, numObjectives int) []ObjectiveWeights {
	weights := make([]ObjectiveWeights, count)

	for i := 0; i < count; i++ {
		weights[i] = make(ObjectiveWeights, numObjectives)

		if count == 1 || numObjectives == 1 {
			// Single weight - equal distribution
			for j := 0; j < numObjectives; j++ {
				weights[i][j] = 1.0 / float64(numObjectives)
			}
			continue
		}

		pos := float64(i) * float64(numObjectives-1) / float64(count-1)
		k := int(math.Floor(pos))
		if k >= numObjectives-1 {
			weights[i][numObjectives-1] = 1
			continue
		}
		frac := pos - float64(k)
		weights[i][k] = 1 - frac
		weights[i][k+1] = frac
	}

	return weights
}

// Config describes how seeds are generated.
type Config struct {
	Meta framework.Meta

	// Samples is the number of random solutions drawn per weight vector.
	Samples int

	// Baseline, when set, is a known solution placed first among the seeds.
	Baseline framework.Solution
}

// WeightedSeeds creates count seed solutions following cfg.
func WeightedSeeds(ctx context.Context, cfg Config, count int) []framework.Solution {
	logger := klog.FromContext(ctx).WithValues("warmstart", "weighted")

	if count <= 0 {
		return nil
	}
	samples := max(cfg.Samples, 1)

	seeds := make([]framework.Solution, 0, count)
	if cfg.Baseline != nil {
		seeds = append(seeds, cfg.Baseline)
		logger.V(3).Info("Added baseline solution")
	}

	objectives := cfg.Meta.Objectives()
	constraints := cfg.Meta.Constraints()

	for _, w := range GenerateWeightVectors(count-len(seeds), len(objectives)) {
		var best framework.Solution
		bestScore := math.Inf(1)

		for s := 0; s < samples; s++ {
			sol := cfg.Meta.RandomSolution(0)
			score := weightedSum(framework.Evaluate(sol, objectives, constraints), w)
			if best == nil || score < bestScore {
				best, bestScore = sol, score
			}
		}
		seeds = append(seeds, best)
	}

	if loggerV := logger.V(3); loggerV.Enabled() {
		unique := make(map[string]struct{}, len(seeds))
		for _, sol := range seeds {
			unique[fmt.Sprint(sol)] = struct{}{}
		}
		loggerV.Info("Generated seed solutions", "count", len(seeds), "unique", len(unique))
	}

	return seeds
}

// weightedSum computes the weighted score of an objective vector. Objectives
// with a zero weight are skipped so infeasible scores cannot turn into NaN.
func weightedSum(values framework.ObjectiveSpacePoint, weights ObjectiveWeights) float64 {
	score := 0.0
	for i, v := range values {
		if i < len(weights) && weights[i] != 0 {
			score += weights[i] * v
		}
	}
	return score
}

// Seeded wraps a Meta so that the first random solutions handed to the
// optimizer are the given seeds. Once the seeds run out it falls back to the
// wrapped Meta.
type Seeded struct {
	framework.Meta

	seeds []framework.Solution
	next  int
}

func NewSeeded(meta framework.Meta, seeds []framework.Solution) *Seeded {
	return &Seeded{Meta: meta, seeds: seeds}
}

func (s *Seeded) RandomSolution(id framework.SolutionID) framework.Solution {
	if s.next < len(s.seeds) {
		sol := s.seeds[s.next].Clone()
		s.next++
		return sol
	}
	return s.Meta.RandomSolution(id)
}
