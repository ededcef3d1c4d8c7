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

package algorithms

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"golang.org/x/exp/rand"

	"sigs.k8s.io/nsga/pkg/framework"
)

// NSGAIISolution wraps a solution in the population
// with Rank and Distance fields. Value stores the value in
// the objective space for the solution (this is used when comparing
// solutions).
//
// Rank and Distance are only meaningful within the sort pass that assigned
// them.
type NSGAIISolution struct {
	Solution framework.Solution
	Value    framework.ObjectiveSpacePoint

	Rank     int
	Distance float64
}

func NewNSGAIISolution(sol framework.Solution, val framework.ObjectiveSpacePoint) *NSGAIISolution {
	return &NSGAIISolution{
		Solution: sol,
		Value:    val,
	}
}

// Dominates checks if individual a dominates individual b
func Dominates(a, b *NSGAIISolution) bool {
	return framework.Dominates(a.Value, b.Value)
}

// NonDominatedSort partitions the population into fronts and sets the Rank of
// every member. Front 0 holds the non-dominated members; front k holds the
// members dominated only by members of earlier fronts. Empty fronts are never
// returned.
//
// Members are tracked by solution ID; duplicate IDs are a programming error
// and cause a panic.
func NonDominatedSort(population []*NSGAIISolution) [][]*NSGAIISolution {
	if len(population) == 0 {
		return nil
	}

	index := make(map[framework.SolutionID]int, len(population))
	for i, p := range population {
		id := p.Solution.ID()
		if j, ok := index[id]; ok {
			panic(fmt.Sprintf("nsga: solution ID %d appears twice in a sort pass (positions %d and %d)", id, j, i))
		}
		index[id] = i
	}

	dominated := make(map[framework.SolutionID][]framework.SolutionID, len(population))
	domCount := make(map[framework.SolutionID]int, len(population))

	// Every unordered pair is compared exactly once.
	for i := 0; i < len(population); i++ {
		iID := population[i].Solution.ID()
		for j := i + 1; j < len(population); j++ {
			jID := population[j].Solution.ID()
			if Dominates(population[i], population[j]) {
				dominated[iID] = append(dominated[iID], jID)
				domCount[jID]++
			} else if Dominates(population[j], population[i]) {
				dominated[jID] = append(dominated[jID], iID)
				domCount[iID]++
			}
		}
	}

	// Find first front
	var currentFront []*NSGAIISolution
	for _, p := range population {
		if domCount[p.Solution.ID()] == 0 {
			p.Rank = 0
			currentFront = append(currentFront, p)
		}
	}

	// Find subsequent fronts
	var fronts [][]*NSGAIISolution
	for rank := 0; len(currentFront) > 0; rank++ {
		fronts = append(fronts, currentFront)

		var nextFront []*NSGAIISolution
		for _, p := range currentFront {
			for _, id := range dominated[p.Solution.ID()] {
				idx, ok := index[id]
				if !ok {
					panic(fmt.Sprintf("nsga: front %d references unknown solution ID %d", rank, id))
				}
				domCount[id]--
				if domCount[id] == 0 {
					population[idx].Rank = rank + 1
					nextFront = append(nextFront, population[idx])
				}
			}
		}
		currentFront = nextFront
	}

	return fronts
}

// CrowdingDistance calculates crowding distance for individuals in a front.
//
// Boundary members of every objective get +Inf. Interior members accumulate
// the normalized gap between their neighbours over all objectives. A
// degenerate objective (max == min) is normalized by 1. Contributions that
// cannot be computed because the front contains infinite values count as 0.
// The front is reordered in place.
func CrowdingDistance(front []*NSGAIISolution) {
	for i := range front {
		front[i].Distance = 0
	}
	if len(front) == 0 {
		return
	}

	numObjectives := len(front[0].Value)
	last := len(front) - 1

	for m := 0; m < numObjectives; m++ {
		// Sort by each objective
		slices.SortStableFunc(front, func(a, b *NSGAIISolution) int {
			return cmp.Compare(a.Value[m], b.Value[m])
		})

		// Set boundary points to infinity
		front[0].Distance = math.Inf(1)
		front[last].Distance = math.Inf(1)

		objectiveRange := front[last].Value[m] - front[0].Value[m]
		if objectiveRange == 0 {
			objectiveRange = 1
		}

		// Calculate distance for intermediate points
		for i := 1; i < last; i++ {
			d := (front[i+1].Value[m] - front[i-1].Value[m]) / objectiveRange
			if math.IsNaN(d) {
				d = 0
			}
			front[i].Distance += d
		}
	}
}

// Tournament returns the preferred of two candidates: the lower rank wins,
// then the larger crowding distance. Exact ties are broken uniformly at random.
func Tournament(rng *rand.Rand, p1, p2 *NSGAIISolution) *NSGAIISolution {
	switch {
	case p1.Rank < p2.Rank:
		return p1
	case p2.Rank < p1.Rank:
		return p2
	case p1.Distance > p2.Distance:
		return p1
	case p2.Distance > p1.Distance:
		return p2
	case rng.Intn(2) == 0:
		return p1
	default:
		return p2
	}
}

// TournamentSelect runs a binary tournament between two members drawn
// uniformly, with replacement, from the population.
func TournamentSelect(rng *rand.Rand, population []*NSGAIISolution) *NSGAIISolution {
	p1 := population[rng.Intn(len(population))]
	p2 := population[rng.Intn(len(population))]
	return Tournament(rng, p1, p2)
}

// EnvironmentalSelection picks exactly size members from sorted fronts whose
// crowding distances are already computed. Fronts are taken whole while they
// fit; the first front that does not fit is truncated to its most spread-out
// members and every later front is discarded.
func EnvironmentalSelection(fronts [][]*NSGAIISolution, size int) []*NSGAIISolution {
	next := make([]*NSGAIISolution, 0, size)

	for _, front := range fronts {
		remaining := size - len(next)
		if remaining == 0 {
			break
		}
		if len(front) <= remaining {
			next = append(next, front...)
			continue
		}

		truncated := slices.Clone(front)
		slices.SortStableFunc(truncated, func(a, b *NSGAIISolution) int {
			return cmp.Compare(b.Distance, a.Distance)
		})
		next = append(next, truncated[:remaining]...)
		break
	}

	return next
}

// sortPopulation runs a full sort pass: fronts, ranks and crowding distances.
func sortPopulation(population []*NSGAIISolution) [][]*NSGAIISolution {
	fronts := NonDominatedSort(population)
	for _, front := range fronts {
		CrowdingDistance(front)
	}
	return fronts
}
