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
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/rand"

	"sigs.k8s.io/nsga/pkg/framework"
)

// point is a genome-less solution used to exercise the sort machinery.
type point struct {
	framework.Identity
}

func (p *point) Clone() framework.Solution { c := *p; return &c }
func (p *point) Crossover(framework.Solution) {}
func (p *point) Mutate() {}

func newPopulation(values ...framework.ObjectiveSpacePoint) []*NSGAIISolution {
	pop := make([]*NSGAIISolution, len(values))
	for i, v := range values {
		p := &point{}
		p.SetID(framework.SolutionID(i + 1))
		pop[i] = NewNSGAIISolution(p, v)
	}
	return pop
}

func randomPopulation(rng *rand.Rand, n, objectives int) []*NSGAIISolution {
	values := make([]framework.ObjectiveSpacePoint, n)
	for i := range values {
		values[i] = make(framework.ObjectiveSpacePoint, objectives)
		for m := range values[i] {
			values[i][m] = float64(rng.Intn(10))
		}
	}
	return newPopulation(values...)
}

func frontIDs(fronts [][]*NSGAIISolution) [][]framework.SolutionID {
	res := make([][]framework.SolutionID, len(fronts))
	for i, front := range fronts {
		for _, p := range front {
			res[i] = append(res[i], p.Solution.ID())
		}
		slices.Sort(res[i])
	}
	return res
}

func TestNonDominatedSort(t *testing.T) {
	tests := []struct {
		name   string
		values []framework.ObjectiveSpacePoint
		want   [][]framework.SolutionID
	}{
		{
			name:   "single member",
			values: []framework.ObjectiveSpacePoint{{1, 1}},
			want:   [][]framework.SolutionID{{1}},
		},
		{
			name:   "chain",
			values: []framework.ObjectiveSpacePoint{{3, 3}, {1, 1}, {2, 2}},
			want:   [][]framework.SolutionID{{2}, {3}, {1}},
		},
		{
			name:   "trade-offs share a front",
			values: []framework.ObjectiveSpacePoint{{1, 4}, {2, 3}, {3, 2}, {4, 1}, {4, 4}},
			want:   [][]framework.SolutionID{{1, 2, 3, 4}, {5}},
		},
		{
			name:   "equal vectors stay together",
			values: []framework.ObjectiveSpacePoint{{2, 2}, {2, 2}, {1, 1}},
			want:   [][]framework.SolutionID{{3}, {1, 2}},
		},
		{
			name:   "infinite values rank last",
			values: []framework.ObjectiveSpacePoint{{math.Inf(1), 0}, {1, 0}, {0, 1}},
			want:   [][]framework.SolutionID{{2, 3}, {1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fronts := NonDominatedSort(newPopulation(tt.values...))
			if diff := cmp.Diff(tt.want, frontIDs(fronts)); diff != "" {
				t.Errorf("unexpected fronts (-want +got):\n%s", diff)
			}
			for rank, front := range fronts {
				for _, p := range front {
					if p.Rank != rank {
						t.Errorf("solution %d in front %d has rank %d", p.Solution.ID(), rank, p.Rank)
					}
				}
			}
		})
	}
}

func TestNonDominatedSortProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for trial := 0; trial < 50; trial++ {
		pop := randomPopulation(rng, 40, 3)
		fronts := NonDominatedSort(pop)

		total := 0
		for k, front := range fronts {
			if len(front) == 0 {
				t.Fatalf("trial %d: front %d is empty", trial, k)
			}
			total += len(front)

			for _, p := range front {
				// No member of front k is dominated by front k or later.
				for _, later := range fronts[k:] {
					for _, q := range later {
						if Dominates(q, p) {
							t.Fatalf("trial %d: %v in front %d is dominated by %v of rank %d", trial, p.Value, k, q.Value, q.Rank)
						}
					}
				}
				if k == 0 {
					continue
				}
				// Members of front k are dominated by some member of front k-1.
				if !slices.ContainsFunc(fronts[k-1], func(q *NSGAIISolution) bool { return Dominates(q, p) }) {
					t.Fatalf("trial %d: %v in front %d is not dominated by front %d", trial, p.Value, k, k-1)
				}
			}
		}
		if total != len(pop) {
			t.Fatalf("trial %d: fronts hold %d members, population has %d", trial, total, len(pop))
		}
	}
}

func TestSortIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	pop := randomPopulation(rng, 30, 2)

	first := frontIDs(sortPopulation(pop))
	distances := map[framework.SolutionID]float64{}
	for _, p := range pop {
		distances[p.Solution.ID()] = p.Distance
	}

	second := frontIDs(sortPopulation(pop))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second sort changed the fronts (-first +second):\n%s", diff)
	}
	for _, p := range pop {
		if d := distances[p.Solution.ID()]; d != p.Distance {
			t.Errorf("solution %d: distance changed from %v to %v", p.Solution.ID(), d, p.Distance)
		}
	}
}

func TestNonDominatedSortPanicsOnDuplicateID(t *testing.T) {
	pop := newPopulation(framework.ObjectiveSpacePoint{1}, framework.ObjectiveSpacePoint{2})
	pop[1].Solution.SetID(pop[0].Solution.ID())

	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a duplicate solution ID")
		}
	}()
	NonDominatedSort(pop)
}

func TestCrowdingDistance(t *testing.T) {
	inf := math.Inf(1)

	tests := []struct {
		name   string
		values []framework.ObjectiveSpacePoint
		want   map[framework.SolutionID]float64
	}{
		{
			name:   "single member",
			values: []framework.ObjectiveSpacePoint{{1, 1}},
			want:   map[framework.SolutionID]float64{1: inf},
		},
		{
			name:   "two members are both boundaries",
			values: []framework.ObjectiveSpacePoint{{1, 2}, {2, 1}},
			want:   map[framework.SolutionID]float64{1: inf, 2: inf},
		},
		{
			name:   "interior members",
			values: []framework.ObjectiveSpacePoint{{0, 4}, {1, 3}, {3, 1}, {4, 0}},
			// (3-0)/4 for both objectives on member 2, (4-1)/4 on member 3.
			want: map[framework.SolutionID]float64{1: inf, 2: 1.5, 3: 1.5, 4: inf},
		},
		{
			name:   "identical values",
			values: []framework.ObjectiveSpacePoint{{2, 2}, {2, 2}, {2, 2}, {2, 2}},
			want:   map[framework.SolutionID]float64{1: inf, 2: 0, 3: 0, 4: inf},
		},
		{
			name:   "infinite span",
			values: []framework.ObjectiveSpacePoint{{0}, {1}, {inf}},
			want:   map[framework.SolutionID]float64{1: inf, 2: 0, 3: inf},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			front := newPopulation(tt.values...)
			CrowdingDistance(front)

			got := map[framework.SolutionID]float64{}
			for _, p := range front {
				if math.IsNaN(p.Distance) {
					t.Fatalf("solution %d has a NaN distance", p.Solution.ID())
				}
				got[p.Solution.ID()] = p.Distance
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("unexpected distances (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCrowdingDistanceBoundaries(t *testing.T) {
	rng := rand.New(rand.NewSource(9))

	for trial := 0; trial < 20; trial++ {
		front := make([]*NSGAIISolution, 0, 10)
		for i := 0; i < 10; i++ {
			// Distinct values on a line keep every member in one front.
			x := float64(i) + rng.Float64()*0.5
			p := &point{}
			p.SetID(framework.SolutionID(i + 1))
			front = append(front, NewNSGAIISolution(p, framework.ObjectiveSpacePoint{x, 20 - x}))
		}
		CrowdingDistance(front)

		for _, p := range front {
			boundary := p.Value[0] == minValue(front, 0) || p.Value[0] == maxValue(front, 0)
			switch {
			case boundary && !math.IsInf(p.Distance, 1):
				t.Fatalf("trial %d: boundary %v has distance %v", trial, p.Value, p.Distance)
			case !boundary && (math.IsInf(p.Distance, 1) || p.Distance < 0):
				t.Fatalf("trial %d: interior %v has distance %v", trial, p.Value, p.Distance)
			}
		}
	}
}

func minValue(front []*NSGAIISolution, m int) float64 {
	return slices.MinFunc(front, func(a, b *NSGAIISolution) int { return cmpFloat(a.Value[m], b.Value[m]) }).Value[m]
}

func maxValue(front []*NSGAIISolution, m int) float64 {
	return slices.MaxFunc(front, func(a, b *NSGAIISolution) int { return cmpFloat(a.Value[m], b.Value[m]) }).Value[m]
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func TestTournament(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := &NSGAIISolution{Rank: 0, Distance: 1}
	b := &NSGAIISolution{Rank: 1, Distance: math.Inf(1)}
	c := &NSGAIISolution{Rank: 0, Distance: 2}

	if got := Tournament(rng, a, b); got != a {
		t.Error("expected the lower rank to win")
	}
	if got := Tournament(rng, b, a); got != a {
		t.Error("expected the lower rank to win regardless of order")
	}
	if got := Tournament(rng, a, c); got != c {
		t.Error("expected the larger distance to win within a rank")
	}

	tie1 := &NSGAIISolution{Rank: 2, Distance: 3}
	tie2 := &NSGAIISolution{Rank: 2, Distance: 3}
	wins := map[*NSGAIISolution]int{}
	for i := 0; i < 1000; i++ {
		wins[Tournament(rng, tie1, tie2)]++
	}
	if wins[tie1] < 400 || wins[tie2] < 400 {
		t.Errorf("expected ties to be broken evenly, got %d/%d", wins[tie1], wins[tie2])
	}
}

func TestEnvironmentalSelection(t *testing.T) {
	// Front 0: 1..3, front 1: 4..7, front 2: 8.
	pop := newPopulation(
		framework.ObjectiveSpacePoint{0, 4},
		framework.ObjectiveSpacePoint{2, 2},
		framework.ObjectiveSpacePoint{4, 0},
		framework.ObjectiveSpacePoint{1, 6},
		framework.ObjectiveSpacePoint{2, 5},
		framework.ObjectiveSpacePoint{3, 4.5},
		framework.ObjectiveSpacePoint{6, 1},
		framework.ObjectiveSpacePoint{9, 9},
	)

	tests := []struct {
		name string
		size int
		want []framework.SolutionID
	}{
		{name: "exact front", size: 3, want: []framework.SolutionID{1, 2, 3}},
		{name: "truncates by distance", size: 5, want: []framework.SolutionID{1, 2, 3, 4, 7}},
		{name: "everything", size: 8, want: []framework.SolutionID{1, 2, 3, 4, 5, 6, 7, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selected := EnvironmentalSelection(sortPopulation(pop), tt.size)
			if len(selected) != tt.size {
				t.Fatalf("expected %d members, got %d", tt.size, len(selected))
			}
			var got []framework.SolutionID
			for _, p := range selected {
				got = append(got, p.Solution.ID())
			}
			slices.Sort(got)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("unexpected selection (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFrontSizes(t *testing.T) {
	pop := newPopulation(
		framework.ObjectiveSpacePoint{1, 3},
		framework.ObjectiveSpacePoint{3, 1},
		framework.ObjectiveSpacePoint{2, 4},
		framework.ObjectiveSpacePoint{5, 5},
	)
	sortPopulation(pop)

	if diff := cmp.Diff([]int{2, 1, 1}, frontSizes(pop)); diff != "" {
		t.Errorf("unexpected front sizes (-want +got):\n%s", diff)
	}
}
