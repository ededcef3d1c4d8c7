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
	"testing"

	"github.com/google/go-cmp/cmp"

	"sigs.k8s.io/nsga/pkg/framework"
)

func TestArchiveAdd(t *testing.T) {
	pop := newPopulation(
		framework.ObjectiveSpacePoint{2, 2}, // 1
		framework.ObjectiveSpacePoint{1, 3}, // 2
		framework.ObjectiveSpacePoint{3, 3}, // 3: dominated by 1
		framework.ObjectiveSpacePoint{2, 2}, // 4: same point as 1
		framework.ObjectiveSpacePoint{1, 1}, // 5: dominates 1 and 2
		framework.ObjectiveSpacePoint{0, 5}, // 6: trade-off with 5
	)

	a := NewArchive()
	steps := []struct {
		sol  *NSGAIISolution
		want bool
		ids  []framework.SolutionID
	}{
		{sol: pop[0], want: true, ids: []framework.SolutionID{1}},
		{sol: pop[1], want: true, ids: []framework.SolutionID{1, 2}},
		{sol: pop[0], want: false, ids: []framework.SolutionID{1, 2}},
		{sol: pop[2], want: false, ids: []framework.SolutionID{1, 2}},
		{sol: pop[3], want: false, ids: []framework.SolutionID{1, 2}},
		{sol: pop[4], want: true, ids: []framework.SolutionID{5}},
		{sol: pop[5], want: true, ids: []framework.SolutionID{5, 6}},
	}

	for i, step := range steps {
		if got := a.Add(step.sol.Solution, step.sol.Value); got != step.want {
			t.Errorf("step %d: Add(%v) = %v, want %v", i, step.sol.Value, got, step.want)
		}

		var ids []framework.SolutionID
		for _, e := range a.Entries() {
			ids = append(ids, e.Solution.ID())
		}
		if diff := cmp.Diff(step.ids, ids); diff != "" {
			t.Errorf("step %d: unexpected archive (-want +got):\n%s", i, diff)
		}
	}

	want := []framework.ObjectiveSpacePoint{{1, 1}, {0, 5}}
	if diff := cmp.Diff(want, a.Points()); diff != "" {
		t.Errorf("unexpected points (-want +got):\n%s", diff)
	}
}

func TestArchiveReadmitsDroppedID(t *testing.T) {
	pop := newPopulation(framework.ObjectiveSpacePoint{2, 2}, framework.ObjectiveSpacePoint{1, 1})

	a := NewArchive()
	a.Add(pop[0].Solution, pop[0].Value)
	a.Add(pop[1].Solution, pop[1].Value)
	if a.Len() != 1 {
		t.Fatalf("expected the dominated entry to be pruned, archive holds %d", a.Len())
	}

	// A dropped ID is forgotten, but its point is still dominated.
	if a.Add(pop[0].Solution, pop[0].Value) {
		t.Error("expected the dominated point to be rejected")
	}
}
