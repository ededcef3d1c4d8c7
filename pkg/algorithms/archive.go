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
	"sigs.k8s.io/nsga/pkg/framework"
)

// ArchiveEntry is a solution together with its objective vector.
type ArchiveEntry struct {
	Point    framework.ObjectiveSpacePoint
	Solution framework.Solution
}

// Archive accumulates the best solutions seen over a whole run. It never holds
// two entries where one dominates the other, nor two entries with the same
// objective vector.
type Archive struct {
	entries []ArchiveEntry
	ids     map[framework.SolutionID]struct{}
}

func NewArchive() *Archive {
	return &Archive{
		ids: make(map[framework.SolutionID]struct{}),
	}
}

// Add offers a solution to the archive. It is rejected when the same solution
// is already archived, or when an archived entry dominates or equals its
// point. Otherwise every archived entry it dominates is dropped and the
// solution is appended. Add reports whether the solution was archived.
func (a *Archive) Add(sol framework.Solution, point framework.ObjectiveSpacePoint) bool {
	if _, ok := a.ids[sol.ID()]; ok {
		return false
	}
	for _, e := range a.entries {
		if framework.Dominates(e.Point, point) || e.Point.Equal(point) {
			return false
		}
	}

	kept := a.entries[:0]
	for _, e := range a.entries {
		if framework.Dominates(point, e.Point) {
			delete(a.ids, e.Solution.ID())
			continue
		}
		kept = append(kept, e)
	}
	// Clear the tail so dropped solutions can be collected.
	clear(a.entries[len(kept):])

	a.entries = append(kept, ArchiveEntry{Point: point, Solution: sol})
	a.ids[sol.ID()] = struct{}{}
	return true
}

// Len returns the number of archived solutions.
func (a *Archive) Len() int {
	return len(a.entries)
}

// Entries returns the archived solutions in insertion order.
func (a *Archive) Entries() []ArchiveEntry {
	return a.entries
}

// Points returns the archived objective vectors in insertion order.
func (a *Archive) Points() []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, len(a.entries))
	for i, e := range a.entries {
		points[i] = e.Point
	}
	return points
}
