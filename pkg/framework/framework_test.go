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

package framework_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/rand"

	"sigs.k8s.io/nsga/pkg/framework"
)

func TestDominates(t *testing.T) {
	tests := []struct {
		name string
		a, b framework.ObjectiveSpacePoint
		want bool
	}{
		{name: "strictly better everywhere", a: framework.ObjectiveSpacePoint{1, 1}, b: framework.ObjectiveSpacePoint{2, 2}, want: true},
		{name: "better in one equal in other", a: framework.ObjectiveSpacePoint{1, 2}, b: framework.ObjectiveSpacePoint{2, 2}, want: true},
		{name: "equal points", a: framework.ObjectiveSpacePoint{2, 2}, b: framework.ObjectiveSpacePoint{2, 2}, want: false},
		{name: "trade-off", a: framework.ObjectiveSpacePoint{1, 3}, b: framework.ObjectiveSpacePoint{2, 2}, want: false},
		{name: "worse", a: framework.ObjectiveSpacePoint{3, 3}, b: framework.ObjectiveSpacePoint{2, 2}, want: false},
		{name: "infinite loses", a: framework.ObjectiveSpacePoint{math.Inf(1)}, b: framework.ObjectiveSpacePoint{math.MaxFloat64}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := framework.Dominates(tt.a, tt.b); got != tt.want {
				t.Errorf("Dominates(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if tt.want && framework.Dominates(tt.b, tt.a) {
				t.Errorf("both %v and %v dominate each other", tt.a, tt.b)
			}
		})
	}
}

func TestDominatesIsAsymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		a := framework.ObjectiveSpacePoint{float64(rng.Intn(4)), float64(rng.Intn(4)), float64(rng.Intn(4))}
		b := framework.ObjectiveSpacePoint{float64(rng.Intn(4)), float64(rng.Intn(4)), float64(rng.Intn(4))}
		if framework.Dominates(a, b) && framework.Dominates(b, a) {
			t.Fatalf("%v and %v dominate each other", a, b)
		}
	}
}

func TestEvaluateFoldsConstraintsInOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sol := framework.NewRealSolution([]float64{3}, []framework.Bounds{{L: 0, H: 10}}, rng)

	square := framework.ObjectiveFunc(func(s framework.Solution) float64 {
		x := s.(*framework.RealSolution).Variables[0]
		return x * x
	})
	broken := framework.ObjectiveFunc(func(framework.Solution) float64 {
		return math.NaN()
	})

	var order []string
	double := framework.ConstraintFunc(func(_ framework.Solution, v float64) float64 {
		order = append(order, "double")
		return v * 2
	})
	addOne := framework.ConstraintFunc(func(_ framework.Solution, v float64) float64 {
		order = append(order, "addOne")
		return v + 1
	})

	got := framework.Evaluate(sol, []framework.Objective{square, broken}, []framework.Constraint{double, addOne})
	want := framework.ObjectiveSpacePoint{19, math.Inf(1)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected objective vector (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"double", "addOne", "double", "addOne"}, order); diff != "" {
		t.Errorf("unexpected constraint order (-want +got):\n%s", diff)
	}
}

func TestTargetGoodEnough(t *testing.T) {
	target := framework.Target{
		Func:      func(framework.Solution) float64 { return 0 },
		Tolerance: 0.5,
	}
	if !target.GoodEnough(0.5) {
		t.Error("expected value at tolerance to be good enough")
	}
	if target.GoodEnough(0.6) {
		t.Error("expected value above tolerance to not be good enough")
	}
	if framework.ObjectiveFunc(target.Func).GoodEnough(0) {
		t.Error("plain objective functions are never good enough")
	}
}

type testMeta struct {
	popSize     int
	crossover   framework.Ratio
	mutation    framework.Ratio
	objectives  []framework.Objective
	constraints []framework.Constraint
}

func (m *testMeta) PopulationSize() int { return m.popSize }
func (m *testMeta) CrossoverOdds() framework.Ratio { return m.crossover }
func (m *testMeta) MutationOdds() framework.Ratio { return m.mutation }
func (m *testMeta) RandomSolution(framework.SolutionID) framework.Solution { return nil }
func (m *testMeta) Objectives() []framework.Objective { return m.objectives }
func (m *testMeta) Constraints() []framework.Constraint { return m.constraints }

func TestValidateMeta(t *testing.T) {
	zero := framework.ObjectiveFunc(func(framework.Solution) float64 { return 0 })

	tests := []struct {
		name       string
		meta       *testMeta
		wantFields []string
	}{
		{
			name: "valid",
			meta: &testMeta{popSize: 20, crossover: framework.Ratio{6, 10}, mutation: framework.Ratio{1, 1}, objectives: []framework.Objective{zero}},
		},
		{
			name:       "zero population",
			meta:       &testMeta{popSize: 0, crossover: framework.Ratio{6, 10}, mutation: framework.Ratio{1, 1}, objectives: []framework.Objective{zero}},
			wantFields: []string{"populationSize"},
		},
		{
			name:       "zero denominators and no objectives",
			meta:       &testMeta{popSize: 4, crossover: framework.Ratio{1, 0}, mutation: framework.Ratio{0, 0}},
			wantFields: []string{"crossoverOdds.denominator", "mutationOdds.denominator", "objectives"},
		},
		{
			name:       "numerator above denominator",
			meta:       &testMeta{popSize: 4, crossover: framework.Ratio{11, 10}, mutation: framework.Ratio{1, 1}, objectives: []framework.Objective{zero}},
			wantFields: []string{"crossoverOdds"},
		},
		{
			name:       "nil entries",
			meta:       &testMeta{popSize: 4, crossover: framework.Ratio{1, 2}, mutation: framework.Ratio{1, 2}, objectives: []framework.Objective{nil}, constraints: []framework.Constraint{nil}},
			wantFields: []string{"objectives[0]", "constraints[0]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := framework.ValidateMeta(tt.meta)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var cfgErr *framework.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigError, got %v", err)
			}
			var fields []string
			for _, e := range cfgErr.Errs {
				fields = append(fields, e.Field)
			}
			if diff := cmp.Diff(tt.wantFields, fields); diff != "" {
				t.Errorf("unexpected invalid fields (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChance(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		if !framework.Chance(rng, framework.Ratio{1, 1}) {
			t.Fatal("1/1 must always succeed")
		}
		if framework.Chance(rng, framework.Ratio{0, 5}) {
			t.Fatal("0/5 must never succeed")
		}
	}

	hits := 0
	for i := 0; i < 10000; i++ {
		if framework.Chance(rng, framework.Ratio{3, 10}) {
			hits++
		}
	}
	if hits < 2700 || hits > 3300 {
		t.Errorf("3/10 produced %d hits out of 10000", hits)
	}
}
