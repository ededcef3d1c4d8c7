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
)

// SolutionID identifies a candidate within a single optimization run.
// IDs are allocated by the optimizer from a monotonically increasing counter
// and are never reused.
type SolutionID uint64

// Solution describes the contract a candidate genome needs to implement.
//
// The identity accessors are bookkeeping for the optimizer only; genome types
// usually get them by embedding Identity.
type Solution interface {
	ID() SolutionID
	SetID(SolutionID)

	// Clone returns an independent copy of the genome. The copy keeps the ID
	// of the original until the optimizer assigns a new one.
	Clone() Solution

	// Crossover recombines the receiver with other in place. other is always
	// of the same concrete type as the receiver.
	Crossover(other Solution)

	// Mutate perturbs the receiver in place.
	Mutate()
}

// Identity is an embeddable implementation of the identity half of Solution.
type Identity struct {
	id SolutionID
}

func (i *Identity) ID() SolutionID {
	return i.id
}

func (i *Identity) SetID(id SolutionID) {
	i.id = id
}

// Objective scores a solution. Lower values are better; maximization problems
// should return the negated score.
type Objective interface {
	Value(Solution) float64

	// GoodEnough reports whether a (constraint-folded) score is already
	// acceptable. When every objective is good enough for one candidate the
	// optimization stops early.
	GoodEnough(float64) bool
}

// ObjectiveFunc adapts a plain function to the Objective interface. It is
// never good enough.
type ObjectiveFunc func(Solution) float64

func (f ObjectiveFunc) Value(s Solution) float64 {
	return f(s)
}

func (f ObjectiveFunc) GoodEnough(float64) bool {
	return false
}

// Target is an objective with a known goal: any score at or below Tolerance
// is good enough.
type Target struct {
	Func      ObjectiveFunc
	Tolerance float64
}

func (t Target) Value(s Solution) float64 {
	return t.Func(s)
}

func (t Target) GoodEnough(v float64) bool {
	return v <= t.Tolerance
}

// Constraint alters a computed score. Constraints are folded over an
// objective score in declaration order; returning math.MaxFloat64 is the usual
// way to disqualify an infeasible solution.
type Constraint interface {
	Value(sol Solution, current float64) float64
}

// ConstraintFunc adapts a plain function to the Constraint interface.
type ConstraintFunc func(sol Solution, current float64) float64

func (f ConstraintFunc) Value(sol Solution, current float64) float64 {
	return f(sol, current)
}

// Ratio is an exact probability expressed as Numerator/Denominator.
type Ratio struct {
	Numerator   uint32
	Denominator uint32
}

func (r Ratio) String() string {
	return fmt.Sprintf("%d/%d", r.Numerator, r.Denominator)
}

// Meta describes the meta-parameters of an optimization run.
type Meta interface {
	PopulationSize() int
	CrossoverOdds() Ratio
	MutationOdds() Ratio

	// RandomSolution returns a new random candidate. The optimizer passes
	// the identifier it allocated for it.
	RandomSolution(id SolutionID) Solution

	// Objectives cannot be empty.
	Objectives() []Objective
	Constraints() []Constraint
}

// Evaluator decides whether an optimization can stop. It is called with the
// generation index and the objective vector of each member of the current
// population, and may keep state between calls.
type Evaluator interface {
	CanTerminate(iteration int, values ObjectiveSpacePoint) bool
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(iteration int, values ObjectiveSpacePoint) bool

func (f EvaluatorFunc) CanTerminate(iteration int, values ObjectiveSpacePoint) bool {
	return f(iteration, values)
}

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
type ObjectiveSpacePoint []float64

// Dominates reports whether a dominates b: a is no worse in every objective and
// strictly better in at least one. Equal points do not dominate each other.
func Dominates(a, b ObjectiveSpacePoint) bool {
	better := false
	for i := 0; i < len(a); i++ {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			better = true
		}
	}
	return better
}

// Equal reports whether both points hold the same values.
func (p ObjectiveSpacePoint) Equal(o ObjectiveSpacePoint) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// Score resolves the value of a single objective for sol, folding every
// constraint over it. NaN is mapped to +Inf so that malformed scores always
// rank worst.
func Score(sol Solution, obj Objective, constraints []Constraint) float64 {
	v := obj.Value(sol)
	for _, c := range constraints {
		v = c.Value(sol, v)
	}
	if math.IsNaN(v) {
		return math.Inf(1)
	}
	return v
}

// Evaluate resolves the full objective vector of sol.
func Evaluate(sol Solution, objectives []Objective, constraints []Constraint) ObjectiveSpacePoint {
	res := make(ObjectiveSpacePoint, len(objectives))
	for i, obj := range objectives {
		res[i] = Score(sol, obj, constraints)
	}
	return res
}
