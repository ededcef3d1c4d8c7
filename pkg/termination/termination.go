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

// Package termination provides evaluators that decide when an optimization
// run may stop.
package termination

import (
	"context"
	"slices"

	"sigs.k8s.io/nsga/pkg/framework"
)

// StallEvaluator stops a run once no improvement has been seen for a number of
// generations.
//
// The first objective vector it is shown becomes the reference. A later vector
// that dominates the reference replaces it and resets the stall counter.
// Otherwise the first call of every new generation counts as a generation
// without improvement. CanTerminate returns true once Window such generations
// have been counted.
type StallEvaluator struct {
	Window int

	best      framework.ObjectiveSpacePoint
	iteration int
	stalled   int
}

func NewStallEvaluator(window int) *StallEvaluator {
	return &StallEvaluator{Window: window}
}

func (e *StallEvaluator) CanTerminate(iteration int, values framework.ObjectiveSpacePoint) bool {
	if e.best == nil {
		e.best = slices.Clone(values)
		e.iteration = iteration
		return false
	}

	if framework.Dominates(values, e.best) {
		e.best = slices.Clone(values)
		e.iteration = iteration
		e.stalled = 0
		return false
	}
	if iteration == e.iteration {
		return false
	}

	e.iteration = iteration
	e.stalled++
	return e.stalled >= e.Window
}

// Best returns the reference vector, or nil before the first call.
func (e *StallEvaluator) Best() framework.ObjectiveSpacePoint {
	return e.best
}

// GenerationLimit stops a run after a fixed number of generations.
type GenerationLimit int

func (g GenerationLimit) CanTerminate(iteration int, _ framework.ObjectiveSpacePoint) bool {
	return iteration+1 >= int(g)
}

// AnyOf stops as soon as one of the evaluators does. Every evaluator sees every
// call until then so stateful evaluators keep an accurate history.
type AnyOf []framework.Evaluator

func (a AnyOf) CanTerminate(iteration int, values framework.ObjectiveSpacePoint) bool {
	done := false
	for _, e := range a {
		if e.CanTerminate(iteration, values) {
			done = true
		}
	}
	return done
}

// Build combines a stall window with a generation cap. Either is skipped when
// not positive; with neither a run only stops on a good enough solution.
func Build(stallGenerations, maxGenerations int) AnyOf {
	var eval AnyOf
	if stallGenerations > 0 {
		eval = append(eval, NewStallEvaluator(stallGenerations))
	}
	if maxGenerations > 0 {
		eval = append(eval, GenerationLimit(maxGenerations))
	}
	return eval
}

// UntilDone stops a run once ctx is done.
func UntilDone(ctx context.Context) framework.Evaluator {
	return framework.EvaluatorFunc(func(int, framework.ObjectiveSpacePoint) bool {
		return ctx.Err() != nil
	})
}
