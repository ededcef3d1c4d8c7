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

package termination

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigs.k8s.io/nsga/pkg/framework"
)

func TestStallEvaluator(t *testing.T) {
	e := NewStallEvaluator(3)
	p := func(v ...float64) framework.ObjectiveSpacePoint { return v }

	// Reference vector.
	require.False(t, e.CanTerminate(0, p(5, 5)))
	// Same generation, no improvement: not counted.
	require.False(t, e.CanTerminate(0, p(6, 6)))

	// Generations 1 and 2 do not improve.
	require.False(t, e.CanTerminate(1, p(5, 6)))
	require.False(t, e.CanTerminate(1, p(5, 6)))
	require.False(t, e.CanTerminate(2, p(4, 7)))

	// Improvement resets the counter.
	require.False(t, e.CanTerminate(3, p(4, 5)))
	assert.Equal(t, p(4, 5), e.Best())

	require.False(t, e.CanTerminate(4, p(4, 5)))
	require.False(t, e.CanTerminate(5, p(4, 5)))
	require.True(t, e.CanTerminate(6, p(4, 5)))
}

func TestStallEvaluatorKeepsACopy(t *testing.T) {
	e := NewStallEvaluator(1)
	values := framework.ObjectiveSpacePoint{1, 1}
	e.CanTerminate(0, values)

	values[0] = 0
	assert.Equal(t, framework.ObjectiveSpacePoint{1, 1}, e.Best())
}

func TestGenerationLimit(t *testing.T) {
	g := GenerationLimit(3)
	assert.False(t, g.CanTerminate(0, nil))
	assert.False(t, g.CanTerminate(1, nil))
	assert.True(t, g.CanTerminate(2, nil))
}

func TestAnyOf(t *testing.T) {
	stall := NewStallEvaluator(100)
	a := AnyOf{GenerationLimit(2), stall}

	assert.False(t, a.CanTerminate(0, framework.ObjectiveSpacePoint{3}))
	assert.True(t, a.CanTerminate(1, framework.ObjectiveSpacePoint{2}))

	// The stall evaluator still saw the improving vector.
	assert.Equal(t, framework.ObjectiveSpacePoint{2}, stall.Best())
}

func TestBuild(t *testing.T) {
	assert.Empty(t, Build(0, 0))
	assert.Len(t, Build(10, 0), 1)

	eval := Build(50, 2)
	require.Len(t, eval, 2)
	assert.False(t, eval.CanTerminate(0, framework.ObjectiveSpacePoint{1}))
	assert.True(t, eval.CanTerminate(1, framework.ObjectiveSpacePoint{1}))
}

func TestUntilDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	eval := AnyOf{Build(0, 0), UntilDone(ctx)}

	assert.False(t, eval.CanTerminate(0, framework.ObjectiveSpacePoint{1}))
	cancel()
	assert.True(t, eval.CanTerminate(1, framework.ObjectiveSpacePoint{1}))
}
