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

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object

// OptimizerConfiguration holds the meta-parameters of an optimization run
// read from a configuration file.
type OptimizerConfiguration struct {
	metav1.TypeMeta `json:",inline"`

	// PopulationSize is the number of solutions kept between generations
	PopulationSize int `json:"populationSize,omitempty"`

	// CrossoverOdds is the chance for a pair of parents to be recombined
	CrossoverOdds *Ratio `json:"crossoverOdds,omitempty"`

	// MutationOdds is the chance for a child to be mutated
	MutationOdds *Ratio `json:"mutationOdds,omitempty"`

	// Seed makes a run reproducible. A random seed is used when unset.
	Seed *uint64 `json:"seed,omitempty"`

	// Termination decides when a run stops
	Termination Termination `json:"termination,omitempty"`

	// Samples is the number of results reported for a run
	Samples int `json:"samples,omitempty"`

	// WarmStart, when set, seeds the initial population with weighted-sum
	// solutions instead of purely random ones.
	WarmStart *WarmStart `json:"warmStart,omitempty"`
}

// WarmStart configures the weighted-sum seeding of the initial population.
type WarmStart struct {
	// SamplesPerVector is the number of random solutions drawn for every
	// weight vector; the best one becomes a seed.
	SamplesPerVector int `json:"samplesPerVector,omitempty"`
}

// Ratio is an exact probability.
type Ratio struct {
	Numerator   uint32 `json:"numerator"`
	Denominator uint32 `json:"denominator"`
}

// Termination holds the stopping conditions of a run. A run stops on the first
// condition met.
type Termination struct {
	// StallGenerations is the number of generations without improvement after
	// which a run stops. 0 disables the check. It defaults to
	// DefaultStallGenerations only when MaxGenerations is not set either.
	StallGenerations *int `json:"stallGenerations,omitempty"`

	// MaxGenerations caps the number of generations
	MaxGenerations *int `json:"maxGenerations,omitempty"`
}
