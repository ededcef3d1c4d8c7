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
	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/utils/ptr"

	"sigs.k8s.io/nsga/pkg/framework"
)

// ValidateOptimizerConfiguration validates a defaulted configuration
func ValidateOptimizerConfiguration(cfg *OptimizerConfiguration) field.ErrorList {
	var errs field.ErrorList

	if cfg.PopulationSize <= 0 {
		errs = append(errs, field.Invalid(field.NewPath("populationSize"), cfg.PopulationSize, "must be greater than zero"))
	}
	if cfg.CrossoverOdds != nil {
		errs = append(errs, framework.ValidateRatio(cfg.CrossoverOdds.Framework(), field.NewPath("crossoverOdds"))...)
	}
	if cfg.MutationOdds != nil {
		errs = append(errs, framework.ValidateRatio(cfg.MutationOdds.Framework(), field.NewPath("mutationOdds"))...)
	}

	termPath := field.NewPath("termination")
	stall := ptr.Deref(cfg.Termination.StallGenerations, 0)
	if stall < 0 {
		errs = append(errs, field.Invalid(termPath.Child("stallGenerations"), stall, "must not be negative"))
	}
	if cfg.Termination.MaxGenerations != nil && *cfg.Termination.MaxGenerations <= 0 {
		errs = append(errs, field.Invalid(termPath.Child("maxGenerations"), *cfg.Termination.MaxGenerations, "must be greater than zero"))
	}
	if stall == 0 && cfg.Termination.MaxGenerations == nil {
		errs = append(errs, field.Required(termPath, "either stallGenerations or maxGenerations must be set"))
	}

	if cfg.Samples < 0 {
		errs = append(errs, field.Invalid(field.NewPath("samples"), cfg.Samples, "must not be negative"))
	}
	if cfg.WarmStart != nil && cfg.WarmStart.SamplesPerVector <= 0 {
		errs = append(errs, field.Invalid(field.NewPath("warmStart", "samplesPerVector"), cfg.WarmStart.SamplesPerVector, "must be greater than zero"))
	}
	return errs
}

// Framework converts r to the optimizer's representation.
func (r *Ratio) Framework() framework.Ratio {
	return framework.Ratio{Numerator: r.Numerator, Denominator: r.Denominator}
}
