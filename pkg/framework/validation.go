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

	"k8s.io/apimachinery/pkg/util/validation/field"
)

// ConfigError is returned when a Meta cannot drive an optimization.
type ConfigError struct {
	Errs field.ErrorList
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid optimizer configuration: %v", e.Errs.ToAggregate())
}

// ValidateRatio checks that r describes a probability in [0, 1].
func ValidateRatio(r Ratio, path *field.Path) field.ErrorList {
	var errs field.ErrorList
	if r.Denominator == 0 {
		errs = append(errs, field.Invalid(path.Child("denominator"), r.Denominator, "must be greater than zero"))
	} else if r.Numerator > r.Denominator {
		errs = append(errs, field.Invalid(path, r.String(), "numerator must not exceed denominator"))
	}
	return errs
}

// ValidateMeta checks the meta-parameters of a run and returns a *ConfigError
// describing every problem found, or nil.
func ValidateMeta(meta Meta) error {
	if meta == nil {
		return &ConfigError{Errs: field.ErrorList{field.Required(field.NewPath("meta"), "")}}
	}

	var errs field.ErrorList
	if meta.PopulationSize() <= 0 {
		errs = append(errs, field.Invalid(field.NewPath("populationSize"), meta.PopulationSize(), "must be greater than zero"))
	}
	errs = append(errs, ValidateRatio(meta.CrossoverOdds(), field.NewPath("crossoverOdds"))...)
	errs = append(errs, ValidateRatio(meta.MutationOdds(), field.NewPath("mutationOdds"))...)

	objectives := meta.Objectives()
	if len(objectives) == 0 {
		errs = append(errs, field.Required(field.NewPath("objectives"), "at least one objective is needed"))
	}
	for i, obj := range objectives {
		if obj == nil {
			errs = append(errs, field.Required(field.NewPath("objectives").Index(i), ""))
		}
	}
	for i, c := range meta.Constraints() {
		if c == nil {
			errs = append(errs, field.Required(field.NewPath("constraints").Index(i), ""))
		}
	}

	if len(errs) > 0 {
		return &ConfigError{Errs: errs}
	}
	return nil
}
