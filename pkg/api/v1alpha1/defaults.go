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
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"
)

const (
	DefaultPopulationSize   = 20
	DefaultStallGenerations = 100
	DefaultSamples          = 10
	DefaultSamplesPerVector = 10
)

func addDefaultingFuncs(scheme *runtime.Scheme) error {
	return RegisterDefaults(scheme)
}

func RegisterDefaults(scheme *runtime.Scheme) error {
	klog.V(5).InfoS("Registering defaults", "kind", "OptimizerConfiguration")
	scheme.AddTypeDefaultingFunc(&OptimizerConfiguration{}, func(obj interface{}) {
		SetDefaults_OptimizerConfiguration(obj.(*OptimizerConfiguration))
	})
	return nil
}

func SetDefaults_OptimizerConfiguration(obj runtime.Object) {
	cfg := obj.(*OptimizerConfiguration)

	if cfg.PopulationSize == 0 {
		cfg.PopulationSize = DefaultPopulationSize
	}
	if cfg.CrossoverOdds == nil {
		cfg.CrossoverOdds = &Ratio{Numerator: 6, Denominator: 10}
	}
	if cfg.MutationOdds == nil {
		cfg.MutationOdds = &Ratio{Numerator: 1, Denominator: 1}
	}
	if cfg.Termination.StallGenerations == nil && cfg.Termination.MaxGenerations == nil {
		cfg.Termination.StallGenerations = ptr.To(DefaultStallGenerations)
	}
	if cfg.Samples == 0 {
		cfg.Samples = DefaultSamples
	}
	if cfg.WarmStart != nil && cfg.WarmStart.SamplesPerVector == 0 {
		cfg.WarmStart.SamplesPerVector = DefaultSamplesPerVector
	}
}
