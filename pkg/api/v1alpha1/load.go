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
	"fmt"
	"os"

	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	"sigs.k8s.io/yaml"

	"sigs.k8s.io/nsga/pkg/framework"
)

const Kind = "OptimizerConfiguration"

var scheme = runtime.NewScheme()

func init() {
	utilruntime.Must(AddToScheme(scheme))
}

// NewDefaultConfiguration returns a defaulted configuration.
func NewDefaultConfiguration() *OptimizerConfiguration {
	cfg := &OptimizerConfiguration{}
	cfg.APIVersion = SchemeGroupVersion.String()
	cfg.Kind = Kind
	scheme.Default(cfg)
	return cfg
}

// LoadFile reads, defaults and validates the configuration stored at path.
func LoadFile(path string) (*OptimizerConfiguration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}
	cfg, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses a YAML or JSON configuration. Unknown fields are rejected.
// Validation errors are returned as a *framework.ConfigError.
func Decode(data []byte) (*OptimizerConfiguration, error) {
	cfg := &OptimizerConfiguration{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	gvk := cfg.GroupVersionKind()
	if gvk.GroupVersion() != SchemeGroupVersion || gvk.Kind != Kind {
		return nil, fmt.Errorf("unexpected configuration type %q, want %s %s", gvk.String(), SchemeGroupVersion.String(), Kind)
	}

	scheme.Default(cfg)
	if errs := ValidateOptimizerConfiguration(cfg); len(errs) > 0 {
		return nil, &framework.ConfigError{Errs: errs}
	}
	return cfg, nil
}
