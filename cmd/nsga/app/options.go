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

package app

import (
	"github.com/spf13/pflag"
	"k8s.io/utils/ptr"

	"sigs.k8s.io/nsga/pkg/api/v1alpha1"
	"sigs.k8s.io/nsga/pkg/framework"
)

// Options holds the command line settings. Flags explicitly set on the
// command line take precedence over the configuration file.
type Options struct {
	ConfigFile       string
	PopulationSize   int
	Seed             uint64
	StallGenerations int
	MaxGenerations   int
	WarmStart        bool

	PlotDir      string
	PrintMetrics bool
}

func NewOptions() *Options {
	return &Options{
		PopulationSize:   v1alpha1.DefaultPopulationSize,
		StallGenerations: v1alpha1.DefaultStallGenerations,
	}
}

// AddFlags adds flags for a specific Options to the specified FlagSet
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigFile, "config", o.ConfigFile, "File with an OptimizerConfiguration.")
	fs.IntVar(&o.PopulationSize, "population-size", o.PopulationSize, "Number of solutions kept between generations.")
	fs.Uint64Var(&o.Seed, "seed", o.Seed, "Seed of the random generator. A random seed is used when unset.")
	fs.IntVar(&o.StallGenerations, "stall-generations", o.StallGenerations, "Stop after this many generations without improvement. 0 disables the check.")
	fs.IntVar(&o.MaxGenerations, "max-generations", o.MaxGenerations, "Stop after this many generations. 0 means no limit.")
	fs.BoolVar(&o.WarmStart, "warm-start", o.WarmStart, "Seed the initial population with weighted-sum solutions.")
	fs.StringVar(&o.PlotDir, "plot", o.PlotDir, "Directory where HTML plots of two-objective results are written.")
	fs.BoolVar(&o.PrintMetrics, "print-metrics", o.PrintMetrics, "Print the run metrics in the Prometheus text format.")
}

// Config builds the effective configuration: the file given with --config, or
// the defaults, overridden by every flag changed on fs.
func (o *Options) Config(fs *pflag.FlagSet) (*v1alpha1.OptimizerConfiguration, error) {
	cfg := v1alpha1.NewDefaultConfiguration()
	if o.ConfigFile != "" {
		var err error
		if cfg, err = v1alpha1.LoadFile(o.ConfigFile); err != nil {
			return nil, err
		}
	}

	if fs.Changed("population-size") {
		cfg.PopulationSize = o.PopulationSize
	}
	if fs.Changed("seed") {
		cfg.Seed = ptr.To(o.Seed)
	}
	if fs.Changed("stall-generations") {
		cfg.Termination.StallGenerations = ptr.To(o.StallGenerations)
	}
	if fs.Changed("max-generations") {
		cfg.Termination.MaxGenerations = nil
		if o.MaxGenerations > 0 {
			cfg.Termination.MaxGenerations = ptr.To(o.MaxGenerations)
		}
	}
	if fs.Changed("warm-start") {
		switch {
		case !o.WarmStart:
			cfg.WarmStart = nil
		case cfg.WarmStart == nil:
			cfg.WarmStart = &v1alpha1.WarmStart{SamplesPerVector: v1alpha1.DefaultSamplesPerVector}
		}
	}
	// Clearing the generation cap may leave a run without a stop condition.
	v1alpha1.SetDefaults_OptimizerConfiguration(cfg)

	if errs := v1alpha1.ValidateOptimizerConfiguration(cfg); len(errs) > 0 {
		return nil, &framework.ConfigError{Errs: errs}
	}
	return cfg, nil
}
