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

// Package app implements the nsga command line driver.
package app

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"

	"sigs.k8s.io/nsga/pkg/api/v1alpha1"
	"sigs.k8s.io/nsga/pkg/benchmarks"
	"sigs.k8s.io/nsga/pkg/framework"
	"sigs.k8s.io/nsga/pkg/metrics"
)

// NewNSGACommand creates the root command. Results are written to out.
func NewNSGACommand(out io.Writer) *cobra.Command {
	opts := NewOptions()

	cmd := &cobra.Command{
		Use:   "nsga",
		Short: "nsga runs the NSGA-II multi-objective optimizer on example problems",
		Long: `nsga runs the NSGA-II multi-objective optimizer on the built-in example
problems and prints the Pareto-optimal solutions it finds.`,
		SilenceUsage: true,
	}

	fs := cmd.PersistentFlags()
	opts.AddFlags(fs)

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	fs.AddGoFlagSet(klogFlags)

	cmd.AddCommand(
		newRunCommand(out, opts),
		newBenchmarkCommand(out, opts),
		newProblemsCommand(out),
	)
	return cmd
}

func newProblemsCommand(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "problems",
		Short: "List the example problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range benchmarks.Names() {
				if _, err := fmt.Fprintln(out, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// seedOf returns the configured seed, or a time based one.
func seedOf(cfg *v1alpha1.OptimizerConfiguration) uint64 {
	if cfg.Seed != nil {
		return *cfg.Seed
	}
	return uint64(time.Now().UnixNano())
}

func paramsOf(cfg *v1alpha1.OptimizerConfiguration, seed uint64) benchmarks.Params {
	return benchmarks.Params{
		Population: cfg.PopulationSize,
		Crossover:  cfg.CrossoverOdds.Framework(),
		Mutation:   cfg.MutationOdds.Framework(),
		Rand:       rand.New(rand.NewSource(seed)),
	}
}

func stallGenerationsOf(cfg *v1alpha1.OptimizerConfiguration) int {
	return ptr.Deref(cfg.Termination.StallGenerations, 0)
}

func maxGenerationsOf(cfg *v1alpha1.OptimizerConfiguration) int {
	return ptr.Deref(cfg.Termination.MaxGenerations, 0)
}

func newCollector() (*prometheus.Registry, *metrics.Collector, error) {
	reg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	return reg, collector, nil
}

// writeMetrics prints every metric family of reg in the text exposition format.
func writeMetrics(out io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return err
		}
	}
	return nil
}

// pointOf formats an objective vector.
func pointOf(p framework.ObjectiveSpacePoint) []string {
	res := make([]string, len(p))
	for i, v := range p {
		res[i] = fmt.Sprintf("%.4f", v)
	}
	return res
}
