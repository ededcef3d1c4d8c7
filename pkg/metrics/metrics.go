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

// Package metrics exposes Prometheus collectors describing optimizer runs.
// A nil *Collector is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "nsga"

// Reasons a run can stop for.
const (
	ReasonGoodEnough = "good_enough"
	ReasonEvaluator  = "evaluator"
)

type Collector struct {
	Generations      prometheus.Counter
	Evaluations      prometheus.Counter
	SolutionsCreated prometheus.Counter
	Runs             *prometheus.CounterVec
	ArchiveSize      prometheus.Gauge
	FrontSize        *prometheus.GaugeVec
	Fronts           prometheus.Gauge
}

// NewCollector creates the optimizer collectors and registers them with reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		Generations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Number of generations evaluated.",
		}),
		Evaluations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "objective_evaluations_total",
			Help:      "Number of objective vectors computed.",
		}),
		SolutionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solutions_created_total",
			Help:      "Number of solution identifiers allocated.",
		}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Number of finished runs by termination reason.",
		}, []string{"reason"}),
		ArchiveSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "archive_size",
			Help:      "Number of solutions in the best-solutions archive.",
		}),
		FrontSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "front_size",
			Help:      "Number of population members in a front after the last sort.",
		}, []string{"front"}),
		Fronts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fronts",
			Help:      "Number of non-empty fronts after the last sort.",
		}),
	}

	for _, col := range []prometheus.Collector{
		c.Generations, c.Evaluations, c.SolutionsCreated, c.Runs, c.ArchiveSize, c.FrontSize, c.Fronts,
	} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ObserveGeneration records the state of the population at the start of a
// generation.
func (c *Collector) ObserveGeneration(frontSizes []int, archiveSize int) {
	if c == nil {
		return
	}
	c.Generations.Inc()
	c.Fronts.Set(float64(len(frontSizes)))
	if len(frontSizes) > 0 {
		c.FrontSize.WithLabelValues("0").Set(float64(frontSizes[0]))
	}
	c.ArchiveSize.Set(float64(archiveSize))
}

func (c *Collector) ObserveEvaluation() {
	if c == nil {
		return
	}
	c.Evaluations.Inc()
}

func (c *Collector) ObserveSolutionCreated() {
	if c == nil {
		return
	}
	c.SolutionsCreated.Inc()
}

func (c *Collector) ObserveRunFinished(reason string) {
	if c == nil {
		return
	}
	c.Runs.WithLabelValues(reason).Inc()
}
