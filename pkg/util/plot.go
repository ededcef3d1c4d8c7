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

package util

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"sigs.k8s.io/nsga/pkg/framework"
)

// frontSamples is the number of true front points drawn on a plot.
const frontSamples = 500

// Plottable is a problem whose results can be plotted.
type Plottable interface {
	Name() string
	TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint
}

// PlotResults creates a scatter plot comparing the true Pareto front of the
// given problem with the archived solutions found by the algorithm, and writes
// it as an HTML page. The page goes to outputPath when given, otherwise to
// <problem>_<algorithm>_results.html in the working directory.
func PlotResults(results []framework.ObjectiveSpacePoint, problem Plottable, algorithmName string, outputPath ...string) error {
	if err := checkResults(results, problem); err != nil {
		return err
	}

	filename := fmt.Sprintf("%s_%s_results.html", problem.Name(), algorithmName)
	if len(outputPath) > 0 && outputPath[0] != "" {
		filename = outputPath[0]
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return RenderResults(f, results, problem, algorithmName)
}

// RenderResults writes the scatter plot of PlotResults to w.
func RenderResults(w io.Writer, results []framework.ObjectiveSpacePoint, problem Plottable, algorithmName string) error {
	if err := checkResults(results, problem); err != nil {
		return err
	}

	// Create scatter chart
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s Results for %s Benchmark", algorithmName, problem.Name()),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "f1(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "f2(x)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	// Problems without a known front only show the results.
	if trueParetoFront := problem.TrueParetoFront(frontSamples); len(trueParetoFront) > 0 {
		trueX := make([]opts.ScatterData, len(trueParetoFront))
		for i, p := range trueParetoFront {
			trueX[i] = opts.ScatterData{
				Value:      []float64{p[0], p[1]},
				Symbol:     "circle",
				SymbolSize: 3,
			}
		}
		scatter.AddSeries("True Pareto Front", trueX)
	}

	foundX := make([]opts.ScatterData, len(results))
	for i, res := range results {
		foundX[i] = opts.ScatterData{
			Value:      []float64{res[0], res[1]},
			Symbol:     "triangle",
			SymbolSize: 8,
		}
	}

	// Add data series
	scatter.AddSeries(fmt.Sprintf("%s Solutions", algorithmName), foundX).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
			charts.WithEmphasisOpts(opts.Emphasis{}),
		)

	return scatter.Render(w)
}

func checkResults(results []framework.ObjectiveSpacePoint, problem Plottable) error {
	if len(results) == 0 {
		return fmt.Errorf("results are empty for %s benchmark", problem.Name())
	}

	if len(results[0]) != 2 {
		return fmt.Errorf("can only plot 2D for %s benchmark, got %d objectives", problem.Name(), len(results[0]))
	}
	return nil
}
