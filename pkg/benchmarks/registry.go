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

package benchmarks

import (
	"fmt"
	"slices"
	"strings"
)

// Factory creates a problem with the given meta-parameters.
type Factory func(Params) Problem

// SubsetSumGoal and SubsetSumItems define the registered subset-sum instance.
var (
	SubsetSumGoal  = 100.0
	SubsetSumItems = []float64{90, 15, 1, 2, 20, 5, 30, 1, 1}
)

var registry = map[string]Factory{
	"sch":       func(p Params) Problem { return NewSCH(p) },
	"binh-korn": func(p Params) Problem { return NewBinhKorn(p) },
	// ZDT problems with 30 variables (standard)
	"zdt1": func(p Params) Problem { return NewZDT1(30, p) },
	"zdt2": func(p Params) Problem { return NewZDT2(30, p) },
	"zdt3": func(p Params) Problem { return NewZDT3(30, p) },
	// 2 objectives, 7 variables (M + k - 1, where k=5 for DTLZ1)
	"dtlz1": func(p Params) Problem { return NewDTLZ1(7, 2, p) },
	// 2 objectives, 12 variables (M + k - 1, where k=10 for DTLZ2)
	"dtlz2":      func(p Params) Problem { return NewDTLZ2(12, 2, p) },
	"dtlz2-3obj": func(p Params) Problem { return NewDTLZ2(13, 3, p) },
	"subset-sum": func(p Params) Problem {
		return NewSubsetSum(SubsetSumGoal, slices.Clone(SubsetSumItems), p)
	},
}

// Names lists the registered problems in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the factory of a registered problem.
func Lookup(name string) (Factory, error) {
	f, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown problem %q, expected one of %s", name, strings.Join(Names(), ", "))
	}
	return f, nil
}
