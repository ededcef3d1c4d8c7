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

package main

import (
	"context"
	"os"
	"os/signal"

	"k8s.io/klog/v2"

	"sigs.k8s.io/nsga/cmd/nsga/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	// A second interrupt kills the process.
	context.AfterFunc(ctx, stop)
	ctx = klog.NewContext(ctx, klog.Background())

	cmd := app.NewNSGACommand(os.Stdout)
	err := cmd.ExecuteContext(ctx)

	stop()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
