// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// folder-namer infers a person's "Last, First" name from the files inside
// ID-named folders and renames each folder to "<ID> - <Last>, <First>".
// Preview is the default; nothing is changed without -apply.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"folder-namer/internal/config"
	"folder-namer/internal/core"
	"folder-namer/internal/observability"
	"folder-namer/internal/report"
	"folder-namer/internal/version"
)

func main() {
	var (
		rootFlag    = flag.String("root", ".", "Root directory containing ID-named folders")
		applyFlag   = flag.Bool("apply", false, "Commit renames (default is a dry-run preview)")
		configFlag  = flag.String("config", "", "Path to a YAML config file (default: auto-discover)")
		workersFlag = flag.Int("workers", 0, "Number of parallel workers (overrides config)")
		pagesFlag   = flag.Int("pages", 0, "Leading PDF pages to read per document (overrides config)")
		noColorFlag = flag.Bool("no-color", false, "Disable colored output")
		debugFlag   = flag.Bool("debug", false, "Emit JSON operation logs on stderr")
		versionFlag = flag.Bool("version", false, "Print version information and exit")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Println(version.Info())
		return
	}

	configPath := *configFlag
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if *workersFlag > 0 {
		cfg.Defaults.Workers = *workersFlag
	}
	if *pagesFlag > 0 {
		cfg.Defaults.PageBudget = *pagesFlag
	}
	if *noColorFlag {
		cfg.Defaults.NoColor = true
	}
	if *debugFlag {
		cfg.Defaults.Debug = true
	}

	var observer *observability.StandardObserver
	if cfg.Defaults.Debug {
		observer = observability.NewStandardObserver(observability.ObservabilityDebug, os.Stderr)
	}

	reporter := report.NewReporter(os.Stdout, cfg.Defaults.NoColor)
	engine, err := core.NewEngine(cfg, *applyFlag, reporter, observer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	summary, err := engine.Run(context.Background(), *rootFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if summary.Failed > 0 {
		os.Exit(1)
	}
}
