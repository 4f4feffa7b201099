/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command isoload loads ISO currency and country reference data into a
// backing and prints the attribute fragment of every record it writes.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/suparena/secschema"
	"github.com/suparena/secschema/config"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	configPath  = flag.String("config", "", "Path to YAML configuration file")
	dataPath    = flag.String("data", "", "Path to ISO reference data file")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := secschema.GetVersionInfo()
		fmt.Printf("secschema isoload version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if *dataPath == "" {
		fmt.Fprintln(os.Stderr, "isoload: -data is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "isoload: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	logger, err := cfg.Logging.Build()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	data, err := readRefData(*dataPath)
	if err != nil {
		return err
	}

	backing, err := secschema.Open(ctx, cfg, secschema.WithLogger(logger))
	if err != nil {
		return err
	}
	defer backing.Close()

	l := newLoader(backing, os.Stdout, logger)
	if err := l.load(ctx, data); err != nil {
		return err
	}

	logger.Info("reference data loaded",
		zap.String("backing", cfg.Backing),
		zap.Int("currencies", len(data.Currencies)),
		zap.Int("countries", len(data.Countries)),
		zap.Int("created", l.stats.Created),
		zap.Int("updated", l.stats.Updated))
	return nil
}
