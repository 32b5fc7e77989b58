// nexus-hello - environment-aware greeting page
// Copyright (C) 2026  nexus contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	gohttp "github.com/jredh-dev/hello/services/go-http"
	"github.com/jredh-dev/hello/services/hello/config"
	"github.com/jredh-dev/hello/services/hello/internal/web/handlers"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	printConfig := flag.Bool("print-config", false, "Print the resolved page configuration as YAML and exit")
	flag.Parse()

	if *showVersion {
		writeVersion(os.Stdout)
		os.Exit(0)
	}

	// Variables already present in the environment win over .env entries.
	dotenvErr := godotenv.Load()

	srvCfg, err := config.LoadServerFromOS()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := gohttp.NewLogger(os.Stderr, srvCfg.LogLevel, srvCfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	if dotenvErr != nil && !errors.Is(dotenvErr, fs.ErrNotExist) {
		log.WithError(dotenvErr).Warn("could not load .env")
	}

	cfg := config.Load(config.OSProvider(), log)

	if *printConfig {
		if err := writeConfig(os.Stdout, cfg); err != nil {
			log.WithError(err).Fatal("printing config")
		}
		os.Exit(0)
	}

	h, err := handlers.New(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("initializing handlers")
	}

	srv := gohttp.New(log, gohttp.Options{
		ReadTimeout:     srvCfg.ReadTimeout,
		WriteTimeout:    srvCfg.WriteTimeout,
		IdleTimeout:     srvCfg.IdleTimeout,
		RequestTimeout:  srvCfg.RequestTimeout,
		ShutdownTimeout: srvCfg.ShutdownTimeout,
	})
	h.Routes(srv.Router)

	log.WithFields(logrus.Fields{
		"app_name":    cfg.AppName,
		"environment": cfg.Environment,
		"version":     cfg.Version,
		"instance_id": h.InstanceID(),
	}).Info("nexus-hello configured")

	if err := srv.ListenAndServe(srvCfg.Addr()); err != nil {
		log.WithError(err).Fatal("server error")
	}
}

func writeVersion(w io.Writer) {
	fmt.Fprintf(w, "nexus-hello %s\n", version)
	fmt.Fprintf(w, "Commit: %s\n", commit)
	fmt.Fprintf(w, "Built: %s\n", buildDate)
}

func writeConfig(w io.Writer, cfg config.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg.Snapshot()); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}
