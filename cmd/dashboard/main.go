// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 North Star House

package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/northstarhouse/strategyhub/internal/client"
	"github.com/northstarhouse/strategyhub/internal/config"
	"github.com/northstarhouse/strategyhub/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	_ = godotenv.Load()

	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Printf("error getting configs: %v\n", err)
		return
	}

	log := logger.NewFileLogger("dashboard", cfg.App.LogPath)

	app, err := client.NewApp(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init dashboard error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("dashboard run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
