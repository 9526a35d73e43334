// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 North Star House

package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/northstarhouse/strategyhub/internal/config"
	"github.com/northstarhouse/strategyhub/internal/logger"
	"github.com/northstarhouse/strategyhub/internal/stub"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	_ = godotenv.Load()

	log := logger.NewLogger("sheetstub")

	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	server, err := stub.NewServer(cfg.Stub, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init sheet stub error")
	}

	if err = server.Run(); err != nil {
		log.Fatal().Err(err).Msg("sheet stub run error")
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
