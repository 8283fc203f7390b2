package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-entrypoint/internal/config"
	"github.com/MKhiriev/go-entrypoint/internal/logger"
	"github.com/MKhiriev/go-entrypoint/internal/sequencer"
	"github.com/google/uuid"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("entrypoint")
	log.Logger = log.With().Str("run_id", uuid.NewString()).Logger()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	seq := sequencer.New(cfg, log)
	if err := seq.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("startup sequence failed")
	}

	// Run only returns with an error: a successful hand-off replaces
	// this process image.
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
