package main

import (
	"context"
	"fmt"

	"github.com/glowclean/quote-api/internal/adapter"
	"github.com/glowclean/quote-api/internal/config"
	"github.com/glowclean/quote-api/internal/crypto"
	myHTTP "github.com/glowclean/quote-api/internal/handler/http"
	"github.com/glowclean/quote-api/internal/logger"
	"github.com/glowclean/quote-api/internal/sanitize"
	"github.com/glowclean/quote-api/internal/server"
	"github.com/glowclean/quote-api/internal/service"
	"github.com/glowclean/quote-api/internal/store"
	"github.com/glowclean/quote-api/internal/validators"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("quote-api-server")

	// a missing .env file is fine, real deployments configure the
	// environment directly
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	cfg.App.Version = buildVersion

	secretKey, err := cfg.App.DecodeSecretKey()
	if err != nil {
		log.Fatal().Err(err).Msg("error decoding field encryption key")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	verifier, err := adapter.NewFirebaseVerifier(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token verifier")
	}

	fieldCipher, err := crypto.NewFieldCipher(secretKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating field cipher")
	}

	quoteRequestValidator, err := validators.NewQuoteRequestValidator()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating quote request validator")
	}

	services := service.NewServices(service.Deps{
		Storages:  storages,
		Verifier:  verifier,
		Cipher:    fieldCipher,
		Sanitizer: sanitize.NewSanitizer(),
		Validator: quoteRequestValidator,
	}, log)

	handler := myHTTP.NewHandler(services, cfg.App, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
