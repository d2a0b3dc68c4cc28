// Package main is the entry point for the translate-service application.
//
// @title           Translate Service API
// @version         1.0.0
// @description     Translates text, documents and text found in images through the Baidu general translation API.
//
//	Long inputs are split into chunks that are translated one after another and joined in order.
//
// @contact.name   API Support
// @contact.url    https://github.com/guttosm/translate-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:3000
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 Admin API key. Required on admin routes if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Admin JWT as "Bearer <token>".
//
// @tag.name        Translation
// @tag.description Text, document and image translation
//
// @tag.name        Config
// @tag.description Provider credentials
//
// @tag.name        Jobs
// @tag.description Job history
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/translate-service/config"
	_ "github.com/guttosm/translate-service/docs" // swagger docs
	"github.com/guttosm/translate-service/internal/app"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal().Err(err).Msg("Failed to read .env")
	}
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server)
	runErr := server.Run()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := application.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to close application")
	}

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("Server error")
	}
}
