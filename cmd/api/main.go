package main

import (
	"asset-catalog-api/internal/config"
	"asset-catalog-api/internal/handler"
	"asset-catalog-api/internal/seed"
	"asset-catalog-api/internal/service"
	"asset-catalog-api/internal/store"

	_ "asset-catalog-api/docs"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title           Asset Catalog API
// @version         1.0
// @description     Upload, list and delete company asset records.
// @BasePath        /
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", config.LogLevel).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)
	gin.SetMode(config.GinMode)

	// Initialize layers
	assetStore := store.NewStore()
	if config.SeedFile != "" {
		assets, err := seed.Load(config.SeedFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", config.SeedFile).Msg("cannot load seed data")
		}
		assetStore.Seed(assets)
		log.Info().Int("assets", len(assets)).Str("file", config.SeedFile).Msg("seeded store")
	}

	assetService := service.NewAssetService(assetStore)
	uploadService := service.NewUploadService(assetStore)

	r := handler.NewRouter(
		handler.NewAssetsHandler(assetService),
		handler.NewUploadHandler(uploadService, config.MaxUploadBytes),
		handler.NewDeleteHandler(assetService),
		handler.NewCompaniesHandler(assetService),
	)

	log.Info().Str("address", config.ServerAddress).Msg("starting server")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
