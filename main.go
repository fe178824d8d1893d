package main

import (
	"context"
	"os"

	"aliccedress/app"
	"aliccedress/config"
	_ "aliccedress/docs"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// @title aliccedress Storefront API
// @version 1.0
// @description Catalog, cart and profile API of the aliccedress clothing shop
// @host localhost:8082
// @BasePath /
func main() {
	config.SetupLogger(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), nil)
	config.LoadConfig()
	cfg := config.AppConfig
	config.SetupLogger(cfg.LogLevel, cfg.LogFormat, nil)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	if err := os.MkdirAll(cfg.UploadDir, os.ModePerm); err != nil {
		log.Fatal().Err(err).Msg("failed to create upload directory")
	}

	application, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start storefront")
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storage")
		}
	}()

	port := ":" + cfg.Port
	log.Info().
		Str("port", port).
		Str("env", cfg.AppEnv).
		Str("swagger", "http://localhost:"+cfg.Port+"/swagger/index.html").
		Msg("server starting")

	if err := application.Router.Run(port); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}
