package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"aliccedress/app"
	"aliccedress/apperror"
	"aliccedress/config"
	"aliccedress/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	application *app.App
	initErr     error
	once        sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		config.SetupLogger(cfg.LogLevel, cfg.LogFormat, nil)

		application, initErr = app.New(context.Background(), cfg)
	})
}

// Handler serves the storefront as a single serverless function.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	if initErr != nil {
		log.Error().Err(initErr).Msg("storefront failed to initialize")
		writeUnavailable(w)
		return
	}
	application.Router.ServeHTTP(w, r)
}

func writeUnavailable(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusServiceUnavailable)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{
		Success: false,
		Message: "service unavailable",
		Error:   string(apperror.CodeDependency),
	})
}
