package http

import (
	"github.com/glowclean/quote-api/internal/config"
	"github.com/glowclean/quote-api/internal/logger"
	"github.com/glowclean/quote-api/internal/service"
)

type Handler struct {
	services *service.Services

	allowedOrigin string
	version       string

	logger *logger.Logger
}

func NewHandler(services *service.Services, appConfig config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		allowedOrigin: appConfig.AllowedOrigin,
		version:       appConfig.Version,
		logger:        logger,
	}
}
