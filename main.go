package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	config "github.com/phillip/medcamp-server-go/config"
	middleware "github.com/phillip/medcamp-server-go/middleware"
	routes "github.com/phillip/medcamp-server-go/routes"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Str("service", "medcamp-server").Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	log.Info().Str("db", cfg.DBName).Msg("mongo connected")

	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := cfg.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("index bootstrap failed")
		}
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, cfg)

	log.Info().Str("port", cfg.Port).Msg("medical camp server is running")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
