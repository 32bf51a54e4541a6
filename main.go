package main

import (
	"context"
	"os"

	"zele-backend/config"
	"zele-backend/controllers"
	"zele-backend/routes"
	"zele-backend/store"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()

	client, err := config.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("Error disconnecting from MongoDB")
		}
	}()
	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	st := store.NewMongoStore(client.Database(cfg.DatabaseName))
	ctrl := controllers.New(st, cfg)
	r := routes.Setup(ctrl, cfg.Env)

	log.Info().Str("port", cfg.Port).Msg("ZÈLE backend starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}
