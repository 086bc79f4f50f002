package main

import (
	"context"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"vidstore/internal/app"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.WithField("error", err).Debug("no .env file found, using process environment")
	}

	application, err := app.New()
	if err != nil {
		log.WithField("error", err).Fatal("failed to initialize application")
	}

	if err := application.Run(context.Background()); err != nil {
		log.WithField("error", err).Fatal("application terminated with error")
	}
}
