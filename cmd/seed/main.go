package main

import (
	"context"
	"log"

	"github.com/sirupsen/logrus"

	"convoy_tracker/internal/config"
	"convoy_tracker/internal/logger"
	"convoy_tracker/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger.Setup(cfg.Log)

	db, err := config.InitDB(cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("database unavailable")
	}

	if err := seed.New(db).Run(context.Background()); err != nil {
		logrus.WithError(err).Fatal("seeding failed")
	}
	logrus.Info("seed complete")
}
