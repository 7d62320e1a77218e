package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"school_register/internal/app"
	"school_register/internal/infra/config"
	"school_register/internal/infra/console"
	"school_register/internal/infra/logger"
	"school_register/internal/infra/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Could not load application configuration")
	}

	log := logger.New(cfg)
	log.WithFields(logrus.Fields{
		"data_file":   cfg.DataFile,
		"environment": cfg.Environment,
	}).Info("School register starting")

	store := storage.NewFileStore(cfg.DataFile, log.WithField("component", "store"))
	repo := storage.NewMemoryRepository()
	svc := app.NewRegisterService(repo, store, log.WithField("component", "service"))
	svc.Load()

	menu := console.NewMenu(os.Stdin, os.Stdout, svc, log.WithField("component", "console"))
	menu.Run()

	// Final full save, then the optional spreadsheet snapshot. Neither is
	// fatal: the register already persisted after every mutation.
	if err := svc.Persist(); err != nil {
		log.WithError(err).Error("Final save failed")
	}
	if cfg.ExportFile != "" {
		if err := svc.ExportExcel(cfg.ExportFile); err != nil {
			log.WithError(err).Error("Excel export failed")
		}
	}
	log.Info("School register shut down")
}
