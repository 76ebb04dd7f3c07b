package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/codirector/internal/buildinfo"
	"github.com/dmitrijs2005/codirector/internal/logging"
	"github.com/dmitrijs2005/codirector/internal/server"
	"github.com/dmitrijs2005/codirector/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.NewZapProduction(cfg.Development)
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	app, err := server.NewApp(cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}

}
