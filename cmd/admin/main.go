package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/geeksadmin/internal/buildinfo"
	"github.com/dmitrijs2005/geeksadmin/internal/client/cli"
	"github.com/dmitrijs2005/geeksadmin/internal/client/config"
	"github.com/dmitrijs2005/geeksadmin/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(logging.NewHandler(os.Stderr, cfg.LogLevel, cfg.LogFormat)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "console stopped", "error", err)
	}

}
