package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/buildinfo"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/cli"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/client/config"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}

}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Run(ctx)
}
