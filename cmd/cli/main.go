package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/notesummarizer/internal/buildinfo"
	"github.com/dmitrijs2005/notesummarizer/internal/client/api"
	"github.com/dmitrijs2005/notesummarizer/internal/client/cli"
	"github.com/dmitrijs2005/notesummarizer/internal/client/config"
	"github.com/dmitrijs2005/notesummarizer/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	log := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	svc := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, log)
	app := cli.NewApp(cfg, svc, log, os.Stdin, os.Stdout)

	app.Run(ctx)

}
