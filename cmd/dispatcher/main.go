package main

import (
	"context"
	"log"
	"os"

	"github.com/digitalai-opensource/job-dispatcher/internal/buildinfo"
	"github.com/digitalai-opensource/job-dispatcher/internal/cli"
	"github.com/digitalai-opensource/job-dispatcher/internal/config"
	"github.com/digitalai-opensource/job-dispatcher/internal/logging"
	"github.com/google/uuid"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel).With("session", uuid.NewString())

	ctx := context.Background()
	app, err := cli.NewApp(ctx, cfg, logger, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx, os.Stdin)

}
