package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/lmoreau/intranet/cmd/intranet/hash"
	"github.com/lmoreau/intranet/cmd/intranet/serve"
	"github.com/lmoreau/intranet/internal/logutil"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "intranet",
		Usage: "Security-training intranet demo servers",
		Commands: []*cli.Command{
			serve.Cmd(),
			hash.Cmd(),
		},
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	ctx = logutil.WithLogger(ctx, logutil.Console(false))
	err := app.RunContext(ctx, os.Args)
	if err != nil {
		log.Error().Err(err).Msg("Application failed")
	}
}
