package serve

import (
	"github.com/lmoreau/intranet/cmd/intranet/serve/baseline"
	"github.com/lmoreau/intranet/cmd/intranet/serve/secure"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Root command to start either revision of the intranet demo",
		Subcommands: []*cli.Command{
			baseline.Cmd(),
			secure.Cmd(),
		},
	}
}
