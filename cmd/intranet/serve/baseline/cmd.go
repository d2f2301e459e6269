package baseline

import (
	"path/filepath"

	"github.com/lmoreau/intranet/internal/cmdflags"
	"github.com/lmoreau/intranet/internal/httpserver"
	"github.com/lmoreau/intranet/internal/logutil"
	"github.com/lmoreau/intranet/internal/webutil"
	"github.com/lmoreau/intranet/roster"
	"github.com/lmoreau/intranet/vault"
	baselineapp "github.com/lmoreau/intranet/webapp/baseline"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	bindAddr := "localhost:3000"
	dataDir := "./data"
	return &cli.Command{
		Name:  "baseline",
		Usage: "Start the intentionally vulnerable intranet revision (training target)",
		Flags: []cli.Flag{
			cmdflags.Bind(&bindAddr),
			cmdflags.DataDir(&dataDir),
		},
		Action: func(ctx *cli.Context) error {
			log := logutil.GetOrDefault(ctx.Context)
			log.Warn().Msg("this revision is insecure on purpose, never expose it outside the training network")
			employees, err := roster.Load(filepath.Join(dataDir, "users.txt"))
			if err != nil {
				return err
			}
			handler := baselineapp.AsHandler(employees, vault.Open(dataDir))
			return httpserver.Serve(ctx.Context, bindAddr, webutil.AccessLog(handler))
		},
	}
}
