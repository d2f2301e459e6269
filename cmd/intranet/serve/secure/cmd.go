package secure

import (
	"github.com/lmoreau/intranet/auth"
	"github.com/lmoreau/intranet/auth/session"
	"github.com/lmoreau/intranet/internal/cmdflags"
	"github.com/lmoreau/intranet/internal/httpserver"
	"github.com/lmoreau/intranet/internal/logutil"
	"github.com/lmoreau/intranet/internal/webutil"
	"github.com/lmoreau/intranet/vault"
	secureapp "github.com/lmoreau/intranet/webapp/secure"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	bindAddr := "localhost:3000"
	dataDir := "./data"
	secret := session.DefaultSecret
	var prod bool
	return &cli.Command{
		Name:  "secure",
		Usage: "Start the hardened intranet revision (session login, admin-gated flag)",
		Flags: []cli.Flag{
			cmdflags.Bind(&bindAddr),
			cmdflags.DataDir(&dataDir),
			cmdflags.SessionSecret(&secret),
			cmdflags.Prod(&prod),
		},
		Action: func(ctx *cli.Context) error {
			log := logutil.GetOrDefault(ctx.Context)
			if secret == session.DefaultSecret {
				log.Warn().Msg("SESSION_SECRET left at its default, set a strong value in production")
			}
			// the seed is fully hashed before the listener accepts its
			// first login attempt
			users, err := auth.NewStore(auth.DemoSeed())
			if err != nil {
				return err
			}
			codec := session.NewCodec(secret, prod)
			handler := secureapp.AsHandler(users, session.NewStore(), codec, vault.Open(dataDir))
			return httpserver.Serve(ctx.Context, bindAddr, webutil.AccessLog(handler))
		},
	}
}
