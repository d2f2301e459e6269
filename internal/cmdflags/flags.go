package cmdflags

import (
	"github.com/urfave/cli/v2"
)

func Bind(out *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "bind",
		Aliases:     []string{"b"},
		Usage:       "Address to bind the intranet server",
		Value:       *out,
		Destination: out,
		EnvVars:     []string{"INTRANET_BIND"},
	}
}

func DataDir(out *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "data-dir",
		Aliases:     []string{"d"},
		Usage:       "Directory holding users.txt and flag.txt",
		Value:       *out,
		Destination: out,
		EnvVars:     []string{"INTRANET_DATA_DIR"},
	}
}

func SessionSecret(out *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "secret",
		Usage:       "Secret used to sign the session cookie. Always set a strong value in production",
		Value:       *out,
		Destination: out,
		EnvVars:     []string{"SESSION_SECRET"},
	}
}

func Prod(out *bool) cli.Flag {
	return &cli.BoolFlag{
		Name:        "prod",
		Usage:       "Production mode: mark the session cookie Secure (HTTPS expected upstream)",
		Destination: out,
		EnvVars:     []string{"INTRANET_PROD"},
	}
}
