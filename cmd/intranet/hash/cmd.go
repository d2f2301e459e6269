package hash

import (
	"errors"
	"fmt"

	"github.com/lmoreau/intranet/auth"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	return &cli.Command{
		Name:      "hash",
		Usage:     "Print the argon2id digest of a password, for preparing seed material",
		ArgsUsage: "<password>",
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() != 1 {
				return errors.New("hash takes exactly one password argument")
			}
			digest, err := auth.HashPassword(ctx.Args().First())
			if err != nil {
				return err
			}
			fmt.Println(digest)
			return nil
		},
	}
}
