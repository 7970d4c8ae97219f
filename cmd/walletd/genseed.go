package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/walletd-network/walletd/pkg/crypter"
)

var genseedCmd = cli.Command{
	Name:  "genseed",
	Usage: "generate a new random mnemonic",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "entropy",
			Usage: "entropy size in bits, a multiple of 32 between 128 and 256",
			Value: 128,
		},
	},
	Action: genseedAction,
}

func genseedAction(ctx *cli.Context) error {
	mnemonic, err := crypter.NewMnemonic(ctx.Int("entropy"))
	if err != nil {
		return err
	}

	fmt.Println(mnemonic)
	return nil
}
