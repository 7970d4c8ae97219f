package main

import (
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/walletd-network/walletd/internal/core/domain"
)

var tokenCmd = cli.Command{
	Name:  "token",
	Usage: "manage the token catalog and token/account associations",
	Subcommands: []*cli.Command{
		{
			Name:  "add",
			Usage: "add a custom token",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "id", Usage: "token id, generated if omitted"},
				&cli.StringFlag{Name: "name", Required: true},
				&cli.StringFlag{Name: "network", Required: true},
				&cli.StringFlag{Name: "contract", Usage: "token id on the network", Required: true},
				&cli.StringFlag{Name: "symbol", Required: true},
				&cli.IntFlag{Name: "decimals", Value: 18},
			},
			Action: addTokenAction,
		},
		{
			Name:  "list",
			Usage: "list tokens of a network, optionally restricted to an account",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "network", Required: true},
				&cli.StringFlag{Name: "account"},
			},
			Action: listTokensAction,
		},
		{
			Name:  "link",
			Usage: "associate a token with an account",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "account", Required: true},
				&cli.StringFlag{Name: "token", Required: true},
			},
			Action: linkTokenAction,
		},
		{
			Name:  "unlink",
			Usage: "remove a token association from an account",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "account", Required: true},
				&cli.StringFlag{Name: "token", Required: true},
			},
			Action: unlinkTokenAction,
		},
	},
}

func addTokenAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	id := ctx.String("id")
	if id == "" {
		id = uuid.NewString()
	}

	token, err := svc.catalog.AddToken(ctx.Context, domain.Token{
		ID:               id,
		Name:             ctx.String("name"),
		NetworkID:        ctx.String("network"),
		TokenIDOnNetwork: ctx.String("contract"),
		Symbol:           ctx.String("symbol"),
		Decimals:         ctx.Int("decimals"),
	})
	if err != nil {
		return err
	}

	printJSON(token)
	return nil
}

func listTokensAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	tokens, err := svc.catalog.GetTokens(
		ctx.Context, ctx.String("network"), ctx.String("account"),
	)
	if err != nil {
		return err
	}

	printJSON(tokens)
	return nil
}

func linkTokenAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	token, err := svc.catalog.AddTokenToAccount(
		ctx.Context, ctx.String("account"), ctx.String("token"),
	)
	if err != nil {
		return err
	}

	printJSON(token)
	return nil
}

func unlinkTokenAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	return svc.catalog.RemoveTokenFromAccount(
		ctx.Context, ctx.String("account"), ctx.String("token"),
	)
}
