package main

import (
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/walletd-network/walletd/internal/core/domain"
)

var accountCmd = cli.Command{
	Name:  "account",
	Usage: "manage wallet accounts",
	Subcommands: []*cli.Command{
		{
			Name:  "add",
			Usage: "create an account and attach it to a wallet",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "wallet", Required: true},
				&cli.StringFlag{Name: "id", Usage: "account id, generated if omitted"},
				&cli.StringFlag{Name: "name", Required: true},
				&cli.StringFlag{Name: "type", Value: domain.AccountTypeSimple},
				&cli.StringFlag{Name: "path", Usage: "derivation path"},
				&cli.StringFlag{Name: "cointype", Required: true},
				&cli.StringFlag{Name: "pub"},
				&cli.StringFlag{Name: "xpub"},
				&cli.StringFlag{Name: "address"},
			},
			Action: addAccountAction,
		},
		{
			Name:  "get",
			Usage: "show a single account",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "id", Required: true},
			},
			Action: getAccountAction,
		},
		{
			Name:  "list",
			Usage: "list the accounts of a wallet",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "wallet", Required: true},
			},
			Action: listAccountsAction,
		},
		{
			Name:  "remove",
			Usage: "detach an account from its wallet and delete it",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "wallet", Required: true},
				&cli.StringFlag{Name: "id", Required: true},
				&cli.StringFlag{Name: "password"},
			},
			Action: removeAccountAction,
		},
		{
			Name:  "rename",
			Usage: "change the name of an account",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "id", Required: true},
				&cli.StringFlag{Name: "name", Required: true},
			},
			Action: renameAccountAction,
		},
		{
			Name:  "addaddress",
			Usage: "record an address for an account on a network",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "id", Required: true},
				&cli.StringFlag{Name: "network", Required: true},
				&cli.StringFlag{Name: "address", Required: true},
			},
			Action: addAddressAction,
		},
		{
			Name:  "removeaddress",
			Usage: "remove an address from an account",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "id", Required: true},
				&cli.StringFlag{Name: "network", Required: true},
				&cli.StringFlag{Name: "address", Required: true},
			},
			Action: removeAddressAction,
		},
	},
}

func addAccountAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	id := ctx.String("id")
	if id == "" {
		id = uuid.NewString()
	}

	if _, err := svc.wallet.AddAccount(ctx.Context, domain.Account{
		ID:       id,
		Name:     ctx.String("name"),
		Type:     ctx.String("type"),
		Path:     ctx.String("path"),
		CoinType: ctx.String("cointype"),
		Pub:      ctx.String("pub"),
		XPub:     ctx.String("xpub"),
		Address:  ctx.String("address"),
	}); err != nil {
		return err
	}

	account, err := svc.wallet.AddAccountToWallet(
		ctx.Context, ctx.String("wallet"), id,
	)
	if err != nil {
		return err
	}

	printJSON(account)
	return nil
}

func getAccountAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	account, err := svc.wallet.GetAccount(ctx.Context, ctx.String("id"))
	if err != nil {
		return err
	}

	printJSON(account)
	return nil
}

func listAccountsAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	wallet, err := svc.wallet.GetWallet(ctx.Context, ctx.String("wallet"))
	if err != nil {
		return err
	}
	if wallet == nil {
		return &domain.NotFoundError{Entity: "wallet", ID: ctx.String("wallet")}
	}

	accounts, err := svc.wallet.GetAccounts(ctx.Context, wallet.Accounts)
	if err != nil {
		return err
	}

	printJSON(accounts)
	return nil
}

func removeAccountAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	return svc.wallet.RemoveAccount(
		ctx.Context, ctx.String("wallet"), ctx.String("id"), ctx.String("password"),
	)
}

func renameAccountAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	account, err := svc.wallet.SetAccountName(
		ctx.Context, ctx.String("id"), ctx.String("name"),
	)
	if err != nil {
		return err
	}

	printJSON(account)
	return nil
}

func addAddressAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	account, err := svc.wallet.AddAccountAddress(
		ctx.Context, ctx.String("id"), ctx.String("network"), ctx.String("address"),
	)
	if err != nil {
		return err
	}

	printJSON(account)
	return nil
}

func removeAddressAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	account, err := svc.wallet.RemoveAccountAddress(
		ctx.Context, ctx.String("id"), ctx.String("network"), ctx.String("address"),
	)
	if err != nil {
		return err
	}

	printJSON(account)
	return nil
}
