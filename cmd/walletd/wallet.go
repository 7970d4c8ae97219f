package main

import (
	"github.com/urfave/cli/v2"

	"github.com/walletd-network/walletd/internal/core/domain"
	"github.com/walletd-network/walletd/pkg/crypter"
)

var walletCmd = cli.Command{
	Name:  "wallet",
	Usage: "manage HD and hardware wallets",
	Subcommands: []*cli.Command{
		{
			Name:   "list",
			Usage:  "list all wallets",
			Action: listWalletsAction,
		},
		{
			Name:  "get",
			Usage: "show a single wallet",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "id", Required: true},
			},
			Action: getWalletAction,
		},
		{
			Name:  "create",
			Usage: "create an HD wallet from a mnemonic",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "mnemonic", Required: true},
				&cli.StringFlag{Name: "password", Required: true},
				&cli.StringFlag{Name: "name"},
			},
			Action: createWalletAction,
		},
		{
			Name:  "createhw",
			Usage: "register a hardware wallet",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "device", Usage: "device id", Required: true},
				&cli.StringFlag{Name: "name"},
			},
			Action: createHWWalletAction,
		},
		{
			Name:  "remove",
			Usage: "remove a wallet with all its accounts and credential",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "id", Required: true},
				&cli.StringFlag{Name: "password", Required: true},
			},
			Action: removeWalletAction,
		},
		{
			Name:  "rename",
			Usage: "change the name of a wallet",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "id", Required: true},
				&cli.StringFlag{Name: "name", Required: true},
			},
			Action: renameWalletAction,
		},
		{
			Name:  "backup",
			Usage: "mark an HD wallet as backed up",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "id", Required: true},
			},
			Action: backupWalletAction,
		},
		{
			Name:  "credential",
			Usage: "reveal the mnemonic of an HD wallet",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "id", Required: true},
				&cli.StringFlag{Name: "password", Required: true},
			},
			Action: credentialAction,
		},
	},
}

func listWalletsAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	wallets, err := svc.wallet.GetWallets(ctx.Context)
	if err != nil {
		return err
	}

	printJSON(wallets)
	return nil
}

func getWalletAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	wallet, err := svc.wallet.GetWallet(ctx.Context, ctx.String("id"))
	if err != nil {
		return err
	}

	printJSON(wallet)
	return nil
}

func createWalletAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	password := ctx.String("password")
	entropy, seed, err := crypter.New().NewRevealableSeed(
		ctx.String("mnemonic"), password,
	)
	if err != nil {
		return err
	}

	wallet, err := svc.wallet.CreateHDWallet(
		ctx.Context, password, domain.RevealableSeed{
			EntropyWithLangPrefixed: entropy,
			Seed:                    seed,
		}, ctx.String("name"),
	)
	if err != nil {
		return err
	}

	printJSON(wallet)
	return nil
}

func createHWWalletAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	wallet, err := svc.wallet.CreateHWWallet(
		ctx.Context, ctx.String("device"), ctx.String("name"),
	)
	if err != nil {
		return err
	}

	printJSON(wallet)
	return nil
}

func removeWalletAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	return svc.wallet.RemoveWallet(
		ctx.Context, ctx.String("id"), ctx.String("password"),
	)
}

func renameWalletAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	wallet, err := svc.wallet.SetWalletName(
		ctx.Context, ctx.String("id"), ctx.String("name"),
	)
	if err != nil {
		return err
	}

	printJSON(wallet)
	return nil
}

func backupWalletAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	wallet, err := svc.wallet.ConfirmHDWalletBackuped(ctx.Context, ctx.String("id"))
	if err != nil {
		return err
	}

	printJSON(wallet)
	return nil
}

func credentialAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	credential, err := svc.wallet.GetCredential(
		ctx.Context, ctx.String("id"), ctx.String("password"),
	)
	if err != nil {
		return err
	}

	printJSON(credential)
	return nil
}
