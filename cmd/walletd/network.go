package main

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/walletd-network/walletd/internal/core/application"
	"github.com/walletd-network/walletd/internal/core/domain"
)

var networkCmd = cli.Command{
	Name:  "network",
	Usage: "manage the network catalog",
	Subcommands: []*cli.Command{
		{
			Name:   "list",
			Usage:  "list all networks in display order",
			Action: listNetworksAction,
		},
		{
			Name:  "add",
			Usage: "add a custom network",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "id", Required: true},
				&cli.StringFlag{Name: "name", Required: true},
				&cli.StringFlag{Name: "impl", Value: "evm"},
				&cli.StringFlag{Name: "symbol", Required: true},
				&cli.StringFlag{Name: "fee-symbol"},
				&cli.IntFlag{Name: "decimals", Value: 18},
				&cli.IntFlag{Name: "fee-decimals", Value: 9},
				&cli.StringFlag{Name: "rpc-url", Required: true},
			},
			Action: addNetworkAction,
		},
		{
			Name:   "get",
			Usage:  "show a network by id",
			Flags:  []cli.Flag{&cli.StringFlag{Name: "id", Required: true}},
			Action: getNetworkAction,
		},
		{
			Name:  "update",
			Usage: "update name, symbol or rpc url of a network",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "id", Required: true},
				&cli.StringFlag{Name: "name"},
				&cli.StringFlag{Name: "symbol"},
				&cli.StringFlag{Name: "rpc-url"},
			},
			Action: updateNetworkAction,
		},
		{
			Name:  "setlist",
			Usage: "replace order and enabled flags of the whole catalog, e.g. eth,bsc:off,polygon",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "networks", Required: true},
			},
			Action: setNetworkListAction,
		},
		{
			Name:   "delete",
			Usage:  "delete a custom network",
			Flags:  []cli.Flag{&cli.StringFlag{Name: "id", Required: true}},
			Action: deleteNetworkAction,
		},
	},
}

func listNetworksAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	networks, err := svc.catalog.ListNetworks(ctx.Context)
	if err != nil {
		return err
	}

	printJSON(networks)
	return nil
}

func addNetworkAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	feeSymbol := ctx.String("fee-symbol")
	if feeSymbol == "" {
		feeSymbol = ctx.String("symbol")
	}

	network, err := svc.catalog.AddNetwork(ctx.Context, domain.Network{
		ID:                  ctx.String("id"),
		Name:                ctx.String("name"),
		Impl:                ctx.String("impl"),
		Symbol:              ctx.String("symbol"),
		FeeSymbol:           feeSymbol,
		Decimals:            ctx.Int("decimals"),
		FeeDecimals:         ctx.Int("fee-decimals"),
		Balance2FeeDecimals: ctx.Int("fee-decimals"),
		RPCURL:              ctx.String("rpc-url"),
		Enabled:             true,
	})
	if err != nil {
		return err
	}

	printJSON(network)
	return nil
}

func getNetworkAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	network, err := svc.catalog.GetNetwork(ctx.Context, ctx.String("id"))
	if err != nil {
		return err
	}

	printJSON(network)
	return nil
}

func updateNetworkAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	network, err := svc.catalog.UpdateNetwork(
		ctx.Context, ctx.String("id"),
		application.UpdateNetworkArgs{
			Name:   ctx.String("name"),
			Symbol: ctx.String("symbol"),
			RPCURL: ctx.String("rpc-url"),
		},
	)
	if err != nil {
		return err
	}

	printJSON(network)
	return nil
}

func setNetworkListAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	items := []application.NetworkListItem{}
	for _, entry := range strings.Split(ctx.String("networks"), ",") {
		id, enabled := entry, true
		if strings.HasSuffix(entry, ":off") {
			id, enabled = strings.TrimSuffix(entry, ":off"), false
		}
		items = append(items, application.NetworkListItem{ID: id, Enabled: enabled})
	}

	return svc.catalog.UpdateNetworkList(ctx.Context, items)
}

func deleteNetworkAction(ctx *cli.Context) error {
	svc, cleanup, err := getServices(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	return svc.catalog.DeleteNetwork(ctx.Context, ctx.String("id"))
}
