package main

import (
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/walletd-network/walletd/internal/config"
	"github.com/walletd-network/walletd/internal/core/application"
	dbbadger "github.com/walletd-network/walletd/internal/infrastructure/storage/db/badger"
	"github.com/walletd-network/walletd/pkg/crypter"
)

func main() {
	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "walletd CLI"
	app.Usage = "command line interface for the local wallet data store"
	app.Commands = append(
		app.Commands,
		&networkCmd,
		&tokenCmd,
		&walletCmd,
		&accountCmd,
		&genseedCmd,
	)

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

type services struct {
	catalog *application.CatalogService
	wallet  *application.WalletService
}

// getServices opens the wallet store and returns the services operating on
// it along with a cleanup function closing the store.
func getServices(ctx *cli.Context) (*services, func(), error) {
	if err := config.InitConfig(); err != nil {
		return nil, nil, err
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	dbDir, err := config.GetDbDir()
	if err != nil {
		return nil, nil, err
	}

	repoManager, err := dbbadger.NewRepoManager(dbDir, nil)
	if err != nil {
		return nil, nil, err
	}
	if err := application.InitStore(ctx.Context, repoManager); err != nil {
		repoManager.Close()
		return nil, nil, err
	}

	svc := &services{
		catalog: application.NewCatalogService(repoManager),
		wallet:  application.NewWalletService(repoManager, crypter.New()),
	}
	return svc, repoManager.Close, nil
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(data))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[walletd] %v\n", err)
	os.Exit(1)
}
