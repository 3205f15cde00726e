package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/walletfleet/fleetd/config"
	"github.com/walletfleet/fleetd/internal/core/application"
	nodewallet "github.com/walletfleet/fleetd/internal/infrastructure/node-wallet"
	filestore "github.com/walletfleet/fleetd/internal/infrastructure/storage/file"
)

func main() {
	app := cli.NewApp()

	app.Version = "0.0.1"
	app.Name = "fleet CLI"
	app.Usage = "Command line interface for managing a fleet of node wallets"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "datadir",
			Usage: "the directory the wallet records are stored in",
			Value: config.GetDatadir(),
		},
		&cli.StringFlag{
			Name:  "chain",
			Usage: "the chain the node runs on",
			Value: config.GetChain(),
		},
		&cli.StringFlag{
			Name:  "node",
			Usage: "the JSON-RPC endpoint of the node",
			Value: config.GetString(config.NodeRPCEndpointKey),
		},
		&cli.StringFlag{
			Name:  "prefix",
			Usage: "the node-side path prefix managed wallets are created under",
			Value: config.GetString(config.WalletPrefixKey),
		},
	}
	app.Commands = append(
		app.Commands,
		&createwallet,
		&createmultisig,
		&listwallets,
		&renamewallet,
		&deletewallet,
	)

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

func getManager(ctx *cli.Context) (*application.WalletManager, func(), error) {
	endpoint := ctx.String("node")
	if endpoint == "" {
		return nil, nil, errors.New(
			"set the node's JSON-RPC endpoint with --node or FLEET_NODE_RPC_ENDPOINT",
		)
	}

	gateway, err := nodewallet.NewService(
		endpoint, config.GetInt(config.NodeRPCLimitKey),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to connect to the node: %v", err)
	}

	manager, err := application.NewWalletManager(
		ctx.String("datadir"), ctx.String("chain"), ctx.String("prefix"),
		gateway, filestore.NewWalletRepositoryImpl(),
	)
	if err != nil {
		gateway.Close()
		return nil, nil, err
	}

	return manager, gateway.Close, nil
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		fmt.Println(v)
		return
	}
	fmt.Println(string(data))
}

func fatal(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "[fleet] %v\n", err)
	os.Exit(1)
}
