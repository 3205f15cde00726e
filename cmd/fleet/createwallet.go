package main

import (
	"context"

	"github.com/urfave/cli/v2"
	"github.com/walletfleet/fleetd/internal/core/domain"
)

var createwallet = cli.Command{
	Name:  "createwallet",
	Usage: "create a new single-signature wallet on the node",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "name",
			Usage:    "the display name of the new wallet",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "type",
			Usage: "the script type of the wallet, one of wpkh, sh-wpkh or pkh",
			Value: "wpkh",
		},
		&cli.StringFlag{
			Name:     "key",
			Usage:    "the key origin fragment of the signing device, [fingerprint/derivation]xpub",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "device",
			Usage: "the label of the signing device holding the key",
		},
	},
	Action: createWalletAction,
}

func createWalletAction(ctx *cli.Context) error {
	manager, cleanup, err := getManager(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	wallet, err := manager.CreateSimpleWallet(
		context.Background(),
		ctx.String("name"),
		ctx.String("type"),
		domain.Key{Original: ctx.String("key")},
		ctx.String("device"),
	)
	if err != nil {
		return err
	}

	printJSON(wallet.Wallet)

	return nil
}
