package main

import (
	"context"

	"github.com/urfave/cli/v2"
	"github.com/walletfleet/fleetd/internal/core/domain"
)

var createmultisig = cli.Command{
	Name:  "createmultisig",
	Usage: "create a new multisig wallet on the node",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "name",
			Usage:    "the display name of the new wallet",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "type",
			Usage: "the script type of the wallet, one of wsh, sh-wsh or sh",
			Value: "wsh",
		},
		&cli.IntFlag{
			Name:     "sigs",
			Usage:    "the number of signatures required to spend",
			Required: true,
		},
		&cli.StringSliceFlag{
			Name:     "key",
			Usage:    "a key origin fragment of a cosigner, repeat once per cosigner",
			Required: true,
		},
		&cli.StringSliceFlag{
			Name:  "device",
			Usage: "the label of a cosigning device, repeat once per cosigner",
		},
	},
	Action: createMultisigAction,
}

func createMultisigAction(ctx *cli.Context) error {
	manager, cleanup, err := getManager(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	keys := make([]domain.Key, 0, len(ctx.StringSlice("key")))
	for _, fragment := range ctx.StringSlice("key") {
		keys = append(keys, domain.Key{Original: fragment})
	}

	wallet, err := manager.CreateMultisigWallet(
		context.Background(),
		ctx.String("name"),
		ctx.Int("sigs"),
		ctx.String("type"),
		keys,
		ctx.StringSlice("device"),
	)
	if err != nil {
		return err
	}

	printJSON(wallet.Wallet)

	return nil
}
