package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var deletewallet = cli.Command{
	Name:  "deletewallet",
	Usage: "unload a wallet from the node and delete its record",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "name",
			Usage:    "the display name of the wallet to delete",
			Required: true,
		},
	},
	Action: deleteWalletAction,
}

func deleteWalletAction(ctx *cli.Context) error {
	manager, cleanup, err := getManager(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	name := ctx.String("name")
	if err := manager.DeleteWallet(context.Background(), name); err != nil {
		return err
	}

	fmt.Printf("wallet %s deleted\n", name)

	return nil
}
