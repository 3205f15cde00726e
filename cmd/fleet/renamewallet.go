package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var renamewallet = cli.Command{
	Name:  "renamewallet",
	Usage: "change the display name of a wallet",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "name",
			Usage:    "the current display name of the wallet",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "new_name",
			Usage:    "the new display name",
			Required: true,
		},
	},
	Action: renameWalletAction,
}

func renameWalletAction(ctx *cli.Context) error {
	manager, cleanup, err := getManager(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	name := ctx.String("name")
	newName := ctx.String("new_name")
	if err := manager.RenameWallet(
		context.Background(), name, newName,
	); err != nil {
		return err
	}

	fmt.Printf("wallet %s renamed to %s\n", name, newName)

	return nil
}
