package main

import (
	"github.com/urfave/cli/v2"
)

var listwallets = cli.Command{
	Name:   "listwallets",
	Usage:  "list all managed wallets",
	Action: listWalletsAction,
}

type walletSummary struct {
	Name        string `json:"name"`
	Alias       string `json:"alias"`
	Type        string `json:"type"`
	Description string `json:"description"`
	NodePath    string `json:"node_path"`
}

func listWalletsAction(ctx *cli.Context) error {
	manager, cleanup, err := getManager(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	summaries := make([]walletSummary, 0)
	for _, name := range manager.WalletNames() {
		wallet, err := manager.Wallet(name)
		if err != nil {
			return err
		}
		summaries = append(summaries, walletSummary{
			Name:        wallet.Name,
			Alias:       wallet.Alias,
			Type:        string(wallet.Type),
			Description: wallet.Description,
			NodePath:    wallet.NodePath(),
		})
	}

	printJSON(summaries)

	return nil
}
