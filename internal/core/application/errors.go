package application

import "errors"

var (
	// ErrNoGatewayConfigured is thrown when a write operation is requested
	// while the manager has no node gateway to talk to.
	ErrNoGatewayConfigured = errors.New("no node gateway is configured")
	// ErrWalletNameAlreadyInUse is thrown when creating or renaming a wallet
	// to a name held by another registered wallet.
	ErrWalletNameAlreadyInUse = errors.New("a wallet with this name is already registered")
	// ErrUnknownScriptType is thrown when a wallet is created with a script
	// type outside the supported templates.
	ErrUnknownScriptType = errors.New("unknown script type")
	// ErrPsbtNotFound is thrown when untracking a pending PSBT the wallet
	// does not know about.
	ErrPsbtNotFound = errors.New("pending psbt does not exist")
)
