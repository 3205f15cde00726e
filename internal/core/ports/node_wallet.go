package ports

import "context"

// NodeWalletGateway is the capability surface consumed from the node's RPC
// interface. It lists every call the manager is allowed to make; transport,
// authentication and retries live entirely behind the implementation.
type NodeWalletGateway interface {
	// ListWalletDir returns the wallet paths present in the node's own
	// wallet directory, loaded or not.
	ListWalletDir(ctx context.Context) ([]string, error)
	// ListWallets returns the wallet paths currently loaded by the node.
	ListWallets(ctx context.Context) ([]string, error)
	// LoadWallet loads the wallet at the given node-side path.
	LoadWallet(ctx context.Context, path string) error
	// CreateWallet creates a new node-side wallet at the given path. It
	// fails if a wallet already exists there.
	CreateWallet(ctx context.Context, path string, disablePrivateKeys bool) error
	// UnloadWallet unloads the wallet at the given node-side path. It fails
	// if the wallet is not currently loaded.
	UnloadWallet(ctx context.Context, path string) error
	// LockUnspent marks the given outpoints as reserved (unlock=false) or
	// releases them (unlock=true). The call is idempotent.
	LockUnspent(ctx context.Context, unlock bool, outpoints []Outpoint) error
	// Close tears down the underlying connection.
	Close()
}
