package domain

import "context"

// WalletRepository is the abstraction for the local persistence of wallet
// records.
type WalletRepository interface {
	// GetAllWallets returns every well-formed wallet record found in dir,
	// keyed by wallet name. Malformed records are skipped, not fatal.
	GetAllWallets(ctx context.Context, dir string) (map[string]*Wallet, error)
	// SaveWallet persists the record at its Fullpath, atomically enough that
	// a concurrent GetAllWallets never observes a half-written file.
	SaveWallet(ctx context.Context, wallet *Wallet) error
	// DeleteWallet removes the record's file. A missing file is not an error.
	DeleteWallet(ctx context.Context, wallet *Wallet) error
}
