package filestore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/walletfleet/fleetd/internal/core/domain"
)

type walletRepositoryImpl struct{}

// NewWalletRepositoryImpl returns the file-backed implementation of the
// WalletRepository interface, persisting one <alias>.json per wallet.
func NewWalletRepositoryImpl() domain.WalletRepository {
	return walletRepositoryImpl{}
}

func (walletRepositoryImpl) GetAllWallets(
	_ context.Context, dir string,
) (map[string]*domain.Wallet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	wallets := make(map[string]*domain.Wallet)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		buf, err := os.ReadFile(path)
		if err != nil {
			log.WithError(err).Warnf("skipping unreadable wallet file %s", path)
			continue
		}
		wallet := &domain.Wallet{}
		if err := json.Unmarshal(buf, wallet); err != nil {
			log.WithError(err).Warnf("skipping malformed wallet file %s", path)
			continue
		}
		if wallet.Name == "" || wallet.Alias == "" {
			log.Warnf("skipping wallet file %s without name or alias", path)
			continue
		}
		if wallet.PendingPsbts == nil {
			wallet.PendingPsbts = make(map[string]*domain.PsbtState)
		}
		wallets[wallet.Name] = wallet
	}
	return wallets, nil
}

func (walletRepositoryImpl) SaveWallet(
	_ context.Context, wallet *domain.Wallet,
) error {
	buf, err := json.MarshalIndent(wallet, "", "  ")
	if err != nil {
		return err
	}
	// Write-then-rename so a concurrent load never sees a partial file.
	tmp := wallet.Fullpath + ".tmp"
	if err := os.WriteFile(tmp, buf, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, wallet.Fullpath)
}

func (walletRepositoryImpl) DeleteWallet(
	_ context.Context, wallet *domain.Wallet,
) error {
	if err := os.Remove(wallet.Fullpath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
