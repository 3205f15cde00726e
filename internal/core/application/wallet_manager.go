package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/btcsuite/btcd/btcutil"
	log "github.com/sirupsen/logrus"
	"github.com/walletfleet/fleetd/internal/core/domain"
	"github.com/walletfleet/fleetd/internal/core/ports"
	"github.com/walletfleet/fleetd/pkg/descriptor"
)

// WalletManager keeps a fleet of descriptor wallets consistent across
// three views: the JSON records on disk, the wallets in the node's wallet
// directory, and the wallets the node currently has loaded.
type WalletManager struct {
	dataFolder    string
	chain         string
	walletPrefix  string
	workingFolder string
	nodeDatadir   string
	gateway       ports.NodeWalletGateway
	repo          domain.WalletRepository

	wallets   map[string]*Wallet
	lock      *sync.RWMutex
	reloading int32
}

// NewWalletManager returns a manager rooted at the given records folder
// and runs a first reconciliation pass against the node.
func NewWalletManager(
	dataFolder, chain, walletPrefix string,
	gateway ports.NodeWalletGateway,
	repo domain.WalletRepository,
) (*WalletManager, error) {
	manager := &WalletManager{
		dataFolder:   expandHome(dataFolder),
		chain:        chain,
		walletPrefix: walletPrefix,
		nodeDatadir:  btcutil.AppDataDir("bitcoin", false),
		gateway:      gateway,
		repo:         repo,
		wallets:      map[string]*Wallet{},
		lock:         &sync.RWMutex{},
	}
	if err := manager.Update(context.Background()); err != nil {
		return nil, err
	}
	return manager, nil
}

// Update runs one reconciliation pass: it re-reads the records from disk,
// asks the node what exists and what is loaded, loads what is missing and
// swaps in a freshly built registry. Records without a node-side wallet
// are skipped with a warning, as are wallets the node refuses to load.
// If a pass is already in flight the call returns immediately without
// doing anything.
func (m *WalletManager) Update(
	ctx context.Context, opts ...UpdateOption,
) error {
	if !atomic.CompareAndSwapInt32(&m.reloading, 0, 1) {
		return nil
	}
	defer atomic.StoreInt32(&m.reloading, 0)

	for _, opt := range opts {
		opt(m)
	}

	if err := m.initWorkingFolder(); err != nil {
		return err
	}

	registry := make(map[string]*Wallet)
	if m.gateway == nil {
		m.swapRegistry(registry)
		return nil
	}

	records, err := m.repo.GetAllWallets(ctx, m.workingFolder)
	if err != nil {
		return fmt.Errorf("read wallet records: %w", err)
	}

	existing, err := m.gateway.ListWalletDir(ctx)
	if err != nil {
		return fmt.Errorf("list node wallet dir: %w", err)
	}
	loaded, err := m.gateway.ListWallets(ctx)
	if err != nil {
		return fmt.Errorf("list loaded wallets: %w", err)
	}

	existingSet := toSet(existing)
	loadedSet := toSet(loaded)

	for _, name := range sortedKeys(records) {
		record := records[name]
		nodePath := m.nodePath(record.Alias)

		if !existingSet[nodePath] {
			log.Warnf(
				"couldn't find wallet %s in the node's wallet dir, skipping",
				record.Alias,
			)
			continue
		}

		if !loadedSet[nodePath] {
			log.Debugf("loading wallet %s", record.Alias)
			if err := m.gateway.LoadWallet(ctx, nodePath); err != nil {
				log.WithError(err).Warnf(
					"couldn't load wallet %s into the node, skipping",
					record.Alias,
				)
				walletLoadFailuresTotal.Inc()
				continue
			}

			wallet := newWallet(record, nodePath, m.gateway, m.repo)
			registry[record.Name] = wallet

			if inputs := record.PendingInputs(); len(inputs) > 0 {
				log.Debugf(
					"restoring %d utxo locks for wallet %s",
					len(inputs), record.Alias,
				)
				if err := wallet.LockPendingInputs(ctx); err != nil {
					log.WithError(err).Warnf(
						"couldn't restore utxo locks for wallet %s",
						record.Alias,
					)
				}
			}
			continue
		}

		registry[record.Name] = newWallet(record, nodePath, m.gateway, m.repo)
	}

	m.swapRegistry(registry)
	reconciliationsTotal.Inc()
	return nil
}

// CreateSimpleWallet creates a single-signature descriptor wallet on the
// node from one key-origin fragment and registers it.
func (m *WalletManager) CreateSimpleWallet(
	ctx context.Context, name, scriptType string, key domain.Key, device string,
) (*Wallet, error) {
	tpl, ok := scriptTemplate(scriptType)
	if !ok || tpl.IsMultisig() {
		return nil, ErrUnknownScriptType
	}

	record, err := m.newWalletRecord(ctx, name)
	if err != nil {
		return nil, err
	}

	recv, change := descriptor.Single(tpl, key.Original)
	record.Type = domain.WalletTypeSimple
	record.Description = purposes[scriptType]
	record.SigsRequired = 1
	record.Keys = []domain.Key{key}
	record.RecvDescriptor = recv
	record.ChangeDescriptor = change
	record.Devices = []string{device}
	record.AddressType = addressTypes[scriptType]

	return m.registerWallet(ctx, record)
}

// CreateMultisigWallet creates a sigsRequired-of-len(keys) descriptor
// wallet on the node, preserving the caller's key order, and registers it.
func (m *WalletManager) CreateMultisigWallet(
	ctx context.Context, name string, sigsRequired int, scriptType string,
	keys []domain.Key, devices []string,
) (*Wallet, error) {
	tpl, ok := scriptTemplate(scriptType)
	if !ok || !tpl.IsMultisig() {
		return nil, ErrUnknownScriptType
	}

	record, err := m.newWalletRecord(ctx, name)
	if err != nil {
		return nil, err
	}

	fragments := make([]string, 0, len(keys))
	for _, key := range keys {
		fragments = append(fragments, key.Original)
	}
	recv, change, err := descriptor.Multi(tpl, sigsRequired, fragments)
	if err != nil {
		return nil, err
	}

	record.Type = domain.WalletTypeMultisig
	record.Description = fmt.Sprintf(
		"%d of %d %s", sigsRequired, len(keys), purposes[scriptType],
	)
	record.SigsRequired = sigsRequired
	record.Keys = keys
	record.RecvDescriptor = recv
	record.ChangeDescriptor = change
	record.Devices = devices
	record.AddressType = addressTypes[scriptType]

	return m.registerWallet(ctx, record)
}

// DeleteWallet unloads the wallet from the node, purges its on-disk data
// under the node's datadir when reachable, removes the record and runs a
// reconciliation pass. Unload failures abort the deletion.
func (m *WalletManager) DeleteWallet(ctx context.Context, name string) error {
	if m.gateway == nil {
		return ErrNoGatewayConfigured
	}
	wallet, err := m.Wallet(name)
	if err != nil {
		return err
	}

	log.Infof("deleting wallet %s", wallet.Alias)
	if err := m.gateway.UnloadWallet(ctx, wallet.NodePath()); err != nil {
		return fmt.Errorf("unload wallet %s: %w", wallet.Alias, err)
	}

	// The node's wallet dir is only reachable when fleetd runs on the same
	// host as bitcoind, so a miss here is not an error.
	if dir := m.nodeWalletsDir(); dir != "" {
		target := filepath.Join(dir, m.walletPrefix, wallet.Alias)
		if _, err := os.Stat(target); err == nil {
			if err := os.RemoveAll(target); err != nil {
				log.WithError(err).Warnf(
					"couldn't purge node data of wallet %s", wallet.Alias,
				)
			}
		}
	}

	if err := m.repo.DeleteWallet(ctx, wallet.Wallet); err != nil {
		return fmt.Errorf("delete record of wallet %s: %w", wallet.Alias, err)
	}
	return m.Update(ctx)
}

// RenameWallet changes the display name of a wallet. The alias, and with
// it every filesystem and node-side path, stays untouched.
func (m *WalletManager) RenameWallet(
	ctx context.Context, name, newName string,
) error {
	wallet, err := m.Wallet(name)
	if err != nil {
		return err
	}
	if other, err := m.Wallet(newName); err == nil && other != wallet {
		return ErrWalletNameAlreadyInUse
	}

	log.Infof("renaming wallet %s to %s", wallet.Alias, newName)
	wallet.Name = newName
	if err := wallet.Save(ctx); err != nil {
		return err
	}
	return m.Update(ctx)
}

// Wallet returns the registered wallet with the given display name.
func (m *WalletManager) Wallet(name string) (*Wallet, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	wallet, ok := m.wallets[name]
	if !ok {
		return nil, domain.ErrWalletNotFound
	}
	return wallet, nil
}

// WalletByAlias returns the registered wallet with the given alias.
func (m *WalletManager) WalletByAlias(alias string) (*Wallet, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	for _, wallet := range m.wallets {
		if wallet.Alias == alias {
			return wallet, nil
		}
	}
	return nil, domain.ErrWalletNotFound
}

// WalletNames returns the display names of all registered wallets in
// lexicographic order.
func (m *WalletManager) WalletNames() []string {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return sortedKeys(m.wallets)
}

// Wallets returns a copy of the registry keyed by display name.
func (m *WalletManager) Wallets() map[string]*Wallet {
	m.lock.RLock()
	defer m.lock.RUnlock()

	wallets := make(map[string]*Wallet, len(m.wallets))
	for name, wallet := range m.wallets {
		wallets[name] = wallet
	}
	return wallets
}

// WorkingFolder returns the chain-scoped folder the records live in.
func (m *WalletManager) WorkingFolder() string {
	return m.workingFolder
}

func (m *WalletManager) newWalletRecord(
	ctx context.Context, name string,
) (*domain.Wallet, error) {
	if m.gateway == nil {
		return nil, ErrNoGatewayConfigured
	}
	if _, err := m.Wallet(name); err == nil {
		return nil, ErrWalletNameAlreadyInUse
	}

	existing, err := m.gateway.ListWalletDir(ctx)
	if err != nil {
		return nil, fmt.Errorf("list node wallet dir: %w", err)
	}
	existingSet := toSet(existing)

	alias := Alias(name)
	for i := 2; m.aliasTaken(alias, existingSet); i++ {
		alias = Alias(fmt.Sprintf("%s %d", name, i))
	}

	return &domain.Wallet{
		Alias:        alias,
		Fullpath:     filepath.Join(m.workingFolder, alias+".json"),
		Name:         name,
		AddressIndex: -1,
		ChangeIndex:  -1,
		PendingPsbts: map[string]*domain.PsbtState{},
	}, nil
}

func (m *WalletManager) registerWallet(
	ctx context.Context, record *domain.Wallet,
) (*Wallet, error) {
	if err := record.Validate(); err != nil {
		return nil, err
	}

	nodePath := m.nodePath(record.Alias)
	log.Infof("creating wallet %s on the node", record.Alias)
	if err := m.gateway.CreateWallet(ctx, nodePath, true); err != nil {
		return nil, fmt.Errorf("create wallet %s: %w", record.Alias, err)
	}

	wallet := newWallet(record, nodePath, m.gateway, m.repo)
	if err := wallet.Save(ctx); err != nil {
		return nil, err
	}

	m.lock.Lock()
	m.wallets[record.Name] = wallet
	registeredWallets.Set(float64(len(m.wallets)))
	m.lock.Unlock()

	return wallet, nil
}

func (m *WalletManager) aliasTaken(alias string, nodeWallets map[string]bool) bool {
	if _, err := os.Stat(
		filepath.Join(m.workingFolder, alias+".json"),
	); err == nil {
		return true
	}
	return nodeWallets[m.nodePath(alias)]
}

func (m *WalletManager) nodePath(alias string) string {
	return filepath.Join(m.walletPrefix, alias)
}

func (m *WalletManager) initWorkingFolder() error {
	if m.dataFolder == "" {
		return nil
	}
	m.workingFolder = filepath.Join(m.dataFolder, m.chain)
	return os.MkdirAll(m.workingFolder, 0755)
}

func (m *WalletManager) nodeWalletsDir() string {
	if m.nodeDatadir == "" {
		return ""
	}
	subdir := map[string]string{
		"main":    "",
		"test":    "testnet3",
		"signet":  "signet",
		"regtest": "regtest",
	}[m.chain]
	return filepath.Join(m.nodeDatadir, subdir, "wallets")
}

func (m *WalletManager) swapRegistry(registry map[string]*Wallet) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.wallets = registry
	registeredWallets.Set(float64(len(registry)))
}

func toSet(list []string) map[string]bool {
	set := make(map[string]bool, len(list))
	for _, elem := range list {
		set[elem] = true
	}
	return set
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
