package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/walletfleet/fleetd/internal/core/domain"
	"github.com/walletfleet/fleetd/internal/core/ports"
)

// Wallet is the live handle for one registered wallet: the persisted
// record plus the node gateway bound to the wallet's node-side path.
type Wallet struct {
	*domain.Wallet

	nodePath string
	gateway  ports.NodeWalletGateway
	repo     domain.WalletRepository
}

func newWallet(
	record *domain.Wallet,
	nodePath string,
	gateway ports.NodeWalletGateway,
	repo domain.WalletRepository,
) *Wallet {
	return &Wallet{
		Wallet:   record,
		nodePath: nodePath,
		gateway:  gateway,
		repo:     repo,
	}
}

// NodePath returns the path identifying this wallet on the node, ie. the
// configured prefix joined with the wallet alias.
func (w *Wallet) NodePath() string {
	return w.nodePath
}

// Save persists the wallet record to disk.
func (w *Wallet) Save(ctx context.Context) error {
	return w.repo.SaveWallet(ctx, w.Wallet)
}

// LockPendingInputs re-applies the node-side utxo locks for every input
// referenced by the wallet's pending PSBTs. Locks are volatile on the
// node and vanish whenever the wallet is unloaded.
func (w *Wallet) LockPendingInputs(ctx context.Context) error {
	inputs := w.PendingInputs()
	if len(inputs) <= 0 {
		return nil
	}
	return w.gateway.LockUnspent(ctx, false, outpoints(inputs))
}

// TrackPendingPsbt registers a partially-signed transaction with the
// wallet, locks its inputs on the node and persists the record. It
// returns the identifier to later untrack it with.
func (w *Wallet) TrackPendingPsbt(
	ctx context.Context, psbt *domain.PsbtState,
) (string, error) {
	if psbt.CreatedAt.IsZero() {
		psbt.CreatedAt = time.Now()
	}
	id := uuid.NewString()

	if len(psbt.Tx.Vin) > 0 {
		if err := w.gateway.LockUnspent(
			ctx, false, outpoints(psbt.Tx.Vin),
		); err != nil {
			return "", err
		}
	}

	if w.PendingPsbts == nil {
		w.PendingPsbts = map[string]*domain.PsbtState{}
	}
	w.PendingPsbts[id] = psbt
	if err := w.Save(ctx); err != nil {
		return "", err
	}
	return id, nil
}

// UntrackPendingPsbt drops a pending PSBT, releasing the node-side locks
// on its inputs, and persists the record.
func (w *Wallet) UntrackPendingPsbt(ctx context.Context, id string) error {
	psbt, ok := w.PendingPsbts[id]
	if !ok {
		return ErrPsbtNotFound
	}

	if len(psbt.Tx.Vin) > 0 {
		if err := w.gateway.LockUnspent(
			ctx, true, outpoints(psbt.Tx.Vin),
		); err != nil {
			return err
		}
	}

	delete(w.PendingPsbts, id)
	return w.Save(ctx)
}

func outpoints(inputs []domain.PsbtInput) []ports.Outpoint {
	list := make([]ports.Outpoint, 0, len(inputs))
	for _, in := range inputs {
		list = append(list, ports.Outpoint{Txid: in.Txid, Vout: in.Vout})
	}
	return list
}
