package domain

import (
	"sort"

	"github.com/walletfleet/fleetd/pkg/descriptor"
)

// WalletType discriminates single-signature from multisig wallet records.
type WalletType string

const (
	WalletTypeSimple   WalletType = "simple"
	WalletTypeMultisig WalletType = "multisig"
)

// Key is a key-origin fragment contributed by a signing device. Original
// carries the fragment exactly as provided, the other fields are display
// metadata.
type Key struct {
	Original    string `json:"original"`
	Fingerprint string `json:"fingerprint,omitempty"`
	Derivation  string `json:"derivation,omitempty"`
	Type        string `json:"type,omitempty"`
	XPub        string `json:"xpub,omitempty"`
}

// Wallet is the persisted descriptor record of one managed wallet. Alias is
// the immutable filesystem- and node-safe identifier; Name is the mutable
// user-facing one. The zero indices are -1 ("no address derived yet") to
// match the node's keypool accounting.
type Wallet struct {
	Alias            string                `json:"alias"`
	Fullpath         string                `json:"fullpath"`
	Name             string                `json:"name"`
	Type             WalletType            `json:"type"`
	Description      string                `json:"description"`
	SigsRequired     int                   `json:"sigs_required"`
	Keys             []Key                 `json:"keys"`
	RecvDescriptor   string                `json:"recv_descriptor"`
	ChangeDescriptor string                `json:"change_descriptor"`
	Devices          []string              `json:"devices"`
	AddressType      string                `json:"address_type"`
	AddressIndex     int                   `json:"address_index"`
	ChangeIndex      int                   `json:"change_index"`
	Keypool          int                   `json:"keypool"`
	ChangeKeypool    int                   `json:"change_keypool"`
	Address          string                `json:"address"`
	ChangeAddress    string                `json:"change_address"`
	PendingPsbts     map[string]*PsbtState `json:"pending_psbts"`
}

// Validate checks the record invariants: non-empty alias and name, a valid
// checksum suffix on both descriptors, and a signature threshold that does
// not exceed the number of keys.
func (w *Wallet) Validate() error {
	if w.Alias == "" {
		return ErrWalletMissingAlias
	}
	if w.Name == "" {
		return ErrWalletMissingName
	}
	if !descriptor.Check(w.RecvDescriptor) || !descriptor.Check(w.ChangeDescriptor) {
		return ErrWalletInvalidDescriptor
	}
	if w.SigsRequired < 1 || w.SigsRequired > len(w.Keys) {
		return ErrWalletInvalidSigsRequired
	}
	return nil
}

// IsMultisig returns whether the record describes a multisig wallet.
func (w *Wallet) IsMultisig() bool {
	return w.Type == WalletTypeMultisig
}

// PendingInputs returns the inputs referenced by all pending PSBTs of the
// wallet, ordered by PSBT id so that callers re-lock them deterministically.
func (w *Wallet) PendingInputs() []PsbtInput {
	ids := make([]string, 0, len(w.PendingPsbts))
	for id := range w.PendingPsbts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	inputs := make([]PsbtInput, 0)
	for _, id := range ids {
		inputs = append(inputs, w.PendingPsbts[id].Tx.Vin...)
	}
	return inputs
}
