package application

import (
	"github.com/walletfleet/fleetd/internal/core/ports"
	"github.com/walletfleet/fleetd/pkg/descriptor"
)

// Script types supported for wallet creation, keyed by the descriptor
// template in its dash-joined spelling.
var (
	purposes = map[string]string{
		"wpkh":    "Single (Segwit)",
		"sh-wpkh": "Single (Nested)",
		"pkh":     "Single (Legacy)",
		"wsh":     "Multisig (Segwit)",
		"sh-wsh":  "Multisig (Nested)",
		"sh":      "Multisig (Legacy)",
	}

	addressTypes = map[string]string{
		"wpkh":    "bech32",
		"sh-wpkh": "p2sh-segwit",
		"pkh":     "legacy",
		"wsh":     "bech32",
		"sh-wsh":  "p2sh-segwit",
		"sh":      "legacy",
	}
)

func scriptTemplate(scriptType string) (descriptor.Template, bool) {
	if _, ok := purposes[scriptType]; !ok {
		return nil, false
	}
	return descriptor.ParseTemplate(scriptType), true
}

// UpdateOption overrides one of the manager's sources before a
// reconciliation pass runs.
type UpdateOption func(*WalletManager)

// WithDataFolder points the manager at another records folder.
func WithDataFolder(dir string) UpdateOption {
	return func(m *WalletManager) {
		m.dataFolder = expandHome(dir)
	}
}

// WithGateway swaps the node gateway. Passing nil detaches the manager
// from the node and empties the registry on the next pass.
func WithGateway(gateway ports.NodeWalletGateway) UpdateOption {
	return func(m *WalletManager) {
		m.gateway = gateway
	}
}

// WithChain switches the chain sub-folder the records are read from.
func WithChain(chain string) UpdateOption {
	return func(m *WalletManager) {
		m.chain = chain
	}
}
