package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PsbtInput references one transaction output spent by a pending PSBT.
type PsbtInput struct {
	Txid string `json:"txid"`
	Vout uint32 `json:"vout"`
}

// PsbtTx is the decoded transaction carried by a pending PSBT, reduced to
// what reconciliation needs: the set of inputs to keep locked at the node.
type PsbtTx struct {
	Vin []PsbtInput `json:"vin"`
}

// PsbtState is a partially-signed transaction tracked against a wallet while
// it awaits the remaining signatures. As long as the state is present in the
// record, every input it references is expected to be locked at the node.
type PsbtState struct {
	Base64    string          `json:"base64,omitempty"`
	Tx        PsbtTx          `json:"tx"`
	Amount    decimal.Decimal `json:"amount"`
	Address   string          `json:"address,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
