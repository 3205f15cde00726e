package ports

import "fmt"

// Outpoint identifies a transaction output to be locked or unlocked at the
// node.
type Outpoint struct {
	Txid string
	Vout uint32
}

func (o Outpoint) String() string {
	return fmt.Sprintf("%s:%d", o.Txid, o.Vout)
}

// NodeError is the error kind returned by a gateway implementation whenever
// the node itself rejects a call, as opposed to a transport failure.
type NodeError struct {
	Code    int
	Message string
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("node error %d: %s", e.Code, e.Message)
}
