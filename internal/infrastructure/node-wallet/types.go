package nodewallet

// walletDirResult is the JSON shape of the node's listwalletdir response.
type walletDirResult struct {
	Wallets []walletDirEntry `json:"wallets"`
}

type walletDirEntry struct {
	Name string `json:"name"`
}
