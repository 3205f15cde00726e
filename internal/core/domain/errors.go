package domain

import "errors"

var (
	// ErrWalletNotFound is thrown when looking up a wallet that is not registered
	ErrWalletNotFound = errors.New("wallet does not exist")
	// ErrWalletMissingAlias ...
	ErrWalletMissingAlias = errors.New("wallet record must have an alias")
	// ErrWalletMissingName ...
	ErrWalletMissingName = errors.New("wallet record must have a name")
	// ErrWalletInvalidDescriptor is thrown when a descriptor misses a valid checksum suffix
	ErrWalletInvalidDescriptor = errors.New("wallet descriptor must carry a valid checksum")
	// ErrWalletInvalidSigsRequired is thrown when the signature threshold exceeds the key count
	ErrWalletInvalidSigsRequired = errors.New("required signatures must be between 1 and the number of keys")
)
