package application

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/walletfleet/fleetd/internal/core/ports"
)

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) ListWalletDir(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)

	var res []string
	if a := args.Get(0); a != nil {
		res = a.([]string)
	}
	return res, args.Error(1)
}

func (m *mockGateway) ListWallets(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)

	var res []string
	if a := args.Get(0); a != nil {
		res = a.([]string)
	}
	return res, args.Error(1)
}

func (m *mockGateway) LoadWallet(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *mockGateway) CreateWallet(
	ctx context.Context, path string, disablePrivateKeys bool,
) error {
	args := m.Called(ctx, path, disablePrivateKeys)
	return args.Error(0)
}

func (m *mockGateway) UnloadWallet(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *mockGateway) LockUnspent(
	ctx context.Context, unlock bool, outpoints []ports.Outpoint,
) error {
	args := m.Called(ctx, unlock, outpoints)
	return args.Error(0)
}

func (m *mockGateway) Close() {
	m.Called()
}
