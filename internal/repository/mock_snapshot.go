package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/unlimited-inventories/internal/domain"
)

// MockSnapshot is a mock implementation of the Snapshot interface
type MockSnapshot struct {
	mock.Mock
}

func (m *MockSnapshot) LoadAll(ctx context.Context) ([]domain.SnapshotRow, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]domain.SnapshotRow)
	return rows, args.Error(1)
}

func (m *MockSnapshot) InsertSnapshot(ctx context.Context, row domain.SnapshotRow) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockSnapshot) UpdateSnapshot(ctx context.Context, row domain.SnapshotRow) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockSnapshot) DeleteSnapshot(ctx context.Context, userID int, name string) error {
	args := m.Called(ctx, userID, name)
	return args.Error(0)
}

func (m *MockSnapshot) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
