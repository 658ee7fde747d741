package mocks

import (
	"context"

	"github.com/Cheruiyot/mpesa-services/stkgateway/internal/model"
	"github.com/stretchr/testify/mock"
)

type TransactionRepository struct {
	mock.Mock
}

func (m *TransactionRepository) Create(ctx context.Context, transaction *model.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *TransactionRepository) GetByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (*model.Transaction, error) {
	args := m.Called(ctx, checkoutRequestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *TransactionRepository) UpdateByOrderID(ctx context.Context, orderID string, transaction *model.Transaction) error {
	args := m.Called(ctx, orderID, transaction)
	return args.Error(0)
}

func (m *TransactionRepository) UpdateByCheckoutRequestID(ctx context.Context, checkoutRequestID string, transaction *model.Transaction) error {
	args := m.Called(ctx, checkoutRequestID, transaction)
	return args.Error(0)
}

func (m *TransactionRepository) ListRecent(ctx context.Context, limit int) ([]model.Transaction, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}
