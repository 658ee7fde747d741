package mocks

import (
	"context"

	"github.com/Cheruiyot/mpesa-services/stkgateway/internal/service"
	"github.com/stretchr/testify/mock"
)

type PaymentWorkflowService struct {
	mock.Mock
}

func (m *PaymentWorkflowService) InitiateStkPush(ctx context.Context, cmd service.InitiateStkPushCommand) (service.InitiateStkPushResponse, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(service.InitiateStkPushResponse), args.Error(1)
}

func (m *PaymentWorkflowService) ProcessCallback(ctx context.Context, cmd service.ProcessCallbackCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

func (m *PaymentWorkflowService) ListTransactions(ctx context.Context, query service.ListTransactionsQuery) (service.ListTransactionsResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(service.ListTransactionsResponse), args.Error(1)
}
