package mocks

import (
	"context"

	"github.com/Cheruiyot/mpesa-services/stkgateway/pkg/daraja"
	"github.com/stretchr/testify/mock"
)

type TokenProvider struct {
	mock.Mock
}

func (m *TokenProvider) GetAccessToken(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type Gateway struct {
	mock.Mock
}

func (m *Gateway) STKPush(ctx context.Context, token string, request daraja.STKPushRequest) (daraja.STKPushResponse, error) {
	args := m.Called(ctx, token, request)
	return args.Get(0).(daraja.STKPushResponse), args.Error(1)
}
