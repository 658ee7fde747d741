package daraja_test

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Cheruiyot/mpesa-services/stkgateway/pkg/daraja"
	"github.com/Cheruiyot/mpesa-services/stkgateway/pkg/mocks"
	"github.com/stretchr/testify/assert"
)

func TestTokenProvider_GetAccessToken(t *testing.T) {
	cfg := daraja.Config{
		Environment:    daraja.EnvironmentSandbox,
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		Timeout:        30 * time.Second,
	}

	tokenURL := "https://sandbox.safaricom.co.ke/oauth/v1/generate?grant_type=client_credentials"
	credentials := base64.StdEncoding.EncodeToString([]byte("key:secret"))
	headers := map[string]string{"Authorization": "Basic " + credentials}

	t.Run("successful token fetch", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		provider := daraja.NewTokenProvider(cfg, mockClient)

		body := `{"access_token": "abc123", "expires_in": "3599"}`
		resp := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader(body)),
		}

		mockClient.On("Get", context.Background(), tokenURL, headers).Return(resp, nil)

		token, err := provider.GetAccessToken(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, "abc123", token)
		mockClient.AssertExpectations(t)
	})

	t.Run("second call served from cache", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		provider := daraja.NewTokenProvider(cfg, mockClient)

		body := `{"access_token": "abc123", "expires_in": "3599"}`
		resp := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader(body)),
		}

		mockClient.On("Get", context.Background(), tokenURL, headers).Return(resp, nil).Once()

		first, err := provider.GetAccessToken(context.Background())
		assert.NoError(t, err)

		second, err := provider.GetAccessToken(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, first, second)

		mockClient.AssertNumberOfCalls(t, "Get", 1)
	})

	t.Run("network error", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		provider := daraja.NewTokenProvider(cfg, mockClient)

		mockClient.On("Get", context.Background(), tokenURL,
			headers).Return((*http.Response)(nil), errors.New("connection refused"))

		token, err := provider.GetAccessToken(context.Background())

		assert.Error(t, err)
		assert.ErrorIs(t, err, daraja.ErrAuth)
		assert.Empty(t, token)
	})

	t.Run("timeout", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		provider := daraja.NewTokenProvider(cfg, mockClient)

		mockClient.On("Get", context.Background(), tokenURL,
			headers).Return((*http.Response)(nil), context.DeadlineExceeded)

		token, err := provider.GetAccessToken(context.Background())

		assert.Error(t, err)
		assert.ErrorIs(t, err, daraja.ErrAuth)
		assert.Empty(t, token)
	})

	t.Run("non-200 status", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		provider := daraja.NewTokenProvider(cfg, mockClient)

		resp := &http.Response{
			StatusCode: 401,
			Body:       io.NopCloser(strings.NewReader(`{"errorMessage": "Invalid credentials"}`)),
		}

		mockClient.On("Get", context.Background(), tokenURL, headers).Return(resp, nil)

		token, err := provider.GetAccessToken(context.Background())

		assert.Error(t, err)
		assert.ErrorIs(t, err, daraja.ErrAuth)
		assert.Empty(t, token)
	})

	t.Run("empty access token", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		provider := daraja.NewTokenProvider(cfg, mockClient)

		resp := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader(`{}`)),
		}

		mockClient.On("Get", context.Background(), tokenURL, headers).Return(resp, nil)

		token, err := provider.GetAccessToken(context.Background())

		assert.Error(t, err)
		assert.ErrorIs(t, err, daraja.ErrAuth)
		assert.Empty(t, token)
	})

	t.Run("production base URL", func(t *testing.T) {
		prodCfg := cfg
		prodCfg.Environment = daraja.EnvironmentProduction

		mockClient := &mocks.HTTPClient{}
		provider := daraja.NewTokenProvider(prodCfg, mockClient)

		resp := &http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(strings.NewReader(`{"access_token": "tok", "expires_in": "3599"}`)),
		}

		prodURL := "https://api.safaricom.co.ke/oauth/v1/generate?grant_type=client_credentials"
		mockClient.On("Get", context.Background(), prodURL, headers).Return(resp, nil)

		token, err := provider.GetAccessToken(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, "tok", token)
		mockClient.AssertExpectations(t)
	})
}
