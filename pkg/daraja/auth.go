package daraja

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/Cheruiyot/mpesa-services/stkgateway/pkg/httpclient"
)

const authEndpoint = "/oauth/v1/generate?grant_type=client_credentials"

// expiryMargin keeps a cached token from being handed out right at the edge
// of its lifetime.
const expiryMargin = 30 * time.Second

type TokenProvider interface {
	GetAccessToken(ctx context.Context) (string, error)
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

type tokenProvider struct {
	client httpclient.HTTPClient
	config Config

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func NewTokenProvider(cfg Config, client httpclient.HTTPClient) TokenProvider {
	return &tokenProvider{config: cfg, client: client}
}

func (t *tokenProvider) GetAccessToken(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.token != "" && time.Now().Before(t.expiresAt) {
		return t.token, nil
	}

	credentials := base64.StdEncoding.EncodeToString(
		[]byte(t.config.ConsumerKey + ":" + t.config.ConsumerSecret))

	headers := map[string]string{
		"Authorization": "Basic " + credentials,
	}

	resp, err := t.client.Get(ctx, t.config.BaseURL()+authEndpoint, headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %v", ErrAuth, ErrTimeout)
		}

		return "", fmt.Errorf("%w: %v", ErrAuth, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != StatusOK {
		return "", fmt.Errorf("%w: token endpoint returned status %d", ErrAuth, resp.StatusCode)
	}

	var token TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("%w: decoding error: %v", ErrAuth, err)
	}

	if token.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrAuth)
	}

	t.token = token.AccessToken
	t.expiresAt = time.Now().Add(tokenLifetime(token.ExpiresIn) - expiryMargin)

	return t.token, nil
}

func tokenLifetime(expiresIn string) time.Duration {
	seconds, err := strconv.Atoi(expiresIn)
	if err != nil || seconds <= 0 {
		return time.Hour
	}
	return time.Duration(seconds) * time.Second
}
