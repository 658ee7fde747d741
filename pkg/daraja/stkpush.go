package daraja

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Cheruiyot/mpesa-services/stkgateway/pkg/httpclient"
)

const stkPushEndpoint = "/mpesa/stkpush/v1/processrequest"

const (
	StatusOK = 200

	// TransactionTypePayBill is the fixed transaction type tag Daraja expects
	// for paybill STK pushes.
	TransactionTypePayBill = "CustomerPayBillOnline"

	// ResponseCodeAccepted is the synchronous acknowledgment code for an
	// accepted push request.
	ResponseCodeAccepted = "0"

	// ResultCodeSuccess is the asynchronous callback code for a completed
	// payment.
	ResultCodeSuccess = "0"
)

type Gateway interface {
	STKPush(ctx context.Context, token string, request STKPushRequest) (STKPushResponse, error)
}

type STKPushRequest struct {
	Amount           float64
	PhoneNumber      string
	AccountReference string
	Description      string
}

type STKPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

type errorResponse struct {
	RequestID    string `json:"requestId"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

type stkPushPayload struct {
	BusinessShortCode string  `json:"BusinessShortCode"`
	Password          string  `json:"Password"`
	Timestamp         string  `json:"Timestamp"`
	TransactionType   string  `json:"TransactionType"`
	Amount            float64 `json:"Amount"`
	PartyA            string  `json:"PartyA"`
	PartyB            string  `json:"PartyB"`
	PhoneNumber       string  `json:"PhoneNumber"`
	CallBackURL       string  `json:"CallBackURL"`
	AccountReference  string  `json:"AccountReference"`
	TransactionDesc   string  `json:"TransactionDesc"`
}

type gateway struct {
	client httpclient.HTTPClient
	config Config
	now    func() time.Time
}

func NewGateway(cfg Config, client httpclient.HTTPClient) Gateway {
	return &gateway{config: cfg, client: client, now: time.Now}
}

func (g *gateway) STKPush(ctx context.Context, token string, request STKPushRequest) (STKPushResponse, error) {
	payload := g.buildPayload(request)

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return STKPushResponse{}, fmt.Errorf("encoding error: %w", err)
	}

	headers := map[string]string{
		"Content-Type":  "application/json",
		"Authorization": "Bearer " + token,
	}

	resp, err := g.client.Post(ctx, g.config.BaseURL()+stkPushEndpoint, &buf, headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return STKPushResponse{}, ErrTimeout
		}

		return STKPushResponse{}, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != StatusOK {
		var errResp errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.ErrorMessage != "" {
			return STKPushResponse{}, fmt.Errorf("%w: %s (%s)", ErrRejected, errResp.ErrorMessage, errResp.ErrorCode)
		}

		return STKPushResponse{}, ErrServerError
	}

	var response STKPushResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return STKPushResponse{}, fmt.Errorf("decoding error: %w", err)
	}

	if response.ResponseCode != ResponseCodeAccepted {
		return response, fmt.Errorf("%w: %s", ErrRejected, response.ResponseDescription)
	}

	return response, nil
}

func (g *gateway) buildPayload(request STKPushRequest) stkPushPayload {
	timestamp := g.now().Format("20060102150405")
	phone := NormalizePhone(request.PhoneNumber)

	return stkPushPayload{
		BusinessShortCode: g.config.ShortCode,
		Password:          Password(g.config.ShortCode, g.config.Passkey, timestamp),
		Timestamp:         timestamp,
		TransactionType:   TransactionTypePayBill,
		Amount:            request.Amount,
		PartyA:            phone,
		PartyB:            g.config.ShortCode,
		PhoneNumber:       phone,
		CallBackURL:       g.config.CallbackURL,
		AccountReference:  request.AccountReference,
		TransactionDesc:   request.Description,
	}
}

// Password derives the STK push password from the short code, passkey and a
// 14-digit timestamp.
func Password(shortCode, passkey, timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(shortCode + passkey + timestamp))
}

// NormalizePhone strips a leading "+" from a caller-supplied MSISDN. No other
// digit normalization is performed.
func NormalizePhone(phone string) string {
	return strings.TrimPrefix(phone, "+")
}
