package daraja

import "errors"

const (
	ErrCodeAuth        = "GATEWAY_AUTH_FAILED"
	ErrCodeTimeout     = "GATEWAY_TIMEOUT"
	ErrCodeServerError = "GATEWAY_SERVER_ERROR"
	ErrCodeRejected    = "GATEWAY_REJECTED"
)

var (
	ErrAuth        = errors.New(ErrCodeAuth)
	ErrTimeout     = errors.New(ErrCodeTimeout)
	ErrServerError = errors.New(ErrCodeServerError)
	ErrRejected    = errors.New(ErrCodeRejected)
)
