package constants

const (
	ErrCodeMissingFields      = "MISSING_FIELDS"
	ErrCodeInvalidRequestBody = "INVALID_REQUEST_BODY"
	ErrCodeGatewayAuth        = "GATEWAY_AUTH_FAILED"
	ErrCodeGatewayRejected    = "GATEWAY_REJECTED"
	ErrCodeGatewayUnavailable = "GATEWAY_UNAVAILABLE"
	ErrCodeDatabase           = "DATABASE_ERROR"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

const (
	ErrMsgMissingFields      = "Missing required fields"
	ErrMsgInvalidRequestBody = "Missing required fields"
	ErrMsgGatewayRejected    = "Payment request rejected"
	ErrMsgGatewayFailure     = "Failed to initiate payment"
	ErrMsgInternalError      = "Internal server error"
)

var errorMessages = map[string]string{
	ErrCodeMissingFields:      ErrMsgMissingFields,
	ErrCodeInvalidRequestBody: ErrMsgInvalidRequestBody,
	ErrCodeGatewayAuth:        ErrMsgGatewayFailure,
	ErrCodeGatewayRejected:    ErrMsgGatewayRejected,
	ErrCodeGatewayUnavailable: ErrMsgGatewayFailure,
	ErrCodeDatabase:           ErrMsgInternalError,
	ErrCodeInternalError:      ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeMissingFields, ErrCodeInvalidRequestBody, ErrCodeGatewayRejected:
		return 400
	case ErrCodeGatewayAuth, ErrCodeGatewayUnavailable, ErrCodeDatabase, ErrCodeInternalError:
		return 500
	default:
		return 500
	}
}
