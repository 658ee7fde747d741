package v1

import "github.com/Cheruiyot/mpesa-services/stkgateway/internal/service"

type StkPushResponse struct {
	Rescode           string `json:"rescode"`
	Resmsg            string `json:"resmsg"`
	CheckoutRequestID string `json:"CheckoutRequestID,omitempty"`
}

// CallbackAck is the fixed-shape acknowledgment the gateway expects. It is
// positive even when the callback matched nothing.
type CallbackAck struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}

type TransactionsResponse struct {
	Data []service.TransactionView `json:"data"`
}
