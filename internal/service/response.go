package service

type InitiateStkPushResponse struct {
	CheckoutRequestID string
	CustomerMessage   string
}

type ListTransactionsResponse struct {
	Transactions []TransactionView
}

type TransactionView struct {
	OrderID           string  `json:"orderId"`
	PhoneNumber       string  `json:"phoneNumber"`
	Amount            float64 `json:"amount"`
	Status            string  `json:"status"`
	MerchantRequestID string  `json:"merchantRequestId,omitempty"`
	CheckoutRequestID string  `json:"checkoutRequestId,omitempty"`
	ResultCode        string  `json:"resultCode,omitempty"`
	ResultDesc        string  `json:"resultDesc,omitempty"`
	CreatedAt         string  `json:"createdAt"`
}
