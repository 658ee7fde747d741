package service

type InitiateStkPushCommand struct {
	OrderID     string
	PhoneNumber string
	Amount      float64
}

type ProcessCallbackCommand struct {
	CheckoutRequestID string
	ResultCode        string
	ResultDesc        string
}

type ListTransactionsQuery struct {
	Limit int
}
