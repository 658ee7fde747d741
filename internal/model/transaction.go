package model

import "time"

type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "Pending"
	TransactionStatusSuccess TransactionStatus = "Success"
	TransactionStatusFailed  TransactionStatus = "Failed"
)

// Transaction is one STK push attempt. The gateway-issued fields stay nil
// until the gateway acknowledges the initiate call; resultCode/resultDesc
// stay nil until the callback lands.
type Transaction struct {
	ID                int64             `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	OrderID           string            `gorm:"column:order_id;index"`
	PhoneNumber       string            `gorm:"column:phone_number"`
	Amount            float64           `gorm:"column:amount"`
	Status            TransactionStatus `gorm:"column:status"`
	MerchantRequestID *string           `gorm:"column:merchant_request_id"`
	CheckoutRequestID *string           `gorm:"column:checkout_request_id;index"`
	ResultCode        *string           `gorm:"column:result_code"`
	ResultDesc        *string           `gorm:"column:result_desc"`
	CreatedAt         time.Time         `gorm:"column:created_at;index;<-:create"`
	UpdatedAt         time.Time         `gorm:"column:updated_at"`
}
