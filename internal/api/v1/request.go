package v1

type StkPushRequest struct {
	OrderID     string  `json:"orderId" validate:"required"`
	PhoneNumber string  `json:"phoneNumber" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
}
