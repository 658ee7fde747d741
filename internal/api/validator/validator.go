package validator

import (
	"github.com/Cheruiyot/mpesa-services/stkgateway/internal/metrics"
	"github.com/go-playground/validator/v10"
)

type Error struct {
	FailedField string
	Tag         string
	Value       interface{}
}

type XValidator interface {
	Validate(data interface{}) []Error
}

type xValidator struct {
	validator *validator.Validate
	metrics   *metrics.Metrics
}

func NewXValidator(validate *validator.Validate, metrics *metrics.Metrics) XValidator {
	return &xValidator{validator: validate, metrics: metrics}
}

func (x *xValidator) Validate(data interface{}) []Error {
	var validationErrors []Error

	errs := x.validator.Struct(data)
	if errs != nil {
		for _, err := range errs.(validator.ValidationErrors) {
			elem := Error{
				FailedField: err.Field(),
				Tag:         err.Tag(),
				Value:       err.Value(),
			}
			validationErrors = append(validationErrors, elem)

			if x.metrics != nil {
				x.metrics.RecordValidationError(err.Field(), err.Tag())
			}
		}
	}

	return validationErrors
}
