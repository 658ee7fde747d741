package middleware

import (
	"errors"

	"github.com/Cheruiyot/mpesa-services/stkgateway/internal/constants"
	"github.com/Cheruiyot/mpesa-services/stkgateway/internal/service"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler maps service errors onto the wire taxonomy. Clients only ever
// see the generic message for the code; the cause stays in the logs.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"rescode": "1",
			"resmsg":  constants.GetErrorMessage(constants.ErrCodeInternalError),
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	return c.Status(constants.GetHTTPStatus(err.Code)).JSON(fiber.Map{
		"rescode": "1",
		"resmsg":  constants.GetErrorMessage(err.Code),
	})
}
