package v1

import (
	"github.com/Cheruiyot/mpesa-services/stkgateway/internal/api/validator"
	"github.com/Cheruiyot/mpesa-services/stkgateway/internal/constants"
	"github.com/Cheruiyot/mpesa-services/stkgateway/internal/metrics"
	"github.com/Cheruiyot/mpesa-services/stkgateway/internal/service"
	"github.com/Cheruiyot/mpesa-services/stkgateway/pkg/daraja"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	logger    *zap.Logger
	service   service.PaymentWorkflowService
	validator validator.XValidator
	metrics   *metrics.Metrics
}

func NewHandler(logger *zap.Logger, service service.PaymentWorkflowService, validator validator.XValidator,
	metrics *metrics.Metrics) *Handler {
	return &Handler{logger: logger, service: service, validator: validator, metrics: metrics}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) StkPush(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request StkPushRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse STK push body",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		h.metrics.RecordStkPush("invalid_request")
		return c.Status(fiber.StatusBadRequest).JSON(StkPushResponse{
			Rescode: "1",
			Resmsg:  constants.GetErrorMessage(constants.ErrCodeMissingFields),
		})
	}

	if errs := h.validator.Validate(request); len(errs) > 0 {
		h.logger.Warn("Invalid STK push request",
			zap.String("field", errs[0].FailedField),
			zap.String("orderID", request.OrderID))
		h.metrics.RecordStkPush("invalid_request")
		return c.Status(fiber.StatusBadRequest).JSON(StkPushResponse{
			Rescode: "1",
			Resmsg:  constants.GetErrorMessage(constants.ErrCodeMissingFields),
		})
	}

	cmd := service.InitiateStkPushCommand{
		OrderID:     request.OrderID,
		PhoneNumber: request.PhoneNumber,
		Amount:      request.Amount,
	}

	resp, err := h.service.InitiateStkPush(ctx, cmd)
	if err != nil {
		h.metrics.RecordStkPush("failed")
		return err
	}

	h.metrics.RecordStkPush("accepted")

	message := resp.CustomerMessage
	if message == "" {
		message = "STK push initiated successfully"
	}

	return c.Status(fiber.StatusOK).JSON(StkPushResponse{
		Rescode:           "0",
		Resmsg:            message,
		CheckoutRequestID: resp.CheckoutRequestID,
	})
}

// Callback receives the gateway's asynchronous result. The gateway does not
// retry on a negative acknowledgment in any useful way, so everything short
// of a storage failure is acknowledged as accepted.
func (h *Handler) Callback(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var envelope daraja.CallbackEnvelope
	if err := c.BodyParser(&envelope); err != nil {
		h.logger.Warn("Failed to parse callback body",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		h.metrics.RecordCallback("unparseable")
		return c.Status(fiber.StatusOK).JSON(CallbackAck{ResultCode: 0, ResultDesc: "Accepted"})
	}

	stk := envelope.Body.StkCallback

	cmd := service.ProcessCallbackCommand{
		CheckoutRequestID: stk.CheckoutRequestID,
		ResultCode:        stk.ResultCode.String(),
		ResultDesc:        stk.ResultDesc,
	}

	if err := h.service.ProcessCallback(ctx, cmd); err != nil {
		h.metrics.RecordCallback("error")
		return c.Status(fiber.StatusInternalServerError).JSON(CallbackAck{ResultCode: 1, ResultDesc: "Error"})
	}

	h.metrics.RecordCallback("accepted")

	return c.Status(fiber.StatusOK).JSON(CallbackAck{ResultCode: 0, ResultDesc: "Accepted"})
}

func (h *Handler) Transactions(c *fiber.Ctx) error {
	ctx := c.UserContext()

	resp, err := h.service.ListTransactions(ctx, service.ListTransactionsQuery{})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(TransactionsResponse{Data: resp.Transactions})
}
