package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Cheruiyot/mpesa-services/stkgateway/internal/constants"
	"github.com/Cheruiyot/mpesa-services/stkgateway/internal/model"
	"github.com/Cheruiyot/mpesa-services/stkgateway/internal/repository"
	"github.com/Cheruiyot/mpesa-services/stkgateway/pkg/daraja"
	"go.uber.org/zap"
)

// maxListLimit caps the listing endpoint regardless of what a caller asks for.
const maxListLimit = 50

var errMissingFields = errors.New("orderId, phoneNumber and amount are required")

type PaymentWorkflowService interface {
	InitiateStkPush(ctx context.Context, cmd InitiateStkPushCommand) (InitiateStkPushResponse, error)
	ProcessCallback(ctx context.Context, cmd ProcessCallbackCommand) error
	ListTransactions(ctx context.Context, query ListTransactionsQuery) (ListTransactionsResponse, error)
}

type paymentWorkflow struct {
	transactions repository.TransactionRepository
	tokens       daraja.TokenProvider
	gateway      daraja.Gateway
	logger       *zap.Logger
}

func NewPaymentWorkflowService(transactions repository.TransactionRepository, tokens daraja.TokenProvider,
	gateway daraja.Gateway, logger *zap.Logger) PaymentWorkflowService {
	return &paymentWorkflow{transactions: transactions, tokens: tokens, gateway: gateway, logger: logger}
}

// InitiateStkPush runs the synchronous half of the payment lifecycle: fetch a
// gateway token, persist a Pending transaction, ask the gateway to prompt the
// payer, and attach the gateway correlation ids on acceptance.
//
// The Pending row is written before the gateway confirms anything. A rejection
// or transport failure after that point leaves the row Pending with no
// checkout request id; no callback will ever finalize it.
func (p *paymentWorkflow) InitiateStkPush(ctx context.Context, cmd InitiateStkPushCommand) (
	InitiateStkPushResponse, error) {

	if cmd.OrderID == "" || cmd.PhoneNumber == "" || cmd.Amount == 0 {
		return InitiateStkPushResponse{}, NewServiceError(constants.ErrCodeMissingFields, errMissingFields)
	}

	token, err := p.tokens.GetAccessToken(ctx)
	if err != nil {
		p.logger.Error("Failed to obtain gateway access token",
			zap.Error(err),
			zap.String("orderID", cmd.OrderID))
		return InitiateStkPushResponse{}, NewServiceError(constants.ErrCodeGatewayAuth, err)
	}

	transaction := model.Transaction{
		OrderID:     cmd.OrderID,
		PhoneNumber: cmd.PhoneNumber,
		Amount:      cmd.Amount,
		Status:      model.TransactionStatusPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := p.transactions.Create(ctx, &transaction); err != nil {
		p.logger.Error("Failed to persist pending transaction",
			zap.Error(err),
			zap.String("orderID", cmd.OrderID))
		return InitiateStkPushResponse{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	request := daraja.STKPushRequest{
		Amount:           cmd.Amount,
		PhoneNumber:      cmd.PhoneNumber,
		AccountReference: cmd.OrderID,
		Description:      fmt.Sprintf("Payment for order %s", cmd.OrderID),
	}

	resp, err := p.gateway.STKPush(ctx, token, request)
	if err != nil {
		if errors.Is(err, daraja.ErrRejected) {
			p.logger.Warn("Gateway rejected STK push",
				zap.Error(err),
				zap.String("orderID", cmd.OrderID))
			return InitiateStkPushResponse{}, NewServiceError(constants.ErrCodeGatewayRejected, err)
		}

		p.logger.Error("STK push call failed",
			zap.Error(err),
			zap.String("orderID", cmd.OrderID))
		return InitiateStkPushResponse{}, NewServiceError(constants.ErrCodeGatewayUnavailable, err)
	}

	update := model.Transaction{
		MerchantRequestID: &resp.MerchantRequestID,
		CheckoutRequestID: &resp.CheckoutRequestID,
		UpdatedAt:         time.Now(),
	}

	if err := p.transactions.UpdateByOrderID(ctx, cmd.OrderID, &update); err != nil {
		p.logger.Error("Failed to attach gateway ids to transaction",
			zap.Error(err),
			zap.String("orderID", cmd.OrderID),
			zap.String("checkoutRequestID", resp.CheckoutRequestID))
		return InitiateStkPushResponse{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	p.logger.Info("STK push initiated",
		zap.String("orderID", cmd.OrderID),
		zap.String("merchantRequestID", resp.MerchantRequestID),
		zap.String("checkoutRequestID", resp.CheckoutRequestID))

	return InitiateStkPushResponse{
		CheckoutRequestID: resp.CheckoutRequestID,
		CustomerMessage:   resp.CustomerMessage,
	}, nil
}

// ProcessCallback finalizes the transaction the gateway callback correlates
// to. An unknown or absent checkout request id is a no-op, not an error: the
// gateway is always acknowledged so it never retries against us.
func (p *paymentWorkflow) ProcessCallback(ctx context.Context, cmd ProcessCallbackCommand) error {
	if cmd.CheckoutRequestID == "" {
		p.logger.Warn("Callback without checkout request id, ignoring")
		return nil
	}

	_, err := p.transactions.GetByCheckoutRequestID(ctx, cmd.CheckoutRequestID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			p.logger.Warn("Callback for unknown transaction, ignoring",
				zap.String("checkoutRequestID", cmd.CheckoutRequestID))
			return nil
		}

		p.logger.Error("Failed to look up transaction for callback",
			zap.Error(err),
			zap.String("checkoutRequestID", cmd.CheckoutRequestID))
		return NewServiceError(constants.ErrCodeDatabase, err)
	}

	status := model.TransactionStatusFailed
	if cmd.ResultCode == daraja.ResultCodeSuccess {
		status = model.TransactionStatusSuccess
	}

	update := model.Transaction{
		Status:     status,
		ResultCode: &cmd.ResultCode,
		ResultDesc: &cmd.ResultDesc,
		UpdatedAt:  time.Now(),
	}

	if err := p.transactions.UpdateByCheckoutRequestID(ctx, cmd.CheckoutRequestID, &update); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			p.logger.Warn("Transaction disappeared before callback update",
				zap.String("checkoutRequestID", cmd.CheckoutRequestID))
			return nil
		}

		p.logger.Error("Failed to finalize transaction",
			zap.Error(err),
			zap.String("checkoutRequestID", cmd.CheckoutRequestID),
			zap.String("status", string(status)))
		return NewServiceError(constants.ErrCodeDatabase, err)
	}

	p.logger.Info("Transaction finalized",
		zap.String("checkoutRequestID", cmd.CheckoutRequestID),
		zap.String("status", string(status)),
		zap.String("resultCode", cmd.ResultCode))

	return nil
}

func (p *paymentWorkflow) ListTransactions(ctx context.Context, query ListTransactionsQuery) (
	ListTransactionsResponse, error) {

	limit := query.Limit
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}

	transactions, err := p.transactions.ListRecent(ctx, limit)
	if err != nil {
		p.logger.Error("Failed to list transactions", zap.Error(err))
		return ListTransactionsResponse{}, NewServiceError(constants.ErrCodeDatabase, err)
	}

	views := make([]TransactionView, 0, len(transactions))
	for _, transaction := range transactions {
		views = append(views, toTransactionView(transaction))
	}

	return ListTransactionsResponse{Transactions: views}, nil
}

func toTransactionView(transaction model.Transaction) TransactionView {
	view := TransactionView{
		OrderID:     transaction.OrderID,
		PhoneNumber: transaction.PhoneNumber,
		Amount:      transaction.Amount,
		Status:      string(transaction.Status),
		CreatedAt:   transaction.CreatedAt.UTC().Format(time.RFC3339),
	}

	if transaction.MerchantRequestID != nil {
		view.MerchantRequestID = *transaction.MerchantRequestID
	}
	if transaction.CheckoutRequestID != nil {
		view.CheckoutRequestID = *transaction.CheckoutRequestID
	}
	if transaction.ResultCode != nil {
		view.ResultCode = *transaction.ResultCode
	}
	if transaction.ResultDesc != nil {
		view.ResultDesc = *transaction.ResultDesc
	}

	return view
}
