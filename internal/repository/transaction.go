package repository

import (
	"context"
	"errors"

	"github.com/Cheruiyot/mpesa-services/stkgateway/internal/model"
	"gorm.io/gorm"
)

var ErrTransactionNotFound = errors.New("TRANSACTION_NOT_FOUND")
var ErrNoRowsAffected = errors.New("NO_ROWS_AFFECTED")

type TransactionRepository interface {
	Create(ctx context.Context, transaction *model.Transaction) error
	GetByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (*model.Transaction, error)
	UpdateByOrderID(ctx context.Context, orderID string, transaction *model.Transaction) error
	UpdateByCheckoutRequestID(ctx context.Context, checkoutRequestID string, transaction *model.Transaction) error
	ListRecent(ctx context.Context, limit int) ([]model.Transaction, error)
}

type Transaction struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &Transaction{db: db}
}

func (t *Transaction) Create(ctx context.Context, transaction *model.Transaction) error {
	return t.db.WithContext(ctx).Create(transaction).Error
}

func (t *Transaction) GetByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (*model.Transaction, error) {
	var transaction model.Transaction

	err := t.db.WithContext(ctx).
		Where("checkout_request_id = ?", checkoutRequestID).
		First(&transaction).Error
	if err == nil {
		return &transaction, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	}

	return nil, err
}

func (t *Transaction) UpdateByOrderID(ctx context.Context, orderID string, transaction *model.Transaction) error {
	result := t.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Where("order_id = ?", orderID).
		Updates(transaction)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

func (t *Transaction) UpdateByCheckoutRequestID(ctx context.Context, checkoutRequestID string, transaction *model.Transaction) error {
	result := t.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Where("checkout_request_id = ?", checkoutRequestID).
		Updates(transaction)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

func (t *Transaction) ListRecent(ctx context.Context, limit int) ([]model.Transaction, error) {
	var transactions []model.Transaction

	err := t.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
