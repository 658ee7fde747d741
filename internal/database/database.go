package database

import (
	"context"

	"github.com/Cheruiyot/mpesa-services/stkgateway/internal/config"
	"github.com/Cheruiyot/mpesa-services/stkgateway/internal/model"
	"github.com/Cheruiyot/mpesa-services/stkgateway/pkg/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewConnection(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := mysql.NewConnection(context.Background(), cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.Transaction{}); err != nil {
		return nil, err
	}

	return db, nil
}
