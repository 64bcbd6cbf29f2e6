package database

import (
	"pharmadmin/internal/models"
	"pharmadmin/pkg/logger"
)

// Migrate 执行数据库迁移
func Migrate() error {
	appLogger := logger.GetLogger()
	appLogger.Info("Starting database migration...")

	// 父表在前，外键依赖的表在后
	err := DB.AutoMigrate(
		&models.Technology{},
		&models.Medication{},
		&models.Ingredient{},
		&models.Medicine{},
		&models.Composition{},
		&models.Client{},
		&models.Prescription{},
		&models.Order{},
		&models.StockDelivery{},
		&models.Inventory{},
	)
	if err != nil {
		appLogger.Errorf("Database migration failed: %v", err)
		return err
	}

	appLogger.Info("Database migration completed successfully")
	return nil
}
