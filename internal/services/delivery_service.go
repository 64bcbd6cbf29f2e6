package services

import (
	"pharmadmin/internal/database"
	"pharmadmin/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DeliveryService 药品入库维护。
// 到货的入库单在同一事务里累加药品当前库存。
type DeliveryService struct {
	db *gorm.DB
}

func NewDeliveryService() *DeliveryService {
	return &DeliveryService{
		db: database.GetDB(),
	}
}

// GetAll 获取全部入库单
func (s *DeliveryService) GetAll() ([]models.StockDelivery, error) {
	var deliveries []models.StockDelivery
	err := s.db.Order("id").Find(&deliveries).Error
	return deliveries, err
}

// GetByID 根据ID获取入库单
func (s *DeliveryService) GetByID(id uint) (*models.StockDelivery, error) {
	var delivery models.StockDelivery
	err := s.db.First(&delivery, id).Error
	return &delivery, err
}

// Create 创建入库单，已到货时同步累加库存
func (s *DeliveryService) Create(medicationID uint, applicationDate datatypes.Date, deliveryDate *datatypes.Date, amount float64) (*models.StockDelivery, error) {
	var medication models.Medication
	if err := s.db.First(&medication, medicationID).Error; err != nil {
		return nil, ErrMedicationNotFound
	}

	delivery := &models.StockDelivery{
		MedicationID:    medicationID,
		ApplicationDate: applicationDate,
		DeliveryDate:    deliveryDate,
		Amount:          amount,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(delivery).Error; err != nil {
			return err
		}
		if deliveryDate != nil {
			return tx.Model(&models.Medication{}).
				Where("id = ?", medicationID).
				Update("current_amount", gorm.Expr("current_amount + ?", amount)).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return delivery, nil
}

// DeliveryUpdate 入库单更新数据，nil字段不修改
type DeliveryUpdate struct {
	MedicationID    *uint
	ApplicationDate *datatypes.Date
	DeliveryDate    *datatypes.Date
	Amount          *float64
}

// Update 更新入库单。到货日期从空变为有值时视为到货，累加库存
func (s *DeliveryService) Update(id uint, update DeliveryUpdate) (*models.StockDelivery, error) {
	delivery, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	arrived := delivery.DeliveryDate == nil && update.DeliveryDate != nil

	if update.MedicationID != nil {
		var medication models.Medication
		if err := s.db.First(&medication, *update.MedicationID).Error; err != nil {
			return nil, ErrMedicationNotFound
		}
		delivery.MedicationID = *update.MedicationID
	}
	if update.ApplicationDate != nil {
		delivery.ApplicationDate = *update.ApplicationDate
	}
	if update.DeliveryDate != nil {
		delivery.DeliveryDate = update.DeliveryDate
	}
	if update.Amount != nil {
		delivery.Amount = *update.Amount
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(delivery).Error; err != nil {
			return err
		}
		if arrived {
			return tx.Model(&models.Medication{}).
				Where("id = ?", delivery.MedicationID).
				Update("current_amount", gorm.Expr("current_amount + ?", delivery.Amount)).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return delivery, nil
}

// Delete 删除入库单
func (s *DeliveryService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.db.Delete(&models.StockDelivery{}, id).Error
}
