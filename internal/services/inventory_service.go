package services

import (
	"pharmadmin/internal/database"
	"pharmadmin/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// InventoryService 库存盘点维护。
// 盘点记录以实点数量为准，在同一事务里校正药品当前库存。
type InventoryService struct {
	db *gorm.DB
}

func NewInventoryService() *InventoryService {
	return &InventoryService{
		db: database.GetDB(),
	}
}

// GetAll 获取全部盘点记录
func (s *InventoryService) GetAll() ([]models.Inventory, error) {
	var inventories []models.Inventory
	err := s.db.Order("id").Find(&inventories).Error
	return inventories, err
}

// GetByID 根据ID获取盘点记录
func (s *InventoryService) GetByID(id uint) (*models.Inventory, error) {
	var inventory models.Inventory
	err := s.db.First(&inventory, id).Error
	return &inventory, err
}

// Create 创建盘点记录并把库存校正为实点数量
func (s *InventoryService) Create(medicationID uint, inventoryDate datatypes.Date, amount float64) (*models.Inventory, error) {
	var medication models.Medication
	if err := s.db.First(&medication, medicationID).Error; err != nil {
		return nil, ErrMedicationNotFound
	}

	inventory := &models.Inventory{
		MedicationID:  medicationID,
		InventoryDate: inventoryDate,
		Amount:        amount,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(inventory).Error; err != nil {
			return err
		}
		return tx.Model(&models.Medication{}).
			Where("id = ?", medicationID).
			Update("current_amount", amount).Error
	})
	if err != nil {
		return nil, err
	}
	return inventory, nil
}

// InventoryUpdate 盘点更新数据，nil字段不修改
type InventoryUpdate struct {
	MedicationID  *uint
	InventoryDate *datatypes.Date
	Amount        *float64
}

// Update 更新盘点记录
func (s *InventoryService) Update(id uint, update InventoryUpdate) (*models.Inventory, error) {
	inventory, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.MedicationID != nil {
		var medication models.Medication
		if err := s.db.First(&medication, *update.MedicationID).Error; err != nil {
			return nil, ErrMedicationNotFound
		}
		inventory.MedicationID = *update.MedicationID
	}
	if update.InventoryDate != nil {
		inventory.InventoryDate = *update.InventoryDate
	}
	if update.Amount != nil {
		inventory.Amount = *update.Amount
	}

	if err := s.db.Save(inventory).Error; err != nil {
		return nil, err
	}
	return inventory, nil
}

// Delete 删除盘点记录
func (s *InventoryService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.db.Delete(&models.Inventory{}, id).Error
}
