package services

import (
	"pharmadmin/internal/database"
	"pharmadmin/internal/models"

	"gorm.io/gorm"
)

// MedicationService 药品总表只读查询
type MedicationService struct {
	db *gorm.DB
}

func NewMedicationService() *MedicationService {
	return &MedicationService{
		db: database.GetDB(),
	}
}

// GetAll 获取全部药品
func (s *MedicationService) GetAll() ([]models.Medication, error) {
	var medications []models.Medication
	err := s.db.Order("id").Find(&medications).Error
	return medications, err
}

// GetByID 根据ID获取药品
func (s *MedicationService) GetByID(id uint) (*models.Medication, error) {
	var medication models.Medication
	err := s.db.First(&medication, id).Error
	return &medication, err
}
