package services

import (
	"pharmadmin/internal/database"
	"pharmadmin/internal/models"

	"gorm.io/gorm"
)

// MedicineService 药剂只读查询，列表行为公共列与扩展列的拼接
type MedicineService struct {
	db *gorm.DB
}

func NewMedicineService() *MedicineService {
	return &MedicineService{
		db: database.GetDB(),
	}
}

// GetAll 获取全部药剂
func (s *MedicineService) GetAll() ([]models.MedicineView, error) {
	var medicines []models.MedicineView
	err := s.db.Table("medications").
		Select("medications.*, medicines.type, medicines.kind, medicines.application, medicines.tech_prep_id").
		Joins("JOIN medicines ON medicines.id = medications.id").
		Order("medications.id").
		Scan(&medicines).Error
	return medicines, err
}

// GetByID 根据ID获取药剂
func (s *MedicineService) GetByID(id uint) (*models.MedicineView, error) {
	var medicine models.MedicineView
	err := s.db.Table("medications").
		Select("medications.*, medicines.type, medicines.kind, medicines.application, medicines.tech_prep_id").
		Joins("JOIN medicines ON medicines.id = medications.id").
		Where("medications.id = ?", id).
		Scan(&medicine).Error
	if err != nil {
		return nil, err
	}
	if medicine.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &medicine, nil
}
