package services

import (
	"pharmadmin/internal/database"
	"pharmadmin/internal/models"

	"gorm.io/gorm"
)

// TechnologyService 制备工艺维护
type TechnologyService struct {
	db *gorm.DB
}

func NewTechnologyService() *TechnologyService {
	return &TechnologyService{
		db: database.GetDB(),
	}
}

// GetAll 获取全部制备工艺
func (s *TechnologyService) GetAll() ([]models.Technology, error) {
	var technologies []models.Technology
	err := s.db.Order("id").Find(&technologies).Error
	return technologies, err
}

// GetByID 根据ID获取制备工艺
func (s *TechnologyService) GetByID(id uint) (*models.Technology, error) {
	var technology models.Technology
	err := s.db.First(&technology, id).Error
	return &technology, err
}

// Create 新建制备工艺
func (s *TechnologyService) Create(description string, preparationTime int) (*models.Technology, error) {
	technology := &models.Technology{
		Description:     description,
		PreparationTime: preparationTime,
	}
	if err := s.db.Create(technology).Error; err != nil {
		return nil, err
	}
	return technology, nil
}

// Update 更新制备工艺，只修改提供的字段
func (s *TechnologyService) Update(id uint, description *string, preparationTime *int) (*models.Technology, error) {
	technology, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if description != nil {
		technology.Description = *description
	}
	if preparationTime != nil {
		technology.PreparationTime = *preparationTime
	}
	if err := s.db.Save(technology).Error; err != nil {
		return nil, err
	}
	return technology, nil
}

// Delete 删除制备工艺
func (s *TechnologyService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.db.Delete(&models.Technology{}, id).Error
}
