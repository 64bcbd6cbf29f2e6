package services

import (
	"pharmadmin/internal/database"
	"pharmadmin/internal/models"

	"gorm.io/gorm"
)

// IngredientService 原料只读查询
type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService() *IngredientService {
	return &IngredientService{
		db: database.GetDB(),
	}
}

// GetAll 获取全部原料
func (s *IngredientService) GetAll() ([]models.IngredientView, error) {
	var ingredients []models.IngredientView
	err := s.db.Table("medications").
		Select("medications.*, ingredients.type, ingredients.caution, ingredients.incompatibility").
		Joins("JOIN ingredients ON ingredients.id = medications.id").
		Order("medications.id").
		Scan(&ingredients).Error
	return ingredients, err
}

// GetByID 根据ID获取原料
func (s *IngredientService) GetByID(id uint) (*models.IngredientView, error) {
	var ingredient models.IngredientView
	err := s.db.Table("medications").
		Select("medications.*, ingredients.type, ingredients.caution, ingredients.incompatibility").
		Joins("JOIN ingredients ON ingredients.id = medications.id").
		Where("medications.id = ?", id).
		Scan(&ingredient).Error
	if err != nil {
		return nil, err
	}
	if ingredient.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &ingredient, nil
}
