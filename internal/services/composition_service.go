package services

import (
	"pharmadmin/internal/database"
	"pharmadmin/internal/models"

	"gorm.io/gorm"
)

// CompositionService 药剂配方维护，联合主键 medicine_id + ingredient_id
type CompositionService struct {
	db *gorm.DB
}

func NewCompositionService() *CompositionService {
	return &CompositionService{
		db: database.GetDB(),
	}
}

// GetAll 获取全部配方
func (s *CompositionService) GetAll() ([]models.Composition, error) {
	var compositions []models.Composition
	err := s.db.Order("medicine_id, ingredient_id").Find(&compositions).Error
	return compositions, err
}

// GetByMedicine 获取指定药剂的配方
func (s *CompositionService) GetByMedicine(medicineID uint) ([]models.Composition, error) {
	// 先确认药剂存在
	var medicine models.Medicine
	if err := s.db.First(&medicine, medicineID).Error; err != nil {
		return nil, err
	}

	var compositions []models.Composition
	err := s.db.Where("medicine_id = ?", medicineID).
		Order("ingredient_id").
		Find(&compositions).Error
	return compositions, err
}

// Get 根据联合主键获取配方行
func (s *CompositionService) Get(medicineID, ingredientID uint) (*models.Composition, error) {
	var composition models.Composition
	err := s.db.Where("medicine_id = ? AND ingredient_id = ?", medicineID, ingredientID).
		First(&composition).Error
	return &composition, err
}

// Create 新增配方行，已存在时更新用量
func (s *CompositionService) Create(medicineID, ingredientID uint, amount float64) (*models.Composition, error) {
	var medicine models.Medicine
	if err := s.db.First(&medicine, medicineID).Error; err != nil {
		return nil, ErrMedicineNotFound
	}
	var ingredient models.Ingredient
	if err := s.db.First(&ingredient, ingredientID).Error; err != nil {
		return nil, ErrIngredientNotFound
	}

	composition := &models.Composition{
		MedicineID:   medicineID,
		IngredientID: ingredientID,
		Amount:       amount,
	}
	err := s.db.Where("medicine_id = ? AND ingredient_id = ?", medicineID, ingredientID).
		Assign("amount", amount).
		FirstOrCreate(composition).Error
	if err != nil {
		return nil, err
	}
	return composition, nil
}

// Update 更新配方用量
func (s *CompositionService) Update(medicineID, ingredientID uint, amount float64) (*models.Composition, error) {
	composition, err := s.Get(medicineID, ingredientID)
	if err != nil {
		return nil, err
	}
	composition.Amount = amount
	err = s.db.Model(&models.Composition{}).
		Where("medicine_id = ? AND ingredient_id = ?", medicineID, ingredientID).
		Update("amount", amount).Error
	if err != nil {
		return nil, err
	}
	return composition, nil
}

// Delete 删除配方行
func (s *CompositionService) Delete(medicineID, ingredientID uint) error {
	if _, err := s.Get(medicineID, ingredientID); err != nil {
		return err
	}
	return s.db.Where("medicine_id = ? AND ingredient_id = ?", medicineID, ingredientID).
		Delete(&models.Composition{}).Error
}
