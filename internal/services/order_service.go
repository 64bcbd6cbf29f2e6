package services

import (
	"time"

	"pharmadmin/internal/database"
	"pharmadmin/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderService 订单维护。
// start_data和expected_date_of_issue由服务端计算：
// 开始时间取当前时间，预计发放日期加上药剂制备工艺的周期天数。
type OrderService struct {
	db *gorm.DB
}

func NewOrderService() *OrderService {
	return &OrderService{
		db: database.GetDB(),
	}
}

// GetAll 获取全部订单
func (s *OrderService) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Order("id").Find(&orders).Error
	return orders, err
}

// GetByID 根据ID获取订单
func (s *OrderService) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := s.db.First(&order, id).Error
	return &order, err
}

// OrderInput 订单创建数据
type OrderInput struct {
	PrescriptionID uint
	ClientID       uint
	OrderNumber    int
	Status         string
	DateOfIssue    *datatypes.Date
	Cost           float64
}

// Create 创建订单
func (s *OrderService) Create(input OrderInput) (*models.Order, error) {
	var prescription models.Prescription
	if err := s.db.First(&prescription, input.PrescriptionID).Error; err != nil {
		return nil, ErrPrescriptionNotFound
	}
	var client models.Client
	if err := s.db.First(&client, input.ClientID).Error; err != nil {
		return nil, ErrClientNotFound
	}

	startData := time.Now()
	expected := startData

	// 制备周期来自处方药剂的工艺；没有关联工艺时预计日期即开始时间
	var medicine models.Medicine
	if err := s.db.First(&medicine, prescription.MedicineID).Error; err == nil && medicine.TechPrepID != nil {
		var technology models.Technology
		if err := s.db.First(&technology, *medicine.TechPrepID).Error; err == nil {
			expected = startData.AddDate(0, 0, technology.PreparationTime)
		}
	}

	order := &models.Order{
		PrescriptionID:      input.PrescriptionID,
		ClientID:            input.ClientID,
		OrderNumber:         input.OrderNumber,
		Status:              input.Status,
		DateOfIssue:         input.DateOfIssue,
		StartData:           &startData,
		ExpectedDateOfIssue: &expected,
		Cost:                input.Cost,
	}
	if err := s.db.Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// OrderUpdate 订单更新数据，nil字段不修改
type OrderUpdate struct {
	PrescriptionID      *uint
	ClientID            *uint
	OrderNumber         *int
	Status              *string
	DateOfIssue         *datatypes.Date
	StartData           *time.Time
	ExpectedDateOfIssue *time.Time
	Cost                *float64
}

// Update 更新订单
func (s *OrderService) Update(id uint, update OrderUpdate) (*models.Order, error) {
	order, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.PrescriptionID != nil {
		var prescription models.Prescription
		if err := s.db.First(&prescription, *update.PrescriptionID).Error; err != nil {
			return nil, ErrPrescriptionNotFound
		}
		order.PrescriptionID = *update.PrescriptionID
	}
	if update.ClientID != nil {
		var client models.Client
		if err := s.db.First(&client, *update.ClientID).Error; err != nil {
			return nil, ErrClientNotFound
		}
		order.ClientID = *update.ClientID
	}
	if update.OrderNumber != nil {
		order.OrderNumber = *update.OrderNumber
	}
	if update.Status != nil {
		order.Status = *update.Status
	}
	if update.DateOfIssue != nil {
		order.DateOfIssue = update.DateOfIssue
	}
	if update.StartData != nil {
		order.StartData = update.StartData
	}
	if update.ExpectedDateOfIssue != nil {
		order.ExpectedDateOfIssue = update.ExpectedDateOfIssue
	}
	if update.Cost != nil {
		order.Cost = *update.Cost
	}

	if err := s.db.Save(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// Delete 删除订单
func (s *OrderService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.db.Delete(&models.Order{}, id).Error
}
