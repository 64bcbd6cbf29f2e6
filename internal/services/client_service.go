package services

import (
	"pharmadmin/internal/database"
	"pharmadmin/internal/models"

	"gorm.io/gorm"
)

// ClientService 客户维护
type ClientService struct {
	db *gorm.DB
}

func NewClientService() *ClientService {
	return &ClientService{
		db: database.GetDB(),
	}
}

// GetAll 获取全部客户
func (s *ClientService) GetAll() ([]models.Client, error) {
	var clients []models.Client
	err := s.db.Order("id").Find(&clients).Error
	return clients, err
}

// GetByID 根据ID获取客户
func (s *ClientService) GetByID(id uint) (*models.Client, error) {
	var client models.Client
	err := s.db.First(&client, id).Error
	return &client, err
}

// Search 按姓名和电话精确查找客户，父称可以为空
func (s *ClientService) Search(surname, name string, patronymic *string, phoneNumber string) (*models.Client, error) {
	query := s.db.Where("surname = ? AND name = ? AND phone_number = ?", surname, name, phoneNumber)
	if patronymic != nil {
		query = query.Where("patronymic = ?", *patronymic)
	} else {
		query = query.Where("patronymic IS NULL")
	}

	var client models.Client
	err := query.First(&client).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// Create 新建客户
func (s *ClientService) Create(surname, name string, patronymic *string, phoneNumber string) (*models.Client, error) {
	client := &models.Client{
		Surname:     surname,
		Name:        name,
		Patronymic:  patronymic,
		PhoneNumber: phoneNumber,
	}
	if err := s.db.Create(client).Error; err != nil {
		return nil, err
	}
	return client, nil
}

// FindOrCreate 查找客户，不存在时创建。处方录入时内嵌客户信息走这里
func (s *ClientService) FindOrCreate(surname, name string, patronymic *string, phoneNumber string) (*models.Client, error) {
	client, err := s.Search(surname, name, patronymic, phoneNumber)
	if err == nil {
		return client, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	return s.Create(surname, name, patronymic, phoneNumber)
}

// Update 更新客户，只修改提供的字段
func (s *ClientService) Update(id uint, surname, name, patronymic, phoneNumber *string) (*models.Client, error) {
	client, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if surname != nil {
		client.Surname = *surname
	}
	if name != nil {
		client.Name = *name
	}
	if patronymic != nil {
		client.Patronymic = patronymic
	}
	if phoneNumber != nil {
		client.PhoneNumber = *phoneNumber
	}
	if err := s.db.Save(client).Error; err != nil {
		return nil, err
	}
	return client, nil
}

// Delete 删除客户
func (s *ClientService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.db.Delete(&models.Client{}, id).Error
}
