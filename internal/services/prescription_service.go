package services

import (
	"pharmadmin/internal/database"
	"pharmadmin/internal/models"

	"gorm.io/gorm"
)

// PrescriptionService 处方维护。
// 录入表单填的是客户信息而不是外键，客户不存在时顺带建档。
type PrescriptionService struct {
	db      *gorm.DB
	clients *ClientService
}

func NewPrescriptionService(clients *ClientService) *PrescriptionService {
	return &PrescriptionService{
		db:      database.GetDB(),
		clients: clients,
	}
}

// PrescriptionInput 处方录入数据
type PrescriptionInput struct {
	Name               string
	Surname            string
	Patronymic         *string
	PhoneNumber        string
	MedicineID         uint
	PrescriptionNumber int
	DoctorSurname      string
	DoctorName         string
	DoctorPatronymic   *string
	Signature          bool
	Stamp              bool
	Age                int
	Diagnosis          string
	Amount             float64
	Application        string
}

// GetAll 获取全部处方
func (s *PrescriptionService) GetAll() ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := s.db.Order("id").Find(&prescriptions).Error
	return prescriptions, err
}

// GetByID 根据ID获取处方
func (s *PrescriptionService) GetByID(id uint) (*models.Prescription, error) {
	var prescription models.Prescription
	err := s.db.First(&prescription, id).Error
	return &prescription, err
}

// Create 录入处方
func (s *PrescriptionService) Create(input PrescriptionInput) (*models.Prescription, error) {
	var medicine models.Medicine
	if err := s.db.First(&medicine, input.MedicineID).Error; err != nil {
		return nil, ErrMedicineNotFound
	}

	client, err := s.clients.FindOrCreate(input.Surname, input.Name, input.Patronymic, input.PhoneNumber)
	if err != nil {
		return nil, err
	}

	prescription := &models.Prescription{
		ClientID:           client.ID,
		MedicineID:         input.MedicineID,
		PrescriptionNumber: input.PrescriptionNumber,
		DoctorSurname:      input.DoctorSurname,
		DoctorName:         input.DoctorName,
		DoctorPatronymic:   input.DoctorPatronymic,
		Signature:          input.Signature,
		Stamp:              input.Stamp,
		Age:                input.Age,
		Diagnosis:          input.Diagnosis,
		Amount:             input.Amount,
		Application:        input.Application,
	}
	if err := s.db.Create(prescription).Error; err != nil {
		return nil, err
	}
	return prescription, nil
}

// PrescriptionUpdate 处方更新数据，nil字段不修改
type PrescriptionUpdate struct {
	ClientID           *uint
	MedicineID         *uint
	PrescriptionNumber *int
	DoctorSurname      *string
	DoctorName         *string
	DoctorPatronymic   *string
	Signature          *bool
	Stamp              *bool
	Age                *int
	Diagnosis          *string
	Amount             *float64
	Application        *string
}

// Update 更新处方
func (s *PrescriptionService) Update(id uint, update PrescriptionUpdate) (*models.Prescription, error) {
	prescription, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.ClientID != nil {
		if _, err := s.clients.GetByID(*update.ClientID); err != nil {
			return nil, ErrClientNotFound
		}
		prescription.ClientID = *update.ClientID
	}
	if update.MedicineID != nil {
		var medicine models.Medicine
		if err := s.db.First(&medicine, *update.MedicineID).Error; err != nil {
			return nil, ErrMedicineNotFound
		}
		prescription.MedicineID = *update.MedicineID
	}
	if update.PrescriptionNumber != nil {
		prescription.PrescriptionNumber = *update.PrescriptionNumber
	}
	if update.DoctorSurname != nil {
		prescription.DoctorSurname = *update.DoctorSurname
	}
	if update.DoctorName != nil {
		prescription.DoctorName = *update.DoctorName
	}
	if update.DoctorPatronymic != nil {
		prescription.DoctorPatronymic = update.DoctorPatronymic
	}
	if update.Signature != nil {
		prescription.Signature = *update.Signature
	}
	if update.Stamp != nil {
		prescription.Stamp = *update.Stamp
	}
	if update.Age != nil {
		prescription.Age = *update.Age
	}
	if update.Diagnosis != nil {
		prescription.Diagnosis = *update.Diagnosis
	}
	if update.Amount != nil {
		prescription.Amount = *update.Amount
	}
	if update.Application != nil {
		prescription.Application = *update.Application
	}

	if err := s.db.Save(prescription).Error; err != nil {
		return nil, err
	}
	return prescription, nil
}

// Delete 删除处方
func (s *PrescriptionService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.db.Delete(&models.Prescription{}, id).Error
}
