package models

// Client 客户
type Client struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Surname     string  `json:"surname" gorm:"not null;size:100;index"`
	Name        string  `json:"name" gorm:"not null;size:100"`
	Patronymic  *string `json:"patronymic" gorm:"size:100"`
	PhoneNumber string  `json:"phone_number" gorm:"not null;size:20"`
}

// TableName 表名
func (c *Client) TableName() string {
	return "clients"
}

// Prescription 处方
type Prescription struct {
	ID                 uint    `json:"id" gorm:"primaryKey"`
	ClientID           uint    `json:"client_id" gorm:"not null;index"`
	MedicineID         uint    `json:"medicine_id" gorm:"not null;index"`
	PrescriptionNumber int     `json:"prescription_number" gorm:"not null"`
	DoctorSurname      string  `json:"doctor_surname" gorm:"size:100"`
	DoctorName         string  `json:"doctor_name" gorm:"size:100"`
	DoctorPatronymic   *string `json:"doctor_patronymic" gorm:"size:100"`
	Signature          bool    `json:"signature" gorm:"default:true"`
	Stamp              bool    `json:"stamp" gorm:"default:true"`
	Age                int     `json:"age"`
	Diagnosis          string  `json:"diagnosis" gorm:"size:500"`
	Amount             float64 `json:"amount"`
	Application        string  `json:"application" gorm:"size:200"`
}

// TableName 表名
func (p *Prescription) TableName() string {
	return "prescriptions"
}
