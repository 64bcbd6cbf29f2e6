package handlers

import (
	"errors"

	"pharmadmin/internal/labels"
	"pharmadmin/internal/services"
	"pharmadmin/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PrescriptionHandler 处方接口。
// 创建请求携带客户信息而不是client_id，客户档案由服务端查找或建立。
type PrescriptionHandler struct {
	service *services.PrescriptionService
}

func NewPrescriptionHandler(service *services.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{
		service: service,
	}
}

// CreatePrescriptionRequest 处方录入请求
type CreatePrescriptionRequest struct {
	Name               string  `json:"name" binding:"required"`
	Surname            string  `json:"surname" binding:"required"`
	Patronymic         *string `json:"patronymic"`
	PhoneNumber        string  `json:"phone_number" binding:"required"`
	MedicineID         uint    `json:"medicine_id" binding:"required"`
	PrescriptionNumber int     `json:"prescription_number" binding:"required"`
	DoctorSurname      string  `json:"doctor_surname" binding:"required"`
	DoctorName         string  `json:"doctor_name" binding:"required"`
	DoctorPatronymic   *string `json:"doctor_patronymic"`
	Signature          *bool   `json:"signature"`
	Stamp              *bool   `json:"stamp"`
	Age                int     `json:"age" binding:"required"`
	Diagnosis          string  `json:"diagnosis" binding:"required"`
	Amount             float64 `json:"amount" binding:"required"`
	Application        string  `json:"application" binding:"required"`
}

// UpdatePrescriptionRequest 处方更新请求
type UpdatePrescriptionRequest struct {
	ClientID           *uint    `json:"client_id"`
	MedicineID         *uint    `json:"medicine_id"`
	PrescriptionNumber *int     `json:"prescription_number"`
	DoctorSurname      *string  `json:"doctor_surname"`
	DoctorName         *string  `json:"doctor_name"`
	DoctorPatronymic   *string  `json:"doctor_patronymic"`
	Signature          *bool    `json:"signature"`
	Stamp              *bool    `json:"stamp"`
	Age                *int     `json:"age"`
	Diagnosis          *string  `json:"diagnosis"`
	Amount             *float64 `json:"amount"`
	Application        *string  `json:"application"`
}

// GetAll 获取处方列表
func (h *PrescriptionHandler) GetAll(c *gin.Context) {
	prescriptions, err := h.service.GetAll()
	if err != nil {
		response.ServerError(c, "查询处方失败")
		return
	}
	response.List(c, prescriptions, labels.Prescriptions)
}

// GetByID 获取处方详情
func (h *PrescriptionHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	prescription, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "处方不存在")
			return
		}
		response.ServerError(c, "查询处方失败")
		return
	}
	response.OK(c, prescription)
}

// Create 录入处方
func (h *PrescriptionHandler) Create(c *gin.Context) {
	var req CreatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindDetail(err))
		return
	}

	// 签名和盖章缺省视为有
	signature, stamp := true, true
	if req.Signature != nil {
		signature = *req.Signature
	}
	if req.Stamp != nil {
		stamp = *req.Stamp
	}

	prescription, err := h.service.Create(services.PrescriptionInput{
		Name:               req.Name,
		Surname:            req.Surname,
		Patronymic:         req.Patronymic,
		PhoneNumber:        req.PhoneNumber,
		MedicineID:         req.MedicineID,
		PrescriptionNumber: req.PrescriptionNumber,
		DoctorSurname:      req.DoctorSurname,
		DoctorName:         req.DoctorName,
		DoctorPatronymic:   req.DoctorPatronymic,
		Signature:          signature,
		Stamp:              stamp,
		Age:                req.Age,
		Diagnosis:          req.Diagnosis,
		Amount:             req.Amount,
		Application:        req.Application,
	})
	if err != nil {
		if errors.Is(err, services.ErrMedicineNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "录入处方失败")
		return
	}
	response.OK(c, prescription)
}

// Update 更新处方
func (h *PrescriptionHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindDetail(err))
		return
	}
	prescription, err := h.service.Update(id, services.PrescriptionUpdate{
		ClientID:           req.ClientID,
		MedicineID:         req.MedicineID,
		PrescriptionNumber: req.PrescriptionNumber,
		DoctorSurname:      req.DoctorSurname,
		DoctorName:         req.DoctorName,
		DoctorPatronymic:   req.DoctorPatronymic,
		Signature:          req.Signature,
		Stamp:              req.Stamp,
		Age:                req.Age,
		Diagnosis:          req.Diagnosis,
		Amount:             req.Amount,
		Application:        req.Application,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "处方不存在")
			return
		}
		if errors.Is(err, services.ErrClientNotFound) || errors.Is(err, services.ErrMedicineNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "更新处方失败")
		return
	}
	response.OK(c, prescription)
}

// Delete 删除处方
func (h *PrescriptionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "处方不存在")
			return
		}
		response.ServerError(c, "删除处方失败")
		return
	}
	response.NoContent(c)
}
