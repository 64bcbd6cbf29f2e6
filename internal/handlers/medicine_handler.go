package handlers

import (
	"errors"

	"pharmadmin/internal/labels"
	"pharmadmin/internal/services"
	"pharmadmin/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MedicineHandler 药剂接口，只读
type MedicineHandler struct {
	service *services.MedicineService
}

func NewMedicineHandler(service *services.MedicineService) *MedicineHandler {
	return &MedicineHandler{
		service: service,
	}
}

// GetAll 获取药剂列表
func (h *MedicineHandler) GetAll(c *gin.Context) {
	medicines, err := h.service.GetAll()
	if err != nil {
		response.ServerError(c, "查询药剂失败")
		return
	}
	response.List(c, medicines, labels.Medicines)
}

// GetByID 获取药剂详情
func (h *MedicineHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	medicine, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "药剂不存在")
			return
		}
		response.ServerError(c, "查询药剂失败")
		return
	}
	response.OK(c, medicine)
}
