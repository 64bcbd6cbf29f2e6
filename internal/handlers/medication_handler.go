package handlers

import (
	"errors"
	"strconv"

	"pharmadmin/internal/labels"
	"pharmadmin/internal/services"
	"pharmadmin/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MedicationHandler 药品总表接口，只读
type MedicationHandler struct {
	service *services.MedicationService
}

func NewMedicationHandler(service *services.MedicationService) *MedicationHandler {
	return &MedicationHandler{
		service: service,
	}
}

// parseID 解析路径中的记录ID
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID格式错误")
		return 0, false
	}
	return uint(id), true
}

// GetAll 获取药品列表
func (h *MedicationHandler) GetAll(c *gin.Context) {
	medications, err := h.service.GetAll()
	if err != nil {
		response.ServerError(c, "查询药品失败")
		return
	}
	response.List(c, medications, labels.Medications)
}

// GetByID 获取药品详情
func (h *MedicationHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	medication, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "药品不存在")
			return
		}
		response.ServerError(c, "查询药品失败")
		return
	}
	response.OK(c, medication)
}
