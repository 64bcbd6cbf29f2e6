package handlers

import (
	"errors"

	"pharmadmin/internal/labels"
	"pharmadmin/internal/services"
	"pharmadmin/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// InventoryHandler 库存盘点接口
type InventoryHandler struct {
	service *services.InventoryService
}

func NewInventoryHandler(service *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		service: service,
	}
}

// CreateInventoryRequest 盘点创建请求
type CreateInventoryRequest struct {
	MedicationID  uint    `json:"medication_id" binding:"required"`
	InventoryDate string  `json:"inventory_date" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
}

// UpdateInventoryRequest 盘点更新请求
type UpdateInventoryRequest struct {
	MedicationID  *uint    `json:"medication_id"`
	InventoryDate *string  `json:"inventory_date"`
	Amount        *float64 `json:"amount"`
}

// GetAll 获取盘点记录列表
func (h *InventoryHandler) GetAll(c *gin.Context) {
	inventories, err := h.service.GetAll()
	if err != nil {
		response.ServerError(c, "查询盘点记录失败")
		return
	}
	response.List(c, inventories, labels.Inventories)
}

// GetByID 获取盘点记录详情
func (h *InventoryHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	inventory, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "盘点记录不存在")
			return
		}
		response.ServerError(c, "查询盘点记录失败")
		return
	}
	response.OK(c, inventory)
}

// Create 创建盘点记录
func (h *InventoryHandler) Create(c *gin.Context) {
	var req CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindDetail(err))
		return
	}

	inventoryDate, err := parseDate(req.InventoryDate)
	if err != nil {
		response.BadRequest(c, "日期格式错误，应为YYYY-MM-DD")
		return
	}

	inventory, err := h.service.Create(req.MedicationID, *inventoryDate, req.Amount)
	if err != nil {
		if errors.Is(err, services.ErrMedicationNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "创建盘点记录失败")
		return
	}
	response.OK(c, inventory)
}

// Update 更新盘点记录
func (h *InventoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindDetail(err))
		return
	}

	update := services.InventoryUpdate{
		MedicationID: req.MedicationID,
		Amount:       req.Amount,
	}
	if req.InventoryDate != nil && *req.InventoryDate != "" {
		d, err := parseDate(*req.InventoryDate)
		if err != nil {
			response.BadRequest(c, "日期格式错误，应为YYYY-MM-DD")
			return
		}
		update.InventoryDate = d
	}

	inventory, err := h.service.Update(id, update)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "盘点记录不存在")
			return
		}
		if errors.Is(err, services.ErrMedicationNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "更新盘点记录失败")
		return
	}
	response.OK(c, inventory)
}

// Delete 删除盘点记录
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "盘点记录不存在")
			return
		}
		response.ServerError(c, "删除盘点记录失败")
		return
	}
	response.NoContent(c)
}
