package handlers

import (
	"errors"

	"pharmadmin/internal/labels"
	"pharmadmin/internal/services"
	"pharmadmin/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DeliveryHandler 药品入库接口
type DeliveryHandler struct {
	service *services.DeliveryService
}

func NewDeliveryHandler(service *services.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{
		service: service,
	}
}

// CreateDeliveryRequest 入库单创建请求
type CreateDeliveryRequest struct {
	MedicationID    uint    `json:"medication_id" binding:"required"`
	ApplicationDate string  `json:"application_date" binding:"required"`
	DeliveryDate    *string `json:"delivery_date"`
	Amount          float64 `json:"amount" binding:"required"`
}

// UpdateDeliveryRequest 入库单更新请求
type UpdateDeliveryRequest struct {
	MedicationID    *uint    `json:"medication_id"`
	ApplicationDate *string  `json:"application_date"`
	DeliveryDate    *string  `json:"delivery_date"`
	Amount          *float64 `json:"amount"`
}

// GetAll 获取入库单列表
func (h *DeliveryHandler) GetAll(c *gin.Context) {
	deliveries, err := h.service.GetAll()
	if err != nil {
		response.ServerError(c, "查询入库单失败")
		return
	}
	response.List(c, deliveries, labels.Deliveries)
}

// GetByID 获取入库单详情
func (h *DeliveryHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	delivery, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "入库单不存在")
			return
		}
		response.ServerError(c, "查询入库单失败")
		return
	}
	response.OK(c, delivery)
}

// Create 创建入库单
func (h *DeliveryHandler) Create(c *gin.Context) {
	var req CreateDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindDetail(err))
		return
	}

	applicationDate, err := parseDate(req.ApplicationDate)
	if err != nil {
		response.BadRequest(c, "日期格式错误，应为YYYY-MM-DD")
		return
	}
	var deliveryDate *datatypes.Date
	if req.DeliveryDate != nil && *req.DeliveryDate != "" {
		deliveryDate, err = parseDate(*req.DeliveryDate)
		if err != nil {
			response.BadRequest(c, "日期格式错误，应为YYYY-MM-DD")
			return
		}
	}

	delivery, err := h.service.Create(req.MedicationID, *applicationDate, deliveryDate, req.Amount)
	if err != nil {
		if errors.Is(err, services.ErrMedicationNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "创建入库单失败")
		return
	}
	response.OK(c, delivery)
}

// Update 更新入库单
func (h *DeliveryHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindDetail(err))
		return
	}

	update := services.DeliveryUpdate{
		MedicationID: req.MedicationID,
		Amount:       req.Amount,
	}
	if req.ApplicationDate != nil && *req.ApplicationDate != "" {
		d, err := parseDate(*req.ApplicationDate)
		if err != nil {
			response.BadRequest(c, "日期格式错误，应为YYYY-MM-DD")
			return
		}
		update.ApplicationDate = d
	}
	if req.DeliveryDate != nil && *req.DeliveryDate != "" {
		d, err := parseDate(*req.DeliveryDate)
		if err != nil {
			response.BadRequest(c, "日期格式错误，应为YYYY-MM-DD")
			return
		}
		update.DeliveryDate = d
	}

	delivery, err := h.service.Update(id, update)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "入库单不存在")
			return
		}
		if errors.Is(err, services.ErrMedicationNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "更新入库单失败")
		return
	}
	response.OK(c, delivery)
}

// Delete 删除入库单
func (h *DeliveryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "入库单不存在")
			return
		}
		response.ServerError(c, "删除入库单失败")
		return
	}
	response.NoContent(c)
}
