package handlers

import (
	"errors"
	"time"

	"pharmadmin/internal/labels"
	"pharmadmin/internal/services"
	"pharmadmin/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderHandler 订单接口
type OrderHandler struct {
	service *services.OrderService
}

func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// CreateOrderRequest 订单创建请求。
// start_data与expected_date_of_issue由服务端计算，请求中不接收。
type CreateOrderRequest struct {
	PrescriptionID uint    `json:"prescription_id" binding:"required"`
	ClientID       uint    `json:"client_id" binding:"required"`
	OrderNumber    int     `json:"order_number" binding:"required"`
	Status         string  `json:"status" binding:"required"`
	DateOfIssue    *string `json:"date_of_issue"`
	Cost           float64 `json:"cost" binding:"required"`
}

// UpdateOrderRequest 订单更新请求
type UpdateOrderRequest struct {
	PrescriptionID      *uint    `json:"prescription_id"`
	ClientID            *uint    `json:"client_id"`
	OrderNumber         *int     `json:"order_number"`
	Status              *string  `json:"status"`
	DateOfIssue         *string  `json:"date_of_issue"`
	StartData           *string  `json:"start_data"`
	ExpectedDateOfIssue *string  `json:"expected_date_of_issue"`
	Cost                *float64 `json:"cost"`
}

// parseDate 解析YYYY-MM-DD日期参数
func parseDate(value string) (*datatypes.Date, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	d := datatypes.Date(t)
	return &d, nil
}

// GetAll 获取订单列表
func (h *OrderHandler) GetAll(c *gin.Context) {
	orders, err := h.service.GetAll()
	if err != nil {
		response.ServerError(c, "查询订单失败")
		return
	}
	response.List(c, orders, labels.Orders)
}

// GetByID 获取订单详情
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "订单不存在")
			return
		}
		response.ServerError(c, "查询订单失败")
		return
	}
	response.OK(c, order)
}

// Create 创建订单
func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindDetail(err))
		return
	}

	input := services.OrderInput{
		PrescriptionID: req.PrescriptionID,
		ClientID:       req.ClientID,
		OrderNumber:    req.OrderNumber,
		Status:         req.Status,
		Cost:           req.Cost,
	}
	if req.DateOfIssue != nil && *req.DateOfIssue != "" {
		d, err := parseDate(*req.DateOfIssue)
		if err != nil {
			response.BadRequest(c, "日期格式错误，应为YYYY-MM-DD")
			return
		}
		input.DateOfIssue = d
	}

	order, err := h.service.Create(input)
	if err != nil {
		if errors.Is(err, services.ErrPrescriptionNotFound) || errors.Is(err, services.ErrClientNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "创建订单失败")
		return
	}
	response.OK(c, order)
}

// Update 更新订单
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindDetail(err))
		return
	}

	update := services.OrderUpdate{
		PrescriptionID: req.PrescriptionID,
		ClientID:       req.ClientID,
		OrderNumber:    req.OrderNumber,
		Status:         req.Status,
		Cost:           req.Cost,
	}
	if req.DateOfIssue != nil && *req.DateOfIssue != "" {
		d, err := parseDate(*req.DateOfIssue)
		if err != nil {
			response.BadRequest(c, "日期格式错误，应为YYYY-MM-DD")
			return
		}
		update.DateOfIssue = d
	}
	if req.StartData != nil && *req.StartData != "" {
		t, err := time.Parse(time.RFC3339, *req.StartData)
		if err != nil {
			t, err = time.Parse("2006-01-02", *req.StartData)
		}
		if err != nil {
			response.BadRequest(c, "日期格式错误，应为YYYY-MM-DD")
			return
		}
		update.StartData = &t
	}
	if req.ExpectedDateOfIssue != nil && *req.ExpectedDateOfIssue != "" {
		t, err := time.Parse(time.RFC3339, *req.ExpectedDateOfIssue)
		if err != nil {
			t, err = time.Parse("2006-01-02", *req.ExpectedDateOfIssue)
		}
		if err != nil {
			response.BadRequest(c, "日期格式错误，应为YYYY-MM-DD")
			return
		}
		update.ExpectedDateOfIssue = &t
	}

	order, err := h.service.Update(id, update)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "订单不存在")
			return
		}
		if errors.Is(err, services.ErrPrescriptionNotFound) || errors.Is(err, services.ErrClientNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "更新订单失败")
		return
	}
	response.OK(c, order)
}

// Delete 删除订单
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "订单不存在")
			return
		}
		response.ServerError(c, "删除订单失败")
		return
	}
	response.NoContent(c)
}
