package handlers

import (
	"errors"

	"pharmadmin/internal/labels"
	"pharmadmin/internal/services"
	"pharmadmin/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ClientHandler 客户接口
type ClientHandler struct {
	service *services.ClientService
}

func NewClientHandler(service *services.ClientService) *ClientHandler {
	return &ClientHandler{
		service: service,
	}
}

// CreateClientRequest 创建客户请求
type CreateClientRequest struct {
	Surname     string  `json:"surname" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Patronymic  *string `json:"patronymic"`
	PhoneNumber string  `json:"phone_number" binding:"required"`
}

// UpdateClientRequest 更新客户请求
type UpdateClientRequest struct {
	Surname     *string `json:"surname"`
	Name        *string `json:"name"`
	Patronymic  *string `json:"patronymic"`
	PhoneNumber *string `json:"phone_number"`
}

// GetAll 获取客户列表
func (h *ClientHandler) GetAll(c *gin.Context) {
	clients, err := h.service.GetAll()
	if err != nil {
		response.ServerError(c, "查询客户失败")
		return
	}
	response.List(c, clients, labels.Clients)
}

// GetByID 获取客户详情
func (h *ClientHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	client, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "客户不存在")
			return
		}
		response.ServerError(c, "查询客户失败")
		return
	}
	response.OK(c, client)
}

// Create 创建客户
func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindDetail(err))
		return
	}
	client, err := h.service.Create(req.Surname, req.Name, req.Patronymic, req.PhoneNumber)
	if err != nil {
		response.ServerError(c, "创建客户失败")
		return
	}
	response.OK(c, client)
}

// Update 更新客户
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindDetail(err))
		return
	}
	client, err := h.service.Update(id, req.Surname, req.Name, req.Patronymic, req.PhoneNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "客户不存在")
			return
		}
		response.ServerError(c, "更新客户失败")
		return
	}
	response.OK(c, client)
}

// Delete 删除客户
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "客户不存在")
			return
		}
		response.ServerError(c, "删除客户失败")
		return
	}
	response.NoContent(c)
}
