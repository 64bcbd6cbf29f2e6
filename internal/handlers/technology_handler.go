package handlers

import (
	"errors"

	"pharmadmin/internal/labels"
	"pharmadmin/internal/services"
	"pharmadmin/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TechnologyHandler 制备工艺接口
type TechnologyHandler struct {
	service *services.TechnologyService
}

func NewTechnologyHandler(service *services.TechnologyService) *TechnologyHandler {
	return &TechnologyHandler{
		service: service,
	}
}

// CreateTechnologyRequest 创建制备工艺请求
type CreateTechnologyRequest struct {
	Description     string `json:"description" binding:"required"`
	PreparationTime int    `json:"preparation_time" binding:"required"`
}

// UpdateTechnologyRequest 更新制备工艺请求
type UpdateTechnologyRequest struct {
	Description     *string `json:"description"`
	PreparationTime *int    `json:"preparation_time"`
}

// GetAll 获取制备工艺列表
func (h *TechnologyHandler) GetAll(c *gin.Context) {
	technologies, err := h.service.GetAll()
	if err != nil {
		response.ServerError(c, "查询制备工艺失败")
		return
	}
	response.List(c, technologies, labels.Technologies)
}

// GetByID 获取制备工艺详情
func (h *TechnologyHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	technology, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "制备工艺不存在")
			return
		}
		response.ServerError(c, "查询制备工艺失败")
		return
	}
	response.OK(c, technology)
}

// Create 创建制备工艺
func (h *TechnologyHandler) Create(c *gin.Context) {
	var req CreateTechnologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindDetail(err))
		return
	}
	technology, err := h.service.Create(req.Description, req.PreparationTime)
	if err != nil {
		response.ServerError(c, "创建制备工艺失败")
		return
	}
	response.OK(c, technology)
}

// Update 更新制备工艺
func (h *TechnologyHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateTechnologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindDetail(err))
		return
	}
	technology, err := h.service.Update(id, req.Description, req.PreparationTime)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "制备工艺不存在")
			return
		}
		response.ServerError(c, "更新制备工艺失败")
		return
	}
	response.OK(c, technology)
}

// Delete 删除制备工艺
func (h *TechnologyHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "制备工艺不存在")
			return
		}
		response.ServerError(c, "删除制备工艺失败")
		return
	}
	response.NoContent(c)
}
