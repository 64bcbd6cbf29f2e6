package handlers

import (
	"errors"

	"pharmadmin/internal/labels"
	"pharmadmin/internal/services"
	"pharmadmin/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// IngredientHandler 原料接口，只读
type IngredientHandler struct {
	service *services.IngredientService
}

func NewIngredientHandler(service *services.IngredientService) *IngredientHandler {
	return &IngredientHandler{
		service: service,
	}
}

// GetAll 获取原料列表
func (h *IngredientHandler) GetAll(c *gin.Context) {
	ingredients, err := h.service.GetAll()
	if err != nil {
		response.ServerError(c, "查询原料失败")
		return
	}
	response.List(c, ingredients, labels.Ingredients)
}

// GetByID 获取原料详情
func (h *IngredientHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ingredient, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "原料不存在")
			return
		}
		response.ServerError(c, "查询原料失败")
		return
	}
	response.OK(c, ingredient)
}
