package handlers

import (
	"errors"

	"pharmadmin/internal/labels"
	"pharmadmin/internal/services"
	"pharmadmin/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CompositionHandler 药剂配方接口，联合主键走双段路径
type CompositionHandler struct {
	service *services.CompositionService
}

func NewCompositionHandler(service *services.CompositionService) *CompositionHandler {
	return &CompositionHandler{
		service: service,
	}
}

// CreateCompositionRequest 创建配方行请求
type CreateCompositionRequest struct {
	MedicineID   uint    `json:"medicine_id" binding:"required"`
	IngredientID uint    `json:"ingredient_id" binding:"required"`
	Amount       float64 `json:"amount" binding:"required"`
}

// UpdateCompositionRequest 更新配方用量请求
type UpdateCompositionRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// GetAll 获取配方列表
func (h *CompositionHandler) GetAll(c *gin.Context) {
	compositions, err := h.service.GetAll()
	if err != nil {
		response.ServerError(c, "查询配方失败")
		return
	}
	response.List(c, compositions, labels.Compositions)
}

// GetByMedicine 获取某药剂的配方
func (h *CompositionHandler) GetByMedicine(c *gin.Context) {
	medicineID, ok := parseID(c, "medicine_id")
	if !ok {
		return
	}
	compositions, err := h.service.GetByMedicine(medicineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "药剂不存在")
			return
		}
		response.ServerError(c, "查询配方失败")
		return
	}
	response.OK(c, compositions)
}

// Get 获取单条配方行
func (h *CompositionHandler) Get(c *gin.Context) {
	medicineID, ok := parseID(c, "medicine_id")
	if !ok {
		return
	}
	ingredientID, ok := parseID(c, "ingredient_id")
	if !ok {
		return
	}
	composition, err := h.service.Get(medicineID, ingredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "配方不存在")
			return
		}
		response.ServerError(c, "查询配方失败")
		return
	}
	response.OK(c, composition)
}

// Create 新增配方行
func (h *CompositionHandler) Create(c *gin.Context) {
	var req CreateCompositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindDetail(err))
		return
	}
	composition, err := h.service.Create(req.MedicineID, req.IngredientID, req.Amount)
	if err != nil {
		if errors.Is(err, services.ErrMedicineNotFound) || errors.Is(err, services.ErrIngredientNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.ServerError(c, "创建配方失败")
		return
	}
	response.OK(c, composition)
}

// Update 更新配方用量
func (h *CompositionHandler) Update(c *gin.Context) {
	medicineID, ok := parseID(c, "medicine_id")
	if !ok {
		return
	}
	ingredientID, ok := parseID(c, "ingredient_id")
	if !ok {
		return
	}
	var req UpdateCompositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindDetail(err))
		return
	}
	composition, err := h.service.Update(medicineID, ingredientID, req.Amount)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "配方不存在")
			return
		}
		response.ServerError(c, "更新配方失败")
		return
	}
	response.OK(c, composition)
}

// Delete 删除配方行
func (h *CompositionHandler) Delete(c *gin.Context) {
	medicineID, ok := parseID(c, "medicine_id")
	if !ok {
		return
	}
	ingredientID, ok := parseID(c, "ingredient_id")
	if !ok {
		return
	}
	if err := h.service.Delete(medicineID, ingredientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "配方不存在")
			return
		}
		response.ServerError(c, "删除配方失败")
		return
	}
	response.NoContent(c)
}
