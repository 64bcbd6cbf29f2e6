package handlers

import (
	"strconv"
	"time"

	"pharmadmin/internal/services"
	"pharmadmin/pkg/response"

	"github.com/gin-gonic/gin"
)

// QueryHandler 报表分析接口。
// 列表查询返回行数组，统计查询返回{count: n}，缺参返回{detail}。
type QueryHandler struct {
	service *services.QueryService
}

func NewQueryHandler(service *services.QueryService) *QueryHandler {
	return &QueryHandler{
		service: service,
	}
}

// parseDateRange 解析start_date/end_date查询参数，缺失或格式错误返回false
func parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	startStr := c.Query("start_date")
	endStr := c.Query("end_date")
	if startStr == "" || endStr == "" {
		response.BadRequest(c, "缺少start_date或end_date参数")
		return time.Time{}, time.Time{}, false
	}
	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		response.BadRequest(c, "日期格式错误，应为YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		response.BadRequest(c, "日期格式错误，应为YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// ClientsWithUnclaimedOrders 未领取订单的客户
func (h *QueryHandler) ClientsWithUnclaimedOrders(c *gin.Context) {
	rows, err := h.service.ClientsWithUnclaimedOrders()
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}
	response.OK(c, rows)
}

// CountClientsWithUnclaimedOrders 未领取订单的客户数
func (h *QueryHandler) CountClientsWithUnclaimedOrders(c *gin.Context) {
	count, err := h.service.CountClientsWithUnclaimedOrders()
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}
	response.Count(c, count)
}

// ClientsWaitingForDelivery 等待到货的客户
func (h *QueryHandler) ClientsWaitingForDelivery(c *gin.Context) {
	rows, err := h.service.ClientsWaitingForDelivery()
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}
	response.OK(c, rows)
}

// CountClientsWaitingForDelivery 等待到货的客户数
func (h *QueryHandler) CountClientsWaitingForDelivery(c *gin.Context) {
	count, err := h.service.CountClientsWaitingForDelivery()
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}
	response.Count(c, count)
}

// CountClientsWaitingForDeliveryByType 按药剂类型统计等待到货的客户数
func (h *QueryHandler) CountClientsWaitingForDeliveryByType(c *gin.Context) {
	medType := c.Param("med_type")
	if medType == "" {
		response.BadRequest(c, "缺少药剂类型参数")
		return
	}
	count, err := h.service.CountClientsWaitingForDeliveryByType(medType)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}
	response.Count(c, count)
}

// ClientsByMedicationName 按药剂名称和时间段查客户
func (h *QueryHandler) ClientsByMedicationName(c *gin.Context) {
	medName := c.Query("medication_name")
	if medName == "" {
		response.BadRequest(c, "缺少medication_name参数")
		return
	}
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}
	rows, err := h.service.ClientsByMedicationName(medName, start, end)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}
	response.OK(c, rows)
}

// CountClientsByMedicationName 按药剂名称和时间段统计客户数
func (h *QueryHandler) CountClientsByMedicationName(c *gin.Context) {
	medName := c.Query("medication_name")
	if medName == "" {
		response.BadRequest(c, "缺少medication_name参数")
		return
	}
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}
	count, err := h.service.CountClientsByMedicationName(medName, start, end)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}
	response.Count(c, count)
}

// ClientsByMedicationType 按药剂类型和时间段查客户
func (h *QueryHandler) ClientsByMedicationType(c *gin.Context) {
	medType := c.Query("medication_type")
	if medType == "" {
		response.BadRequest(c, "缺少medication_type参数")
		return
	}
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}
	rows, err := h.service.ClientsByMedicationType(medType, start, end)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}
	response.OK(c, rows)
}

// CountClientsByMedicationType 按药剂类型和时间段统计客户数
func (h *QueryHandler) CountClientsByMedicationType(c *gin.Context) {
	medType := c.Query("medication_type")
	if medType == "" {
		response.BadRequest(c, "缺少medication_type参数")
		return
	}
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}
	count, err := h.service.CountClientsByMedicationType(medType, start, end)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}
	response.Count(c, count)
}

// MostFrequentClients 下单最多的客户
func (h *QueryHandler) MostFrequentClients(c *gin.Context) {
	medicineType := c.Query("medicine_type")
	medicineNames := c.QueryArray("medicine_names")
	limit := 10
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			response.BadRequest(c, "limit参数格式错误")
			return
		}
		limit = parsed
	}
	rows, err := h.service.MostFrequentClients(medicineType, medicineNames, limit)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}
	response.OK(c, rows)
}

// MedicineDetails 药剂明细
func (h *QueryHandler) MedicineDetails(c *gin.Context) {
	rows, err := h.service.MedicineDetails()
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}
	response.OK(c, rows)
}

// MedicineDetailsByName 按名称查药剂明细
func (h *QueryHandler) MedicineDetailsByName(c *gin.Context) {
	name := c.Param("medicine_name")
	if name == "" {
		response.BadRequest(c, "缺少药剂名称参数")
		return
	}
	rows, err := h.service.MedicineDetailsByName(name)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}
	response.OK(c, rows)
}

// MedicinePriceAndComponents 药剂价格与配方成分
func (h *QueryHandler) MedicinePriceAndComponents(c *gin.Context) {
	name := c.Param("medicine_name")
	if name == "" {
		response.BadRequest(c, "缺少药剂名称参数")
		return
	}
	rows, err := h.service.MedicinePriceAndComponents(name)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}
	response.OK(c, rows)
}

// TopMedications 订购最多的药剂
func (h *QueryHandler) TopMedications(c *gin.Context) {
	rows, err := h.service.TopMedications()
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}
	response.OK(c, rows)
}

// TopMedicationsByType 按类型获取订购最多的药剂
func (h *QueryHandler) TopMedicationsByType(c *gin.Context) {
	medType := c.Param("med_type")
	if medType == "" {
		response.BadRequest(c, "缺少药剂类型参数")
		return
	}
	rows, err := h.service.TopMedicationsByType(medType)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}
	response.OK(c, rows)
}

// MedicationsAtCriticalLevel 达到临界库存的药品
func (h *QueryHandler) MedicationsAtCriticalLevel(c *gin.Context) {
	rows, err := h.service.MedicationsAtCriticalLevel()
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}
	response.OK(c, rows)
}

// LowStockMedications 库存偏低的药品
func (h *QueryHandler) LowStockMedications(c *gin.Context) {
	rows, err := h.service.LowStockMedications()
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}
	response.OK(c, rows)
}

// LowStockMedicationsByType 按类型获取库存偏低的药品
func (h *QueryHandler) LowStockMedicationsByType(c *gin.Context) {
	medType := c.Param("med_type")
	if medType == "" {
		response.BadRequest(c, "缺少药剂类型参数")
		return
	}
	rows, err := h.service.LowStockMedicationsByType(medType)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}
	response.OK(c, rows)
}

// IngredientUsage 原料在时间段内的消耗量
func (h *QueryHandler) IngredientUsage(c *gin.Context) {
	name := c.Param("ingredient_name")
	if name == "" {
		response.BadRequest(c, "缺少原料名称参数")
		return
	}
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}
	rows, err := h.service.IngredientUsage(name, start, end)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}
	response.OK(c, rows)
}

// IngredientsForProducingOrders 在制订单的原料需求
func (h *QueryHandler) IngredientsForProducingOrders(c *gin.Context) {
	rows, err := h.service.IngredientsForProducingOrders()
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}
	response.OK(c, rows)
}

// CountIngredientsForProducingOrders 在制订单涉及的原料数
func (h *QueryHandler) CountIngredientsForProducingOrders(c *gin.Context) {
	count, err := h.service.CountIngredientsForProducingOrders()
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}
	response.Count(c, count)
}

// ProducingOrders 在制订单
func (h *QueryHandler) ProducingOrders(c *gin.Context) {
	rows, err := h.service.ProducingOrders()
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}
	response.OK(c, rows)
}

// CountProducingOrders 在制订单数
func (h *QueryHandler) CountProducingOrders(c *gin.Context) {
	count, err := h.service.CountProducingOrders()
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}
	response.Count(c, count)
}

// Technologies 制备工艺
func (h *QueryHandler) Technologies(c *gin.Context) {
	medicineType := c.Query("medicine_type")
	medicineNames := c.QueryArray("medicine_names")
	fromProducing := c.Query("from_producing_orders") == "true"
	rows, err := h.service.Technologies(medicineType, medicineNames, fromProducing)
	if err != nil {
		response.ServerError(c, "查询失败")
		return
	}
	response.OK(c, rows)
}
