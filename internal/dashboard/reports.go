package dashboard

import (
	"net/http"
	"net/url"

	"pharmadmin/internal/catalog"
	"pharmadmin/internal/record"
	"pharmadmin/internal/view"

	"github.com/gin-gonic/gin"
)

// ReportInput 报表卡片的一个输入项
type ReportInput struct {
	Name     string
	Label    string
	Kind     string // text 或 date
	Required bool
}

// ReportCard 一个独立的报表单元：固定查询加自己的输入和结果槽
type ReportCard struct {
	ID     string
	Title  string
	Inputs []ReportInput
	// HasList / HasCount 卡片支持的动作
	HasList  bool
	HasCount bool
	// listPath / countPath 由输入值算出请求路径和查询串
	listPath  func(values url.Values) (string, url.Values)
	countPath func(values url.Values) (string, url.Values)
}

// passthrough 按名单透传查询参数
func passthrough(values url.Values, names ...string) url.Values {
	params := url.Values{}
	for _, name := range names {
		for _, v := range values[name] {
			if v != "" {
				params.Add(name, v)
			}
		}
	}
	return params
}

var reportCards = []ReportCard{
	{
		ID: "unclaimed", Title: "未领取订单的客户",
		HasList: true, HasCount: true,
		listPath: func(url.Values) (string, url.Values) {
			return "/queries/clients/unclaimed-orders", nil
		},
		countPath: func(url.Values) (string, url.Values) {
			return "/queries/clients/unclaimed-orders/count", nil
		},
	},
	{
		ID: "waiting", Title: "等待到货的客户",
		HasList: true, HasCount: true,
		listPath: func(url.Values) (string, url.Values) {
			return "/queries/clients/waiting-for-delivery", nil
		},
		countPath: func(url.Values) (string, url.Values) {
			return "/queries/clients/waiting-for-delivery/count", nil
		},
	},
	{
		ID: "waiting-by-type", Title: "按药剂类型统计等待到货的客户",
		Inputs: []ReportInput{
			{Name: "med_type", Label: "药剂类型", Kind: "text", Required: true},
		},
		HasCount: true,
		countPath: func(values url.Values) (string, url.Values) {
			return "/queries/clients/waiting-for-delivery/count/" + url.PathEscape(values.Get("med_type")), nil
		},
	},
	{
		ID: "clients-by-name", Title: "按药剂名称查时间段内的客户",
		Inputs: []ReportInput{
			{Name: "medication_name", Label: "药剂名称", Kind: "text", Required: true},
			{Name: "start_date", Label: "开始日期", Kind: "date", Required: true},
			{Name: "end_date", Label: "结束日期", Kind: "date", Required: true},
		},
		HasList: true, HasCount: true,
		listPath: func(values url.Values) (string, url.Values) {
			return "/queries/clients/by-medication-name", passthrough(values, "medication_name", "start_date", "end_date")
		},
		countPath: func(values url.Values) (string, url.Values) {
			return "/queries/clients/by-medication-name/count", passthrough(values, "medication_name", "start_date", "end_date")
		},
	},
	{
		ID: "clients-by-type", Title: "按药剂类型查时间段内的客户",
		Inputs: []ReportInput{
			{Name: "medication_type", Label: "药剂类型", Kind: "text", Required: true},
			{Name: "start_date", Label: "开始日期", Kind: "date", Required: true},
			{Name: "end_date", Label: "结束日期", Kind: "date", Required: true},
		},
		HasList: true, HasCount: true,
		listPath: func(values url.Values) (string, url.Values) {
			return "/queries/clients/by-medication-type", passthrough(values, "medication_type", "start_date", "end_date")
		},
		countPath: func(values url.Values) (string, url.Values) {
			return "/queries/clients/by-medication-type/count", passthrough(values, "medication_type", "start_date", "end_date")
		},
	},
	{
		ID: "frequent-clients", Title: "下单最多的客户",
		Inputs: []ReportInput{
			{Name: "medicine_type", Label: "药剂类型", Kind: "text"},
			{Name: "medicine_names", Label: "药剂名称", Kind: "text"},
			{Name: "limit", Label: "条数", Kind: "text"},
		},
		HasList: true,
		listPath: func(values url.Values) (string, url.Values) {
			return "/queries/clients/most-frequent", passthrough(values, "medicine_type", "medicine_names", "limit")
		},
	},
	{
		ID: "medicine-details", Title: "药剂明细",
		Inputs: []ReportInput{
			{Name: "medicine_name", Label: "药剂名称", Kind: "text"},
		},
		HasList: true,
		listPath: func(values url.Values) (string, url.Values) {
			if name := values.Get("medicine_name"); name != "" {
				return "/queries/medicines/details/" + url.PathEscape(name), nil
			}
			return "/queries/medicines/details", nil
		},
	},
	{
		ID: "medicine-price", Title: "药剂价格与配方成分",
		Inputs: []ReportInput{
			{Name: "medicine_name", Label: "药剂名称", Kind: "text", Required: true},
		},
		HasList: true,
		listPath: func(values url.Values) (string, url.Values) {
			return "/queries/medicines/price-and-components/" + url.PathEscape(values.Get("medicine_name")), nil
		},
	},
	{
		ID: "top-medications", Title: "订购最多的药剂",
		Inputs: []ReportInput{
			{Name: "med_type", Label: "药剂类型", Kind: "text"},
		},
		HasList: true,
		listPath: func(values url.Values) (string, url.Values) {
			if medType := values.Get("med_type"); medType != "" {
				return "/queries/medications/top/" + url.PathEscape(medType), nil
			}
			return "/queries/medications/top", nil
		},
	},
	{
		ID: "critical", Title: "达到临界库存的药品",
		HasList: true,
		listPath: func(url.Values) (string, url.Values) {
			return "/queries/medications/critical", nil
		},
	},
	{
		ID: "low-stock", Title: "库存偏低的药品",
		Inputs: []ReportInput{
			{Name: "med_type", Label: "药剂类型", Kind: "text"},
		},
		HasList: true,
		listPath: func(values url.Values) (string, url.Values) {
			if medType := values.Get("med_type"); medType != "" {
				return "/queries/medications/low-stock/" + url.PathEscape(medType), nil
			}
			return "/queries/medications/low-stock", nil
		},
	},
	{
		ID: "ingredient-usage", Title: "原料消耗量",
		Inputs: []ReportInput{
			{Name: "ingredient_name", Label: "原料名称", Kind: "text", Required: true},
			{Name: "start_date", Label: "开始日期", Kind: "date", Required: true},
			{Name: "end_date", Label: "结束日期", Kind: "date", Required: true},
		},
		HasList: true,
		listPath: func(values url.Values) (string, url.Values) {
			return "/queries/ingredients/usage/" + url.PathEscape(values.Get("ingredient_name")),
				passthrough(values, "start_date", "end_date")
		},
	},
	{
		ID: "producing-ingredients", Title: "在制订单的原料需求",
		HasList: true, HasCount: true,
		listPath: func(url.Values) (string, url.Values) {
			return "/queries/ingredients/for-producing-orders", nil
		},
		countPath: func(url.Values) (string, url.Values) {
			return "/queries/ingredients/for-producing-orders/count", nil
		},
	},
	{
		ID: "producing-orders", Title: "在制订单",
		HasList: true, HasCount: true,
		listPath: func(url.Values) (string, url.Values) {
			return "/queries/orders/producing", nil
		},
		countPath: func(url.Values) (string, url.Values) {
			return "/queries/orders/producing/count", nil
		},
	},
	{
		ID: "technologies", Title: "制备工艺",
		Inputs: []ReportInput{
			{Name: "medicine_type", Label: "药剂类型", Kind: "text"},
			{Name: "medicine_names", Label: "药剂名称", Kind: "text"},
			{Name: "from_producing_orders", Label: "只看在制订单(true/false)", Kind: "text"},
		},
		HasList: true,
		listPath: func(values url.Values) (string, url.Values) {
			return "/queries/technologies", passthrough(values, "medicine_type", "medicine_names", "from_producing_orders")
		},
	},
}

func findCard(id string) (ReportCard, bool) {
	for _, card := range reportCards {
		if card.ID == id {
			return card, true
		}
	}
	return ReportCard{}, false
}

// ReportResult 激活卡片的查询结果
type ReportResult struct {
	CardID string
	// InlineError 本地校验失败的提示，出现时没有发过任何请求
	InlineError string
	// Error 后端或传输层错误
	Error    string
	Table    *view.Table
	HasCount bool
	Count    int64
	// Values 回显用户的输入
	Values url.Values
}

// ReportsPanel 报表页，无激活卡片
func (h *Handler) ReportsPanel(c *gin.Context) {
	c.HTML(http.StatusOK, "reports.html", gin.H{
		"Cards": reportCards,
	})
}

// RunReport 执行一张卡片的查询。
// 必填项为空时本地拦截，只给行内提示，绝不发请求。
func (h *Handler) RunReport(c *gin.Context) {
	card, ok := findCard(c.Param("card"))
	if !ok {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"Title":  "未知报表",
			"Detail": "报表卡片不存在",
		})
		return
	}

	values := c.Request.URL.Query()
	result := &ReportResult{CardID: card.ID, Values: values}

	for _, input := range card.Inputs {
		if input.Required && values.Get(input.Name) == "" {
			result.InlineError = "请先填写：" + input.Label
			h.renderReports(c, result)
			return
		}
	}

	action := c.Query("action")
	switch {
	case action == "count" && card.HasCount:
		path, params := card.countPath(values)
		count, err := h.api.QueryCount(c.Request.Context(), path, params)
		if err != nil {
			result.Error = err.Error()
		} else {
			result.HasCount = true
			result.Count = count
		}
	case card.HasList:
		path, params := card.listPath(values)
		rows, err := h.api.QueryRows(c.Request.Context(), path, params)
		if err != nil {
			result.Error = err.Error()
		} else {
			collection := &record.Collection{Records: rows}
			result.Table = view.RenderTable(collection, card.ID, catalog.AccessReadonly)
		}
	default:
		result.InlineError = "该卡片不支持此操作"
	}

	h.renderReports(c, result)
}

func (h *Handler) renderReports(c *gin.Context, result *ReportResult) {
	c.HTML(http.StatusOK, "reports.html", gin.H{
		"Cards":  reportCards,
		"Result": result,
	})
}
