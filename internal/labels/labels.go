// Package labels 维护各资源表的字段标题字典。
// 集合接口随数据一起返回headers，前端展示时优先使用标题，缺失时回退到字段名。
package labels

// 药品公共列标题
var medicationFields = map[string]string{
	"id":                 "药品ID",
	"name":               "名称",
	"manufacturer":       "生产厂家",
	"critical_norm":      "临界库存",
	"shelf_life":         "保质期（天）",
	"unit_of_measure":    "计量单位",
	"units_per_package":  "每包数量",
	"price":              "价格",
	"storage_conditions": "储存条件",
	"current_amount":     "当前库存",
}

var Medications = medicationFields

var Ingredients = merge(medicationFields, map[string]string{
	"type":            "原料类型",
	"caution":         "注意事项",
	"incompatibility": "配伍禁忌",
})

var Medicines = merge(medicationFields, map[string]string{
	"type":         "类型",
	"kind":         "剂型",
	"application":  "用药方式",
	"tech_prep_id": "制备工艺ID",
})

var Technologies = map[string]string{
	"id":               "工艺ID",
	"description":      "描述",
	"preparation_time": "制备周期（天）",
}

var Compositions = map[string]string{
	"medicine_id":   "药剂ID",
	"ingredient_id": "原料ID",
	"amount":        "用量",
}

var Clients = map[string]string{
	"id":           "客户ID",
	"surname":      "姓",
	"name":         "名",
	"patronymic":   "父称",
	"phone_number": "电话号码",
}

var Prescriptions = map[string]string{
	"id":                  "处方ID",
	"client_id":           "客户ID",
	"medicine_id":         "药剂ID",
	"prescription_number": "处方编号",
	"doctor_surname":      "医生姓",
	"doctor_name":         "医生名",
	"doctor_patronymic":   "医生父称",
	"signature":           "签名",
	"stamp":               "盖章",
	"age":                 "年龄",
	"diagnosis":           "诊断",
	"amount":              "数量",
	"application":         "用药方式",
}

var Orders = map[string]string{
	"id":                     "订单ID",
	"prescription_id":        "处方ID",
	"client_id":              "客户ID",
	"order_number":           "订单编号",
	"status":                 "状态",
	"date_of_issue":          "发放日期",
	"expected_date_of_issue": "预计发放日期",
	"start_data":             "开始制备时间",
	"cost":                   "金额",
}

var Deliveries = map[string]string{
	"id":               "入库ID",
	"medication_id":    "药品ID",
	"application_date": "申请日期",
	"delivery_date":    "到货日期",
	"amount":           "数量",
}

var Inventories = map[string]string{
	"id":             "盘点ID",
	"medication_id":  "药品ID",
	"inventory_date": "盘点日期",
	"amount":         "数量",
}

func merge(base, extra map[string]string) map[string]string {
	result := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		result[k] = v
	}
	for k, v := range extra {
		result[k] = v
	}
	return result
}
