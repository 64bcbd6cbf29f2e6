package fieldtype

import (
	"encoding/json"
	"testing"

	"pharmadmin/internal/record"
	"pharmadmin/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyForDisplay(t *testing.T) {
	assert.Equal(t, InputDate, ClassifyForDisplay("date_of_issue", nil))
	assert.Equal(t, InputDate, ClassifyForDisplay("start_date", "2024-01-01"))
	// 电话字段即使全是数字也按文本渲染
	assert.Equal(t, InputText, ClassifyForDisplay("phone_number", "0123"))
	assert.Equal(t, InputNumber, ClassifyForDisplay("total", json.Number("5")))
	assert.Equal(t, InputCheckbox, ClassifyForDisplay("signature", true))
	assert.Equal(t, InputText, ClassifyForDisplay("diagnosis", "感冒"))
}

func TestClassifyByName(t *testing.T) {
	cases := []struct {
		name string
		want Class
	}{
		{"phone_number", ClassString},
		{"phone", ClassString},
		{"id", ClassInteger},
		{"client_id", ClassInteger},
		{"prescription_number", ClassInteger},
		{"age", ClassInteger},
		{"units_per_package", ClassInteger},
		{"item_count", ClassInteger},
		{"quantity", ClassInteger},
		{"amount", ClassFloat},
		{"price", ClassFloat},
		{"cost", ClassFloat},
		{"critical_norm", ClassFloat},
		{"discount_rate", ClassFloat},
		{"discount_percentage", ClassFloat},
		{"weight_kg", ClassFloat},
		{"diagnosis", ClassNone},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, classifyByName(tc.name), tc.name)
	}
}

func TestClassifyFieldByValue(t *testing.T) {
	// 名字没命中规则时按取值归类
	assert.Equal(t, ClassInteger, ClassifyField("shelf_life", json.Number("720")))
	assert.Equal(t, ClassFloat, ClassifyField("factor", json.Number("1.5")))
	assert.Equal(t, ClassNone, ClassifyField("status", "ready"))
	// 名字规则优先于取值
	assert.Equal(t, ClassFloat, ClassifyField("price", json.Number("10")))
}

func TestCoerceValue(t *testing.T) {
	// 空串一律转null，哪怕是数值或布尔字段
	assert.Nil(t, CoerceValue("price", "", ClassFloat))
	assert.Nil(t, CoerceValue("age", "", ClassInteger))
	assert.Nil(t, CoerceValue("signature", "", ClassNone))

	// null原样透传
	assert.Nil(t, CoerceValue("price", nil, ClassFloat))

	// 电话保住前导零
	assert.Equal(t, "0123", CoerceValue("phone_number", "0123", ClassString))

	// 数值解析
	assert.Equal(t, int64(42), CoerceValue("age", "42", ClassInteger))
	assert.Equal(t, float64(10), CoerceValue("price", "10", ClassFloat))
	assert.Equal(t, 10.5, CoerceValue("amount", "10.5", ClassFloat))

	// 整数值被归为浮点时重铸为浮点
	coerced := CoerceValue("price", json.Number("5"), ClassFloat)
	assert.IsType(t, float64(0), coerced)
	assert.Equal(t, float64(5), coerced)

	// 带小数的文本按整数截断
	assert.Equal(t, int64(10), CoerceValue("count", "10.5", ClassInteger))

	// 解析不了就原样放行
	assert.Equal(t, "abc", CoerceValue("age", "abc", ClassInteger))

	// 布尔不受影响
	assert.Equal(t, true, CoerceValue("active", true, ClassNone))
}

func TestCoerceDraftHeuristic(t *testing.T) {
	draft := record.New()
	draft.Set("id", json.Number("1"))
	draft.Set("phone", "0123")
	draft.Set("price", "10")
	draft.Set("active", true)

	coerced := CoerceDraft(draft, nil)

	id, _ := coerced.Get("id")
	assert.Equal(t, int64(1), id)

	// 电话即使全数字也保持字符串
	phone, _ := coerced.Get("phone")
	assert.Equal(t, "0123", phone)

	// 名字带price → 浮点
	price, _ := coerced.Get("price")
	assert.Equal(t, float64(10), price)

	active, _ := coerced.Get("active")
	assert.Equal(t, true, active)
}

func TestCoerceDraftSchemaFirst(t *testing.T) {
	table, ok := schema.Lookup("prescriptions")
	require.True(t, ok)

	draft := record.New()
	draft.Set("prescription_number", "10001")
	draft.Set("phone_number", "0099")
	draft.Set("amount", "30")
	draft.Set("diagnosis", "")

	coerced := CoerceDraft(draft, table)

	number, _ := coerced.Get("prescription_number")
	assert.Equal(t, int64(10001), number)

	phone, _ := coerced.Get("phone_number")
	assert.Equal(t, "0099", phone)

	amount, _ := coerced.Get("amount")
	assert.Equal(t, float64(30), amount)

	// 空串转null
	diagnosis, _ := coerced.Get("diagnosis")
	assert.Nil(t, diagnosis)
}

func TestCoerceDraftKeepsKeyOrder(t *testing.T) {
	draft := record.New()
	draft.Set("b", "1")
	draft.Set("a", "2")
	draft.Set("c", "3")

	coerced := CoerceDraft(draft, nil)
	assert.Equal(t, []string{"b", "a", "c"}, coerced.Keys())
}
