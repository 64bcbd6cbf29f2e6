package fieldtype

import (
	"encoding/json"
	"strings"

	"pharmadmin/internal/record"
	"pharmadmin/internal/schema"

	"github.com/spf13/cast"
)

// InputKind 字段对应的表单控件类型
type InputKind int

const (
	InputText InputKind = iota
	InputNumber
	InputCheckbox
	InputDate
)

// 模板里选控件用的判断方法

func (k InputKind) IsNumber() bool   { return k == InputNumber }
func (k InputKind) IsCheckbox() bool { return k == InputCheckbox }
func (k InputKind) IsDate() bool     { return k == InputDate }

// ClassifyForDisplay 根据字段名和当前值选择输入控件。
// 电话类字段永远按文本处理，保住前导零和格式。
func ClassifyForDisplay(fieldName string, value interface{}) InputKind {
	name := strings.ToLower(fieldName)
	if strings.Contains(name, "date") {
		return InputDate
	}
	if strings.Contains(name, "phone") {
		return InputText
	}
	switch value.(type) {
	case json.Number, int, int64, float64:
		return InputNumber
	case bool:
		return InputCheckbox
	}
	return InputText
}

// KindToInput 声明式字段类型到控件的映射
func KindToInput(kind schema.Kind) InputKind {
	switch kind {
	case schema.KindInteger, schema.KindFloat:
		return InputNumber
	case schema.KindBool:
		return InputCheckbox
	case schema.KindDate:
		return InputDate
	default:
		return InputText
	}
}

// Class 提交转换用的字段分类
type Class int

const (
	ClassNone Class = iota // 不做数值转换
	ClassString            // 强制字符串
	ClassInteger
	ClassFloat
)

var (
	integerExact    = map[string]bool{"id": true, "age": true, "units_per_package": true}
	integerSuffixes = []string{"_id", "_number"}
	integerInfixes  = []string{"count", "quantity"}

	floatExact   = map[string]bool{"amount": true, "price": true, "cost": true, "critical_norm": true}
	floatInfixes = []string{"amount", "price", "cost", "rate", "percentage", "weight"}
)

// classifyByName 第一遍：只看字段名
func classifyByName(fieldName string) Class {
	name := strings.ToLower(fieldName)

	if strings.Contains(name, "phone") {
		return ClassString
	}

	if integerExact[name] {
		return ClassInteger
	}
	for _, suffix := range integerSuffixes {
		if strings.HasSuffix(name, suffix) {
			return ClassInteger
		}
	}
	if floatExact[name] {
		return ClassFloat
	}
	// 小数类的词缀更具体，要先于count/quantity判断，
	// 否则discount_rate这类名字会被count子串抢走
	for _, infix := range floatInfixes {
		if strings.Contains(name, infix) {
			return ClassFloat
		}
	}

	for _, infix := range integerInfixes {
		if strings.Contains(name, infix) {
			return ClassInteger
		}
	}

	return ClassNone
}

// ClassifyField 字段名加当前值的完整分类。
// 名字没命中规则但值本身是数字时，按有没有小数部分归类。
func ClassifyField(fieldName string, value interface{}) Class {
	class := classifyByName(fieldName)
	if class != ClassNone {
		return class
	}

	if f, ok := numericValue(value); ok {
		if f == float64(int64(f)) {
			return ClassInteger
		}
		return ClassFloat
	}
	return ClassNone
}

// classFromKind 声明式字段类型到分类的映射
func classFromKind(kind schema.Kind) Class {
	switch kind {
	case schema.KindPhone:
		return ClassString
	case schema.KindInteger:
		return ClassInteger
	case schema.KindFloat:
		return ClassFloat
	default:
		return ClassNone
	}
}

// numericValue 取值的数值形式
func numericValue(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// CoerceValue 按分类转换一个提交值。
// 空字符串一律转null；null原样透传；已是整数但被归为浮点的值
// 重铸为浮点，保证小数语义过JSON往返不丢。
func CoerceValue(fieldName string, value interface{}, class Class) interface{} {
	if value == nil {
		return nil
	}
	if s, ok := value.(string); ok && s == "" {
		return nil
	}

	switch class {
	case ClassString:
		return cast.ToString(value)
	case ClassInteger:
		if i, err := cast.ToInt64E(value); err == nil {
			return i
		}
		// 文本带小数时按十进制整数截断
		if f, err := cast.ToFloat64E(value); err == nil {
			return int64(f)
		}
		return value
	case ClassFloat:
		if f, err := cast.ToFloat64E(value); err == nil {
			return f
		}
		return value
	}
	return value
}

// CoerceDraft 对整份草稿跑两遍启发式并应用转换。
// 有声明式结构的表先查结构，没命中（或没有结构的报表行）才回退到
// 名字/取值启发式。返回新记录，原草稿不动。
func CoerceDraft(draft *record.Record, table *schema.Table) *record.Record {
	coerced := record.New()
	for _, key := range draft.Keys() {
		value, _ := draft.Get(key)

		class := ClassNone
		matched := false
		if table != nil {
			if kind, ok := table.FieldKind(key); ok {
				class = classFromKind(kind)
				matched = true
			}
		}
		if !matched {
			class = ClassifyField(key, value)
		}

		coerced.Set(key, CoerceValue(key, value, class))
	}
	return coerced
}
