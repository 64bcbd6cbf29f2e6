package schema

// Kind 字段的语义类型，决定输入控件和提交时的取值转换
type Kind int

const (
	KindText Kind = iota
	KindPhone
	KindInteger
	KindFloat
	KindBool
	KindDate
)

// Field 一个表字段的声明
type Field struct {
	Name string
	Kind Kind
}

// Table 一个表的声明式结构。
// 运行期按首行键序反推列的做法只用于没有声明的行（报表结果），
// 业务表一律走这里的显式声明。
type Table struct {
	ID         string
	PrimaryKey []string
	Fields     []Field
	// CreateDrop 创建表单里要去掉的字段（服务端生成或由CreateAdd替代）
	CreateDrop []string
	// CreateAdd 创建表单里要补充的字段（行数据里没有的输入项）
	CreateAdd []Field
}

// FieldKind 查字段类型
func (t *Table) FieldKind(name string) (Kind, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f.Kind, true
		}
	}
	for _, f := range t.CreateAdd {
		if f.Name == name {
			return f.Kind, true
		}
	}
	return KindText, false
}

// IsPrimaryKey 字段是否属于主键
func (t *Table) IsPrimaryKey(name string) bool {
	for _, k := range t.PrimaryKey {
		if k == name {
			return true
		}
	}
	return false
}

var tables = map[string]*Table{
	"medications": {
		ID:         "medications",
		PrimaryKey: []string{"id"},
		Fields: []Field{
			{"id", KindInteger},
			{"name", KindText},
			{"manufacturer", KindText},
			{"critical_norm", KindFloat},
			{"shelf_life", KindInteger},
			{"unit_of_measure", KindText},
			{"units_per_package", KindInteger},
			{"price", KindFloat},
			{"storage_conditions", KindText},
			{"current_amount", KindFloat},
		},
	},
	"medicines": {
		ID:         "medicines",
		PrimaryKey: []string{"id"},
		Fields: []Field{
			{"id", KindInteger},
			{"name", KindText},
			{"manufacturer", KindText},
			{"critical_norm", KindFloat},
			{"shelf_life", KindInteger},
			{"unit_of_measure", KindText},
			{"units_per_package", KindInteger},
			{"price", KindFloat},
			{"storage_conditions", KindText},
			{"current_amount", KindFloat},
			{"type", KindText},
			{"kind", KindText},
			{"application", KindText},
			{"tech_prep_id", KindInteger},
		},
	},
	"ingredients": {
		ID:         "ingredients",
		PrimaryKey: []string{"id"},
		Fields: []Field{
			{"id", KindInteger},
			{"name", KindText},
			{"manufacturer", KindText},
			{"critical_norm", KindFloat},
			{"shelf_life", KindInteger},
			{"unit_of_measure", KindText},
			{"units_per_package", KindInteger},
			{"price", KindFloat},
			{"storage_conditions", KindText},
			{"current_amount", KindFloat},
			{"type", KindText},
			{"caution", KindText},
			{"incompatibility", KindText},
		},
	},
	"technologies": {
		ID:         "technologies",
		PrimaryKey: []string{"id"},
		Fields: []Field{
			{"id", KindInteger},
			{"description", KindText},
			{"preparation_time", KindInteger},
		},
	},
	"compositions": {
		ID:         "compositions",
		PrimaryKey: []string{"medicine_id", "ingredient_id"},
		Fields: []Field{
			{"medicine_id", KindInteger},
			{"ingredient_id", KindInteger},
			{"amount", KindFloat},
		},
	},
	"clients": {
		ID:         "clients",
		PrimaryKey: []string{"id"},
		Fields: []Field{
			{"id", KindInteger},
			{"surname", KindText},
			{"name", KindText},
			{"patronymic", KindText},
			{"phone_number", KindPhone},
		},
	},
	"prescriptions": {
		ID:         "prescriptions",
		PrimaryKey: []string{"id"},
		Fields: []Field{
			{"id", KindInteger},
			{"client_id", KindInteger},
			{"medicine_id", KindInteger},
			{"prescription_number", KindInteger},
			{"doctor_surname", KindText},
			{"doctor_name", KindText},
			{"doctor_patronymic", KindText},
			{"signature", KindBool},
			{"stamp", KindBool},
			{"age", KindInteger},
			{"diagnosis", KindText},
			{"amount", KindFloat},
			{"application", KindText},
		},
		// 创建时不填外键，改为内联客户信息，服务端查找或建档
		CreateDrop: []string{"client_id"},
		CreateAdd: []Field{
			{"name", KindText},
			{"surname", KindText},
			{"patronymic", KindText},
			{"phone_number", KindPhone},
		},
	},
	"orders": {
		ID:         "orders",
		PrimaryKey: []string{"id"},
		Fields: []Field{
			{"id", KindInteger},
			{"prescription_id", KindInteger},
			{"client_id", KindInteger},
			{"order_number", KindInteger},
			{"status", KindText},
			{"date_of_issue", KindDate},
			{"expected_date_of_issue", KindDate},
			{"start_data", KindDate},
			{"cost", KindFloat},
		},
		// 这几列由服务端计算，创建时不可填
		CreateDrop: []string{"date_of_issue", "expected_date_of_issue", "start_data"},
	},
	"deliveries": {
		ID:         "deliveries",
		PrimaryKey: []string{"id"},
		Fields: []Field{
			{"id", KindInteger},
			{"medication_id", KindInteger},
			{"application_date", KindDate},
			{"delivery_date", KindDate},
			{"amount", KindFloat},
		},
	},
	"inventories": {
		ID:         "inventories",
		PrimaryKey: []string{"id"},
		Fields: []Field{
			{"id", KindInteger},
			{"medication_id", KindInteger},
			{"inventory_date", KindDate},
			{"amount", KindFloat},
		},
	},
}

// Lookup 按表ID取声明，报表等没有声明的数据源返回false
func Lookup(tableID string) (*Table, bool) {
	t, ok := tables[tableID]
	return t, ok
}
