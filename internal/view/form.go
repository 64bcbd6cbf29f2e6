package view

import (
	"encoding/json"
	"net/url"

	"pharmadmin/internal/fieldtype"
	"pharmadmin/internal/record"
	"pharmadmin/internal/schema"
)

// FormField 表单里的一个输入项
type FormField struct {
	Name     string
	Label    string
	Input    fieldtype.InputKind
	Value    string
	Checked  bool
	ReadOnly bool
}

// Form 模板渲染用的表单视图模型
type Form struct {
	TableID  string
	Mode     string // create 或 edit
	RecordID string
	Fields   []FormField
	// Detail 提交失败时回显的错误信息，草稿保持原样
	Detail string
}

const (
	ModeCreate = "create"
	ModeEdit   = "edit"
)

// BuildCreateDraft 创建草稿：字段集取首行记录的键序，没有记录时为空草稿。
// 默认值按字段当前类型给：数值0、布尔false、其余空串。
// 然后应用表级覆盖：去掉CreateDrop的字段，补上CreateAdd的字段。
func BuildCreateDraft(collection *record.Collection, tableID string) *record.Record {
	draft := record.New()
	if collection != nil && !collection.Empty() {
		first := collection.Records[0]
		for _, key := range first.Keys() {
			value, _ := first.Get(key)
			draft.Set(key, defaultFor(value))
		}
	}

	if table, ok := schema.Lookup(tableID); ok {
		for _, name := range table.CreateDrop {
			draft.Delete(name)
		}
		for _, field := range table.CreateAdd {
			if !draft.Has(field.Name) {
				draft.Set(field.Name, "")
			}
		}
	}

	// id由服务端分配，创建表单不出现
	draft.Delete("id")
	return draft
}

// BuildEditDraft 编辑草稿：所点记录的浅复制
func BuildEditDraft(rec *record.Record) *record.Record {
	return rec.Clone()
}

// defaultFor 按现有值的类型给默认值
func defaultFor(value interface{}) interface{} {
	switch value.(type) {
	case json.Number, int, int64, float64:
		return json.Number("0")
	case bool:
		return false
	default:
		return ""
	}
}

// BuildForm 把草稿组装成表单视图。
// 输入控件优先按声明式结构选，没有声明的字段按名字和取值推断。
// 编辑模式下主键字段渲染但只读。
func BuildForm(draft *record.Record, tableID, mode string, labels map[string]string) *Form {
	form := &Form{TableID: tableID, Mode: mode}
	table, hasSchema := schema.Lookup(tableID)

	for _, key := range draft.Keys() {
		value, _ := draft.Get(key)

		input := fieldtype.ClassifyForDisplay(key, value)
		if hasSchema {
			if kind, ok := table.FieldKind(key); ok {
				input = fieldtype.KindToInput(kind)
			}
		}

		field := FormField{
			Name:  key,
			Label: key,
			Input: input,
		}
		if labels != nil {
			if label, ok := labels[key]; ok && label != "" {
				field.Label = label
			}
		}
		if mode == ModeEdit {
			if hasSchema && table.IsPrimaryKey(key) {
				field.ReadOnly = true
			} else if !hasSchema && key == "id" {
				field.ReadOnly = true
			}
		}

		if b, ok := value.(bool); ok {
			field.Checked = b
		} else if value != nil {
			field.Value = FormatCell(value)
			if field.Value == "-" {
				field.Value = ""
			}
		}
		form.Fields = append(form.Fields, field)
	}

	if mode == ModeEdit {
		form.RecordID = RecordIdentity(draft, tableID)
	}
	return form
}

// ParseSubmission 从表单提交还原草稿，字段顺序跟提交的字段清单走。
// 复选框没勾选时浏览器不提交该键，按false补上。
func ParseSubmission(values url.Values, fieldOrder []string) *record.Record {
	draft := record.New()
	for _, name := range fieldOrder {
		if vs, ok := values[name]; ok && len(vs) > 0 {
			if vs[0] == "on" || vs[0] == "true" {
				// 复选框提交值
				if _, checkbox := values["__bool_"+name]; checkbox {
					draft.Set(name, true)
					continue
				}
			}
			draft.Set(name, vs[0])
		} else if _, checkbox := values["__bool_"+name]; checkbox {
			draft.Set(name, false)
		} else {
			draft.Set(name, "")
		}
	}
	return draft
}

// PrepareSubmit 提交前的最终处理：跑类型转换，创建时剔除服务端分配的id
func PrepareSubmit(draft *record.Record, tableID, mode string) *record.Record {
	table, _ := schema.Lookup(tableID)
	coerced := fieldtype.CoerceDraft(draft, table)
	if mode == ModeCreate {
		coerced.Delete("id")
	}
	return coerced
}
