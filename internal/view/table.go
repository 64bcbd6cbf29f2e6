package view

import (
	"encoding/json"
	"fmt"
	"strings"

	"pharmadmin/internal/catalog"
	"pharmadmin/internal/record"
	"pharmadmin/internal/schema"
)

// Table 模板渲染用的表格视图模型
type Table struct {
	Headers []string
	Rows    []Row
	// Empty 集合没有记录时渲染占位文案而不是空表格
	Empty bool
	// ShowActions 只读档位不渲染操作列
	ShowActions bool
	CanEdit     bool
	CanDelete   bool
}

// Row 一行数据及其编辑/删除用的标识
type Row struct {
	ID    string
	Cells []string
}

// RenderTable 把记录集合组装成表格视图。
// 表头取首行记录的键序，经展示名映射，找不到映射时用字段名本身。
func RenderTable(collection *record.Collection, tableID string, access catalog.AccessLevel) *Table {
	ops := access.Operations()
	table := &Table{
		ShowActions: !access.ReadOnly(),
		CanEdit:     ops.Edit,
		CanDelete:   ops.Delete,
	}

	if collection == nil || collection.Empty() {
		table.Empty = true
		return table
	}

	keys := collection.FirstKeys()
	for _, key := range keys {
		table.Headers = append(table.Headers, collection.Label(key))
	}

	for _, rec := range collection.Records {
		row := Row{ID: RecordIdentity(rec, tableID)}
		for _, key := range keys {
			value, _ := rec.Get(key)
			row.Cells = append(row.Cells, FormatCell(value))
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// FormatCell 单元格文案：null显示'-'，嵌套结构显示为JSON
func FormatCell(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "-"
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		if v {
			return "true"
		}
		return "false"
	case *record.Record, []interface{}:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// RecordIdentity 记录的编辑/删除标识。
// 有声明式结构时取声明的主键（复合主键按路径段拼接），
// 没有时回退到id字段，再退到首个字段的值。
func RecordIdentity(rec *record.Record, tableID string) string {
	if table, ok := schema.Lookup(tableID); ok {
		parts := make([]string, 0, len(table.PrimaryKey))
		complete := true
		for _, key := range table.PrimaryKey {
			value, ok := rec.Get(key)
			if !ok || value == nil {
				complete = false
				break
			}
			parts = append(parts, FormatCell(value))
		}
		if complete && len(parts) > 0 {
			return strings.Join(parts, "/")
		}
	}

	if value, ok := rec.Get("id"); ok && value != nil {
		return FormatCell(value)
	}

	keys := rec.Keys()
	if len(keys) == 0 {
		return ""
	}
	value, _ := rec.Get(keys[0])
	return FormatCell(value)
}
