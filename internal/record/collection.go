package record

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Collection 一次列表请求的归一化结果
type Collection struct {
	Records []*Record
	// Labels 字段名到展示名的映射，后端没给时为空，展示时回退到字段名
	Labels map[string]string
}

// DecodeCollection 归一化列表响应。
// 后端有两种返回形态：裸数组，或 {data: [...], headers: {...}}。
func DecodeCollection(data []byte) (*Collection, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return &Collection{}, nil
	}

	if trimmed[0] == '[' {
		var records []*Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("record: 解析列表失败: %w", err)
		}
		return &Collection{Records: records}, nil
	}

	var wrapped struct {
		Data    []*Record         `json:"data"`
		Headers map[string]string `json:"headers"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, fmt.Errorf("record: 解析列表失败: %w", err)
	}
	return &Collection{Records: wrapped.Data, Labels: wrapped.Headers}, nil
}

// Label 字段的展示名，没有映射时用字段名本身
func (c *Collection) Label(field string) string {
	if c.Labels != nil {
		if label, ok := c.Labels[field]; ok && label != "" {
			return label
		}
	}
	return field
}

// Empty 集合是否没有任何记录
func (c *Collection) Empty() bool {
	return len(c.Records) == 0
}

// FirstKeys 首行记录的键序，空集合返回nil。
// 同一集合里所有记录被假定与首行同键同序，表头和表单都由此驱动。
func (c *Collection) FirstKeys() []string {
	if len(c.Records) == 0 {
		return nil
	}
	return c.Records[0].Keys()
}
