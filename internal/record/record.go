package record

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record 一行后端数据：字段名到值的开放映射。
// 客户端没有声明式结构，表头和表单字段都取决于首行的键序，
// 所以解码时必须保留JSON里的键顺序，数字保留为json.Number。
type Record struct {
	keys   []string
	values map[string]interface{}
}

// New 创建空记录
func New() *Record {
	return &Record{
		values: make(map[string]interface{}),
	}
}

// Keys 按原始顺序返回字段名
func (r *Record) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Len 字段数
func (r *Record) Len() int {
	return len(r.keys)
}

// Get 取字段值，第二个返回值表示字段是否存在
func (r *Record) Get(key string) (interface{}, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Set 设置字段值，新字段追加到键序末尾
func (r *Record) Set(key string, value interface{}) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Delete 删除字段
func (r *Record) Delete(key string) {
	if _, ok := r.values[key]; !ok {
		return
	}
	delete(r.values, key)
	for i, k := range r.keys {
		if k == key {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
}

// Has 字段是否存在
func (r *Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Clone 浅复制
func (r *Record) Clone() *Record {
	clone := New()
	for _, k := range r.keys {
		clone.Set(k, r.values[k])
	}
	return clone
}

// UnmarshalJSON 按键出现顺序解码对象
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("record: 期望JSON对象，得到 %v", tok)
	}

	r.keys = nil
	r.values = make(map[string]interface{})

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)
		value, err := decodeValue(dec)
		if err != nil {
			return err
		}
		r.Set(key, value)
	}

	// 消费收尾的 '}'
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// decodeValue 递归解码一个值，嵌套对象同样保序
func decodeValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			nested := New()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key := keyTok.(string)
				value, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				nested.Set(key, value)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return nested, nil
		case '[':
			var items []interface{}
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return items, nil
		}
		return nil, fmt.Errorf("record: 未预期的定界符 %v", v)
	default:
		// string、json.Number、bool、nil
		return tok, nil
	}
}

// MarshalJSON 按原始键序输出
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valueJSON, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(valueJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
