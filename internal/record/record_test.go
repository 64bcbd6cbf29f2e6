package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalKeepsKeyOrder(t *testing.T) {
	data := []byte(`{"zeta":1,"alpha":"a","mid":null,"flag":true}`)

	rec := New()
	require.NoError(t, json.Unmarshal(data, rec))

	assert.Equal(t, []string{"zeta", "alpha", "mid", "flag"}, rec.Keys())

	zeta, _ := rec.Get("zeta")
	assert.Equal(t, json.Number("1"), zeta)

	mid, ok := rec.Get("mid")
	assert.True(t, ok)
	assert.Nil(t, mid)

	flag, _ := rec.Get("flag")
	assert.Equal(t, true, flag)
}

func TestNumbersStayAsJSONNumber(t *testing.T) {
	data := []byte(`{"price":10.5,"count":3}`)

	rec := New()
	require.NoError(t, json.Unmarshal(data, rec))

	price, _ := rec.Get("price")
	assert.Equal(t, json.Number("10.5"), price)
	count, _ := rec.Get("count")
	assert.Equal(t, json.Number("3"), count)
}

func TestMarshalRoundTripPreservesOrder(t *testing.T) {
	data := []byte(`{"b":1,"a":2,"c":{"y":1,"x":2}}`)

	rec := New()
	require.NoError(t, json.Unmarshal(data, rec))

	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t, `{"b":1,"a":2,"c":{"y":1,"x":2}}`, string(out))
}

func TestNestedValues(t *testing.T) {
	data := []byte(`{"items":[1,2],"meta":{"k":"v"}}`)

	rec := New()
	require.NoError(t, json.Unmarshal(data, rec))

	items, _ := rec.Get("items")
	assert.Equal(t, []interface{}{json.Number("1"), json.Number("2")}, items)

	meta, _ := rec.Get("meta")
	nested, ok := meta.(*Record)
	require.True(t, ok)
	v, _ := nested.Get("k")
	assert.Equal(t, "v", v)
}

func TestSetDeleteClone(t *testing.T) {
	rec := New()
	rec.Set("a", 1)
	rec.Set("b", 2)
	rec.Set("a", 3) // 覆盖不改变键序
	assert.Equal(t, []string{"a", "b"}, rec.Keys())

	clone := rec.Clone()
	clone.Delete("a")
	assert.Equal(t, []string{"b"}, clone.Keys())
	// 原记录不受影响
	assert.True(t, rec.Has("a"))
}

func TestDecodeCollectionBareArray(t *testing.T) {
	data := []byte(`[{"id":1,"name":"葡萄糖"},{"id":2,"name":"水杨酸"}]`)

	collection, err := DecodeCollection(data)
	require.NoError(t, err)
	require.Len(t, collection.Records, 2)
	assert.Nil(t, collection.Labels)
	assert.Equal(t, []string{"id", "name"}, collection.FirstKeys())
	// 没有映射时展示名回退到字段名
	assert.Equal(t, "name", collection.Label("name"))
}

func TestDecodeCollectionWrapped(t *testing.T) {
	data := []byte(`{"data":[{"id":1,"name":"葡萄糖"}],"headers":{"id":"编号","name":"名称"}}`)

	collection, err := DecodeCollection(data)
	require.NoError(t, err)
	require.Len(t, collection.Records, 1)
	assert.Equal(t, "名称", collection.Label("name"))
	assert.Equal(t, "编号", collection.Label("id"))
}

func TestDecodeCollectionEmpty(t *testing.T) {
	collection, err := DecodeCollection([]byte(`[]`))
	require.NoError(t, err)
	assert.True(t, collection.Empty())
	assert.Nil(t, collection.FirstKeys())
}
