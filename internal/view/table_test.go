package view

import (
	"encoding/json"
	"testing"

	"pharmadmin/internal/catalog"
	"pharmadmin/internal/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectionFrom(t *testing.T, data string) *record.Collection {
	t.Helper()
	collection, err := record.DecodeCollection([]byte(data))
	require.NoError(t, err)
	return collection
}

func TestReadonlyNeverRendersActions(t *testing.T) {
	collection := collectionFrom(t, `[{"id":1,"name":"x"}]`)
	table := RenderTable(collection, "medications", catalog.AccessReadonly)

	assert.False(t, table.ShowActions)
	assert.False(t, table.CanEdit)
	assert.False(t, table.CanDelete)
}

func TestFullRendersEditAndDelete(t *testing.T) {
	collection := collectionFrom(t, `[{"id":1,"name":"x"}]`)
	table := RenderTable(collection, "clients", catalog.AccessFull)

	assert.True(t, table.ShowActions)
	assert.True(t, table.CanEdit)
	assert.True(t, table.CanDelete)
}

func TestCreateDeleteRendersDeleteOnly(t *testing.T) {
	collection := collectionFrom(t, `[{"id":1,"name":"x"}]`)
	table := RenderTable(collection, "prescriptions", catalog.AccessCreateDelete)

	assert.True(t, table.ShowActions)
	assert.False(t, table.CanEdit)
	assert.True(t, table.CanDelete)
}

func TestEmptyCollectionRendersPlaceholder(t *testing.T) {
	collection := collectionFrom(t, `[]`)
	table := RenderTable(collection, "clients", catalog.AccessFull)

	assert.True(t, table.Empty)
	assert.Empty(t, table.Rows)
	assert.Empty(t, table.Headers)
}

func TestHeadersFromFirstRecordThroughLabels(t *testing.T) {
	collection := collectionFrom(t, `{"data":[{"id":1,"name":"葡萄糖"}],"headers":{"name":"名称"}}`)
	table := RenderTable(collection, "medications", catalog.AccessReadonly)

	// 有映射用映射，没有就用字段名
	assert.Equal(t, []string{"id", "名称"}, table.Headers)
}

func TestCellFormatting(t *testing.T) {
	collection := collectionFrom(t, `[{"id":1,"note":null,"meta":{"k":"v"},"active":true,"price":10.5}]`)
	table := RenderTable(collection, "medications", catalog.AccessReadonly)

	require.Len(t, table.Rows, 1)
	cells := table.Rows[0].Cells
	assert.Equal(t, "1", cells[0])
	// null显示为'-'
	assert.Equal(t, "-", cells[1])
	// 嵌套对象显示为JSON
	assert.Equal(t, `{"k":"v"}`, cells[2])
	assert.Equal(t, "true", cells[3])
	assert.Equal(t, "10.5", cells[4])
}

func TestRecordIdentitySchemaPrimaryKey(t *testing.T) {
	rec := record.New()
	rec.Set("id", json.Number("7"))
	rec.Set("name", "x")
	assert.Equal(t, "7", RecordIdentity(rec, "clients"))
}

func TestRecordIdentityCompositeKey(t *testing.T) {
	rec := record.New()
	rec.Set("medicine_id", json.Number("7"))
	rec.Set("ingredient_id", json.Number("2"))
	rec.Set("amount", json.Number("3"))
	assert.Equal(t, "7/2", RecordIdentity(rec, "compositions"))
}

func TestRecordIdentityFallbacks(t *testing.T) {
	// 没有声明的表回退到id字段
	rec := record.New()
	rec.Set("id", json.Number("5"))
	rec.Set("value", "x")
	assert.Equal(t, "5", RecordIdentity(rec, "some_report"))

	// 连id都没有时退到首个字段
	rec2 := record.New()
	rec2.Set("code", "abc")
	rec2.Set("value", "x")
	assert.Equal(t, "abc", RecordIdentity(rec2, "some_report"))
}
