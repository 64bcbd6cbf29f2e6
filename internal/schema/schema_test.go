package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, id := range []string{
		"medications", "medicines", "ingredients", "technologies",
		"compositions", "clients", "prescriptions", "orders",
		"deliveries", "inventories",
	} {
		_, ok := Lookup(id)
		assert.True(t, ok, id)
	}

	_, ok := Lookup("some_report")
	assert.False(t, ok)
}

func TestCompositionCompositeKey(t *testing.T) {
	table, ok := Lookup("compositions")
	require.True(t, ok)
	assert.Equal(t, []string{"medicine_id", "ingredient_id"}, table.PrimaryKey)
	assert.True(t, table.IsPrimaryKey("medicine_id"))
	assert.True(t, table.IsPrimaryKey("ingredient_id"))
	assert.False(t, table.IsPrimaryKey("amount"))
}

func TestFieldKind(t *testing.T) {
	table, ok := Lookup("clients")
	require.True(t, ok)

	kind, ok := table.FieldKind("phone_number")
	require.True(t, ok)
	assert.Equal(t, KindPhone, kind)

	_, ok = table.FieldKind("nonexistent")
	assert.False(t, ok)
}

func TestPrescriptionCreateOverridesDeclared(t *testing.T) {
	table, ok := Lookup("prescriptions")
	require.True(t, ok)
	assert.Equal(t, []string{"client_id"}, table.CreateDrop)

	names := make([]string, 0, len(table.CreateAdd))
	for _, field := range table.CreateAdd {
		names = append(names, field.Name)
	}
	assert.Equal(t, []string{"name", "surname", "patronymic", "phone_number"}, names)

	// 补充字段的类型也查得到
	kind, ok := table.FieldKind("phone_number")
	require.True(t, ok)
	assert.Equal(t, KindPhone, kind)
}

func TestOrderCreateDrop(t *testing.T) {
	table, ok := Lookup("orders")
	require.True(t, ok)
	assert.ElementsMatch(t,
		[]string{"date_of_issue", "expected_date_of_issue", "start_data"},
		table.CreateDrop)
}
