package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessLevelOperations(t *testing.T) {
	// 三档不是包含关系：create_delete有增删没有改
	readonly := AccessReadonly.Operations()
	assert.False(t, readonly.Create)
	assert.False(t, readonly.Edit)
	assert.False(t, readonly.Delete)

	createDelete := AccessCreateDelete.Operations()
	assert.True(t, createDelete.Create)
	assert.False(t, createDelete.Edit)
	assert.True(t, createDelete.Delete)

	full := AccessFull.Operations()
	assert.True(t, full.Create)
	assert.True(t, full.Edit)
	assert.True(t, full.Delete)
}

func TestManagerSeesExactlyDeliveriesAndInventories(t *testing.T) {
	tables := Tables(RoleManager)
	require.Len(t, tables, 2)
	assert.Equal(t, "deliveries", tables[0].ID)
	assert.Equal(t, AccessFull, tables[0].Access)
	assert.Equal(t, "inventories", tables[1].ID)
	assert.Equal(t, AccessFull, tables[1].Access)
}

func TestProvizorTables(t *testing.T) {
	tables := Tables(RoleProvizor)
	require.Len(t, tables, 10)

	byID := map[string]AccessLevel{}
	for _, table := range tables {
		byID[table.ID] = table.Access
	}
	assert.Equal(t, AccessReadonly, byID["medications"])
	assert.Equal(t, AccessReadonly, byID["compositions"])
	assert.Equal(t, AccessFull, byID["prescriptions"])
	assert.Equal(t, AccessFull, byID["orders"])
	assert.Equal(t, AccessFull, byID["clients"])
}

func TestPharmacistTables(t *testing.T) {
	tables := Tables(RolePharmacist)
	require.Len(t, tables, 9)

	byID := map[string]AccessLevel{}
	for _, table := range tables {
		byID[table.ID] = table.Access
	}
	// 配药员对药品总表没有入口
	_, ok := byID["medications"]
	assert.False(t, ok)
	assert.Equal(t, AccessCreateDelete, byID["prescriptions"])
	assert.Equal(t, AccessCreateDelete, byID["clients"])
	assert.Equal(t, AccessFull, byID["orders"])
}

func TestFind(t *testing.T) {
	desc, ok := Find(RoleManager, "deliveries")
	require.True(t, ok)
	assert.Equal(t, "/deliveries", desc.Endpoint)

	// 角色看不到的表查不出来
	_, ok = Find(RoleManager, "clients")
	assert.False(t, ok)

	_, ok = Find(Role("unknown"), "clients")
	assert.False(t, ok)
}

func TestValidAndTitle(t *testing.T) {
	assert.True(t, Valid(RoleProvizor))
	assert.True(t, Valid(RolePharmacist))
	assert.True(t, Valid(RoleManager))
	assert.False(t, Valid(Role("admin")))
	assert.NotEmpty(t, Title(RoleManager))
}
