package view

import (
	"encoding/json"
	"net/url"
	"testing"

	"pharmadmin/internal/fieldtype"
	"pharmadmin/internal/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCreateDraftDefaults(t *testing.T) {
	collection := collectionFrom(t, `[{"id":1,"name":"x","price":10.5,"active":true}]`)
	draft := BuildCreateDraft(collection, "medications")

	// id由服务端分配，创建草稿里没有
	assert.False(t, draft.Has("id"))

	name, _ := draft.Get("name")
	assert.Equal(t, "", name)
	price, _ := draft.Get("price")
	assert.Equal(t, json.Number("0"), price)
	active, _ := draft.Get("active")
	assert.Equal(t, false, active)
}

func TestBuildCreateDraftEmptyCollection(t *testing.T) {
	collection := collectionFrom(t, `[]`)
	draft := BuildCreateDraft(collection, "medications")
	assert.Equal(t, 0, draft.Len())
}

func TestPrescriptionCreateOverrides(t *testing.T) {
	collection := collectionFrom(t, `[{"id":1,"client_id":3,"medicine_id":7,"prescription_number":10001,"age":45}]`)
	draft := BuildCreateDraft(collection, "prescriptions")

	// 外键被内联客户字段替代
	assert.False(t, draft.Has("client_id"))
	assert.True(t, draft.Has("name"))
	assert.True(t, draft.Has("surname"))
	assert.True(t, draft.Has("patronymic"))
	assert.True(t, draft.Has("phone_number"))
	// 即使源记录里本来就没有这些键也会补上
	assert.True(t, draft.Has("medicine_id"))
}

func TestOrderCreateOverrides(t *testing.T) {
	collection := collectionFrom(t, `[{"id":1,"prescription_id":2,"client_id":3,"order_number":1,"status":"ready","date_of_issue":null,"expected_date_of_issue":"2024-01-05","start_data":"2024-01-01","cost":25}]`)
	draft := BuildCreateDraft(collection, "orders")

	// 服务端计算的列创建时不可填
	assert.False(t, draft.Has("date_of_issue"))
	assert.False(t, draft.Has("expected_date_of_issue"))
	assert.False(t, draft.Has("start_data"))
	assert.True(t, draft.Has("status"))
	assert.True(t, draft.Has("cost"))
}

func TestBuildEditDraftIsShallowCopy(t *testing.T) {
	rec := record.New()
	rec.Set("id", json.Number("1"))
	rec.Set("name", "x")

	draft := BuildEditDraft(rec)
	draft.Set("name", "y")

	original, _ := rec.Get("name")
	assert.Equal(t, "x", original)
}

func TestBuildFormEditPrimaryKeyReadOnly(t *testing.T) {
	rec := record.New()
	rec.Set("id", json.Number("1"))
	rec.Set("surname", "王")

	form := BuildForm(BuildEditDraft(rec), "clients", ModeEdit, nil)
	require.Len(t, form.Fields, 2)
	assert.True(t, form.Fields[0].ReadOnly)
	assert.False(t, form.Fields[1].ReadOnly)
	assert.Equal(t, "1", form.RecordID)
}

func TestBuildFormInputKinds(t *testing.T) {
	draft := record.New()
	draft.Set("phone_number", "0123")
	draft.Set("signature", true)
	draft.Set("age", json.Number("45"))

	form := BuildForm(draft, "prescriptions", ModeCreate, nil)
	byName := map[string]FormField{}
	for _, field := range form.Fields {
		byName[field.Name] = field
	}

	// 声明式结构优先：电话按文本，布尔按复选框，整数按数字
	assert.Equal(t, fieldtype.InputText, byName["phone_number"].Input)
	assert.Equal(t, fieldtype.InputCheckbox, byName["signature"].Input)
	assert.True(t, byName["signature"].Checked)
	assert.Equal(t, fieldtype.InputNumber, byName["age"].Input)
}

func TestParseSubmission(t *testing.T) {
	values := url.Values{}
	values.Set("name", "葡萄糖")
	values.Set("price", "10")
	values.Set("__bool_active", "1")
	// active没勾选，浏览器不提交该键

	draft := ParseSubmission(values, []string{"name", "price", "active", "missing"})

	assert.Equal(t, []string{"name", "price", "active", "missing"}, draft.Keys())
	name, _ := draft.Get("name")
	assert.Equal(t, "葡萄糖", name)
	active, _ := draft.Get("active")
	assert.Equal(t, false, active)
	missing, _ := draft.Get("missing")
	assert.Equal(t, "", missing)
}

func TestParseSubmissionCheckedBox(t *testing.T) {
	values := url.Values{}
	values.Set("active", "true")
	values.Set("__bool_active", "1")

	draft := ParseSubmission(values, []string{"active"})
	active, _ := draft.Get("active")
	assert.Equal(t, true, active)
}

func TestPrepareSubmitStripsIDOnCreate(t *testing.T) {
	draft := record.New()
	draft.Set("id", "1")
	draft.Set("surname", "王")
	draft.Set("phone_number", "0123")

	payload := PrepareSubmit(draft, "clients", ModeCreate)
	assert.False(t, payload.Has("id"))

	phone, _ := payload.Get("phone_number")
	assert.Equal(t, "0123", phone)

	// 编辑时id保留
	edited := PrepareSubmit(draft, "clients", ModeEdit)
	assert.True(t, edited.Has("id"))
}

func TestPrepareSubmitCoerces(t *testing.T) {
	draft := record.New()
	draft.Set("price", "10")
	draft.Set("note", "")

	payload := PrepareSubmit(draft, "medications", ModeEdit)

	price, _ := payload.Get("price")
	assert.Equal(t, float64(10), price)
	// 空串转null
	note, _ := payload.Get("note")
	assert.Nil(t, note)
}
