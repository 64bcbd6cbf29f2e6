package catalog

// Role 操作台角色。不做认证，只是导航入口的选择。
type Role string

const (
	RoleProvizor   Role = "provizor"
	RolePharmacist Role = "pharmacist"
	RoleManager    Role = "manager"
)

// AccessLevel 表级权限档位
type AccessLevel string

const (
	AccessReadonly     AccessLevel = "readonly"
	AccessCreateDelete AccessLevel = "create_delete"
	AccessFull         AccessLevel = "full"
)

// Operations 档位展开后的操作集合。
// 三档不是严格包含关系：create_delete有增删没有改，
// 所以权限判断一律查集合，不比大小。
type Operations struct {
	Create bool
	Edit   bool
	Delete bool
}

// Operations 档位对应的操作集合
func (a AccessLevel) Operations() Operations {
	switch a {
	case AccessCreateDelete:
		return Operations{Create: true, Delete: true}
	case AccessFull:
		return Operations{Create: true, Edit: true, Delete: true}
	default:
		return Operations{}
	}
}

// ReadOnly 是否只读
func (a AccessLevel) ReadOnly() bool {
	return a == AccessReadonly
}

// TableDescriptor 角色可见的一张表
type TableDescriptor struct {
	ID          string
	DisplayName string
	Endpoint    string
	Access      AccessLevel
}

// 角色到可见表的声明式映射，进程启动后只读
var roleTables = map[Role][]TableDescriptor{
	RoleProvizor: {
		{ID: "medications", DisplayName: "库存药品", Endpoint: "/medications", Access: AccessReadonly},
		{ID: "medicines", DisplayName: "药剂", Endpoint: "/medicines", Access: AccessReadonly},
		{ID: "ingredients", DisplayName: "原料", Endpoint: "/ingredients", Access: AccessReadonly},
		{ID: "technologies", DisplayName: "制备工艺", Endpoint: "/technologies", Access: AccessReadonly},
		{ID: "compositions", DisplayName: "配方", Endpoint: "/compositions", Access: AccessReadonly},
		{ID: "prescriptions", DisplayName: "处方", Endpoint: "/prescriptions", Access: AccessFull},
		{ID: "orders", DisplayName: "订单", Endpoint: "/orders", Access: AccessFull},
		{ID: "clients", DisplayName: "客户", Endpoint: "/clients", Access: AccessFull},
		{ID: "deliveries", DisplayName: "入库", Endpoint: "/deliveries", Access: AccessFull},
		{ID: "inventories", DisplayName: "盘点", Endpoint: "/inventories", Access: AccessFull},
	},
	RolePharmacist: {
		{ID: "medicines", DisplayName: "药剂", Endpoint: "/medicines", Access: AccessReadonly},
		{ID: "ingredients", DisplayName: "原料", Endpoint: "/ingredients", Access: AccessReadonly},
		{ID: "technologies", DisplayName: "制备工艺", Endpoint: "/technologies", Access: AccessReadonly},
		{ID: "compositions", DisplayName: "配方", Endpoint: "/compositions", Access: AccessReadonly},
		{ID: "prescriptions", DisplayName: "处方", Endpoint: "/prescriptions", Access: AccessCreateDelete},
		{ID: "clients", DisplayName: "客户", Endpoint: "/clients", Access: AccessCreateDelete},
		{ID: "orders", DisplayName: "订单", Endpoint: "/orders", Access: AccessFull},
		{ID: "deliveries", DisplayName: "入库", Endpoint: "/deliveries", Access: AccessFull},
		{ID: "inventories", DisplayName: "盘点", Endpoint: "/inventories", Access: AccessFull},
	},
	RoleManager: {
		{ID: "deliveries", DisplayName: "入库", Endpoint: "/deliveries", Access: AccessFull},
		{ID: "inventories", DisplayName: "盘点", Endpoint: "/inventories", Access: AccessFull},
	},
}

// 角色展示名
var roleTitles = map[Role]string{
	RoleProvizor:   "药剂师",
	RolePharmacist: "配药员",
	RoleManager:    "商品组经理",
}

// Roles 全部角色，按导航顺序
func Roles() []Role {
	return []Role{RoleProvizor, RolePharmacist, RoleManager}
}

// Valid 角色是否存在
func Valid(role Role) bool {
	_, ok := roleTables[role]
	return ok
}

// Title 角色展示名，未知角色返回空串
func Title(role Role) string {
	return roleTitles[role]
}

// Tables 角色可见的表，未知角色返回nil
func Tables(role Role) []TableDescriptor {
	tables := roleTables[role]
	result := make([]TableDescriptor, len(tables))
	copy(result, tables)
	return result
}

// Find 按角色和表ID查描述符，角色看不到该表时返回false
func Find(role Role, tableID string) (TableDescriptor, bool) {
	for _, t := range roleTables[role] {
		if t.ID == tableID {
			return t, true
		}
	}
	return TableDescriptor{}, false
}
