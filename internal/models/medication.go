package models

// Medication 库存药品总表，药剂和原料共用的公共列
type Medication struct {
	ID                uint    `json:"id" gorm:"primaryKey"`
	Name              string  `json:"name" gorm:"not null;size:200;index"`
	Manufacturer      string  `json:"manufacturer" gorm:"size:200"`
	CriticalNorm      float64 `json:"critical_norm"`
	ShelfLife         int     `json:"shelf_life"` // 天数
	UnitOfMeasure     string  `json:"unit_of_measure" gorm:"size:10"`
	UnitsPerPackage   int     `json:"units_per_package"`
	Price             float64 `json:"price"`
	StorageConditions string  `json:"storage_conditions" gorm:"size:500"`
	CurrentAmount     float64 `json:"current_amount"`
}

// TableName 表名
func (m *Medication) TableName() string {
	return "medications"
}

// 计量单位常量
const (
	UnitGramms     = "g"
	UnitMilligrams = "mg"
	UnitMilliliter = "ml"
	UnitPieces     = "pc"
)

// Ingredient 原料扩展表，与medications共享ID
type Ingredient struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	Type            string `json:"type" gorm:"size:100"`
	Caution         string `json:"caution" gorm:"size:500"`
	Incompatibility string `json:"incompatibility" gorm:"size:500"`
}

// TableName 表名
func (i *Ingredient) TableName() string {
	return "ingredients"
}

// Medicine 药剂扩展表，与medications共享ID
type Medicine struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Type        string `json:"type" gorm:"size:20;index"`
	Kind        string `json:"kind" gorm:"size:20"`
	Application string `json:"application" gorm:"size:20"`
	TechPrepID  *uint  `json:"tech_prep_id"`
}

// TableName 表名
func (m *Medicine) TableName() string {
	return "medicines"
}

// 药剂类型常量
const (
	MedicineTypeFinished     = "finished"
	MedicineTypeManufactured = "manufactured"
)

// 药剂剂型常量
const (
	MedicineKindPills    = "pills"
	MedicineKindMixture  = "mixture"
	MedicineKindOintment = "ointment"
	MedicineKindSolution = "solution"
	MedicineKindTincture = "tincture"
	MedicineKindPowder   = "powder"
)

// 用药方式常量
const (
	ApplicationInternal  = "internal"
	ApplicationExternal  = "external"
	ApplicationForMixing = "for mixing"
)

// IngredientView 原料列表行：公共列加原料扩展列
type IngredientView struct {
	ID                uint    `json:"id"`
	Name              string  `json:"name"`
	Manufacturer      string  `json:"manufacturer"`
	CriticalNorm      float64 `json:"critical_norm"`
	ShelfLife         int     `json:"shelf_life"`
	UnitOfMeasure     string  `json:"unit_of_measure"`
	UnitsPerPackage   int     `json:"units_per_package"`
	Price             float64 `json:"price"`
	StorageConditions string  `json:"storage_conditions"`
	CurrentAmount     float64 `json:"current_amount"`
	Type              string  `json:"type"`
	Caution           string  `json:"caution"`
	Incompatibility   string  `json:"incompatibility"`
}

// MedicineView 药剂列表行：公共列加药剂扩展列
type MedicineView struct {
	ID                uint    `json:"id"`
	Name              string  `json:"name"`
	Manufacturer      string  `json:"manufacturer"`
	CriticalNorm      float64 `json:"critical_norm"`
	ShelfLife         int     `json:"shelf_life"`
	UnitOfMeasure     string  `json:"unit_of_measure"`
	UnitsPerPackage   int     `json:"units_per_package"`
	Price             float64 `json:"price"`
	StorageConditions string  `json:"storage_conditions"`
	CurrentAmount     float64 `json:"current_amount"`
	Type              string  `json:"type"`
	Kind              string  `json:"kind"`
	Application       string  `json:"application"`
	TechPrepID        *uint   `json:"tech_prep_id"`
}
