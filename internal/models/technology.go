package models

// Technology 药剂制备工艺
type Technology struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Description string `json:"description" gorm:"size:1000"`
	// 制备周期（天），对外序列化为整数天数
	PreparationTime int `json:"preparation_time"`
}

// TableName 表名
func (t *Technology) TableName() string {
	return "technologies"
}

// Composition 药剂配方，联合主键 medicine_id + ingredient_id
type Composition struct {
	MedicineID   uint    `json:"medicine_id" gorm:"primaryKey;autoIncrement:false"`
	IngredientID uint    `json:"ingredient_id" gorm:"primaryKey;autoIncrement:false"`
	Amount       float64 `json:"amount"`
}

// TableName 表名
func (c *Composition) TableName() string {
	return "compositions"
}
