package models

import (
	"time"

	"gorm.io/datatypes"
)

// Order 药剂订单
type Order struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	PrescriptionID uint            `json:"prescription_id" gorm:"not null;index"`
	ClientID       uint            `json:"client_id" gorm:"not null;index"`
	OrderNumber    int             `json:"order_number" gorm:"not null"`
	Status         string          `json:"status" gorm:"size:30;index"`
	DateOfIssue    *datatypes.Date `json:"date_of_issue"`
	// 下面两列由服务端计算，创建时不可指定
	ExpectedDateOfIssue *time.Time `json:"expected_date_of_issue"`
	StartData           *time.Time `json:"start_data"`
	Cost                float64    `json:"cost"`
}

// TableName 表名
func (o *Order) TableName() string {
	return "medicine_orders"
}

// 订单状态常量
const (
	OrderStatusWaiting   = "waiting for a delivery"
	OrderStatusProducing = "producing"
	OrderStatusReady     = "ready"
	OrderStatusIssued    = "issued"
	OrderStatusCancelled = "cancelled"
)

// StockDelivery 药品到货入库
type StockDelivery struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	MedicationID    uint            `json:"medication_id" gorm:"not null;index"`
	ApplicationDate datatypes.Date  `json:"application_date"`
	DeliveryDate    *datatypes.Date `json:"delivery_date"`
	Amount          float64         `json:"amount"`
}

// TableName 表名
func (d *StockDelivery) TableName() string {
	return "medication_deliveries"
}

// Inventory 库存盘点记录
type Inventory struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	MedicationID  uint           `json:"medication_id" gorm:"not null;index"`
	InventoryDate datatypes.Date `json:"inventory_date"`
	Amount        float64        `json:"amount"`
}

// TableName 表名
func (i *Inventory) TableName() string {
	return "inventories"
}
