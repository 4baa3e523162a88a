package models

import (
	"time"
)

// Order 订单表
type Order struct {
	ID            uint       `gorm:"column:order_id;primarykey" json:"order_id"`                 // 主键（生成器按 1..P 顺序分配）
	CustomerID    uint       `gorm:"index;not null" json:"customer_id"`                          // 客户ID
	OrderDate     time.Time  `gorm:"type:date;not null;index" json:"order_date"`                 // 下单日期（不早于客户注册日期）
	ShipDate      *time.Time `gorm:"type:date" json:"ship_date"`                                 // 发货日期（10% 概率为空）
	OrderStatus   string     `gorm:"type:varchar(20);index" json:"order_status"`                 // 订单状态
	ShippingCost  Money      `gorm:"type:decimal(6,2);not null;default:0" json:"shipping_cost"`  // 运费
	PaymentMethod string     `gorm:"type:varchar(20)" json:"payment_method"`                     // 支付方式

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
