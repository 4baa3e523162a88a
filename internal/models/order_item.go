package models

// OrderItem 订单项表
type OrderItem struct {
	ID             uint  `gorm:"column:order_item_id;primarykey" json:"order_item_id"`         // 主键
	OrderID        uint  `gorm:"index;not null" json:"order_id"`                               // 订单ID
	ProductID      uint  `gorm:"index;not null" json:"product_id"`                             // 商品ID
	Quantity       int   `gorm:"not null;default:1" json:"quantity"`                           // 数量（1~3 加权）
	UnitPrice      Money `gorm:"type:decimal(10,2);not null" json:"unit_price"`                // 单价（生成时的商品标价）
	DiscountAmount Money `gorm:"type:decimal(10,2);not null;default:0" json:"discount_amount"` // 优惠金额（70% 为 0）
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
