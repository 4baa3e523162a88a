package models

// Product 商品表
type Product struct {
	ID          uint   `gorm:"column:product_id;primarykey" json:"product_id"`  // 主键（库内自增分配）
	ProductName string `gorm:"type:varchar(200);not null" json:"product_name"`  // 商品名（品牌+子类目+营销短语）
	Category    string `gorm:"type:varchar(50);not null;index" json:"category"` // 类目
	Subcategory string `gorm:"type:varchar(50)" json:"subcategory"`             // 子类目
	Brand       string `gorm:"type:varchar(50);index" json:"brand"`             // 品牌
	CostPrice   Money  `gorm:"type:decimal(10,2);not null" json:"cost_price"`   // 成本价
	ListPrice   Money  `gorm:"type:decimal(10,2);not null" json:"list_price"`   // 标价（成本价 × 1.3~2.5）
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
