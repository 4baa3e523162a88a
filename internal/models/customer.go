package models

import (
	"time"
)

// Customer 客户表
type Customer struct {
	ID                    uint      `gorm:"column:customer_id;primarykey" json:"customer_id"`          // 主键（库内自增分配）
	Email                 string    `gorm:"uniqueIndex;not null" json:"email"`                          // 邮箱（全局唯一）
	FirstName             string    `gorm:"type:varchar(50);not null" json:"first_name"`                // 名
	LastName              string    `gorm:"type:varchar(50);not null" json:"last_name"`                 // 姓
	RegistrationDate      time.Time `gorm:"type:date;not null;index" json:"registration_date"`          // 注册日期
	BirthDate             time.Time `gorm:"type:date" json:"birth_date"`                                // 出生日期（18-70 岁）
	Gender                string    `gorm:"type:varchar(10)" json:"gender"`                             // 性别
	City                  string    `gorm:"type:varchar(100)" json:"city"`                              // 城市
	State                 string    `gorm:"type:varchar(2);index" json:"state"`                         // 州（两位缩写）
	Country               string    `gorm:"type:varchar(50);default:'USA'" json:"country"`              // 国家
	CustomerLifetimeValue Money     `gorm:"type:decimal(10,2);not null;default:0" json:"lifetime_value"` // 客户生命周期价值（Gamma 分布）

	// Segment 行为分层，仅用于下单抽样加权（仅结构，不写入数据库）
	Segment string `gorm:"-" json:"-"`
}

// TableName 指定表名
func (Customer) TableName() string {
	return "customers"
}
