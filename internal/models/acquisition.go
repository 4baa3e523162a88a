package models

import (
	"time"
)

// CustomerAcquisition 客户获客表（约 20% 的订单产生一条）
type CustomerAcquisition struct {
	ID              uint      `gorm:"column:acquisition_id;primarykey" json:"acquisition_id"` // 主键
	CustomerID      uint      `gorm:"index;not null" json:"customer_id"`                      // 客户ID
	CampaignID      uint      `gorm:"index;not null" json:"campaign_id"`                      // 活动ID
	AcquisitionDate time.Time `gorm:"type:date;not null" json:"acquisition_date"`             // 获客日期（等于下单日期）
	AcquisitionCost Money     `gorm:"type:decimal(10,2);not null" json:"acquisition_cost"`    // 获客成本
}

// TableName 指定表名
func (CustomerAcquisition) TableName() string {
	return "customer_acquisition"
}
