package models

import (
	"time"
)

// MarketingCampaign 营销活动表
type MarketingCampaign struct {
	ID           uint      `gorm:"column:campaign_id;primarykey" json:"campaign_id"` // 主键（库内自增分配）
	CampaignName string    `gorm:"type:varchar(200);not null" json:"campaign_name"`  // 活动名称
	StartDate    time.Time `gorm:"type:date;not null" json:"start_date"`             // 开始日期
	EndDate      time.Time `gorm:"type:date;not null" json:"end_date"`               // 结束日期（开始 + 7~90 天）
	Budget       Money     `gorm:"type:decimal(10,2);not null" json:"budget"`        // 预算
	Channel      string    `gorm:"type:varchar(50);index" json:"channel"`            // 投放渠道
}

// TableName 指定表名
func (MarketingCampaign) TableName() string {
	return "marketing_campaigns"
}
