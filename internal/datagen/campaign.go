package datagen

import (
	"fmt"
	"time"

	"github.com/nwcommerce-seeder/internal/constants"
	"github.com/nwcommerce-seeder/internal/models"
)

// DefaultFloorDate 活动开始与订单日期的默认下限
var DefaultFloorDate = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

// 活动时长与预算区间
const (
	minCampaignDays = 7
	maxCampaignDays = 90
	minBudget       = 1000.0
	maxBudget       = 50000.0
)

var channels = []string{
	constants.ChannelGoogleAds,
	constants.ChannelFacebook,
	constants.ChannelInstagram,
	constants.ChannelEmail,
	constants.ChannelYoutube,
	constants.ChannelTiktok,
	constants.ChannelPinterest,
}

// GenerateCampaigns 生成 k 条营销活动记录，
// 开始日期均匀落在 [floor, now]，结束日期为开始 + 7~90 天。
func GenerateCampaigns(r *Rand, k int, floor, now time.Time) []models.MarketingCampaign {
	campaigns := make([]models.MarketingCampaign, 0, k)
	for i := 0; i < k; i++ {
		start := r.DateBetween(floor, now)
		campaigns = append(campaigns, models.MarketingCampaign{
			CampaignName: fmt.Sprintf("%s %s Campaign", CompanyName(r), CatchPhrase(r)),
			StartDate:    start,
			EndDate:      start.AddDate(0, 0, r.IntRange(minCampaignDays, maxCampaignDays)),
			Budget:       models.NewMoneyFromFloat(Round2(r.FloatRange(minBudget, maxBudget))),
			Channel:      Pick(r, channels),
		})
	}
	return campaigns
}
