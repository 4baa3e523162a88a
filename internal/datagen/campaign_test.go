package datagen

import (
	"reflect"
	"testing"
)

func TestGenerateCampaignsFieldBounds(t *testing.T) {
	r := NewRand(42)
	campaigns := GenerateCampaigns(r, 100, DefaultFloorDate, testNow)

	channelSet := make(map[string]struct{}, len(channels))
	for _, c := range channels {
		channelSet[c] = struct{}{}
	}

	for _, c := range campaigns {
		if c.StartDate.Before(DefaultFloorDate) || c.StartDate.After(testNow) {
			t.Fatalf("start date out of window: %v", c.StartDate)
		}
		days := int(c.EndDate.Sub(c.StartDate).Hours() / 24)
		if days < minCampaignDays || days > maxCampaignDays {
			t.Fatalf("campaign duration want %d-%d days got %d", minCampaignDays, maxCampaignDays, days)
		}
		budget, _ := c.Budget.Float64()
		if budget < minBudget-priceEpsilon || budget > maxBudget+priceEpsilon {
			t.Fatalf("budget %v outside [%v, %v]", budget, minBudget, maxBudget)
		}
		if _, ok := channelSet[c.Channel]; !ok {
			t.Fatalf("unknown channel: %s", c.Channel)
		}
		if c.CampaignName == "" {
			t.Fatalf("empty campaign name")
		}
	}
}

func TestGenerateCampaignsDeterministic(t *testing.T) {
	first := GenerateCampaigns(NewRand(42), 5, DefaultFloorDate, testNow)
	second := GenerateCampaigns(NewRand(42), 5, DefaultFloorDate, testNow)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same seed must produce identical campaigns")
	}
}
