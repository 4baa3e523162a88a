package datagen

import (
	"fmt"
	"strings"
	"time"

	"github.com/nwcommerce-seeder/internal/constants"
	"github.com/nwcommerce-seeder/internal/models"
)

// 注册日期回溯窗口（年）
const registrationWindowYears = 4

// 客户年龄上下限
const (
	minCustomerAge = 18
	maxCustomerAge = 70
)

// 20 个州及对应权重，抽样前按比例归一化
var (
	usStates = []string{
		"CA", "NY", "TX", "FL", "IL", "PA", "OH", "MI", "GA", "NC",
		"NJ", "VA", "WA", "AZ", "MA", "TN", "IN", "MO", "MD", "WI",
	}
	usStateWeights = []float64{
		12, 6, 9, 6, 4, 4, 4, 3, 3, 3,
		3, 3, 2, 2, 2, 2, 2, 2, 2, 38,
	}
)

var (
	genders       = []string{constants.GenderMale, constants.GenderFemale, constants.GenderOther}
	genderWeights = []float64{0.48, 0.48, 0.04}
)

// GenerateCustomers 生成 n 条客户记录。ID 留空，
// 插入后由数据库自增分配并回填。
func GenerateCustomers(r *Rand, n int, now time.Time) []models.Customer {
	customers := make([]models.Customer, 0, n)
	seen := make(map[string]struct{}, n)

	regStart := now.AddDate(-registrationWindowYears, 0, 0)
	birthStart := now.AddDate(-maxCustomerAge, 0, 0)
	birthEnd := now.AddDate(-minCustomerAge, 0, 0)

	for i := 0; i < n; i++ {
		first := Pick(r, firstNames)
		last := Pick(r, lastNames)
		customers = append(customers, models.Customer{
			Email:                 uniqueEmail(r, first, last, seen),
			FirstName:             first,
			LastName:              last,
			RegistrationDate:      r.DateBetween(regStart, now),
			BirthDate:             r.DateBetween(birthStart, birthEnd),
			Gender:                genders[r.Weighted(genderWeights)],
			City:                  Pick(r, cities),
			State:                 usStates[r.Weighted(usStateWeights)],
			Country:               constants.CountryUSA,
			CustomerLifetimeValue: models.NewMoneyFromFloat(r.CLV()),
		})
	}
	return customers
}

// uniqueEmail 生成集合内唯一的邮箱，冲突时重新生成
func uniqueEmail(r *Rand, first, last string, seen map[string]struct{}) string {
	for {
		email := fmt.Sprintf("%s.%s%d@%s",
			strings.ToLower(first), strings.ToLower(last), r.IntN(100000), Pick(r, emailDomains))
		if _, ok := seen[email]; !ok {
			seen[email] = struct{}{}
			return email
		}
	}
}
