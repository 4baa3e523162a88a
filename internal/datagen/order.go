package datagen

import (
	"sort"
	"time"

	"github.com/nwcommerce-seeder/internal/constants"
	"github.com/nwcommerce-seeder/internal/models"
)

// TransactionSet 一次生成的订单、订单项与获客记录，按外键顺序插入
type TransactionSet struct {
	Orders       []models.Order
	Items        []models.OrderItem
	Acquisitions []models.CustomerAcquisition
}

// 行为分层的分配比例与下单抽样权重：
// 高价值客户单次抽取命中概率是低价值客户的 3 倍（模拟复购倾斜）
var (
	segments             = []string{constants.SegmentHighValue, constants.SegmentMediumValue, constants.SegmentLowValue}
	segmentAssignWeights = []float64{0.2, 0.3, 0.5}
	segmentDrawWeight    = map[string]float64{
		constants.SegmentHighValue:   3,
		constants.SegmentMediumValue: 2,
		constants.SegmentLowValue:    1,
	}
)

var (
	orderStatuses = []string{
		constants.OrderStatusCompleted,
		constants.OrderStatusPending,
		constants.OrderStatusShipped,
		constants.OrderStatusCancelled,
		constants.OrderStatusReturned,
	}
	orderStatusWeights = []float64{0.7, 0.1, 0.1, 0.05, 0.05}

	paymentMethods = []string{
		constants.PaymentMethodCreditCard,
		constants.PaymentMethodDebitCard,
		constants.PaymentMethodPaypal,
		constants.PaymentMethodApplePay,
		constants.PaymentMethodGooglePay,
	}

	// 每单 1~5 件、单件 1~3 个的数量权重
	itemCountWeights = []float64{0.4, 0.3, 0.15, 0.1, 0.05}
	quantityWeights  = []float64{0.7, 0.2, 0.1}
)

const (
	shipMinDays        = 1
	shipMaxDays        = 10
	shipNullProb       = 0.1
	minShippingCost    = 0.0
	maxShippingCost    = 25.0
	discountProb       = 0.3
	maxDiscountRate    = 0.3
	acquisitionProb    = 0.2
	minAcquisitionCost = 5.0
	maxAcquisitionCost = 100.0
)

// AssignSegments 为每位客户分配一次行为分层（订单生成前执行一次）
func AssignSegments(r *Rand, customers []models.Customer) {
	for i := range customers {
		customers[i].Segment = segments[r.Weighted(segmentAssignWeights)]
	}
}

// GenerateTransactions 生成 p 笔订单及其订单项和获客记录。
// customers/products/campaigns 的 ID 必须已由插入操作回填，
// 生成出的所有外键都指向已提交的行。
func GenerateTransactions(r *Rand, customers []models.Customer, products []models.Product,
	campaigns []models.MarketingCampaign, p int, floor, now time.Time) TransactionSet {
	set := TransactionSet{}
	if len(customers) == 0 || len(products) == 0 {
		return set
	}

	AssignSegments(r, customers)

	// 分层固定后每位客户的权重不再变化，累计权重只构建一次；
	// 每次抽取仍是对全量客户的独立加权抽样
	cum := make([]float64, len(customers))
	total := 0.0
	for i, c := range customers {
		total += segmentDrawWeight[c.Segment]
		cum[i] = total
	}

	set.Orders = make([]models.Order, 0, p)
	for orderID := 1; orderID <= p; orderID++ {
		customer := customers[sort.SearchFloat64s(cum, r.Float64()*total)]

		start := customer.RegistrationDate
		if start.Before(floor) {
			start = floor
		}
		orderDate := r.DateBetween(start, now)

		// 抽样顺序固定：先取发货间隔，再判定是否置空，保证同种子可复现
		ship := orderDate.AddDate(0, 0, r.IntRange(shipMinDays, shipMaxDays))
		var shipDate *time.Time
		if r.Float64() >= shipNullProb {
			shipDate = &ship
		}

		set.Orders = append(set.Orders, models.Order{
			ID:            uint(orderID),
			CustomerID:    customer.ID,
			OrderDate:     orderDate,
			ShipDate:      shipDate,
			OrderStatus:   orderStatuses[r.Weighted(orderStatusWeights)],
			ShippingCost:  models.NewMoneyFromFloat(Round2(r.FloatRange(minShippingCost, maxShippingCost))),
			PaymentMethod: Pick(r, paymentMethods),
		})

		itemCount := r.Weighted(itemCountWeights) + 1
		if itemCount > len(products) {
			itemCount = len(products)
		}
		// 不放回抽取 itemCount 个互不相同的商品
		for _, pi := range r.Perm(len(products))[:itemCount] {
			product := products[pi]
			unitPrice, _ := product.ListPrice.Float64()
			discount := 0.0
			if r.Float64() < discountProb {
				discount = Round2(r.FloatRange(0, maxDiscountRate) * unitPrice)
			}
			set.Items = append(set.Items, models.OrderItem{
				OrderID:        uint(orderID),
				ProductID:      product.ID,
				Quantity:       r.Weighted(quantityWeights) + 1,
				UnitPrice:      product.ListPrice,
				DiscountAmount: models.NewMoneyFromFloat(discount),
			})
		}

		if r.Float64() < acquisitionProb && len(campaigns) > 0 {
			set.Acquisitions = append(set.Acquisitions, models.CustomerAcquisition{
				CustomerID:      customer.ID,
				CampaignID:      Pick(r, campaigns).ID,
				AcquisitionDate: orderDate,
				AcquisitionCost: models.NewMoneyFromFloat(Round2(r.FloatRange(minAcquisitionCost, maxAcquisitionCost))),
			})
		}
	}
	return set
}
