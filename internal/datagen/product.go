package datagen

import (
	"fmt"

	"github.com/nwcommerce-seeder/internal/models"
)

// 标价倍率区间：list_price = cost_price × U(1.3, 2.5)
const (
	minMarkup = 1.3
	maxMarkup = 2.5
)

// productCategory 类目定义：子类目、品牌与类目相关的成本价区间
type productCategory struct {
	Name          string
	Subcategories []string
	Brands        []string
	CostMin       float64
	CostMax       float64
}

var productTaxonomy = []productCategory{
	{
		Name:          "Electronics",
		Subcategories: []string{"Smartphones", "Laptops", "Tablets", "Accessories", "Gaming"},
		Brands:        []string{"Apple", "Samsung", "Sony", "HP", "Dell", "Microsoft"},
		CostMin:       50, CostMax: 800,
	},
	{
		Name:          "Clothing",
		Subcategories: []string{"Mens", "Womens", "Kids", "Shoes", "Accessories"},
		Brands:        []string{"Nike", "Adidas", "Zara", "H&M", "Gap", "Levis"},
		CostMin:       10, CostMax: 150,
	},
	{
		Name:          "Home",
		Subcategories: []string{"Furniture", "Kitchen", "Decor", "Garden", "Storage"},
		Brands:        []string{"IKEA", "Target", "Home Depot", "Wayfair", "West Elm"},
		CostMin:       20, CostMax: 300,
	},
	{
		Name:          "Sports",
		Subcategories: []string{"Fitness", "Outdoor", "Team Sports", "Water Sports", "Winter"},
		Brands:        []string{"Nike", "Adidas", "Under Armour", "REI", "Patagonia"},
		CostMin:       15, CostMax: 200,
	},
	{
		Name:          "Books",
		Subcategories: []string{"Fiction", "Non-Fiction", "Educational", "Children", "Reference"},
		Brands:        []string{"Penguin", "Harper", "Random House", "Scholastic", "McGraw Hill"},
		CostMin:       8, CostMax: 40,
	},
}

// GenerateProducts 生成 m 条商品记录。类目均匀抽取，
// 子类目和品牌在类目内均匀抽取；商品名不要求唯一。
func GenerateProducts(r *Rand, m int) []models.Product {
	products := make([]models.Product, 0, m)
	for i := 0; i < m; i++ {
		category := Pick(r, productTaxonomy)
		subcategory := Pick(r, category.Subcategories)
		brand := Pick(r, category.Brands)
		cost := Round2(r.FloatRange(category.CostMin, category.CostMax))
		list := Round2(cost * r.FloatRange(minMarkup, maxMarkup))
		products = append(products, models.Product{
			ProductName: fmt.Sprintf("%s %s %s", brand, subcategory, CatchPhrase(r)),
			Category:    category.Name,
			Subcategory: subcategory,
			Brand:       brand,
			CostPrice:   models.NewMoneyFromFloat(cost),
			ListPrice:   models.NewMoneyFromFloat(list),
		})
	}
	return products
}
