package datagen

import (
	"reflect"
	"testing"
)

// 金额保留 2 位小数，倍率边界校验留出舍入余量
const priceEpsilon = 0.005

func TestGenerateProductsPriceBounds(t *testing.T) {
	r := NewRand(42)
	products := GenerateProducts(r, 500)

	ranges := make(map[string]productCategory, len(productTaxonomy))
	for _, c := range productTaxonomy {
		ranges[c.Name] = c
	}

	for _, p := range products {
		category, ok := ranges[p.Category]
		if !ok {
			t.Fatalf("unknown category: %s", p.Category)
		}
		cost, _ := p.CostPrice.Float64()
		list, _ := p.ListPrice.Float64()
		if cost < category.CostMin-priceEpsilon || cost > category.CostMax+priceEpsilon {
			t.Fatalf("%s cost price %v outside [%v, %v]", p.Category, cost, category.CostMin, category.CostMax)
		}
		if list < cost*minMarkup-priceEpsilon {
			t.Fatalf("list price %v below %vx cost %v", list, minMarkup, cost)
		}
		if list > cost*maxMarkup+priceEpsilon {
			t.Fatalf("list price %v above %vx cost %v", list, maxMarkup, cost)
		}
	}
}

func TestGenerateProductsTaxonomyConsistent(t *testing.T) {
	r := NewRand(11)
	products := GenerateProducts(r, 300)

	byName := make(map[string]productCategory, len(productTaxonomy))
	for _, c := range productTaxonomy {
		byName[c.Name] = c
	}

	for _, p := range products {
		category := byName[p.Category]
		if !contains(category.Subcategories, p.Subcategory) {
			t.Fatalf("subcategory %s not in category %s", p.Subcategory, p.Category)
		}
		if !contains(category.Brands, p.Brand) {
			t.Fatalf("brand %s not in category %s", p.Brand, p.Category)
		}
		if p.ProductName == "" {
			t.Fatalf("empty product name")
		}
	}
}

func TestGenerateProductsDeterministic(t *testing.T) {
	first := GenerateProducts(NewRand(42), 20)
	second := GenerateProducts(NewRand(42), 20)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same seed must produce identical products")
	}
}

func contains(pool []string, v string) bool {
	for _, s := range pool {
		if s == v {
			return true
		}
	}
	return false
}
