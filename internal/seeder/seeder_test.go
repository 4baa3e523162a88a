package seeder

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/nwcommerce-seeder/internal/datagen"
	"github.com/nwcommerce-seeder/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func setupSeederTest(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	err = db.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.MarketingCampaign{},
		&models.Order{},
		&models.OrderItem{},
		&models.CustomerAcquisition{},
	)
	if err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func testOptions() Options {
	return Options{
		Customers: 20,
		Products:  10,
		Campaigns: 3,
		Orders:    30,
		Seed:      42,
		BatchSize: 10,
		Now:       testNow,
	}
}

func tableCount(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var count int64
	if err := db.Table(table).Count(&count).Error; err != nil {
		t.Fatalf("count %s failed: %v", table, err)
	}
	return count
}

func TestRunPopulatesAllTables(t *testing.T) {
	db := setupSeederTest(t)
	s := New(db, testOptions())

	if err := s.Run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if got := tableCount(t, db, "customers"); got != 20 {
		t.Fatalf("customers want 20 got %d", got)
	}
	if got := tableCount(t, db, "products"); got != 10 {
		t.Fatalf("products want 10 got %d", got)
	}
	if got := tableCount(t, db, "marketing_campaigns"); got != 3 {
		t.Fatalf("campaigns want 3 got %d", got)
	}
	if got := tableCount(t, db, "orders"); got != 30 {
		t.Fatalf("orders want 30 got %d", got)
	}
	items := tableCount(t, db, "order_items")
	if items < 30 || items > 150 {
		t.Fatalf("order items want 30-150 got %d", items)
	}

	// 外键完整性：订单不得引用不存在的客户，订单项不得引用不存在的商品
	var orphanOrders int64
	err := db.Table("orders").
		Where("customer_id NOT IN (?)", db.Table("customers").Select("customer_id")).
		Count(&orphanOrders).Error
	if err != nil {
		t.Fatalf("orphan order query failed: %v", err)
	}
	if orphanOrders != 0 {
		t.Fatalf("orders with unresolved customer id: %d", orphanOrders)
	}

	var orphanItems int64
	err = db.Table("order_items").
		Where("product_id NOT IN (?)", db.Table("products").Select("product_id")).
		Count(&orphanItems).Error
	if err != nil {
		t.Fatalf("orphan item query failed: %v", err)
	}
	if orphanItems != 0 {
		t.Fatalf("order items with unresolved product id: %d", orphanItems)
	}
}

func TestRunClearsPreviousData(t *testing.T) {
	db := setupSeederTest(t)
	s := New(db, testOptions())
	if err := s.Run(); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if err := s.Run(); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if got := tableCount(t, db, "customers"); got != 20 {
		t.Fatalf("customers after rerun want 20 got %d", got)
	}
	if got := tableCount(t, db, "orders"); got != 30 {
		t.Fatalf("orders after rerun want 30 got %d", got)
	}
}

// queryCounter 统计经过 gorm 的 SQL 条数
type queryCounter struct {
	gormlogger.Interface
	queries int
}

func (c *queryCounter) LogMode(gormlogger.LogLevel) gormlogger.Interface { return c }

func (c *queryCounter) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	c.queries++
}

func TestInsertEmptyTableIsNoop(t *testing.T) {
	db := setupSeederTest(t)
	counter := &queryCounter{Interface: gormlogger.Discard}
	loader := NewBulkLoader(db.Session(&gorm.Session{Logger: counter}), 100)

	var empty []models.Order
	if err := loader.Insert("orders", &empty, len(empty)); err != nil {
		t.Fatalf("empty insert want nil error got %v", err)
	}
	if counter.queries != 0 {
		t.Fatalf("empty insert should issue no SQL, got %d statements", counter.queries)
	}
	if got := tableCount(t, db, "orders"); got != 0 {
		t.Fatalf("orders want 0 got %d", got)
	}
}

func TestInsertFailureSurfacedToCaller(t *testing.T) {
	db := setupSeederTest(t)
	loader := NewBulkLoader(db, 100)

	if err := db.Exec("DROP TABLE orders").Error; err != nil {
		t.Fatalf("drop orders failed: %v", err)
	}
	rows := []models.Order{{ID: 1, CustomerID: 1, OrderDate: testNow}}
	if err := loader.Insert("orders", &rows, len(rows)); err == nil {
		t.Fatalf("insert into missing table want error got nil")
	}
}

func TestOrdersFailureDoesNotStopRemainingTables(t *testing.T) {
	db := setupSeederTest(t)
	s := New(db, testOptions())

	if err := s.Truncate(); err != nil {
		t.Fatalf("truncate failed: %v", err)
	}
	if err := db.Exec("DROP TABLE orders").Error; err != nil {
		t.Fatalf("drop orders failed: %v", err)
	}

	// orders 插入失败只记日志，后续表照常尝试；
	// order_items 因外键指向 orders 一并失败，customer_acquisition 不受影响
	s.Populate(datagen.NewRand(42))

	if got := tableCount(t, db, "customers"); got != 20 {
		t.Fatalf("customers want 20 got %d", got)
	}
	if got := tableCount(t, db, "customer_acquisition"); got == 0 {
		t.Fatalf("acquisition insert should still run after orders failure")
	}
}
