package seeder

import (
	"fmt"
	"time"

	"github.com/nwcommerce-seeder/internal/datagen"
	"github.com/nwcommerce-seeder/internal/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Options 一次种子运行的参数
type Options struct {
	Customers int
	Products  int
	Campaigns int
	Orders    int
	Seed      uint64
	BatchSize int
	FloorDate time.Time // 订单与活动日期的下限
	Now       time.Time // “今天”，各日期窗口的右端
}

// Seeder 编排器：清库 → 按外键顺序生成并插入 → 汇总行数。
// 严格单线程顺序执行，不支持并发运行（清库会互相覆盖）。
type Seeder struct {
	db     *gorm.DB
	loader *BulkLoader
	opts   Options
	runID  string
}

// New 创建编排器
func New(db *gorm.DB, opts Options) *Seeder {
	if opts.Now.IsZero() {
		y, m, d := time.Now().UTC().Date()
		opts.Now = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	if opts.FloorDate.IsZero() {
		opts.FloorDate = datagen.DefaultFloorDate
	}
	return &Seeder{
		db:     db,
		loader: NewBulkLoader(db, opts.BatchSize),
		opts:   opts,
		runID:  uuid.NewString(),
	}
}

// RunID 返回本次运行的标识（出现在所有运行日志里）
func (s *Seeder) RunID() string {
	return s.runID
}

// Run 执行完整流程。清库失败视为致命错误；
// 单表插入失败只回滚该表并记日志，继续后续表。
func (s *Seeder) Run() error {
	logger.Infow("seed_run_started", "run_id", s.runID, "seed", s.opts.Seed,
		"customers", s.opts.Customers, "products", s.opts.Products,
		"campaigns", s.opts.Campaigns, "orders", s.opts.Orders)

	if err := s.Truncate(); err != nil {
		return fmt.Errorf("clear existing data: %w", err)
	}
	s.Populate(datagen.NewRand(s.opts.Seed))
	return s.Summary()
}

// Truncate 清空六张表（先子后父，期间关闭外键检查）
func (s *Seeder) Truncate() error {
	if err := truncateAll(s.db); err != nil {
		return err
	}
	logger.Infow("tables_cleared", "run_id", s.runID)
	return nil
}

// Populate 生成并插入全部数据。上游实体先插入，
// 数据库回填主键后再生成事务数据，保证外键全部可解析。
func (s *Seeder) Populate(r *datagen.Rand) {
	fmt.Printf("Generating %d customers...\n", s.opts.Customers)
	customers := datagen.GenerateCustomers(r, s.opts.Customers, s.opts.Now)
	s.insert("customers", &customers, len(customers))

	fmt.Printf("Generating %d products...\n", s.opts.Products)
	products := datagen.GenerateProducts(r, s.opts.Products)
	s.insert("products", &products, len(products))

	fmt.Printf("Generating %d marketing campaigns...\n", s.opts.Campaigns)
	campaigns := datagen.GenerateCampaigns(r, s.opts.Campaigns, s.opts.FloorDate, s.opts.Now)
	s.insert("marketing_campaigns", &campaigns, len(campaigns))

	fmt.Printf("Generating %d orders with items...\n", s.opts.Orders)
	set := datagen.GenerateTransactions(r, customers, products, campaigns,
		s.opts.Orders, s.opts.FloorDate, s.opts.Now)
	s.insert("orders", &set.Orders, len(set.Orders))
	s.insert("order_items", &set.Items, len(set.Items))
	s.insert("customer_acquisition", &set.Acquisitions, len(set.Acquisitions))
}

// insert 单表插入失败不终止整次运行，记日志后继续下一张表
func (s *Seeder) insert(table string, rows interface{}, count int) {
	if err := s.loader.Insert(table, rows, count); err != nil {
		logger.Errorw("bulk_insert_failed", "run_id", s.runID, "table", table, "error", err)
	}
}

// summaryOrder 汇总输出顺序
var summaryOrder = []string{
	"customers",
	"products",
	"orders",
	"order_items",
	"marketing_campaigns",
	"customer_acquisition",
}

// Summary 统计各表行数并输出汇总，作为最终完整性检查
func (s *Seeder) Summary() error {
	fmt.Println("\n=== Data Summary ===")
	for _, table := range summaryOrder {
		var count int64
		if err := s.db.Table(table).Count(&count).Error; err != nil {
			return fmt.Errorf("count %s: %w", table, err)
		}
		fmt.Printf("%s: %d records\n", table, count)
		logger.Infow("table_count", "run_id", s.runID, "table", table, "rows", count)
	}
	return nil
}
