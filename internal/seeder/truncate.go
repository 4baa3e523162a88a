package seeder

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// truncateOrder 清空顺序：先子表后父表
var truncateOrder = []string{
	"customer_acquisition",
	"order_items",
	"orders",
	"marketing_campaigns",
	"products",
	"customers",
}

// dbDialectName 获取数据库方言名称，默认按 sqlite 处理。
func dbDialectName(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return "sqlite"
	}
	name := strings.ToLower(strings.TrimSpace(db.Dialector.Name()))
	if name == "" {
		return "sqlite"
	}
	return name
}

// truncateAll 清空六张表，期间关闭外键检查，结束后恢复。
// 任一表清空失败立即返回，本次运行随之终止。
func truncateAll(db *gorm.DB) error {
	switch dbDialectName(db) {
	case "mysql":
		if err := db.Exec("SET FOREIGN_KEY_CHECKS = 0").Error; err != nil {
			return fmt.Errorf("disable fk checks: %w", err)
		}
		defer db.Exec("SET FOREIGN_KEY_CHECKS = 1")
		for _, table := range truncateOrder {
			if err := db.Exec("TRUNCATE TABLE " + table).Error; err != nil {
				return fmt.Errorf("truncate %s: %w", table, err)
			}
		}
	case "postgres", "postgresql":
		// postgres 支持一条语句清空多表并重置自增序列
		stmt := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(truncateOrder, ", "))
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("truncate all: %w", err)
		}
	default:
		// sqlite 没有 TRUNCATE，逐表 DELETE 并重置自增序列
		if err := db.Exec("PRAGMA foreign_keys = OFF").Error; err != nil {
			return fmt.Errorf("disable fk checks: %w", err)
		}
		defer db.Exec("PRAGMA foreign_keys = ON")
		// 没有表用过 AUTOINCREMENT 时 sqlite_sequence 不存在
		var hasSequence int64
		db.Raw("SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'sqlite_sequence'").Scan(&hasSequence)
		for _, table := range truncateOrder {
			if err := db.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("truncate %s: %w", table, err)
			}
			if hasSequence > 0 {
				db.Exec("DELETE FROM sqlite_sequence WHERE name = ?", table)
			}
		}
	}
	return nil
}
