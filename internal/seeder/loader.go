package seeder

import (
	"fmt"

	"github.com/nwcommerce-seeder/internal/logger"

	"gorm.io/gorm"
)

const defaultBatchSize = 500

// BulkLoader 批量写入器：一张表一个事务，整批成功或整批回滚
type BulkLoader struct {
	db        *gorm.DB
	batchSize int
}

// NewBulkLoader 创建批量写入器
func NewBulkLoader(db *gorm.DB, batchSize int) *BulkLoader {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &BulkLoader{db: db, batchSize: batchSize}
}

// Insert 批量插入一张内存表。空表直接跳过（只记日志，不发 SQL）；
// 插入失败时整表回滚并把错误交给调用方，本层不重试。
// 数据库分配的自增主键由 gorm 回填到传入切片的元素上。
func (l *BulkLoader) Insert(table string, rows interface{}, count int) error {
	if count == 0 {
		logger.Infow("bulk_insert_skipped_empty", "table", table)
		return nil
	}
	err := l.db.Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(rows, l.batchSize).Error
	})
	if err != nil {
		return fmt.Errorf("bulk insert %s: %w", table, err)
	}
	logger.Infow("bulk_insert_done", "table", table, "rows", count)
	return nil
}
