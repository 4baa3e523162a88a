package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/nwcommerce-seeder/internal/config"
	"github.com/nwcommerce-seeder/internal/logger"
	"github.com/nwcommerce-seeder/internal/models"
	"github.com/nwcommerce-seeder/internal/seeder"

	"golang.org/x/term"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Log.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	fmt.Println("Starting data generation for Northwestern Commerce...")

	password := cfg.Database.Password
	if needsPassword(cfg.Database) {
		pw, err := promptPassword(fmt.Sprintf("Enter %s password for %s: ", cfg.Database.Driver, cfg.Database.User))
		if err != nil {
			stdLog.Fatalf("Failed to read password: %v", err)
		}
		password = pw
	}

	// 连接失败直接终止，不产生任何半成品数据
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.ResolveDSN(password), models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}
	defer func() {
		if err := models.CloseDB(); err != nil {
			logger.Warnw("db_close_failed", "error", err)
		} else {
			fmt.Println("\nDatabase connection closed.")
		}
	}()

	if err := models.AutoMigrate(); err != nil {
		stdLog.Printf("Failed to migrate database: %v", err)
		return
	}

	floor, err := cfg.Seed.ParseFloorDate()
	if err != nil {
		stdLog.Printf("Invalid seed.floor_date: %v", err)
		return
	}

	s := seeder.New(models.DB, seeder.Options{
		Customers: cfg.Seed.Customers,
		Products:  cfg.Seed.Products,
		Campaigns: cfg.Seed.Campaigns,
		Orders:    cfg.Seed.Orders,
		Seed:      cfg.Seed.RNGSeed,
		BatchSize: cfg.Seed.BatchSize,
		FloorDate: floor,
	})

	if err := run(s); err != nil {
		stdLog.Printf("Data generation failed: %v", err)
		return
	}

	fmt.Println("\nData generation completed successfully!")
	fmt.Println("Database is ready for analysis.")
}

// run 兜底捕获生成过程中的 panic，保证连接清理逻辑仍会执行
func run(s *seeder.Seeder) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Errorw("seed_run_panicked", "run_id", s.RunID(), "panic", rec, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic during data generation: %v", rec)
		}
	}()
	return s.Run()
}

// needsPassword sqlite 无需密码；其余驱动在 DSN 和密码都未配置时交互式输入
func needsPassword(db config.DatabaseConfig) bool {
	driver := strings.ToLower(strings.TrimSpace(db.Driver))
	if driver == "" || driver == "sqlite" {
		return false
	}
	return strings.TrimSpace(db.DSN) == "" && db.Password == ""
}

// promptPassword 交互式读取密码（不回显，也绝不写入日志）
func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(b), nil
}
