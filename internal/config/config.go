package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/nwcommerce-seeder/internal/logger"

	"github.com/spf13/viper"
)

// Config 应用配置结构
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"database"`
	Seed     SeedConfig     `mapstructure:"seed"`
}

// LogConfig 日志配置
type LogConfig struct {
	Mode       string `mapstructure:"mode"` // debug / release
	Dir        string `mapstructure:"dir"`
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// ToLoggerOptions 转换为 logger 配置
func (c LogConfig) ToLoggerOptions() logger.Options {
	return logger.Options{
		Dir:        c.Dir,
		Filename:   c.Filename,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
		Compress:   c.Compress,
	}
}

// DatabasePoolConfig 数据库连接池配置
type DatabasePoolConfig struct {
	MaxOpenConns           int `mapstructure:"max_open_conns"`
	MaxIdleConns           int `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeSeconds int `mapstructure:"conn_max_lifetime_seconds"`
	ConnMaxIdleTimeSeconds int `mapstructure:"conn_max_idle_time_seconds"`
}

// DatabaseConfig 数据库配置。DSN 显式配置时优先；
// 否则由离散字段拼接，密码为空时在运行时交互式输入。
type DatabaseConfig struct {
	Driver   string             `mapstructure:"driver"` // 数据库驱动（mysql/postgres/sqlite）
	DSN      string             `mapstructure:"dsn"`    // 完整连接串（可选）
	Host     string             `mapstructure:"host"`
	Port     int                `mapstructure:"port"`
	User     string             `mapstructure:"user"`
	Password string             `mapstructure:"password"` // 不会出现在任何日志里
	Name     string             `mapstructure:"name"`
	Pool     DatabasePoolConfig `mapstructure:"pool"`
}

// ResolveDSN 生成连接串，password 为交互输入或配置中的密码
func (c DatabaseConfig) ResolveDSN(password string) string {
	if strings.TrimSpace(c.DSN) != "" {
		return c.DSN
	}
	switch strings.ToLower(strings.TrimSpace(c.Driver)) {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.User, password, c.Host, c.Port, c.Name)
	case "postgres", "postgresql":
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			c.Host, c.Port, c.User, password, c.Name)
	default:
		// sqlite 直接把库名当文件路径
		return fmt.Sprintf("./%s.db", c.Name)
	}
}

// SeedConfig 数据生成配置
type SeedConfig struct {
	RNGSeed   uint64 `mapstructure:"rng_seed"`   // 随机种子（同种子输出逐字段一致）
	Customers int    `mapstructure:"customers"`  // 客户数量
	Products  int    `mapstructure:"products"`   // 商品数量
	Campaigns int    `mapstructure:"campaigns"`  // 营销活动数量
	Orders    int    `mapstructure:"orders"`     // 订单数量
	BatchSize int    `mapstructure:"batch_size"` // 批量插入的批大小
	FloorDate string `mapstructure:"floor_date"` // 订单/活动日期下限（YYYY-MM-DD）
}

// ParseFloorDate 解析日期下限
func (c SeedConfig) ParseFloorDate() (time.Time, error) {
	return time.Parse("2006-01-02", c.FloorDate)
}

// Load 从 config.yml 加载配置
func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")     // 从当前目录查找
	viper.AddConfigPath("../")   // 如果从 cmd/seed 运行
	viper.AddConfigPath("./etc") // etc 文件夹

	viper.SetDefault("log.mode", "debug")
	viper.SetDefault("log.dir", "")
	viper.SetDefault("log.filename", "seeder.log")
	viper.SetDefault("log.max_size_mb", 100)
	viper.SetDefault("log.max_backups", 7)
	viper.SetDefault("log.max_age_days", 30)
	viper.SetDefault("log.compress", true)
	viper.SetDefault("database.driver", "mysql")
	viper.SetDefault("database.dsn", "")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.user", "root")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.name", "northwestern_commerce")
	viper.SetDefault("database.pool.max_open_conns", 1)
	viper.SetDefault("database.pool.max_idle_conns", 1)
	viper.SetDefault("database.pool.conn_max_lifetime_seconds", 0)
	viper.SetDefault("database.pool.conn_max_idle_time_seconds", 0)
	viper.SetDefault("seed.rng_seed", 42)
	viper.SetDefault("seed.customers", 10000)
	viper.SetDefault("seed.products", 1000)
	viper.SetDefault("seed.campaigns", 50)
	viper.SetDefault("seed.orders", 50000)
	viper.SetDefault("seed.batch_size", 500)
	viper.SetDefault("seed.floor_date", "2020-01-01")

	// 环境变量支持
	viper.SetEnvPrefix("NWSEED")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // 将 . 替换为 _（例如 seed.orders -> NWSEED_SEED_ORDERS）

	// 读取配置文件
	if err := viper.ReadInConfig(); err != nil {
		logger.Warnw("config_file_read_failed",
			"error", err,
			"fallback", "env_or_defaults",
		)
	} else {
		logger.Infow("config_file_loaded", "file", viper.ConfigFileUsed())
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		logger.Errorw("config_unmarshal_failed", "error", err)
		panic(fmt.Errorf("配置解析失败: %w", err))
	}

	return &cfg
}
