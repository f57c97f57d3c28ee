package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	Redis  RedisConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Admin  AdminConfig
	Market MarketConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName      string `envconfig:"DB_NAME" required:"true"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// AdminConfig lists the shopper emails allowed to trigger clearing by hand.
type AdminConfig struct {
	Emails []string `envconfig:"ADMIN_EMAILS" default:""`
}

func (a AdminConfig) IsAdmin(email string) bool {
	for _, e := range a.Emails {
		if e != "" && strings.EqualFold(strings.TrimSpace(e), email) {
			return true
		}
	}
	return false
}

// BidOrder selects how open bids are ranked when an auction clears.
type BidOrder string

const (
	BidOrderDescending BidOrder = "descending"
	BidOrderAscending  BidOrder = "ascending"
)

type MarketConfig struct {
	LowStockRatio        decimal.Decimal `envconfig:"LOW_STOCK_RATIO" default:"0.25"`
	AuctionDuration      time.Duration   `envconfig:"AUCTION_DURATION" default:"4h"`
	AuctionExtension     time.Duration   `envconfig:"AUCTION_EXTENSION" default:"4h"`
	ClearingTick         time.Duration   `envconfig:"CLEARING_TICK" default:"1h"`
	ClearingBidOrder     BidOrder        `envconfig:"CLEARING_BID_ORDER" default:"descending"`
	CheckoutAllOrNothing bool            `envconfig:"CHECKOUT_ALL_OR_NOTHING" default:"false"`
	DefaultCategory      string          `envconfig:"DEFAULT_CATEGORY" default:"red"`
	SchedulerEnabled     bool            `envconfig:"CLEARING_SCHEDULER_ENABLED" default:"true"`
}

func (m MarketConfig) Validate() error {
	if !m.LowStockRatio.IsPositive() {
		return fmt.Errorf("LOW_STOCK_RATIO must be positive, got %s", m.LowStockRatio)
	}
	if m.AuctionDuration <= 0 || m.AuctionExtension <= 0 {
		return fmt.Errorf("AUCTION_DURATION and AUCTION_EXTENSION must be positive")
	}
	if m.ClearingTick <= 0 {
		return fmt.Errorf("CLEARING_TICK must be positive, got %s", m.ClearingTick)
	}
	switch m.ClearingBidOrder {
	case BidOrderDescending, BidOrderAscending:
	default:
		return fmt.Errorf("CLEARING_BID_ORDER must be %q or %q, got %q", BidOrderDescending, BidOrderAscending, m.ClearingBidOrder)
	}
	if m.DefaultCategory == "" {
		return fmt.Errorf("DEFAULT_CATEGORY must not be empty")
	}
	return nil
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Market.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid market config: %w", err)
	}
	return cfg, nil
}

func NewTestMarketConfig() MarketConfig {
	return MarketConfig{
		LowStockRatio:        decimal.RequireFromString("0.25"),
		AuctionDuration:      4 * time.Hour,
		AuctionExtension:     4 * time.Hour,
		ClearingTick:         time.Hour,
		ClearingBidOrder:     BidOrderDescending,
		CheckoutAllOrNothing: false,
		DefaultCategory:      "red",
		SchedulerEnabled:     false,
	}
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
			MaxConns: 10,
		},
		Redis: RedisConfig{
			Addr: "localhost:16379", // Test Redis port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-e2e",
			Duration: "1h",
		},
		Admin: AdminConfig{
			Emails: []string{"admin@example.com"},
		},
		Market: NewTestMarketConfig(),
	}
}
