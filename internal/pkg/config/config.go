package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), game balance settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Vending     VendingConfig
	Autotrade   AutotradeConfig
	Persistence PersistenceConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// VendingConfig mirrors the battle configuration switches the shop logic reads.
type VendingConfig struct {
	MaxValue    int64  `envconfig:"VENDING_MAX_VALUE" default:"1000000000"`
	MaxZeny     int64  `envconfig:"VENDING_MAX_ZENY" default:"1000000000"`
	TaxRate     int64  `envconfig:"VENDING_TAX" default:"0"` // basis points, 100 = 1%
	OverMax     bool   `envconfig:"VENDING_OVER_MAX" default:"true"`
	BuyerName   bool   `envconfig:"VENDING_BUYER_NAME" default:"true"`
	MaxItems    int    `envconfig:"VENDING_MAX_ITEMS" default:"12"`
	AreaSize    int    `envconfig:"VENDING_AREA_SIZE" default:"14"`
	TitleMax    int    `envconfig:"VENDING_TITLE_MAX" default:"80"`
	SaveOnTrade bool   `envconfig:"VENDING_SAVE_ON_TRADE" default:"true"`
	ItemDBPath  string `envconfig:"VENDING_ITEM_DB" default:"db/item_db.yml"`
}

// AutotradeConfig: negative display overrides keep the stored value.
type AutotradeConfig struct {
	Enabled           bool `envconfig:"AUTOTRADE_ENABLED" default:"true"`
	Direction         int  `envconfig:"AUTOTRADE_DIRECTION" default:"4"`
	HeadDirection     int  `envconfig:"AUTOTRADE_HEAD_DIRECTION" default:"0"`
	Sit               int  `envconfig:"AUTOTRADE_SIT" default:"1"`
	ReplayConcurrency int  `envconfig:"AUTOTRADE_REPLAY_CONCURRENCY" default:"8"`
}

type PersistenceConfig struct {
	BreakerMaxRequests      uint32        `envconfig:"PERSISTENCE_BREAKER_MAX_REQUESTS" default:"5"`
	BreakerInterval         time.Duration `envconfig:"PERSISTENCE_BREAKER_INTERVAL" default:"60s"`
	BreakerTimeout          time.Duration `envconfig:"PERSISTENCE_BREAKER_TIMEOUT" default:"30s"`
	BreakerFailureThreshold uint32        `envconfig:"PERSISTENCE_BREAKER_FAILURE_THRESHOLD" default:"5"`
	WriteTimeout            time.Duration `envconfig:"PERSISTENCE_WRITE_TIMEOUT" default:"3s"`
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
	if err := cfg.Vending.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (v VendingConfig) validate() error {
	if v.TaxRate < 0 || v.TaxRate > 10000 {
		return fmt.Errorf("VENDING_TAX must be within 0..10000, got %d", v.TaxRate)
	}
	if v.MaxItems < 1 {
		return fmt.Errorf("VENDING_MAX_ITEMS must be positive, got %d", v.MaxItems)
	}
	if v.MaxValue < 1 || v.MaxZeny < 1 {
		return fmt.Errorf("VENDING_MAX_VALUE and VENDING_MAX_ZENY must be positive")
	}
	return nil
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
			TimeZone: "UTC",
			MaxConns: 4,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Vending: VendingConfig{
			MaxValue:    1000000000,
			MaxZeny:     1000000000,
			TaxRate:     0,
			OverMax:     true,
			BuyerName:   true,
			MaxItems:    12,
			AreaSize:    14,
			TitleMax:    80,
			SaveOnTrade: false,
		},
		Autotrade: AutotradeConfig{
			Enabled:           true,
			Direction:         -1,
			HeadDirection:     -1,
			Sit:               -1,
			ReplayConcurrency: 2,
		},
		Persistence: PersistenceConfig{
			BreakerMaxRequests:      1,
			BreakerInterval:         time.Minute,
			BreakerTimeout:          time.Second,
			BreakerFailureThreshold: 3,
			WriteTimeout:            time.Second,
		},
	}
}
