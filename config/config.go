package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	AES      AESConfig      `mapstructure:"aes"`
	Log      LogConfig      `mapstructure:"log"`
	Engine   EngineConfig   `mapstructure:"engine"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type KafkaConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for AES-256, encrypts journaled balances
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// EngineConfig configures the wallet engine itself.
type EngineConfig struct {
	PivotCurrency  string            `mapstructure:"pivot_currency"`
	SeedBalances   map[string]string `mapstructure:"seed_balances"` // symbol -> decimal string, applied at account init
	SeedPrices     map[string]string `mapstructure:"seed_prices"`   // symbol -> rate against the pivot currency
	Contacts       []ContactConfig   `mapstructure:"contacts"`
	DeeplinkScheme string            `mapstructure:"deeplink_scheme"`
	ExportPrefix   string            `mapstructure:"export_prefix"`
	ExportDir      string            `mapstructure:"export_dir"`
	SweepInterval  time.Duration     `mapstructure:"sweep_interval"`
	Settlement     SettlementConfig  `mapstructure:"settlement"`
	Webhook        WebhookConfig     `mapstructure:"webhook"`
}

type ContactConfig struct {
	Name    string `mapstructure:"name"`
	Tag     string `mapstructure:"tag"`
	Phone   string `mapstructure:"phone"`
	Address string `mapstructure:"address"`
}

// SettlementConfig tunes the outbox that drives simulated external settlement.
type SettlementConfig struct {
	Workers        int             `mapstructure:"workers"`
	QueueSize      int             `mapstructure:"queue_size"`
	AttemptTimeout time.Duration   `mapstructure:"attempt_timeout"`
	RetryIntervals []time.Duration `mapstructure:"retry_intervals"`
	Retention      time.Duration   `mapstructure:"retention"`
	Latency        time.Duration   `mapstructure:"latency"`
	FailureRate    float64         `mapstructure:"failure_rate"` // 0..1, simulated gateway only
}

type WebhookConfig struct {
	URL    string `mapstructure:"url"` // empty = webhook notifications disabled
	Secret string `mapstructure:"secret"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: WLE_ (Wallet Ledger Engine).
// Nested keys use underscore: WLE_DATABASE_HOST, WLE_ENGINE_PIVOT_CURRENCY, etc.
// A .env file in the working directory is loaded first when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "wallet_engine")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "wallet-events")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "wallet-engine")
	v.SetDefault("aes.key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("engine.pivot_currency", "USD")
	v.SetDefault("engine.seed_balances", map[string]string{
		"usd":  "5000",
		"usdc": "2500",
		"sui":  "1200",
		"eth":  "1.5",
	})
	v.SetDefault("engine.seed_prices", map[string]string{
		"usd":  "1",
		"usdc": "1",
		"sui":  "1.5",
		"eth":  "3200",
		"eur":  "1.08",
		"ngn":  "0.00065",
	})
	v.SetDefault("engine.deeplink_scheme", "wallet")
	v.SetDefault("engine.export_prefix", "transactions")
	v.SetDefault("engine.export_dir", "exports")
	v.SetDefault("engine.sweep_interval", "30s")
	v.SetDefault("engine.settlement.workers", 2)
	v.SetDefault("engine.settlement.queue_size", 256)
	v.SetDefault("engine.settlement.attempt_timeout", "5s")
	v.SetDefault("engine.settlement.retry_intervals", []time.Duration{
		2 * time.Second,
		10 * time.Second,
		30 * time.Second,
	})
	v.SetDefault("engine.settlement.retention", "24h")
	v.SetDefault("engine.settlement.latency", "300ms")
	v.SetDefault("engine.settlement.failure_rate", 0.0)
	v.SetDefault("engine.webhook.url", "")
	v.SetDefault("engine.webhook.secret", "")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: WLE_DATABASE_HOST -> database.host
	v.SetEnvPrefix("WLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Engine.PivotCurrency = strings.ToUpper(cfg.Engine.PivotCurrency)

	return &cfg, nil
}

// Balances parses SeedBalances into decimals keyed by upper-case symbol.
func (e EngineConfig) Balances() (map[string]decimal.Decimal, error) {
	return parseDecimals("engine.seed_balances", e.SeedBalances)
}

// Prices parses SeedPrices into decimals keyed by upper-case symbol.
func (e EngineConfig) Prices() (map[string]decimal.Decimal, error) {
	return parseDecimals("engine.seed_prices", e.SeedPrices)
}

func parseDecimals(key string, raw map[string]string) (map[string]decimal.Decimal, error) {
	out := make(map[string]decimal.Decimal, len(raw))
	for symbol, value := range raw {
		d, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", key, symbol, err)
		}
		out[strings.ToUpper(strings.TrimSpace(symbol))] = d
	}
	return out, nil
}
