package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	AuthEIP191 = "eip191"
	AuthJWKS   = "jwks"

	HeightSequence = "sequence"
	HeightEthereum = "ethereum"
)

// Config represents the claim registry configuration
type Config struct {
	Server         ServerConfig         `mapstructure:"server"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Storage        StorageConfig        `mapstructure:"storage"`
	Auth           AuthConfig           `mapstructure:"auth"`
	Height         HeightConfig         `mapstructure:"height"`
	Ethereum       EthereumConfig       `mapstructure:"ethereum"`
	Registry       RegistryConfig       `mapstructure:"registry"`
	Events         EventsConfig         `mapstructure:"events"`
	Reconciliation ReconciliationConfig `mapstructure:"reconciliation"`
	Monitoring     MonitoringConfig     `mapstructure:"monitoring"`
	Logging        LoggingConfig        `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host" default:"0.0.0.0"`
	Port            int           `mapstructure:"port" default:"8080" validate:"gt=0,lte=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" default:"15s"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout" default:"60s"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout" default:"60s"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" default:"30s"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host" default:"localhost"`
	Port     int    `mapstructure:"port" default:"5432"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database" default:"claim_registry"`
	SSLMode  string `mapstructure:"ssl_mode" default:"disable"`
}

// StorageConfig selects where claims are persisted
type StorageConfig struct {
	Driver string `mapstructure:"driver" default:"postgres" validate:"oneof=memory postgres"`
}

// AuthConfig selects how request origins are authenticated
type AuthConfig struct {
	Mode    string `mapstructure:"mode" default:"eip191" validate:"oneof=eip191 jwks"`
	JWKSURL string `mapstructure:"jwks_url" validate:"required_if=Mode jwks"`
	Issuer  string `mapstructure:"issuer"`
}

// HeightConfig selects the source of registration heights
type HeightConfig struct {
	Source string `mapstructure:"source" default:"sequence" validate:"oneof=sequence ethereum"`
}

// EthereumConfig contains Ethereum client settings for the chain-backed height source
type EthereumConfig struct {
	RPCURL      string        `mapstructure:"rpc_url"`
	CallTimeout time.Duration `mapstructure:"call_timeout" default:"10s"`
}

// RegistryConfig contains limits the host imposes on the registry
type RegistryConfig struct {
	// MaxFingerprintBytes bounds fingerprint length; 0 means unbounded.
	MaxFingerprintBytes int `mapstructure:"max_fingerprint_bytes" validate:"gte=0"`
}

// EventsConfig selects additional event destinations
type EventsConfig struct {
	Redis RedisStreamConfig `mapstructure:"redis"`
}

// RedisStreamConfig publishes events to a Redis stream when URL is set
type RedisStreamConfig struct {
	URL    string `mapstructure:"url"`
	Stream string `mapstructure:"stream" default:"claim-registry:events"`
	MaxLen int64  `mapstructure:"max_len" default:"100000" validate:"gte=0"`
}

// ReconciliationConfig controls the periodic resync of claim gauges
type ReconciliationConfig struct {
	// Interval between resyncs. Unset means the default; a negative value disables the loop.
	Interval time.Duration `mapstructure:"interval" default:"5m"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level" default:"info"`
	Format     string `mapstructure:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `mapstructure:"output_path" default:"stdout"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("CLAIM_REGISTRY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindEnvKeys(v, "", reflect.TypeOf(Config{})); err != nil {
		return nil, fmt.Errorf("failed to bind env keys: %w", err)
	}

	// bools cannot carry a struct-tag default: false is their zero value
	v.SetDefault("monitoring.enabled", true)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Finalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindEnvKeys registers every mapstructure key with viper. AutomaticEnv only
// consults the environment for keys viper already knows, so keys absent from
// the file would otherwise ignore their CLAIM_REGISTRY_* variables.
func bindEnvKeys(v *viper.Viper, prefix string, t reflect.Type) error {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" || tag == "-" {
			continue
		}
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}
		if field.Type.Kind() == reflect.Struct {
			if err := bindEnvKeys(v, key, field.Type); err != nil {
				return err
			}
			continue
		}
		if err := v.BindEnv(key); err != nil {
			return err
		}
	}
	return nil
}

// Finalize fills unset fields with their defaults and validates the result.
func Finalize(cfg *Config) error {
	if err := defaults.Set(cfg); err != nil {
		return fmt.Errorf("failed to apply config defaults: %w", err)
	}
	if err := validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return err
	}
	if cfg.Storage.Driver == StoragePostgres && cfg.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if cfg.Height.Source == HeightEthereum && cfg.Ethereum.RPCURL == "" {
		return fmt.Errorf("ethereum.rpc_url is required")
	}
	return nil
}

// GetConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) GetConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
