package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	PortKey              = "port"
	DatabaseURLKey       = "database_url"
	RedisAddrKey         = "redis_addr"
	LogLevelKey          = "log_level"
	LogFormatKey         = "log_format"
	AntiforgerySecretKey = "antiforgery_secret"
	AntiforgeryTTLKey    = "antiforgery_ttl"
	SecureCookiesKey     = "secure_cookies"
	ReferenceCacheTTLKey = "reference_cache_ttl"
	QueryTimeoutKey      = "query_timeout"
	RateLimitRPSKey      = "rate_limit_rps"
	RateLimitBurstKey    = "rate_limit_burst"
	AutoMigrateKey       = "auto_migrate"
	SeedKey              = "seed"

	// ConfigFileEnv points at an explicit config file instead of ./catalog.yaml.
	ConfigFileEnv = "CATALOG_CONFIG"

	minSecretLength = 16
)

type Config struct {
	Port        int
	DatabaseURL string
	RedisAddr   string

	LogLevel  string
	LogFormat string

	AntiforgerySecret string
	AntiforgeryTTL    time.Duration
	SecureCookies     bool

	ReferenceCacheTTL time.Duration
	QueryTimeout      time.Duration

	RateLimitRPS   float64
	RateLimitBurst int

	AutoMigrate bool
	Seed        bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(PortKey, 8080)
	v.SetDefault(RedisAddrKey, "")
	v.SetDefault(LogLevelKey, "info")
	v.SetDefault(LogFormatKey, "json")
	v.SetDefault(AntiforgeryTTLKey, 2*time.Hour)
	v.SetDefault(SecureCookiesKey, false)
	v.SetDefault(ReferenceCacheTTLKey, 5*time.Minute)
	v.SetDefault(QueryTimeoutKey, 3*time.Second)
	v.SetDefault(RateLimitRPSKey, 5.0)
	v.SetDefault(RateLimitBurstKey, 10)
	v.SetDefault(AutoMigrateKey, false)
	v.SetDefault(SeedKey, false)
}

// Load reads catalog.yaml (optional) and the environment, environment winning.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path := os.Getenv(ConfigFileEnv); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("catalog")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:              v.GetInt(PortKey),
		DatabaseURL:       v.GetString(DatabaseURLKey),
		RedisAddr:         v.GetString(RedisAddrKey),
		LogLevel:          v.GetString(LogLevelKey),
		LogFormat:         v.GetString(LogFormatKey),
		AntiforgerySecret: v.GetString(AntiforgerySecretKey),
		AntiforgeryTTL:    v.GetDuration(AntiforgeryTTLKey),
		SecureCookies:     v.GetBool(SecureCookiesKey),
		ReferenceCacheTTL: v.GetDuration(ReferenceCacheTTLKey),
		QueryTimeout:      v.GetDuration(QueryTimeoutKey),
		RateLimitRPS:      v.GetFloat64(RateLimitRPSKey),
		RateLimitBurst:    v.GetInt(RateLimitBurstKey),
		AutoMigrate:       v.GetBool(AutoMigrateKey),
		Seed:              v.GetBool(SeedKey),
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.DatabaseURL == "" {
		errs = append(errs, fmt.Errorf("%s is required", DatabaseURLKey))
	}
	if len(c.AntiforgerySecret) < minSecretLength {
		errs = append(errs, fmt.Errorf("%s must be at least %d bytes", AntiforgerySecretKey, minSecretLength))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("%s %d is out of range", PortKey, c.Port))
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		errs = append(errs, errors.New("rate limit rps and burst must be positive"))
	}
	return errors.Join(errs...)
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
