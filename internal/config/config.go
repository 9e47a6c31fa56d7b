// Package config loads service configuration from defaults, an optional YAML
// file, an optional .env file and LEGALITY_* environment variables, in that
// order of precedence.
package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-legality/internal/errors"
)

// Data sources
const (
	SourceFile  = "file"
	SourceRedis = "redis"
)

const envPrefix = "LEGALITY_"

// Config is the complete service configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Data     DataConfig     `yaml:"data"`
	Redis    RedisConfig    `yaml:"redis"`
	Logging  LoggingConfig  `yaml:"logging"`
	Verifier VerifierConfig `yaml:"verifier"`
}

// ServerConfig holds listener ports. A zero metrics port disables metrics.
type ServerConfig struct {
	GRPCPort    int `yaml:"grpc_port"`
	MetricsPort int `yaml:"metrics_port"`
}

// DataConfig selects where the learnset dataset is loaded from
type DataConfig struct {
	Source    string `yaml:"source"`
	Path      string `yaml:"path"`
	KeyPrefix string `yaml:"key_prefix"`
}

// RedisConfig holds the Redis connection. URL wins over Endpoint.
type RedisConfig struct {
	URL      string `yaml:"url"`
	Endpoint string `yaml:"endpoint"`
	PoolSize int    `yaml:"pool_size"`
	UseTLS   bool   `yaml:"use_tls"`
}

// LoggingConfig holds the slog handler settings
type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// VerifierConfig holds the save context the level verifier runs under
type VerifierConfig struct {
	ActiveTrainerGeneration int  `yaml:"active_trainer_generation"`
	AllowGBCartEra          bool `yaml:"allow_gb_cart_era"`
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			GRPCPort:    50051,
			MetricsPort: 9090,
		},
		Data: DataConfig{
			Source:    SourceFile,
			Path:      "data/learnsets.yaml",
			KeyPrefix: "learnset",
		},
		Redis: RedisConfig{
			Endpoint: "localhost:6379",
			PoolSize: 10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration. An empty path skips the YAML file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.NotFoundf("config file %s not found", path)
			}
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config file")
		}
	}

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	vb := errors.NewValidationBuilder()

	envString("DATA_SOURCE", &cfg.Data.Source)
	envString("DATA_PATH", &cfg.Data.Path)
	envString("DATA_KEY_PREFIX", &cfg.Data.KeyPrefix)
	envString("REDIS_URL", &cfg.Redis.URL)
	envString("REDIS_ENDPOINT", &cfg.Redis.Endpoint)
	envString("LOG_LEVEL", &cfg.Logging.Level)

	envInt("GRPC_PORT", &cfg.Server.GRPCPort, vb)
	envInt("METRICS_PORT", &cfg.Server.MetricsPort, vb)
	envInt("REDIS_POOL_SIZE", &cfg.Redis.PoolSize, vb)
	envInt("ACTIVE_TRAINER_GENERATION", &cfg.Verifier.ActiveTrainerGeneration, vb)

	envBool("REDIS_USE_TLS", &cfg.Redis.UseTLS, vb)
	envBool("LOG_JSON", &cfg.Logging.JSON, vb)
	envBool("ALLOW_GB_CART_ERA", &cfg.Verifier.AllowGBCartEra, vb)

	return vb.Build()
}

func envString(name string, dst *string) {
	if v, ok := os.LookupEnv(envPrefix + name); ok {
		*dst = v
	}
}

func envInt(name string, dst *int, vb *errors.ValidationBuilder) {
	v, ok := os.LookupEnv(envPrefix + name)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		vb.Fieldf(envPrefix+name, "must be an integer, got %q", v)
		return
	}
	*dst = n
}

func envBool(name string, dst *bool, vb *errors.ValidationBuilder) {
	v, ok := os.LookupEnv(envPrefix + name)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		vb.Fieldf(envPrefix+name, "must be a boolean, got %q", v)
		return
	}
	*dst = b
}

// Validate checks the configuration is usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.grpc_port", c.Server.GRPCPort, 1, 65535, vb)
	errors.ValidateRange("server.metrics_port", c.Server.MetricsPort, 0, 65535, vb)

	errors.ValidateEnum("data.source", c.Data.Source, []string{SourceFile, SourceRedis}, vb)
	switch c.Data.Source {
	case SourceFile:
		errors.ValidateRequired("data.path", c.Data.Path, vb)
	case SourceRedis:
		if c.Redis.URL == "" && c.Redis.Endpoint == "" {
			vb.Field("redis", "url or endpoint is required")
		}
	}

	errors.ValidateEnum("logging.level", c.Logging.Level, []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateRange("verifier.active_trainer_generation", c.Verifier.ActiveTrainerGeneration, 0, 8, vb)

	return vb.Build()
}
