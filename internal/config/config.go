package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/josephtaylor/tensorians-sales/internal/domain"
	"github.com/josephtaylor/tensorians-sales/internal/types"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// TensorConfig holds marketplace API configuration
type TensorConfig struct {
	APIURL string `mapstructure:"api_url"` // REST base for collection stats
	WSURL  string `mapstructure:"ws_url"`  // websocket stream endpoint
	APIKey string `mapstructure:"api_key"`
}

// DiscordConfig holds Discord webhook configuration
type DiscordConfig struct {
	WebhookURLs string `mapstructure:"webhook_urls"` // comma separated webhook URLs
}

// URLs returns the parsed webhook URL list
func (c *DiscordConfig) URLs() []string {
	return types.SplitTrimmed(c.WebhookURLs)
}

// TwitterConfig holds Twitter API credentials
type TwitterConfig struct {
	ConsumerKey    string `mapstructure:"consumer_key"`
	ConsumerSecret string `mapstructure:"consumer_secret"`
	AccessToken    string `mapstructure:"access_token"`
	AccessSecret   string `mapstructure:"access_secret"`
}

// Enabled reports whether all credentials required for posting are present
func (c *TwitterConfig) Enabled() bool {
	return c.ConsumerKey != "" && c.ConsumerSecret != "" && c.AccessToken != "" && c.AccessSecret != ""
}

// PricingConfig holds spot price lookup configuration
type PricingConfig struct {
	APIURL   string `mapstructure:"api_url"`
	Asset    string `mapstructure:"asset"`    // e.g. "solana"
	Currency string `mapstructure:"currency"` // e.g. "usd"
}

// FilterConfig holds the trait gate configuration.
// An empty trait disables gating and every event passes.
type FilterConfig struct {
	Trait  string `mapstructure:"trait"`  // attribute name to gate on, e.g. "Eyes"
	Values string `mapstructure:"values"` // comma separated allow-list
}

// ValueList returns the parsed allow-list
func (c *FilterConfig) ValueList() []string {
	return types.SplitTrimmed(c.Values)
}

// URIConfig holds URI resolver configuration
type URIConfig struct {
	IPFSGateways    []string `mapstructure:"ipfs_gateways"`
	ArweaveGateways []string `mapstructure:"arweave_gateways"`
}

// MediaConfig holds image download configuration
type MediaConfig struct {
	MaxImageSize int64 `mapstructure:"max_image_size"` // download cap in bytes
}

// PipelineConfig holds per-stage timeouts for event processing
type PipelineConfig struct {
	StatsTimeout   time.Duration `mapstructure:"stats_timeout"`
	PriceTimeout   time.Duration `mapstructure:"price_timeout"`
	ImageTimeout   time.Duration `mapstructure:"image_timeout"`
	DeliverTimeout time.Duration `mapstructure:"deliver_timeout"`
}

// WorkerConfig holds worker configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// HTTPConfig holds outbound HTTP client configuration
type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// NotifierConfig holds configuration for the notifier service
type NotifierConfig struct {
	BaseConfig `mapstructure:",squash"`
	Slugs      string         `mapstructure:"slugs"` // comma separated collection slugs
	Tensor     TensorConfig   `mapstructure:"tensor"`
	Discord    DiscordConfig  `mapstructure:"discord"`
	Twitter    TwitterConfig  `mapstructure:"twitter"`
	Pricing    PricingConfig  `mapstructure:"pricing"`
	Filter     FilterConfig   `mapstructure:"filter"`
	URI        URIConfig      `mapstructure:"uri"`
	Media      MediaConfig    `mapstructure:"media"`
	Pipeline   PipelineConfig `mapstructure:"pipeline"`
	Worker     WorkerConfig   `mapstructure:"worker"`
	Server     ServerConfig   `mapstructure:"server"`
	HTTP       HTTPConfig     `mapstructure:"http"`
}

// SlugList returns the parsed collection slug list
func (c *NotifierConfig) SlugList() []string {
	return types.SplitTrimmed(c.Slugs)
}

// LoadNotifierConfig loads configuration for the notifier service
func LoadNotifierConfig(configFile string, envPath string) (*NotifierConfig, error) {
	v := configureViper("notifier", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("tensor.api_url", "https://api.tensor.so")
	v.SetDefault("tensor.ws_url", "wss://api.tensor.so/stream")
	v.SetDefault("pricing.api_url", "https://api.coingecko.com")
	v.SetDefault("pricing.asset", "solana")
	v.SetDefault("pricing.currency", "usd")
	v.SetDefault("uri.ipfs_gateways", []string{domain.DEFAULT_IPFS_GATEWAY, "https://cloudflare-ipfs.com"})
	v.SetDefault("uri.arweave_gateways", []string{domain.DEFAULT_ARWEAVE_GATEWAY})
	v.SetDefault("media.max_image_size", 8*1024*1024) // 8MB
	v.SetDefault("http.timeout", "15s")
	v.SetDefault("pipeline.stats_timeout", "10s")
	v.SetDefault("pipeline.price_timeout", "10s")
	v.SetDefault("pipeline.image_timeout", "20s")
	v.SetDefault("pipeline.deliver_timeout", "30s")
	v.SetDefault("worker.pool_size", 8)
	v.SetDefault("worker.queue_size", 256)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg NotifierConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.Tensor.APIKey == "" {
		return nil, errors.New("tensor.api_key is required")
	}
	if len(cfg.Discord.URLs()) == 0 {
		return nil, errors.New("discord.webhook_urls is required")
	}
	if len(cfg.SlugList()) == 0 {
		return nil, errors.New("slugs is required")
	}
	if cfg.Filter.Trait != "" && len(cfg.Filter.ValueList()) == 0 {
		return nil, errors.New("filter.values is required when filter.trait is set")
	}

	return &cfg, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("TENSORIANS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"slugs",
		// Tensor
		"tensor.api_url",
		"tensor.ws_url",
		"tensor.api_key",
		// Discord
		"discord.webhook_urls",
		// Twitter
		"twitter.consumer_key",
		"twitter.consumer_secret",
		"twitter.access_token",
		"twitter.access_secret",
		// Pricing
		"pricing.api_url",
		"pricing.asset",
		"pricing.currency",
		// Filter
		"filter.trait",
		"filter.values",
		// URI
		"uri.ipfs_gateways",
		"uri.arweave_gateways",
		// Media
		"media.max_image_size",
		// HTTP
		"http.timeout",
		// Pipeline
		"pipeline.stats_timeout",
		"pipeline.price_timeout",
		"pipeline.image_timeout",
		"pipeline.deliver_timeout",
		// Worker
		"worker.pool_size",
		"worker.queue_size",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}
