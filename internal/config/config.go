package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DriverMemory selects the in-memory product store instead of a database.
const DriverMemory = "memory"

type Config struct {
	HTTPAddr  string
	LogLevel  string
	ModelPath string
	Database  DatabaseConfig
	Razorpay  RazorpayConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type DatabaseConfig struct {
	Driver string
	URL    string
}

// RazorpayConfig holds the gateway credentials. KeyID is also handed to the
// browser checkout widget; KeySecret never leaves the server.
type RazorpayConfig struct {
	KeyID     string
	KeySecret string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	RPS         float64
	Burst       int
	BanStrikes  int
	BanDuration time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("model_path", "artifacts/house_price_model.json")
	v.SetDefault("database_driver", "sqlite")
	v.SetDefault("database_url", "storefront.db")
	v.SetDefault("razorpay_key_id", "")
	v.SetDefault("razorpay_key_secret", "")
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("rate_limit_rps", 1.0)
	v.SetDefault("rate_limit_burst", 3)
	v.SetDefault("ban_strikes", 5)
	v.SetDefault("ban_duration", 15*time.Minute)
}

// Load reads an optional .env file and then the process environment.
// Missing gateway credentials are not an error here.
func Load(envFiles ...string) *Config {
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{
		HTTPAddr:  v.GetString("http_addr"),
		LogLevel:  v.GetString("log_level"),
		ModelPath: v.GetString("model_path"),
		Database: DatabaseConfig{
			Driver: v.GetString("database_driver"),
			URL:    v.GetString("database_url"),
		},
		Razorpay: RazorpayConfig{
			KeyID:     v.GetString("razorpay_key_id"),
			KeySecret: v.GetString("razorpay_key_secret"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis_addr"),
			Password: v.GetString("redis_password"),
			DB:       v.GetInt("redis_db"),
		},
		RateLimit: RateLimitConfig{
			RPS:         v.GetFloat64("rate_limit_rps"),
			Burst:       v.GetInt("rate_limit_burst"),
			BanStrikes:  v.GetInt("ban_strikes"),
			BanDuration: v.GetDuration("ban_duration"),
		},
	}
}
