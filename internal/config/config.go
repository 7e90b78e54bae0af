package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// MongoDB Configuration
	MongoDB MongoDBConfig `json:"mongodb"`

	// Media Configuration
	Media MediaConfig `json:"media"`

	// Platform API Configuration
	Twitter  TwitterConfig  `json:"twitter"`
	Linkedin LinkedinConfig `json:"linkedin"`

	// Scheduler Configuration
	Scheduler SchedulerConfig `json:"scheduler"`

	// Logging Configuration
	Logging LoggingConfig `json:"logging"`
}

// MongoDBConfig contains content store connection configuration
type MongoDBConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
}

// MediaConfig contains staged-media and durable storage configuration
type MediaConfig struct {
	LocalRoot string `json:"local_root"` // directory holding staged uploads
	Bucket    string `json:"bucket"`
	Region    string `json:"region"`
	Endpoint  string `json:"endpoint"` // custom endpoint for S3-compatible storage
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
	PublicURL string `json:"public_url"` // base URL objects are served from
}

// TwitterConfig contains the app-level API credentials; per-account user
// tokens live on the SocialAccount document.
type TwitterConfig struct {
	APIKey    string `json:"api_key"`
	APISecret string `json:"api_secret"`
	BaseURL   string `json:"base_url"`
	UploadURL string `json:"upload_url"`
}

// LinkedinConfig contains the LinkedIn REST API configuration
type LinkedinConfig struct {
	BaseURL string `json:"base_url"`
}

// SchedulerConfig contains the periodic trigger configuration
type SchedulerConfig struct {
	PublishSpec   string `json:"publish_spec"`    // cron spec for the due-post scan
	AnalyticsSpec string `json:"analytics_spec"`  // cron spec for the analytics poll
	Timezone      string `json:"timezone"`        // canonical IANA timezone for due checks
	Workers       int    `json:"workers"`         // per-cycle fan-out bound
	LockWaitSecs  int    `json:"lock_wait_secs"`  // max cross-job wait for the run lock
	RatePerSecond int    `json:"rate_per_second"` // per-platform API rate limit
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level   string `json:"level"`   // debug, info, warn, error
	Console bool   `json:"console"` // pretty console writer instead of JSON
}

func LoadConfig() *Config {
	return &Config{
		MongoDB: MongoDBConfig{
			Host:     getEnvOrDefault("MONGO_HOST", "localhost"),
			Port:     getEnvOrDefault("MONGO_PORT", "27017"),
			Username: getEnvOrDefault("MONGO_USER", ""),
			Password: getEnvOrDefault("MONGO_PASSWORD", ""),
			Database: getEnvOrDefault("MONGO_DB", "postpilot"),
		},
		Media: MediaConfig{
			LocalRoot: getEnvOrDefault("MEDIA_LOCAL_ROOT", "uploads"),
			Bucket:    getEnvOrDefault("MEDIA_BUCKET", ""),
			Region:    getEnvOrDefault("MEDIA_REGION", "us-east-1"),
			Endpoint:  getEnvOrDefault("MEDIA_ENDPOINT", ""),
			AccessKey: getEnvOrDefault("MEDIA_ACCESS_KEY", ""),
			SecretKey: getEnvOrDefault("MEDIA_SECRET_KEY", ""),
			PublicURL: getEnvOrDefault("MEDIA_PUBLIC_URL", ""),
		},
		Twitter: TwitterConfig{
			APIKey:    getEnvOrDefault("TWITTER_API_KEY", ""),
			APISecret: getEnvOrDefault("TWITTER_API_SECRET", ""),
			BaseURL:   getEnvOrDefault("TWITTER_BASE_URL", "https://api.twitter.com"),
			UploadURL: getEnvOrDefault("TWITTER_UPLOAD_URL", "https://upload.twitter.com"),
		},
		Linkedin: LinkedinConfig{
			BaseURL: getEnvOrDefault("LINKEDIN_BASE_URL", "https://api.linkedin.com/v2"),
		},
		Scheduler: SchedulerConfig{
			PublishSpec:   getEnvOrDefault("PUBLISH_CRON", "* * * * *"),
			AnalyticsSpec: getEnvOrDefault("ANALYTICS_CRON", "*/20 * * * *"),
			Timezone:      getEnvOrDefault("SCHEDULER_TZ", "Asia/Kolkata"),
			Workers:       getIntOrDefault("SCHEDULER_WORKERS", 4),
			LockWaitSecs:  getIntOrDefault("SCHEDULER_LOCK_WAIT", 30),
			RatePerSecond: getIntOrDefault("PLATFORM_RATE_PER_SEC", 5),
		},
		Logging: LoggingConfig{
			Level:   getEnvOrDefault("LOG_LEVEL", "info"),
			Console: getEnvOrDefault("LOG_FORMAT", "json") == "console",
		},
	}
}

// GetMongoURI builds the connection string from the MongoDB section.
func (cfg *Config) GetMongoURI() string {
	m := cfg.MongoDB
	if m.Username != "" && m.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=admin",
			m.Username, m.Password, m.Host, m.Port, m.Database)
	}
	return fmt.Sprintf("mongodb://%s:%s/%s", m.Host, m.Port, m.Database)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
