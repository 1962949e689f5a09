package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB          int    `mapstructure:"REDIS_AUTH_DB"`
	RedisAssistantDB     int    `mapstructure:"REDIS_ASSISTANT_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// External collaborators.
	GoogleAPIKey               string `mapstructure:"GOOGLE_API_KEY"`
	GeminiAPIKey               string `mapstructure:"GEMINI_API_KEY"`
	FirebaseServiceAccountPath string `mapstructure:"FIREBASE_SERVICE_ACCOUNT_PATH"`

	// Availability engine tuning. Minutes from midnight for the working
	// window; weights feed the slot recommender.
	WorkStartMinute    int     `mapstructure:"WORK_START_MINUTE"`
	WorkEndMinute      int     `mapstructure:"WORK_END_MINUTE"`
	MinSlotMinutes     int     `mapstructure:"MIN_SLOT_MINUTES"`
	MaxRangeDays       int     `mapstructure:"MAX_RANGE_DAYS"`
	DefaultRangeDays   int     `mapstructure:"DEFAULT_RANGE_DAYS"`
	BusinessStartMin   int     `mapstructure:"BUSINESS_START_MINUTE"`
	BusinessEndMin     int     `mapstructure:"BUSINESS_END_MINUTE"`
	ScoreAvailable     float64 `mapstructure:"SCORE_AVAILABLE_BONUS"`
	ScoreDurationFit   float64 `mapstructure:"SCORE_DURATION_FIT"`
	ScoreRecency       float64 `mapstructure:"SCORE_RECENCY"`
	ScoreBusinessHours float64 `mapstructure:"SCORE_BUSINESS_HOURS"`
	ScoreCutoff        float64 `mapstructure:"SCORE_CUTOFF"`
	RecommendTopK      int     `mapstructure:"RECOMMEND_TOP_K"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_ASSISTANT_DB", 2)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 3)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "smartcal")
	viper.SetDefault("GOOGLE_API_KEY", "")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("FIREBASE_SERVICE_ACCOUNT_PATH", "")

	// Engine defaults: 09:00-18:00 working hours, 30-minute minimum slot,
	// 7-day default range capped at 90 days.
	viper.SetDefault("WORK_START_MINUTE", 540)
	viper.SetDefault("WORK_END_MINUTE", 1080)
	viper.SetDefault("MIN_SLOT_MINUTES", 30)
	viper.SetDefault("MAX_RANGE_DAYS", 90)
	viper.SetDefault("DEFAULT_RANGE_DAYS", 7)
	viper.SetDefault("BUSINESS_START_MINUTE", 600)
	viper.SetDefault("BUSINESS_END_MINUTE", 960)
	viper.SetDefault("SCORE_AVAILABLE_BONUS", 100.0)
	viper.SetDefault("SCORE_DURATION_FIT", 30.0)
	viper.SetDefault("SCORE_RECENCY", 20.0)
	viper.SetDefault("SCORE_BUSINESS_HOURS", 10.0)
	viper.SetDefault("SCORE_CUTOFF", 0.0)
	viper.SetDefault("RECOMMEND_TOP_K", 3)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
