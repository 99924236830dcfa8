package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string

	DynamoTables DynamoTables
	S3BucketName string

	JWTSecret     string
	JWTExpiryDays int

	SNSRegion string

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Accounts         string
	Friends          string
	Notifications    string
	UserSettings     string
	Cars             string
	CustomerFeedback string
	MonthlyExpenses  string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "5000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),

		DynamoTables: DynamoTables{
			Accounts:         getEnv("DYNAMO_TABLE_USERS", "Users"),
			Friends:          getEnv("DYNAMO_TABLE_FRIENDS", "Friends"),
			Notifications:    getEnv("DYNAMO_TABLE_NOTIFICATIONS", "Notifications"),
			UserSettings:     getEnv("DYNAMO_TABLE_USER_SETTINGS", "UserSettings"),
			Cars:             getEnv("DYNAMO_TABLE_CARS", "Cars"),
			CustomerFeedback: getEnv("DYNAMO_TABLE_CUSTOMER_FEEDBACK", "CustomerFeedback"),
			MonthlyExpenses:  getEnv("DYNAMO_TABLE_MONTHLY_EXPENSES", "MonthlyExpenses"),
		},
		S3BucketName: getEnv("S3_BUCKET_NAME", "dealerspot-media"),

		JWTSecret:     getEnv("JWT_SECRET", ""),
		JWTExpiryDays: getEnvInt("JWT_EXPIRY_DAYS", 7),

		SNSRegion: getEnv("SNS_REGION", "us-east-1"),

		AllowedOrigins: strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
