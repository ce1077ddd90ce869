package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DB struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
	PublicURL  string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type SMTP struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	// OwnerEmail receives the contact form submissions.
	OwnerEmail string
}

type Config struct {
	ServerPort int
	// PublicBaseURL is the externally visible address used to build
	// verification and unsubscribe links.
	PublicBaseURL string
	DB            DB
	MinIO         MinIO
	Redis         Redis
	SMTP          SMTP
	JWTSecretKey  string
	TokenDuration time.Duration
	MaxUploadSize int64

	// Seed credentials for the single admin account, created at startup
	// when the users table is empty.
	AdminEmail    string
	AdminPassword string

	// Unverified subscribers older than this are purged by the worker.
	SubscriberTokenTTL time.Duration
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 10 * 1024 * 1024
	}
	return size
}

func LoadDB() DB {
	return DB{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "password"),
		Name:     getEnv("DB_NAME", "ceramic_affair"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "uploads"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		Region:     getEnv("MINIO_REGION", "us-east-1"),
		PublicURL:  getEnv("MINIO_PUBLIC_URL", "http://localhost:9000"),
	}
}

func LoadRedis() Redis {
	return Redis{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvAsInt("REDIS_DB", 0),
	}
}

func LoadSMTP() SMTP {
	return SMTP{
		Host:       getEnv("SMTP_HOST", "localhost"),
		Port:       getEnv("SMTP_PORT", "587"),
		Username:   getEnv("SMTP_USERNAME", ""),
		Password:   getEnv("SMTP_PASSWORD", ""),
		From:       getEnv("SMTP_FROM", "no-reply@ceramicaffair.local"),
		OwnerEmail: getEnv("CONTACT_OWNER_EMAIL", ""),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:         getEnvAsInt("SERVER_PORT", 8080),
		PublicBaseURL:      getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		DB:                 LoadDB(),
		MinIO:              LoadMinIO(),
		Redis:              LoadRedis(),
		SMTP:               LoadSMTP(),
		JWTSecretKey:       getEnv("JWT_SECRET_KEY", ""),
		TokenDuration:      parseDuration(getEnv("TOKEN_DURATION", "2h"), 2*time.Hour),
		MaxUploadSize:      parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "10485760")),
		AdminEmail:         getEnv("ADMIN_EMAIL", ""),
		AdminPassword:      getEnv("ADMIN_PASSWORD", ""),
		SubscriberTokenTTL: parseDuration(getEnv("SUBSCRIBER_TOKEN_TTL", "48h"), 48*time.Hour),
	}
}
