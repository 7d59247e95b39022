package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"strings" // For splitting list values

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort         string   // Application port
	DBUser          string   // Database user
	DBPassword      string   // Database password
	DBHost          string   // Database host
	DBPort          string   // Database port
	DBName          string   // Database name
	JWTSecret       string   // Secret shared with the identity provider
	RedisAddr       string   // Redis server address
	RedisPass       string   // Redis password
	RedisDB         int      // Redis database number
	CacheTTLSeconds int      // Lifetime of cached public responses
	CORSOrigins     []string // Origins allowed to call the API from a browser
	ContactPerMin   int      // Contact form submissions allowed per client per minute
	StorageDriver   string   // Blob storage driver: local or s3
	StorageDir      string   // Root directory for the local driver
	S3Bucket        string   // Bucket for the s3 driver
	S3Region        string   // Region for the s3 driver
	MaxUploadBytes  int64    // Upper bound for uploaded images
	IsProd          bool     // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		AppPort:         getEnv("APP_PORT", "8080"),                                 // Application port
		DBUser:          os.Getenv("DB_USER"),                                       // Database user
		DBPassword:      os.Getenv("DB_PASSWORD"),                                   // Database password
		DBHost:          getEnv("DB_HOST", "localhost"),                             // Database host
		DBPort:          getEnv("DB_PORT", "3306"),                                  // Database port
		DBName:          os.Getenv("DB_NAME"),                                       // Database name
		JWTSecret:       os.Getenv("JWT_SECRET"),                                    // JWT secret key
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),                     // Redis server address
		RedisPass:       os.Getenv("REDIS_PASS"),                                    // Redis password
		RedisDB:         redisDB,                                                    // Redis database number
		CacheTTLSeconds: getEnvAsInt("CACHE_TTL_SECONDS", 60),                       // Cache lifetime
		CORSOrigins:     splitList(getEnv("CORS_ORIGINS", "http://localhost:5173")), // Allowed browser origins
		ContactPerMin:   getEnvAsInt("CONTACT_RATE_PER_MINUTE", 5),                  // Contact form rate
		StorageDriver:   getEnv("STORAGE_DRIVER", "local"),                          // Blob storage driver
		StorageDir:      getEnv("STORAGE_DIR", "./data/blobs"),                      // Local blob root
		S3Bucket:        os.Getenv("S3_BUCKET"),                                     // S3 bucket
		S3Region:        getEnv("S3_REGION", "eu-central-1"),                        // S3 region
		MaxUploadBytes:  int64(getEnvAsInt("MAX_UPLOAD_BYTES", 51200)),              // 50kB by default
		IsProd:          os.Getenv("IS_PROD") == "true",                             // Is production environment
	}
}

// DSN returns the MySQL data source name for gorm
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true&charset=utf8mb4"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue // Missing or malformed values fall back to the default
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
