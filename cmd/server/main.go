package main

import (
	"context" // context package is needed for Redis and AWS setup
	"time"    // Cache lifetime

	"web3_portal/internal/api"        // Custom package for API handlers
	"web3_portal/internal/config"     // Custom package for configuration
	"web3_portal/internal/db"         // Database connection
	"web3_portal/internal/middleware" // Custom package for middleware
	"web3_portal/internal/payment"    // Payment gateway
	"web3_portal/internal/storage"    // Blob storage

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{}) // Machine readable logs in production
	}
	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET is required")
	}

	// Connect to the database
	gdb, err := db.Connect(cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Setup blob storage
	var blobs storage.Store
	switch cfg.StorageDriver {
	case "s3":
		blobs, err = storage.NewS3Store(context.Background(), cfg.S3Bucket, cfg.S3Region)
	case "local":
		blobs, err = storage.NewLocalStore(cfg.StorageDir)
	default:
		logrus.Fatalf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
	if err != nil {
		logrus.Fatalf("failed to set up blob storage: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := api.NewRouter(api.Deps{
		DB:             gdb,                                                                       // Database
		Cache:          api.NewCache(redisClient, time.Duration(cfg.CacheTTLSeconds)*time.Second), // Response cache
		Blobs:          blobs,                                                                     // Uploaded files
		Gateway:        payment.NewStripeGateway(),                                                // Checkout provider
		JWTSecret:      cfg.JWTSecret,                                                             // Token verification
		ContactLimiter: middleware.NewRateLimiter(cfg.ContactPerMin),                              // Contact form throttle
		MaxUploadBytes: cfg.MaxUploadBytes,                                                        // Upload limit
		CORSOrigins:    cfg.CORSOrigins,                                                           // Website origins
		Version:        version,                                                                   // Build version
	})

	logrus.WithFields(logrus.Fields{
		"port":    cfg.AppPort,       // Listening port
		"storage": cfg.StorageDriver, // Blob driver
		"version": version,           // Build version
	}).Info("Server running")
	if err := r.Run(":" + cfg.AppPort); err != nil { // Start the server on port cfg.AppPort
		logrus.Fatalf("server stopped: %v", err)
	}
}
