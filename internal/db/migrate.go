package db

import (
	"web3_portal/internal/domain" // Importing domain models

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Models lists every table owned by the service
func Models() []any {
	return []any{
		&domain.User{},                // Principals and roles
		&domain.AccessLock{},          // Registration lock
		&domain.UserProfile{},         // Display names
		&domain.Product{},             // Catalog
		&domain.Translation{},         // UI strings
		&domain.RodoContent{},         // GDPR notices
		&domain.Web3Card{},            // Home page cards
		&domain.ContactMessage{},      // Contact form submissions
		&domain.FileReference{},       // Registered blobs
		&domain.StripeConfiguration{}, // Payment gateway settings
	}
}

// Connect opens a MySQL connection through GORM
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true, // Surface duplicate keys as gorm.ErrDuplicatedKey
	})
}

// Migrate performs automatic migration for the database schema
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	return db.AutoMigrate(Models()...)
}
