// Package access keeps the role of every known principal and their profiles.
// Unknown and anonymous callers are guests.
package access

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"web3_portal/internal/domain"
)

// ErrInvalidRole is returned when assigning a role that does not exist
var ErrInvalidRole = errors.New("invalid role")

// RoleOf returns the role of principal. An empty principal is anonymous.
func RoleOf(db *gorm.DB, principal string) (domain.UserRole, error) {
	if principal == "" {
		return domain.RoleGuest, nil
	}
	var user domain.User
	err := db.Where("principal = ?", principal).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RoleGuest, nil
	}
	if err != nil {
		return "", fmt.Errorf("load role: %w", err)
	}
	return user.Role, nil
}

// IsAdmin reports whether principal holds the admin role
func IsAdmin(db *gorm.DB, principal string) (bool, error) {
	role, err := RoleOf(db, principal)
	if err != nil {
		return false, err
	}
	return role == domain.RoleAdmin, nil
}

// Initialize registers principal. The first principal ever registered while
// no admin exists becomes admin, everyone after that becomes a user. Known
// principals keep their role.
func Initialize(db *gorm.DB, principal string) (domain.UserRole, error) {
	if principal == "" {
		return domain.RoleGuest, nil
	}
	lock := domain.AccessLock{ID: domain.AccessLockID}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&lock).Error; err != nil {
		return "", fmt.Errorf("create access lock: %w", err)
	}

	var role domain.UserRole
	err := db.Transaction(func(tx *gorm.DB) error {
		// Concurrent registrations wait here, so the admin count below
		// always sees the previous registration.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&lock, domain.AccessLockID).Error; err != nil {
			return err
		}
		var existing domain.User
		err := tx.Where("principal = ?", principal).First(&existing).Error
		if err == nil {
			role = existing.Role
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var admins int64
		if err := tx.Model(&domain.User{}).Where("role = ?", domain.RoleAdmin).Count(&admins).Error; err != nil {
			return err
		}
		role = domain.RoleUser
		if admins == 0 {
			role = domain.RoleAdmin
		}
		return tx.Create(&domain.User{Principal: principal, Role: role}).Error
	})
	if err != nil {
		return "", fmt.Errorf("initialize access: %w", err)
	}
	return role, nil
}

// AssignRole sets the role of principal. Assigning guest forgets the principal.
func AssignRole(db *gorm.DB, principal string, role domain.UserRole) error {
	if !role.Valid() {
		return ErrInvalidRole
	}
	if role == domain.RoleGuest {
		return db.Where("principal = ?", principal).Delete(&domain.User{}).Error
	}
	user := domain.User{Principal: principal, Role: role}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "principal"}},
		DoUpdates: clause.AssignmentColumns([]string{"role"}),
	}).Create(&user).Error
}

// Profile returns the profile of principal, or nil when none was saved
func Profile(db *gorm.DB, principal string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	err := db.Where("principal = ?", principal).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &profile, nil
}

// SaveProfile creates or replaces the profile of principal
func SaveProfile(db *gorm.DB, principal string, profile domain.UserProfile) error {
	profile.Principal = principal
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "principal"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(&profile).Error
}
