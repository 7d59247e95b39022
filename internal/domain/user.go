package domain

// UserRole is the access level of a principal
type UserRole string

const (
	RoleAdmin UserRole = "admin" // Full access to the content panel
	RoleUser  UserRole = "user"  // Registered visitor
	RoleGuest UserRole = "guest" // Anonymous or unregistered caller
)

// Valid reports whether r is one of the known roles
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleUser || r == RoleGuest
}

// User Model
type User struct {
	Principal string   `gorm:"primaryKey;size:191" json:"principal"`      // Identity issued by the identity provider
	Role      UserRole `gorm:"size:16;not null;default:user" json:"role"` // Role: admin or user
	CreatedAt int64    `gorm:"autoCreateTime:milli" json:"created_at"`    // Timestamp of registration in milliseconds
}

// AccessLock Model, a single row that registrations lock so only one caller can become the first admin
type AccessLock struct {
	ID uint `gorm:"primaryKey"` // Always 1
}

// AccessLockID is the primary key of the only lock row
const AccessLockID uint = 1

// UserProfile Model
type UserProfile struct {
	Principal string `gorm:"primaryKey;size:191" json:"-"`  // Owner of the profile
	Name      string `gorm:"size:255;not null" json:"name"` // Display name
}
