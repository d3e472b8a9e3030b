package domain

import "time"

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserName     string    `json:"userName" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	FirstName    string    `json:"firstName" gorm:"not null"`
	LastName     string    `json:"lastName" gorm:"not null"`
	DateOfBirth  time.Time `json:"dateOfBirth" gorm:"not null"`
	PasswordHash []byte    `json:"-" gorm:"not null"`
	Salt         []byte    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// A user has exactly one role.
	UserRoleID uint      `json:"userRoleId" gorm:"not null"`
	UserRole   *UserRole `json:"userRole,omitempty"`
}

// UserRole is an authorization tier. ADMIN and USER are seeded at startup,
// but the role set is open: membership is always checked by lookup, never
// against hardcoded ids.
type UserRole struct {
	ID          uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" gorm:"uniqueIndex;not null"`
	Description string `json:"description"`
}
