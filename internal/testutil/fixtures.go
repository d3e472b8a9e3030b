package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bloggydev/bloggy/internal/domain"
	"github.com/bloggydev/bloggy/internal/password"
)

// UserBuilder creates test users with a builder pattern.
type UserBuilder struct {
	userName    string
	email       string
	password    string
	firstName   string
	lastName    string
	dateOfBirth time.Time
	roleID      uint
}

func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		userName:    fmt.Sprintf("testuser_%s", suffix),
		email:       fmt.Sprintf("testuser_%s@example.com", suffix),
		password:    "testpassword123",
		firstName:   "Test",
		lastName:    "User",
		dateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		roleID:      2,
	}
}

func (b *UserBuilder) WithUserName(name string) *UserBuilder {
	b.userName = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

func (b *UserBuilder) WithPassword(pw string) *UserBuilder {
	b.password = pw
	return b
}

func (b *UserBuilder) WithRoleID(id uint) *UserBuilder {
	b.roleID = id
	return b
}

// Build creates the user in the database and returns it along with the raw
// password.
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	salt, err := password.GenerateSalt()
	if err != nil {
		t.Fatalf("failed to generate salt: %v", err)
	}

	user := &domain.User{
		UserName:     b.userName,
		Email:        b.email,
		FirstName:    b.firstName,
		LastName:     b.lastName,
		DateOfBirth:  b.dateOfBirth,
		PasswordHash: password.Hash(b.password, salt),
		Salt:         salt,
		UserRoleID:   b.roleID,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// CreatePost inserts a blog post for the given user.
func CreatePost(t *testing.T, db *gorm.DB, userID uint, title string) *domain.BlogPost {
	t.Helper()

	post := &domain.BlogPost{
		Title:      title,
		Content:    "fixture content",
		DatePosted: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		UserID:     userID,
	}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("failed to create post: %v", err)
	}
	return post
}
