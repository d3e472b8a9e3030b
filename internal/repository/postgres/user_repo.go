package postgres

import (
	"context"

	"github.com/bloggydev/bloggy/internal/domain"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Preload("UserRole").First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail looks a user up by email, case-insensitively, with the role
// relationship loaded.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Preload("UserRole").
		First(&user, "LOWER(email) = LOWER(?)", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByUserNameOrEmail reports whether any user already holds the given
// username or email. Comparison is case-insensitive; stored casing is kept.
func (r *userRepository) ExistsByUserNameOrEmail(ctx context.Context, userName, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("LOWER(user_name) = LOWER(?) OR LOWER(email) = LOWER(?)", userName, email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
