package repository

import (
	"context"

	"github.com/bloggydev/bloggy/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByUserNameOrEmail(ctx context.Context, userName, email string) (bool, error)
}

type RoleRepository interface {
	GetByID(ctx context.Context, id uint) (*domain.UserRole, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *domain.BlogPost) error
	GetByID(ctx context.Context, id uint) (*domain.BlogPost, error)
	List(ctx context.Context) ([]*domain.BlogPost, error)
}

type Repositories struct {
	User UserRepository
	Role RoleRepository
	Post PostRepository
}
