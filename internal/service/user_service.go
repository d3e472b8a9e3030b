package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/bloggydev/bloggy/internal/domain"
	"github.com/bloggydev/bloggy/internal/logging"
	"github.com/bloggydev/bloggy/internal/password"
	"github.com/bloggydev/bloggy/internal/repository"
	"github.com/bloggydev/bloggy/internal/token"
)

// UserService orchestrates registration and login.
type UserService struct {
	users  repository.UserRepository
	roles  repository.RoleRepository
	issuer *token.Issuer
}

func NewUserService(users repository.UserRepository, roles repository.RoleRepository, issuer *token.Issuer) *UserService {
	return &UserService{
		users:  users,
		roles:  roles,
		issuer: issuer,
	}
}

type RegisterInput struct {
	UserName    string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	UserRoleID  uint
}

type LoginInput struct {
	Email    string
	Password string
}

// Register creates a new user. Format validation happens at the transport
// layer; this enforces the business rules: username/email uniqueness and
// role existence.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	l := logging.FromContext(ctx).With("svc", "user.register")

	exists, err := s.users.ExistsByUserNameOrEmail(ctx, input.UserName, input.Email)
	if err != nil {
		return nil, &domain.PersistenceError{Err: err}
	}
	if exists {
		return nil, domain.ErrUserAlreadyRegistered
	}

	role, err := s.roles.GetByID(ctx, input.UserRoleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, &domain.PersistenceError{Err: err}
	}

	salt, err := password.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}

	user := &domain.User{
		UserName:     input.UserName,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		DateOfBirth:  input.DateOfBirth,
		PasswordHash: password.Hash(input.Password, salt),
		Salt:         salt,
		UserRoleID:   role.ID,
		UserRole:     role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// The uniqueness pre-check and the insert are not atomic. A
		// concurrent registration that wins the race trips the unique
		// constraint here, which is still a duplicate, not a storage fault.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrUserAlreadyRegistered
		}
		return nil, &domain.PersistenceError{Err: err}
	}

	l.Info("user registered", "user_id", user.ID, "role_id", user.UserRoleID)
	return user, nil
}

// Login verifies the submitted credentials and returns a signed session
// token. An unknown email and a wrong password fail identically.
func (s *UserService) Login(ctx context.Context, input LoginInput) (string, error) {
	l := logging.FromContext(ctx).With("svc", "user.login")

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", &domain.PersistenceError{Err: err}
	}

	if !password.Verify(input.Password, user.Salt, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	signed, err := s.issuer.Issue(user)
	if err != nil {
		return "", fmt.Errorf("issuing token: %w", err)
	}

	l.Info("login successful", "user_id", user.ID)
	return signed, nil
}
