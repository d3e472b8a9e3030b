package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bloggydev/bloggy/internal/domain"
	"github.com/bloggydev/bloggy/internal/repository"
	"github.com/bloggydev/bloggy/internal/repository/postgres"
	"github.com/bloggydev/bloggy/internal/service"
	"github.com/bloggydev/bloggy/internal/testutil"
	"github.com/bloggydev/bloggy/internal/token"
)

func registerInput(userName, email string) service.RegisterInput {
	return service.RegisterInput{
		UserName:    userName,
		Email:       email,
		Password:    "longenough1",
		FirstName:   "Alice",
		LastName:    "Smith",
		DateOfBirth: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		UserRoleID:  2,
	}
}

func TestUserService_Register(t *testing.T) {
	db := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(db)
	cfg := testutil.TestConfig()
	services := service.NewServices(repos, cfg)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   service.RegisterInput
		setup   func(t *testing.T)
		wantErr error
	}{
		{
			name:  "successful registration",
			input: registerInput("alice", "alice@x.com"),
		},
		{
			name:  "duplicate email with different username",
			input: registerInput("alice2", "alice@x.com"),
			setup: func(t *testing.T) {
				testutil.NewUserBuilder().WithUserName("alice").WithEmail("alice@x.com").Build(t, db)
			},
			wantErr: domain.ErrUserAlreadyRegistered,
		},
		{
			name:  "duplicate username with different email",
			input: registerInput("alice", "other@x.com"),
			setup: func(t *testing.T) {
				testutil.NewUserBuilder().WithUserName("alice").WithEmail("alice@x.com").Build(t, db)
			},
			wantErr: domain.ErrUserAlreadyRegistered,
		},
		{
			name:  "duplicate email differing only in case",
			input: registerInput("alice3", "ALICE@X.COM"),
			setup: func(t *testing.T) {
				testutil.NewUserBuilder().WithUserName("alice").WithEmail("alice@x.com").Build(t, db)
			},
			wantErr: domain.ErrUserAlreadyRegistered,
		},
		{
			name: "non-existent role",
			input: func() service.RegisterInput {
				in := registerInput("bob", "bob@x.com")
				in.UserRoleID = 99
				return in
			}(),
			wantErr: domain.ErrRoleNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.Truncate(t, db)

			if tt.setup != nil {
				tt.setup(t)
			}

			user, err := services.User.Register(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, user.ID)
			assert.Equal(t, tt.input.UserRoleID, user.UserRoleID)
			assert.NotEmpty(t, user.Salt)
			assert.NotEqual(t, []byte(tt.input.Password), user.PasswordHash)
		})
	}
}

func TestUserService_Register_RoleNotFoundWritesNothing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(db)
	services := service.NewServices(repos, testutil.TestConfig())

	in := registerInput("carol", "carol@x.com")
	in.UserRoleID = 99
	_, err := services.User.Register(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrRoleNotFound)

	var count int64
	require.NoError(t, db.Model(&domain.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

// racingUserRepo passes the uniqueness pre-check but loses the insert race.
type racingUserRepo struct {
	repository.UserRepository
}

func (r *racingUserRepo) ExistsByUserNameOrEmail(ctx context.Context, userName, email string) (bool, error) {
	return false, nil
}

func (r *racingUserRepo) Create(ctx context.Context, user *domain.User) error {
	return gorm.ErrDuplicatedKey
}

func TestUserService_Register_LostRaceMapsToDuplicate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(db)
	svc := service.NewUserService(
		&racingUserRepo{UserRepository: repos.User},
		repos.Role,
		token.NewIssuer(testutil.TestConfig()),
	)

	_, err := svc.Register(context.Background(), registerInput("dave", "dave@x.com"))
	assert.ErrorIs(t, err, domain.ErrUserAlreadyRegistered)
}

func TestUserService_Login(t *testing.T) {
	db := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(db)
	cfg := testutil.TestConfig()
	services := service.NewServices(repos, cfg)
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().
		WithUserName("loginuser").
		WithEmail("login@x.com").
		WithPassword("correctpassword").
		Build(t, db)

	tests := []struct {
		name    string
		input   service.LoginInput
		wantErr error
	}{
		{
			name:  "successful login",
			input: service.LoginInput{Email: "login@x.com", Password: rawPassword},
		},
		{
			name:  "email lookup is case-insensitive",
			input: service.LoginInput{Email: "LOGIN@X.COM", Password: rawPassword},
		},
		{
			name:    "wrong password",
			input:   service.LoginInput{Email: "login@x.com", Password: "wrongpassword"},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name:    "non-existent email",
			input:   service.LoginInput{Email: "nobody@x.com", Password: rawPassword},
			wantErr: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signed, err := services.User.Login(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			claims, err := token.NewIssuer(cfg).Verify(signed)
			require.NoError(t, err)

			id, err := claims.ParseUserID()
			require.NoError(t, err)
			assert.Equal(t, user.ID, id)
			assert.Equal(t, user.UserName, claims.UserName)
			assert.Equal(t, "2", claims.UserRoleID)
		})
	}
}

func TestUserService_Login_FailuresAreIndistinguishable(t *testing.T) {
	db := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(db)
	services := service.NewServices(repos, testutil.TestConfig())
	ctx := context.Background()

	testutil.NewUserBuilder().
		WithEmail("known@x.com").
		WithPassword("correctpassword").
		Build(t, db)

	_, wrongPassword := services.User.Login(ctx, service.LoginInput{Email: "known@x.com", Password: "wrongpassword"})
	_, unknownAccount := services.User.Login(ctx, service.LoginInput{Email: "unknown@x.com", Password: "correctpassword"})

	assert.ErrorIs(t, wrongPassword, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownAccount, domain.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownAccount.Error())
}
