package postgres

import (
	"github.com/bloggydev/bloggy/internal/domain"
	"github.com/bloggydev/bloggy/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Unique-constraint violations must be recognizable so a lost
		// registration race maps to a duplicate, not a generic failure.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the schema and seeds the fixed role set.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&domain.UserRole{},
		&domain.User{},
		&domain.BlogPost{},
	)
	if err != nil {
		return err
	}
	return seedRoles(db)
}

func seedRoles(db *gorm.DB) error {
	roles := []domain.UserRole{
		{ID: 1, Name: "ADMIN", Description: "User Role designating elevated administrative privileges."},
		{ID: 2, Name: "USER", Description: "User Role designating regular privileges."},
	}
	for _, role := range roles {
		if err := db.Where("id = ?", role.ID).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}
	return nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User: NewUserRepository(db),
		Role: NewRoleRepository(db),
		Post: NewPostRepository(db),
	}
}
