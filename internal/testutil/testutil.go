package testutil

import (
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bloggydev/bloggy/internal/api"
	"github.com/bloggydev/bloggy/internal/config"
	"github.com/bloggydev/bloggy/internal/domain"
	"github.com/bloggydev/bloggy/internal/logging"
	repoPostgres "github.com/bloggydev/bloggy/internal/repository/postgres"
	"github.com/bloggydev/bloggy/internal/service"
)

// NewTestDB opens an in-memory SQLite database with the full schema and
// seeded roles. gorm keeps the repositories driver-neutral, so the suite
// runs without an external PostgreSQL instance.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := repoPostgres.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// TestConfig returns a configuration suitable for tests.
func TestConfig() *config.Config {
	return &config.Config{
		Port:          "0",
		Environment:   "test",
		LogLevel:      "error",
		DatabaseURL:   "file::memory:",
		JWTSecret:     "test-secret-key-for-signing",
		JWTIssuer:     "bloggy-test",
		JWTAudience:   "bloggy-test-clients",
		TokenTTLHours: 8,
	}
}

// Truncate clears user and post data between tests, keeping the seeded roles.
func Truncate(t *testing.T, db *gorm.DB) {
	t.Helper()

	for _, model := range []interface{}{&domain.BlogPost{}, &domain.User{}} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			t.Fatalf("failed to truncate: %v", err)
		}
	}
}

// TestServer wires the full HTTP stack over an in-memory database.
type TestServer struct {
	Server   *httptest.Server
	DB       *gorm.DB
	Config   *config.Config
	Services *service.Services
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	db := NewTestDB(t)
	cfg := TestConfig()
	repos := repoPostgres.NewRepositories(db)
	services := service.NewServices(repos, cfg)

	srv := httptest.NewServer(api.NewRouter(services, logging.New(cfg.LogLevel)))
	t.Cleanup(srv.Close)

	return &TestServer{
		Server:   srv,
		DB:       db,
		Config:   cfg,
		Services: services,
	}
}

// APIURL builds a full URL for a path under the versioned API prefix.
func (ts *TestServer) APIURL(path string) string {
	return ts.Server.URL + "/api/v1" + path
}
