package testhelpers

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// TestDB represents a test database connection
type TestDB struct {
	DB     *sqlx.DB
	Logger *zap.Logger
}

// SetupTestDB connects to the test database, or skips the test when no
// database is reachable. Set TEST_DB_REQUIRED=1 to fail instead of skip.
func SetupTestDB(t *testing.T) *TestDB {
	host := getEnv("TEST_DB_HOST", "localhost")
	port := getEnv("TEST_DB_PORT", "5433")
	user := getEnv("TEST_DB_USER", "postgres")
	password := getEnv("TEST_DB_PASSWORD", "postgres")
	dbname := getEnv("TEST_DB_NAME", "restoration_test")
	sslmode := getEnv("TEST_DB_SSLMODE", "disable")

	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode,
	)

	var db *sqlx.DB
	var err error
	maxRetries := 5
	retryDelay := 500 * time.Millisecond

	for i := 0; i < maxRetries; i++ {
		db, err = sqlx.Connect("postgres", connStr)
		if err == nil {
			break
		}

		if i < maxRetries-1 {
			t.Logf("Database not ready (attempt %d/%d), waiting %v...", i+1, maxRetries, retryDelay)
			time.Sleep(retryDelay)
			retryDelay *= 2
		}
	}

	if err != nil {
		if os.Getenv("TEST_DB_REQUIRED") != "" {
			t.Fatalf("Failed to connect to test database after %d attempts: %v", maxRetries, err)
		}
		t.Skipf("Skipping: test database not reachable (%v)", err)
	}

	logger, _ := zap.NewDevelopment()
	if logger == nil {
		logger = zap.NewNop()
	}

	return &TestDB{
		DB:     db,
		Logger: logger,
	}
}

// Close closes the database connection
func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		tdb.DB.Close()
	}
}

// Cleanup truncates the project tables, children before parents.
func (tdb *TestDB) Cleanup(ctx context.Context) error {
	tables := []string{
		"permit",
		"project_species",
		"nrm_region",
		"project_location",
		"project_objective",
		"project_partnership",
		"project_iucn_action_classification",
		"project_funding_source",
		"project_contact",
		"project_participation",
		"project",
	}

	for _, table := range tables {
		_, err := tdb.DB.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			// Ignore errors if table doesn't exist
			continue
		}
	}

	return nil
}

// SeedReferenceData inserts the project roles and a test system user used by
// the participation tests. Idempotent.
func (tdb *TestDB) SeedReferenceData(ctx context.Context) error {
	stmts := []string{
		`INSERT INTO project_role (project_role_id, name)
		 VALUES (1, 'Project Lead'), (2, 'Project Editor'), (3, 'Project Viewer')
		 ON CONFLICT (project_role_id) DO NOTHING`,
		`INSERT INTO system_user (system_user_id, user_identifier)
		 VALUES (1001, 'testuser')
		 ON CONFLICT (system_user_id) DO NOTHING`,
	}

	for _, stmt := range stmts {
		if _, err := tdb.DB.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// getEnv gets environment variable or returns default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
