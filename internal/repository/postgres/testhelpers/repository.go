package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/restoration-tracker/internal/domain/repository"
	"github.com/restoration-tracker/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest wraps an already-open sqlx connection in the repository DB
// type so tests can use WithTransaction.
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewProjectRepositoryForTest builds a ProjectRepository over the test
// connection.
func NewProjectRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.ProjectRepository {
	return postgres.NewProjectRepository(postgres.NewDBForTest(db, logger))
}

// NewParticipationRepositoryForTest builds a ParticipationRepository over
// the test connection.
func NewParticipationRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.ParticipationRepository {
	return postgres.NewParticipationRepository(postgres.NewDBForTest(db, logger))
}
