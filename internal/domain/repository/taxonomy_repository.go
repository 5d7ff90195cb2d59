package repository

import (
	"context"

	"github.com/restoration-tracker/internal/domain"
)

// TaxonomyRepository resolves species identifiers through the external
// taxonomy lookup service.
type TaxonomyRepository interface {
	ResolveSpecies(ctx context.Context, ids []int64) ([]domain.TaxonomyCode, error)
}
