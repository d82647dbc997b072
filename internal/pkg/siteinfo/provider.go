package siteinfo

import (
	"context"

	"github.com/ocl-logistics/ocl-backend/app/models"
	"github.com/ocl-logistics/ocl-backend/app/repository"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/env"
)

// Provider serves the marketing-site content that the frontend used to keep
// as hardcoded fallback data. The implementation is chosen once at
// construction time: either the database or the built-in fixtures, never an
// ad hoc fallback inside a call site.
type Provider interface {
	Branches(ctx context.Context) ([]models.Branch, error)
}

// NewProvider selects the provider implementation from SITEINFO_SOURCE
// ("db" or "fixture", default db).
func NewProvider(branches repository.BranchRepository) Provider {
	if env.GetEnv("SITEINFO_SOURCE", "db") == "fixture" {
		return NewFixtureProvider()
	}
	return NewDBProvider(branches)
}

// dbProvider reads site content from the database.
type dbProvider struct {
	branches repository.BranchRepository
}

// NewDBProvider creates a database-backed site content provider
func NewDBProvider(branches repository.BranchRepository) Provider {
	return &dbProvider{branches: branches}
}

func (p *dbProvider) Branches(ctx context.Context) ([]models.Branch, error) {
	return p.branches.GetAll()
}
