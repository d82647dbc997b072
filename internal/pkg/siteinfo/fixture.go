package siteinfo

import (
	"context"

	"github.com/ocl-logistics/ocl-backend/app/models"
)

// fixtureProvider serves the seed content shipped with the binary. Used for
// demos and local development without a database.
type fixtureProvider struct {
	branches []models.Branch
}

// NewFixtureProvider creates a provider backed by in-memory seed data
func NewFixtureProvider() Provider {
	return &fixtureProvider{
		branches: []models.Branch{
			{ID: 1, Name: "OCL Head Office", City: "Karachi", Address: "Plot 12, Shahrah-e-Faisal", Phone: "+92 21 111 000 625", Email: "info@ocl.example"},
			{ID: 2, Name: "OCL Lahore", City: "Lahore", Address: "42 Mall Road", Phone: "+92 42 111 000 625", Email: "lahore@ocl.example"},
			{ID: 3, Name: "OCL Islamabad", City: "Islamabad", Address: "Blue Area, Jinnah Avenue", Phone: "+92 51 111 000 625", Email: "islamabad@ocl.example"},
		},
	}
}

func (p *fixtureProvider) Branches(ctx context.Context) ([]models.Branch, error) {
	out := make([]models.Branch, len(p.branches))
	copy(out, p.branches)
	return out, nil
}
