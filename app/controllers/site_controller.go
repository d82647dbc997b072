package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ocl-logistics/ocl-backend/app/models"
	"github.com/ocl-logistics/ocl-backend/app/repository"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/siteinfo"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/statistics"
)

// SiteController serves the public marketing-site content: branch offices
// and the aggregate counters.
type SiteController struct {
	provider siteinfo.Provider
}

// NewSiteController creates a new site controller with the content provider
func NewSiteController(provider siteinfo.Provider) *SiteController {
	return &SiteController{provider: provider}
}

// HandleBranches returns all company branch offices
func (stc *SiteController) HandleBranches(c *fiber.Ctx) error {
	branches, err := stc.provider.Branches(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	if branches == nil {
		branches = []models.Branch{}
	}
	return respondData(c, branches)
}

// HandleStats returns the cached site counters
func (stc *SiteController) HandleStats(c *fiber.Ctx) error {
	return respondData(c, statistics.GetStatistics())
}

// Global site controller instance

var siteController *SiteController

// InitializeSiteController initializes the global site controller
func InitializeSiteController() {
	provider := siteinfo.NewProvider(repository.GetGlobalFactory().GetBranchRepository())
	siteController = NewSiteController(provider)
}

// GetSiteController returns the global site controller instance
func GetSiteController() *SiteController {
	if siteController == nil {
		InitializeSiteController()
	}
	return siteController
}
