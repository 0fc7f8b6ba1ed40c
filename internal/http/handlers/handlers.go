// Handler wiring.
//
// Handlers are transport-thin: they validate input, delegate to application
// services, and translate service errors into HTTP results. All business
// rules live in internal/services; all persistence lives in internal/store.
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Dhayou05/Karim-perfume/internal/config"
	"github.com/Dhayou05/Karim-perfume/internal/services"
	"github.com/Dhayou05/Karim-perfume/internal/store"
)

// Handlers groups the HTTP endpoints for the quiz, rating, and admin
// curation surfaces. It owns the service instances, all of which share the
// single catalog store.
type Handlers struct {
	rating    *services.RatingService
	recommend *services.RecommendService
	search    *services.SearchService
	catalog   *services.CatalogService
	importer  *services.ImportService

	admin         config.AdminConfig
	uploadDir     string
	uploadBaseURL string
}

// New constructs a Handlers instance bound to the given catalog store and
// configuration.
func New(catalog *store.Catalog, cfg config.Config) *Handlers {
	return &Handlers{
		rating:        &services.RatingService{Catalog: catalog},
		recommend:     &services.RecommendService{Catalog: catalog},
		search:        &services.SearchService{Catalog: catalog},
		catalog:       &services.CatalogService{Catalog: catalog},
		importer:      &services.ImportService{Catalog: catalog},
		admin:         cfg.Admin,
		uploadDir:     cfg.UploadDir,
		uploadBaseURL: cfg.UploadBaseURL,
	}
}

// idParam parses the ":id" path parameter as a positive integer. The bool
// result is false when the parameter is absent or not a positive number.
func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
