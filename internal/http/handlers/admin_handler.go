// Admin catalog handlers.
//
// This file exposes the session-guarded curation surface:
//   - GET    /admin/perfumes?q=        (list or search the catalog)
//   - POST   /admin/perfumes           (create, multipart with optional image)
//   - PUT    /admin/perfumes/{id}      (edit content fields)
//   - DELETE /admin/perfumes/{id}      (remove)
//   - POST   /admin/perfumes/{id}/visibility (toggle hidden)
//   - POST   /admin/perfumes/import    (bulk import from an .xlsx upload)
//
// Uploaded images are stored under the configured upload directory with a
// generated name; only the public URL is kept on the catalog entry.
package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Dhayou05/Karim-perfume/internal/domain"
	"github.com/Dhayou05/Karim-perfume/internal/http/middleware"
	"github.com/Dhayou05/Karim-perfume/internal/services"
	"github.com/Dhayou05/Karim-perfume/internal/store"
)

// CatalogListResponse is the admin list/search result. Suggestions are only
// populated when a non-empty query matched nothing.
type CatalogListResponse struct {
	Perfumes    []domain.Perfume `json:"perfumes"`
	Suggestions []domain.Perfume `json:"suggestions,omitempty"`
}

// ImportResponse reports how many rows a bulk import added.
type ImportResponse struct {
	Imported int `json:"imported" example:"12"`
}

// ListPerfumes godoc
// @ID          listPerfumes
// @Summary     List or search the catalog
// @Description Returns all entries, or the name matches for ?q=. When a
// @Description non-empty query matches nothing, near-miss suggestions are
// @Description included instead.
// @Tags        Admin
// @Produce     json
// @Param       q query string false "Name substring (case-sensitive)" example(Rose)
// @Success     200 {object} handlers.CatalogListResponse
// @Router      /admin/perfumes [get]
func (h *Handlers) ListPerfumes(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	matches, suggestions := h.search.Search(q)

	resp := CatalogListResponse{Perfumes: matches}
	if len(suggestions) > 0 {
		resp.Suggestions = suggestions
	}
	ok(c, http.StatusOK, resp)
}

// perfumeForm reads the shared multipart fields for create and update. The
// image file is optional; when present it is written to the upload
// directory and its public URL is returned in the input.
func (h *Handlers) perfumeForm(c *gin.Context) (services.PerfumeInput, error) {
	in := services.PerfumeInput{
		Name:        strings.TrimSpace(c.PostForm("name")),
		Description: strings.TrimSpace(c.PostForm("description")),
		Notes:       c.PostForm("notes"),
		Profile:     strings.TrimSpace(c.PostForm("profile")),
	}

	file, err := c.FormFile("image")
	if err != nil {
		// Absent file is fine; anything else is a malformed request.
		if errors.Is(err, http.ErrMissingFile) {
			return in, nil
		}
		return in, err
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return in, err
	}
	// Never trust the client filename; keep only the extension.
	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, name)); err != nil {
		return in, err
	}
	in.ImageURL = h.uploadBaseURL + "/" + name
	return in, nil
}

// CreatePerfume godoc
// @ID          createPerfume
// @Summary     Add a perfume
// @Description Creates a catalog entry from a multipart form. The image
// @Description part is optional.
// @Tags        Admin
// @Accept      mpfd
// @Produce     json
// @Param       name        formData string true  "Display name"
// @Param       description formData string false "Description"
// @Param       notes       formData string false "Comma-separated notes"
// @Param       profile     formData string false "Scent profile"
// @Param       image       formData file   false "Image file"
// @Success     201 {object} domain.Perfume
// @Failure     400 {object} handlers.ErrorResponse "Missing name"
// @Failure     500 {object} handlers.ErrorResponse "Could not persist"
// @Router      /admin/perfumes [post]
func (h *Handlers) CreatePerfume(c *gin.Context) {
	in, err := h.perfumeForm(c)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid multipart form")
		return
	}
	if in.Name == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name is required")
		return
	}

	created, err := h.catalog.Add(c.Request.Context(), in)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not persist perfume")
		return
	}

	middleware.LoggerFrom(c).Info().
		Int("perfume_id", created.ID).
		Str("name", created.Name).
		Msg("perfume created")

	ok(c, http.StatusCreated, created)
}

// UpdatePerfume godoc
// @ID          updatePerfume
// @Summary     Edit a perfume
// @Description Replaces the content fields of an entry. The image is only
// @Description replaced when a new file is uploaded; vote counters are
// @Description never touched.
// @Tags        Admin
// @Accept      mpfd
// @Produce     json
// @Param       id path int true "Perfume ID" example(3)
// @Success     200 {object} domain.Perfume
// @Failure     400 {object} handlers.ErrorResponse "Missing name"
// @Failure     404 {object} handlers.ErrorResponse "Perfume not found"
// @Failure     500 {object} handlers.ErrorResponse "Could not persist"
// @Router      /admin/perfumes/{id} [put]
func (h *Handlers) UpdatePerfume(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "perfume not found")
		return
	}

	in, err := h.perfumeForm(c)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid multipart form")
		return
	}
	if in.Name == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name is required")
		return
	}

	updated, err := h.catalog.Update(c.Request.Context(), id, in)
	if err != nil {
		if errors.Is(err, services.ErrPerfumeNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "perfume not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not persist perfume")
		return
	}
	ok(c, http.StatusOK, updated)
}

// DeletePerfume godoc
// @ID          deletePerfume
// @Summary     Delete a perfume
// @Description Removes an entry outright. Deleting an unknown id succeeds.
// @Tags        Admin
// @Param       id path int true "Perfume ID" example(3)
// @Success     204 {string} string "No Content"
// @Failure     500 {object} handlers.ErrorResponse "Could not persist"
// @Router      /admin/perfumes/{id} [delete]
func (h *Handlers) DeletePerfume(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "perfume not found")
		return
	}

	if err := h.catalog.Remove(c.Request.Context(), id); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not persist removal")
		return
	}
	noContent(c)
}

// ToggleVisibility godoc
// @ID          togglePerfumeVisibility
// @Summary     Toggle perfume visibility
// @Description Flips the hidden flag. Hidden entries keep their votes and
// @Description stay searchable; they only leave the recommendation pool.
// @Tags        Admin
// @Produce     json
// @Param       id path int true "Perfume ID" example(3)
// @Success     200 {object} domain.Perfume
// @Failure     404 {object} handlers.ErrorResponse "Perfume not found"
// @Failure     500 {object} handlers.ErrorResponse "Could not persist"
// @Router      /admin/perfumes/{id}/visibility [post]
func (h *Handlers) ToggleVisibility(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "perfume not found")
		return
	}

	updated, err := h.catalog.ToggleHidden(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPerfumeNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "perfume not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not persist visibility")
		return
	}
	ok(c, http.StatusOK, updated)
}

// ImportPerfumes godoc
// @ID          importPerfumes
// @Summary     Bulk import perfumes
// @Description Imports catalog entries from an uploaded .xlsx workbook. A
// @Description missing required column aborts the whole import before any
// @Description row is added.
// @Tags        Admin
// @Accept      mpfd
// @Produce     json
// @Param       file formData file true "Workbook (.xlsx)"
// @Success     200 {object} handlers.ImportResponse
// @Failure     400 {object} handlers.ErrorResponse "Unreadable or incomplete workbook"
// @Failure     500 {object} handlers.ErrorResponse "Could not persist"
// @Router      /admin/perfumes/import [post]
func (h *Handlers) ImportPerfumes(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "workbook file is required")
		return
	}

	f, err := file.Open()
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "could not read workbook")
		return
	}
	defer f.Close()

	n, err := h.importer.ImportXLSX(c.Request.Context(), f)
	if err != nil {
		var perr *store.PersistenceError
		switch {
		case errors.Is(err, services.ErrMissingColumn):
			fail(c, http.StatusBadRequest, ErrCodeMissingColumn, err.Error())
		case errors.Is(err, services.ErrEmptyWorkbook):
			fail(c, http.StatusBadRequest, ErrCodeImportFailed, err.Error())
		case errors.As(err, &perr):
			fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not persist imported rows")
		default:
			fail(c, http.StatusBadRequest, ErrCodeImportFailed, "workbook could not be parsed")
		}
		return
	}

	middleware.LoggerFrom(c).Info().Int("imported", n).Msg("catalog import finished")
	ok(c, http.StatusOK, ImportResponse{Imported: n})
}
