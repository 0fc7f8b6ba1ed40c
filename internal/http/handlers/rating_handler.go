// Rating HTTP handlers.
//
// This file exposes the REST endpoint for rating a perfume:
//   - POST /perfumes/{id}/rating  (record a like or dislike)
//
// Votes accumulate; there is no per-client deduplication. The response
// always carries the fresh percentages so the caller can update its view
// without a second round trip.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dhayou05/Karim-perfume/internal/services"
	"github.com/Dhayou05/Karim-perfume/internal/store"
)

// RatePerfumeRequest is the JSON payload for submitting a rating.
//
// Action must be one of:
//   - "like"    : positive feedback
//   - "dislike" : negative feedback
//
// The binding tag enforces the domain constraint at the transport layer.
type RatePerfumeRequest struct {
	// Action is the feedback signal: "like" or "dislike".
	Action string `json:"action" binding:"required,oneof=like dislike" example:"like"`
}

// RatePerfumeResponse reports the percentages after the vote was applied
// and persisted.
type RatePerfumeResponse struct {
	Success        bool `json:"success" example:"true"`
	LikePercent    int  `json:"like_percent" example:"75"`
	DislikePercent int  `json:"dislike_percent" example:"25"`
}

// RatePerfume godoc
// @ID          ratePerfume
// @Summary     Rate a perfume
// @Description Records a like or dislike and returns the updated percentages.
// @Tags        Rating
// @Accept      json
// @Produce     json
// @Param       id   path  int                           true "Perfume ID" example(3)
// @Param       body body  handlers.RatePerfumeRequest   true "Rating payload"
// @Success     200 {object} handlers.RatePerfumeResponse
// @Failure     400 {object} handlers.ErrorResponse "Invalid action"
// @Failure     404 {object} handlers.ErrorResponse "Perfume not found"
// @Failure     500 {object} handlers.ErrorResponse "Vote could not be saved"
// @Router      /perfumes/{id}/rating [post]
func (h *Handlers) RatePerfume(c *gin.Context) {
	id, okID := idParam(c)
	if !okID {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "perfume not found")
		return
	}

	var req RatePerfumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeInvalidAction, `action must be "like" or "dislike"`)
		return
	}

	res, err := h.rating.Apply(c.Request.Context(), id, req.Action)
	if err != nil {
		var perr *store.PersistenceError
		switch {
		case errors.Is(err, services.ErrPerfumeNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "perfume not found")
		case errors.Is(err, services.ErrInvalidAction):
			fail(c, http.StatusBadRequest, ErrCodeInvalidAction, `action must be "like" or "dislike"`)
		case errors.As(err, &perr):
			fail(c, http.StatusInternalServerError, ErrCodeInternal, "vote could not be saved")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}

	ok(c, http.StatusOK, RatePerfumeResponse{
		Success:        true,
		LikePercent:    res.LikePercent,
		DislikePercent: res.DislikePercent,
	})
}
