// Admin authentication handlers.
//
// This file exposes the session login and logout endpoints guarding the
// curation surface:
//   - POST /admin/login
//   - POST /admin/logout
//
// Credentials come from configuration; comparison is constant-time so the
// endpoint leaks nothing about which field was wrong.
package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/Dhayou05/Karim-perfume/internal/http/middleware"
)

// LoginRequest is the JSON payload for admin login.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @ID          adminLogin
// @Summary     Admin login
// @Description Authenticates the operator and marks the session as admin.
// @Tags        Admin
// @Accept      json
// @Param       body body handlers.LoginRequest true "Credentials"
// @Success     204 {string} string "No Content"
// @Failure     400 {object} handlers.ErrorResponse "Invalid payload"
// @Failure     401 {object} handlers.ErrorResponse "Wrong credentials"
// @Router      /admin/login [post]
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "username and password are required")
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.admin.Password)) == 1
	if !userOK || !passOK {
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, "invalid credentials")
		return
	}

	sess := sessions.Default(c)
	sess.Set(middleware.SessionKeyAdmin, true)
	if err := sess.Save(); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not start session")
		return
	}
	noContent(c)
}

// Logout godoc
// @ID          adminLogout
// @Summary     Admin logout
// @Description Clears the admin flag from the session.
// @Tags        Admin
// @Success     204 {string} string "No Content"
// @Router      /admin/logout [post]
func (h *Handlers) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Delete(middleware.SessionKeyAdmin)
	if err := sess.Save(); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not end session")
		return
	}
	noContent(c)
}
