// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements the cookie-session admin gate. Sessions are managed
// with gin-contrib/sessions; login sets a boolean flag in the session and
// RequireAdmin rejects requests that lack it. Quiz answers live in the same
// session under a separate key, so restarting the quiz never logs an
// operator out and vice versa.
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	// SessionKeyAdmin marks a session as an authenticated admin.
	SessionKeyAdmin = "admin_logged_in"
	// SessionKeyAnswers holds the quiz AnswerSet (map[int]string) in the session.
	SessionKeyAnswers = "answers"
)

// RequireAdmin returns a Gin middleware rejecting requests whose session
// does not carry the admin flag. It aborts with the standard 401 envelope;
// clients are expected to authenticate via the login endpoint first.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if loggedIn, ok := sess.Get(SessionKeyAdmin).(bool); !ok || !loggedIn {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"request_id": c.Writer.Header().Get("X-Request-ID"),
				"code":       "unauthorized",
				"message":    "admin login required",
			})
			return
		}
		c.Next()
	}
}

// IsAdmin reports whether the current session is authenticated.
func IsAdmin(c *gin.Context) bool {
	loggedIn, ok := sessions.Default(c).Get(SessionKeyAdmin).(bool)
	return ok && loggedIn
}
