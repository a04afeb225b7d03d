package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// uploadScopeCookie pins one submitter's browser to one upload scope, so the
// progress feed and the submit gate only ever see that submitter's transfers.
const uploadScopeCookie = "upload_scope"

const uploadScopeMaxAge = 24 * 3600

// uploadScope returns the caller's upload scope, minting one on first use.
// The cookie is HTTP-only: the client never needs the value, it just has to
// present it on the follow-up progress and submit calls.
func uploadScope(c *gin.Context) string {
	if v, err := c.Cookie(uploadScopeCookie); err == nil && v != "" {
		return v
	}
	v := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(uploadScopeCookie, v, uploadScopeMaxAge, "/", "", secureCookies(), true)
	return v
}
