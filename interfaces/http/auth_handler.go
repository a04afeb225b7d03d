package http

import (
	"net/http"
	"os"

	"wesion-bff/domain/dto"
	"wesion-bff/infrastructure/logger"
	"wesion-bff/interfaces/middleware"
	"wesion-bff/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ErrorUnmarshal = "Error while unmarshal"

	userRoleCookie  = "user_role"
	sessionDuration = 7 * 24 * 3600 // one week, in seconds
)

type IAuthHandler interface {
	Login(c *gin.Context)
	Logout(c *gin.Context)
	CheckAuth(c *gin.Context)
}

type AuthHandler struct {
	userUsecase usecase.IUserUsecase
}

func NewAuthHandler(userUsecase usecase.IUserUsecase) IAuthHandler {
	return &AuthHandler{userUsecase: userUsecase}
}

func secureCookies() bool {
	env := os.Getenv("ENV")
	return env == "production" || env == "prod"
}

// Login proxies the credential check to the backend and, on success, moves the
// access token into an HTTP-only cookie so browser scripts never see it. The
// role travels in a separate readable cookie for client-side route guards.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.ReqLogin
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, dto.Fail("email and password are required"))
		return
	}

	data, err := h.userUsecase.Login(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}

	secure := secureCookies()
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AccessTokenCookie, data.AccessToken, sessionDuration, "/", "", secure, true)
	c.SetCookie(userRoleCookie, data.User.Role, sessionDuration, "/", "", secure, false)

	c.JSON(http.StatusOK, dto.Ok(gin.H{"user": data.User}))
}

// Logout clears both session cookies.
func (h *AuthHandler) Logout(c *gin.Context) {
	secure := secureCookies()
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", secure, true)
	c.SetCookie(userRoleCookie, "", -1, "/", "", secure, false)
	c.JSON(http.StatusOK, dto.Ok(nil))
}

// CheckAuth sits behind the auth middleware; reaching it means the session
// cookie is present and valid.
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	c.JSON(http.StatusOK, dto.Ok(gin.H{
		"authenticated": true,
		"role":          c.GetString("user_role"),
	}))
}
