package server

import (
	"net/http"
	"time"

	httpHandler "wesion-bff/interfaces/http"
	"wesion-bff/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	authHandler httpHandler.IAuthHandler,
	userHandler httpHandler.IUserHandler,
	categoryHandler httpHandler.ICategoryHandler,
	videoHandler httpHandler.IVideoHandler,
	filesHandler httpHandler.IFilesHandler,
	vimeoHandler httpHandler.IVimeoHandler,
	vimeoAuthHandler httpHandler.IVimeoAuthHandler,
	allowedOrigins []string,
	secretKey string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowOriginFunc:  func(origin string) bool { return allowed[origin] },
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("api")

	// Public surface: the submission form needs no session.
	api.GET("/video-categories", categoryHandler.GetCategories)
	api.GET("/users/find-by-email", userHandler.VerifyEmail)
	api.POST("/video-details", videoHandler.Submit)

	files := api.Group("/files")
	{
		files.POST("/signed-url", filesHandler.GetSignedURL)
		files.PUT("/upload", filesHandler.Upload)
	}

	vimeo := api.Group("/vimeo")
	{
		vimeo.POST("/create", vimeoHandler.CreateUpload)
		vimeo.POST("/upload", vimeoHandler.UploadVideo)
		vimeo.GET("/progress", vimeoHandler.Progress)
	}

	vimeoAuth := api.Group("/vimeo-auth")
	{
		vimeoAuth.POST("/start", vimeoAuthHandler.Start)
		vimeoAuth.GET("/callback", vimeoAuthHandler.Callback)
		vimeoAuth.GET("/status", vimeoAuthHandler.Status)
	}

	// Admin surface: everything past login requires the session cookie.
	api.POST("/admin/login", authHandler.Login)
	api.POST("/admin/logout", authHandler.Logout)

	admin := api.Group("/admin")
	admin.Use(middleware.Auth(secretKey))
	{
		admin.GET("/check-auth", authHandler.CheckAuth)
		admin.GET("/videos", videoHandler.List)
		admin.GET("/videos/:id", videoHandler.Get)
		admin.PUT("/videos/:id", videoHandler.Update)
		admin.PATCH("/videos/:id/verify", videoHandler.SetVerified)
		admin.DELETE("/videos/:id", videoHandler.Delete)
		admin.POST("/videos/file-to-vimeo", vimeoHandler.UploadVideo)
	}

	return router
}
