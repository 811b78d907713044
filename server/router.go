package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"my-videos/infrastructure/session"
	httpHandler "my-videos/interfaces/http"
	"my-videos/interfaces/middleware"
)

func InitiateRouter(
	videoHandler httpHandler.IVideoHandler,
	youtubeHandler httpHandler.IYouTubeHandler,
	youtubeAuthHandler httpHandler.IYouTubeAuthHandler,
	sessionStore *session.Store,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8090", "http://localhost:4200", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.Session(sessionStore))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// OAuth authorization flow
	if youtubeAuthHandler != nil {
		router.GET("/authorize", youtubeAuthHandler.Authorize)
		router.GET("/oauth2callback", youtubeAuthHandler.Callback)
	} else {
		notConfigured := func(ctx *gin.Context) {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"error":   "OAuth not configured",
				"message": "Provide a client secrets file or client id/secret to enable authorization",
			})
		}
		router.GET("/authorize", notConfigured)
		router.GET("/oauth2callback", notConfigured)
	}

	videos := router.Group("videos")
	{
		// Static platform routes are registered before the :code wildcard so
		// "youtube" never resolves as a stored code.
		if youtubeHandler != nil {
			videos.GET("/youtube", youtubeHandler.GetLikedVideos)
			videos.GET("/youtube/add_all", youtubeHandler.ImportLikedVideos)
		} else {
			notConfigured := func(ctx *gin.Context) {
				ctx.JSON(http.StatusServiceUnavailable, gin.H{
					"error":   "YouTube API not configured",
					"message": "Provide OAuth credentials to enable liked-videos features",
				})
			}
			videos.GET("/youtube", notConfigured)
			videos.GET("/youtube/add_all", notConfigured)
		}

		videos.GET("/", videoHandler.GetAll)
		videos.POST("/", videoHandler.Create)
		videos.GET("/:code", videoHandler.GetByCode)
		videos.PUT("/:code", videoHandler.Update)
		videos.DELETE("/:code", videoHandler.Delete)
	}

	return router
}
