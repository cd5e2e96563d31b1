package main

import (
	"log"
	"os"

	"github.com/an1skat/catopia-backend/internal/api/api_comment"
	"github.com/an1skat/catopia-backend/internal/api/api_dev"
	"github.com/an1skat/catopia-backend/internal/api/api_oauth"
	"github.com/an1skat/catopia-backend/internal/api/api_user"
	"github.com/an1skat/catopia-backend/internal/config"
	"github.com/an1skat/catopia-backend/internal/database"
	"github.com/an1skat/catopia-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting server...")

	cfg := config.Load()
	db := database.InitDB(cfg.DatabaseURL)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal(err)
	}

	r := gin.New()
	r.Use(
		middleware.PanicRecovery(),
		middleware.RequestIDProvider(),
		middleware.ErrorLogging(),
		middleware.CORS(cfg.FrontendURL),
		middleware.DBProvider(db),
		middleware.ConfigProvider(cfg),
		middleware.ErrorHandler(),
	)

	r.Static("/uploads", cfg.UploadDir)

	{
		r.GET("/healthcheck", api_dev.HealthCheck)
		r.GET("/authcheck", middleware.Auth(), api_dev.AuthCheck)

		r.POST("/register", api_user.Register)
		r.POST("/login", api_user.Login)
		r.GET("/auth/me", middleware.Auth(), api_user.Me)
		r.GET("/users", api_user.ListUsers)
		r.GET("/users/:userId", api_user.GetUser)

		r.POST("/profile/avatar", middleware.Auth(), api_user.UploadAvatar)
		r.GET("/profile/avatar", middleware.Auth(), api_user.GetAvatar)
		r.DELETE("/profile/avatar", middleware.Auth(), api_user.DeleteAvatar)

		r.POST("/forgot-password", api_user.ForgotPassword)
		r.POST("/confirm", api_user.Confirm)
		r.PATCH("/change-password", api_user.ChangePassword)

		r.GET("/auth/google", api_oauth.Login)
		r.GET("/auth/callback", api_oauth.Callback)

		r.POST("/comment", middleware.Auth(), api_comment.New)
		r.GET("/comment/:commentId", api_comment.View)
		r.GET("/comments", api_comment.List)
		r.DELETE("/comment/:commentId", middleware.Auth(), api_comment.Delete)
		r.POST("/comment/:commentId/like", middleware.Auth(), api_comment.Like)
		r.DELETE("/comment/:commentId/like", middleware.Auth(), api_comment.Unlike)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
