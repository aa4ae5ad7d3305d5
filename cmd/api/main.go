package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"mediavault/internal/config"
	"mediavault/internal/database"
	"mediavault/internal/domain/identity"
	"mediavault/internal/domain/image"
	"mediavault/internal/domain/video"
	"mediavault/internal/middleware"
	jwtsvc "mediavault/internal/pkg/jwt"
	"mediavault/internal/storage"
	"mediavault/internal/transcode"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(&identity.User{}, &video.Video{}, &image.Image{}); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	store, err := storage.New(cfg.StorageDir)
	if err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	userRepo := identity.NewRepository(db)
	videoRepo := video.NewRepository(db)
	imageRepo := image.NewRepository(db)

	identityService := identity.NewService(userRepo, j)
	identityHandler := identity.NewHandler(identityService)

	executor := transcode.NewFFmpeg(cfg.FFmpegBin)
	videoService := video.NewService(videoRepo, store, executor, cfg.TranscodeTimeout)
	videoHandler := video.NewHandler(videoService)

	imageService := image.NewService(imageRepo, store)
	imageHandler := image.NewHandler(imageService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	v1 := r.Group("/api/v1")
	{
		// public
		identity.RegisterRoutes(v1, identityHandler)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			identity.RegisterProtectedRoutes(protected, identityHandler)
			video.RegisterRoutes(protected, videoHandler)
			image.RegisterRoutes(protected, imageHandler)
		}
	}

	log.Println("listening on", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
