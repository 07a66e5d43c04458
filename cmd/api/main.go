package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"scholarhub/internal/config"
	"scholarhub/internal/database"
	"scholarhub/internal/kvstore"
	"scholarhub/internal/middleware"
	"scholarhub/internal/modules/auth"
	"scholarhub/internal/modules/profile"
	"scholarhub/internal/modules/scholarship"
	"scholarhub/internal/notifier"
	jwtsvc "scholarhub/internal/pkg/jwt"
	"scholarhub/internal/repository"
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
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	kv, err := openKV(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer kv.Close()

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	scholarshipRepo := repository.NewScholarshipRepository(db)

	codec := jwtsvc.NewCodec(cfg.AccessSecret, cfg.RefreshSecret, cfg.AccessTTL, cfg.RefreshTTL)

	email, sms := buildNotifiers(cfg)

	authService := auth.NewService(userRepo, kv, codec, email, sms, auth.Config{
		LockThreshold:  cfg.LockThreshold,
		LockDuration:   cfg.LockDuration,
		RefreshTTL:     cfg.RefreshTTL,
		EmailVerifyTTL: cfg.EmailVerifyTTL,
		OTPTTL:         cfg.OTPTTL,
		ResetTokenTTL:  cfg.ResetTokenTTL,
		FrontendURL:    cfg.FrontendURL,
	})
	authHandler := auth.NewHandler(authService, !cfg.IsProdLike())

	scholarshipHandler := scholarship.NewHandler(scholarship.NewService(scholarshipRepo))
	profileHandler := profile.NewHandler(profile.NewService(profileRepo, userRepo))

	r := gin.Default()
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	loginLimiter := middleware.LimitByIP(kv, "login", cfg.LoginRateMax, cfg.LoginRateWindow)
	recipientLimiter := middleware.LimitByRecipient(kv, cfg.RecipientRateMax, cfg.RecipientRateWindow)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1, loginLimiter, recipientLimiter)
		scholarshipHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(codec, userRepo))
		{
			authHandler.RegisterProtectedRoutes(protected)
			profileHandler.RegisterProtectedRoutes(protected)

			admin := protected.Group("/")
			admin.Use(middleware.Permit("ADMIN", "SUPER_ADMIN"))
			{
				scholarshipHandler.RegisterProtectedRoutes(admin)
			}
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func openKV(cfg *config.Config) (kvstore.Store, error) {
	if cfg.RedisURL == "" {
		log.Println("REDIS_URL not set, using in-memory token store")
		return kvstore.NewMemoryStore(), nil
	}
	return kvstore.NewRedisStore(cfg.RedisURL)
}

func buildNotifiers(cfg *config.Config) (email, sms notifier.Notifier) {
	if cfg.EmailDisabled || cfg.SMTPHost == "" {
		return notifier.NewConsoleEmail(true), notifier.NewConsoleSMS(true)
	}
	return notifier.NewSMTPEmail(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass), notifier.NewConsoleSMS(true)
}
