package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fokanendapascal/internship-management-app/internal/di"
	"github.com/fokanendapascal/internship-management-app/internal/middleware"
	"github.com/fokanendapascal/internship-management-app/internal/storage"
	"github.com/fokanendapascal/internship-management-app/internal/token"
	"github.com/fokanendapascal/internship-management-app/pkg/config"
	"github.com/fokanendapascal/internship-management-app/pkg/database"
	"github.com/fokanendapascal/internship-management-app/pkg/logger"
	pkgredis "github.com/fokanendapascal/internship-management-app/pkg/redis"
	"github.com/fokanendapascal/internship-management-app/pkg/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logCfg := &logger.Config{
		Level:       cfg.App.LogLevel,
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting internship management service...")

	ctx := context.Background()

	if _, err := telemetry.Init(ctx, &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
	}); err != nil {
		appLog.Fatal(fmt.Sprintf("Telemetry init failed: %v", err))
	}

	// Database
	dbCfg := &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.ConnMaxLifetime,
		MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
		ConnectTimeout:  10 * time.Second,
		MaxRetries:      3,
		RetryInterval:   2 * time.Second,
		EnableTracing:   cfg.OTel.Enabled,
	}
	db, err := database.NewPostgres(ctx, dbCfg)
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Database connection failed: %v", err))
	}
	defer db.Close()
	appLog.Info(fmt.Sprintf("Database connected (pool: min=%d, max=%d)", dbCfg.MinConns, dbCfg.MaxConns))

	// Redis, optional: without it notifications are stored but not pushed
	var redisClient *pkgredis.Client
	if cfg.Redis.Enabled {
		redisClient, err = pkgredis.NewClient(ctx, &pkgredis.Config{
			Host:          cfg.Redis.Host,
			Port:          cfg.Redis.Port,
			Password:      cfg.Redis.Password,
			DB:            cfg.Redis.DB,
			PoolSize:      cfg.Redis.PoolSize,
			MinIdleConns:  cfg.Redis.MinIdleConns,
			DialTimeout:   cfg.Redis.DialTimeout,
			ReadTimeout:   cfg.Redis.ReadTimeout,
			WriteTimeout:  cfg.Redis.WriteTimeout,
			MaxRetries:    3,
			RetryInterval: time.Second,
		})
		if err != nil {
			appLog.Warn(fmt.Sprintf("Redis connection failed, notifications will not be pushed: %v", err))
			redisClient = nil
		} else {
			defer redisClient.Close()
			appLog.Info("Redis connected")
		}
	}

	// Document storage
	files, err := storage.NewLocalFileStore(cfg.Storage.Dir, cfg.Storage.BaseURL)
	if err != nil {
		appLog.Fatal(fmt.Sprintf("File storage init failed: %v", err))
	}

	codec := token.NewCodec(&token.Config{
		Secret:     cfg.JWT.Secret,
		AccessTTL:  cfg.JWT.AccessTokenTTL,
		RefreshTTL: cfg.JWT.RefreshTokenTTL,
	})

	container := di.NewContainer(&di.ContainerConfig{
		DB:    db,
		Redis: redisClient,
		Files: files,
		Codec: codec,
		Log:   appLog,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(appLog))
	router.Use(middleware.Authenticate(container.Resolver))
	router.Use(middleware.Authorize(container.Matrix))

	router.GET("/health/live", container.HealthHandler.Live)
	router.GET("/health/ready", container.HealthHandler.Ready)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", container.AuthHandler.Register)
			auth.POST("/login", container.AuthHandler.Login)
			auth.POST("/refresh-token", container.AuthHandler.Refresh)
			auth.GET("/authenticated", container.AuthHandler.Authenticated)
		}

		users := v1.Group("/users")
		{
			users.GET("", container.UserHandler.List)
			users.GET("/:id", container.UserHandler.Get)
			users.PUT("/:id", container.UserHandler.Update)
			users.DELETE("/:id", container.UserHandler.Delete)
		}

		students := v1.Group("/students")
		{
			students.POST("", container.StudentHandler.Create)
			students.GET("", container.StudentHandler.List)
			students.GET("/:id", container.StudentHandler.Get)
			students.PUT("/:id", container.StudentHandler.Update)
			students.DELETE("/:id", container.StudentHandler.Delete)
		}

		teachers := v1.Group("/teachers")
		{
			teachers.POST("", container.TeacherHandler.Create)
			teachers.GET("", container.TeacherHandler.List)
			teachers.GET("/:id", container.TeacherHandler.Get)
			teachers.PUT("/:id", container.TeacherHandler.Update)
			teachers.DELETE("/:id", container.TeacherHandler.Delete)
		}

		companies := v1.Group("/companies")
		{
			companies.POST("", container.CompanyHandler.Create)
			companies.GET("", container.CompanyHandler.List)
			companies.GET("/:id", container.CompanyHandler.Get)
			companies.PUT("/:id", container.CompanyHandler.Update)
			companies.DELETE("/:id", container.CompanyHandler.Delete)
		}

		internships := v1.Group("/internships")
		{
			internships.POST("", container.InternshipHandler.Create)
			internships.GET("", container.InternshipHandler.List)
			internships.GET("/:id", container.InternshipHandler.Get)
			internships.PUT("/:id", container.InternshipHandler.Update)
			internships.DELETE("/:id", container.InternshipHandler.Delete)
		}

		applications := v1.Group("/applications")
		if redisClient != nil {
			applications.Use(middleware.Idempotency(redisClient))
		}
		{
			applications.POST("", container.ApplicationHandler.Create)
			applications.POST("/for-student/:studentId", container.ApplicationHandler.CreateForStudent)
			applications.GET("", container.ApplicationHandler.List)
			applications.GET("/:id", container.ApplicationHandler.Get)
			applications.PUT("/:id", container.ApplicationHandler.Update)
			applications.PUT("/:id/decision", container.ApplicationHandler.Decide)
			applications.DELETE("/:id", container.ApplicationHandler.Delete)
		}

		agreements := v1.Group("/agreements")
		if redisClient != nil {
			agreements.Use(middleware.Idempotency(redisClient))
		}
		{
			agreements.POST("", container.AgreementHandler.Create)
			agreements.POST("/admin-create", container.AgreementHandler.CreateAsAdmin)
			agreements.GET("", container.AgreementHandler.List)
			agreements.GET("/:id", container.AgreementHandler.Get)
			agreements.PUT("/:id", container.AgreementHandler.Update)
			agreements.PUT("/:id/validate", container.AgreementHandler.Validate)
			agreements.DELETE("/:id", container.AgreementHandler.Delete)
		}

		messages := v1.Group("/messages")
		{
			messages.POST("", container.MessageHandler.Send)
			messages.GET("/conversation/:userId", container.MessageHandler.Conversation)
			messages.PUT("/:id/read", container.MessageHandler.MarkRead)
		}

		notifications := v1.Group("/notifications")
		{
			notifications.GET("", container.NotificationHandler.List)
			notifications.PUT("/:id/read", container.NotificationHandler.MarkRead)
			notifications.DELETE("/:id", container.NotificationHandler.Delete)
		}

		filesGroup := v1.Group("/files")
		{
			filesGroup.POST("", container.FileHandler.Upload)
			filesGroup.GET("/:name", container.FileHandler.Download)
		}
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		appLog.Info(fmt.Sprintf("Listening on %s", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(fmt.Sprintf("Failed to start server: %v", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Error(fmt.Sprintf("Server shutdown error: %v", err))
	}
	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		appLog.Error(fmt.Sprintf("Telemetry shutdown error: %v", err))
	}
	appLog.Info("Server stopped")
}
