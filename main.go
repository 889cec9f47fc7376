package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/adewale-dev/portfolio-api/handlers"
	"github.com/adewale-dev/portfolio-api/internal/about"
	"github.com/adewale-dev/portfolio-api/internal/accounts"
	"github.com/adewale-dev/portfolio-api/internal/config"
	"github.com/adewale-dev/portfolio-api/internal/contacts"
	"github.com/adewale-dev/portfolio-api/internal/database"
	"github.com/adewale-dev/portfolio-api/internal/notifications"
	"github.com/adewale-dev/portfolio-api/internal/projects"
	"github.com/adewale-dev/portfolio-api/internal/resumes"
	"github.com/adewale-dev/portfolio-api/internal/sessions"
	"github.com/adewale-dev/portfolio-api/internal/storage"
	"github.com/adewale-dev/portfolio-api/internal/tokens"
	"github.com/adewale-dev/portfolio-api/pkg/logger"
	"github.com/adewale-dev/portfolio-api/pkg/metrics"
	"github.com/adewale-dev/portfolio-api/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

var startTime = time.Now()

func main() {
	// logging first (LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v minio=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.Storage.Endpoint != "")

	if cfg.JWT.Secret == "" {
		logger.Fatalf("JWT_SECRET must be set")
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// permissive CORS for the admin console dev server; tighten per deployment
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	})

	// Redis early: token blacklist and the Redis-backed rate limiter want it
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			sessions.SetBlacklistClient(redisClient)
			logger.Infof("connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	var contactLimiter gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
		if cfg.RateLimit.UseRedis && redisClient != nil {
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
		// the public contact form gets its own, much tighter limiter
		contactLimiter = middleware.ScopedRateLimitMiddleware("contact", cfg.RateLimit.ContactRPS, cfg.RateLimit.ContactBurst)
	}

	// MongoDB is the system of record; nothing useful runs without it
	ctx := context.Background()
	if cfg.MongoDB.URI == "" {
		logger.Fatalf("MONGODB_URI must be set")
	}
	client, err := database.ConnectWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 5)
	if err != nil {
		logger.Fatalf("could not connect to MongoDB: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()
	db := client.Database(cfg.MongoDB.Database)

	// repositories and services, one per collection
	accountsSvc := accounts.NewService(accounts.NewMongoRepository(db.Collection("accounts")))
	notifSvc := notifications.NewService(notifications.NewMongoRepository(db.Collection("notifications")))
	contactsSvc := contacts.NewService(contacts.NewMongoRepository(db.Collection("contacts")), notifSvc)
	projectsSvc := projects.NewService(projects.NewMongoRepository(db.Collection("projects")), notifSvc)
	resumesSvc := resumes.NewService(resumes.NewMongoRepository(db.Collection("resumes")))
	aboutSvc := about.NewService(about.NewMongoRepository(db.Collection("abouts")))

	var sessionsSvc *sessions.Service
	if redisClient != nil {
		sessionsSvc = sessions.NewService(sessions.NewRedisRepository(redisClient, "session:"))
		logger.Infof("using Redis for session storage")
	} else {
		sessionsSvc = sessions.NewService(sessions.NewMongoRepository(db.Collection("sessions")))
	}

	// bootstrap the admin account from the environment when none exists
	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		if _, err := accountsSvc.Setup(ctx, cfg.Admin.Email, cfg.Admin.Password, "Admin"); err != nil {
			if err != accounts.ErrAccountExists {
				logger.Warnf("admin bootstrap: %v", err)
			}
		} else {
			logger.Infof("admin account created for %s", cfg.Admin.Email)
		}
	}

	var imageStore *storage.MinIOStorage
	if cfg.Storage.Endpoint != "" {
		imageStore, err = storage.NewMinIOStorage(&cfg.Storage)
		if err != nil {
			logger.Warnf("image storage unavailable: %v", err)
			imageStore = nil
		}
	}

	auth := middleware.RequireAuth(tokens.NewVerifier(cfg.JWT.Secret))

	api := r.Group("/api")
	handlers.NewAuthHandler(cfg, accountsSvc, sessionsSvc).Register(api, auth)
	handlers.NewContactHandler(contactsSvc).Register(api, auth, contactLimiter)
	handlers.NewProjectHandler(projectsSvc).Register(api, auth)
	handlers.NewNotificationHandler(notifSvc).Register(api, auth)
	handlers.NewResumeHandler(resumesSvc).Register(api, auth)
	handlers.NewAboutHandler(aboutSvc).Register(api, auth)
	handlers.NewProfileHandler(accountsSvc).Register(api)
	handlers.NewUploadHandler(imageStore).Register(api, auth)
	handlers.RegisterSwagger(r)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		deps["mongo"] = pingMongo(c.Request.Context(), client)
		if !deps["mongo"] {
			ready = false
		}
		if cfg.Redis.Host != "" {
			deps["redis"] = redisClient != nil && redisClient.Ping(c.Request.Context()).Err() == nil
			if !deps["redis"] {
				ready = false
			}
		}
		if cfg.Storage.Endpoint != "" {
			deps["storage"] = imageStore != nil
		}

		status := http.StatusOK
		label := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			label = "not_ready"
		}
		c.JSON(status, gin.H{"status": label, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("starting portfolio API on %s", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}

func pingMongo(ctx context.Context, client *mongo.Client) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return client.Ping(ctx, nil) == nil
}
