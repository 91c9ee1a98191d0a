package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhive/taskhive-api/handlers"
	"github.com/taskhive/taskhive-api/internal/cache"
	"github.com/taskhive/taskhive-api/internal/config"
	"github.com/taskhive/taskhive-api/internal/database"
	"github.com/taskhive/taskhive-api/internal/identity"
	"github.com/taskhive/taskhive-api/internal/password"
	"github.com/taskhive/taskhive-api/internal/projects"
	"github.com/taskhive/taskhive-api/internal/storage"
	"github.com/taskhive/taskhive-api/internal/tasks"
	"github.com/taskhive/taskhive-api/internal/tokens"
	"github.com/taskhive/taskhive-api/internal/users"
	"github.com/taskhive/taskhive-api/pkg/logger"
	"github.com/taskhive/taskhive-api/pkg/metrics"
	"github.com/taskhive/taskhive-api/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v identity=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.Identity.Issuer != "")

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	})

	ctx := context.Background()

	// Connect to Redis early so the project-list cache can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("Connected to Redis for response caching: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}
	var listCache *cache.Cache
	if redisClient != nil {
		listCache = cache.New(redisClient, "taskhive:", 5*time.Minute)
	}

	// Connect to MongoDB with retry/backoff to tolerate startup races
	const maxAttempts = 5
	backoff := time.Second
	var client *mongo.Client
	var errConn error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if errConn == nil {
			break
		}
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
		if attempt < maxAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	if errConn != nil {
		logger.Fatalf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	db := client.Database(cfg.MongoDB.Database)
	userSvc := users.NewService(users.NewMongoRepository(db.Collection("users")))
	projectRepo := projects.NewMongoRepository(db.Collection("projects"))
	taskRepo := tasks.NewMongoRepository(db.Collection("tasks"))
	projectSvc := projects.NewService(projectRepo, taskRepo)
	taskSvc := tasks.NewService(taskRepo, projectRepo)

	// token verification: the local HMAC verifier gates protected routes; the
	// identity-provider verifier is optional and only checks federated signups
	verifier := tokens.NewHMACVerifier(cfg)
	var identityVerifier middleware.Verifier
	if cfg.Identity.Issuer != "" && cfg.Identity.ClientID != "" {
		iv, err := identity.NewVerifier(ctx, cfg.Identity.Issuer, cfg.Identity.ClientID)
		if err != nil {
			logger.Warnf("failed to initialize identity verifier: %v", err)
		} else {
			identityVerifier = iv
		}
	}

	// image store is optional; the upload route is only served when configured
	var imageStore *storage.ImageStore
	if mcfg := storage.LoadMinIOConfig(); mcfg.Endpoint != "" {
		imageStore, err = storage.NewImageStore(mcfg)
		if err != nil {
			logger.Warnf("failed to initialize image store: %v", err)
		}
	}

	root := r.Group("/")
	handlers.NewAuthHandler(cfg, userSvc, password.NewHasher(), verifier, identityVerifier).Register(root)
	handlers.NewProjectsHandler(projectSvc, listCache).Register(root)
	handlers.NewTasksHandler(taskSvc, listCache).Register(root)
	if imageStore != nil {
		handlers.NewUploadsHandler(imageStore).Register(root)
	} else {
		logger.Warnf("upload route not registered because the image store is unavailable")
	}
	handlers.RegisterSwagger(r)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, "All good in here")
	})

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: 200 only when critical dependencies answer
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		deps["mongo"] = client.Ping(pingCtx, nil) == nil
		if !deps["mongo"] {
			ready = false
		}

		if redisClient != nil {
			deps["redis"] = redisClient.Ping(pingCtx).Err() == nil
		} else {
			// not configured -> consider OK
			deps["redis"] = true
		}

		deps["uploads"] = imageStore != nil

		status := http.StatusOK
		state := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			state = "not_ready"
		}
		c.JSON(status, gin.H{"status": state, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting taskhive api on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
