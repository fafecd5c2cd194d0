package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"hobbyhub/internal/auth"
	"hobbyhub/internal/catalog"
	"hobbyhub/internal/config"
	apphttp "hobbyhub/internal/http"
	"hobbyhub/internal/repository/sqlite"
	"hobbyhub/internal/service"
	"hobbyhub/internal/storage"
	myvalidator "hobbyhub/internal/validator"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		logger.Fatalf("auth jwt secret is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	userRepo := sqlite.NewUserRepository(db)
	bookmarkRepo := sqlite.NewBookmarkRepository(db)

	if err := userRepo.Init(ctx); err != nil {
		logger.Fatalf("init user repository: %v", err)
	}
	if err := bookmarkRepo.Init(ctx); err != nil {
		logger.Fatalf("init bookmark repository: %v", err)
	}

	userService := service.NewUserService(userRepo, cfg.Auth.BcryptCost)
	bookmarkService := service.NewBookmarkService(bookmarkRepo)
	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	storageSvc, err := buildStorage(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("setup storage: %v", err)
	}
	if storageSvc != nil {
		verifyThumbnails(ctx, storageSvc, cfg.Storage.Bucket, logger)
	}

	loginLimiter, err := buildLoginLimiter(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("setup rate limiter: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("category", myvalidator.IsCategory); err != nil {
			logger.Fatalf("register category validator: %v", err)
		}
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handler := apphttp.NewHandler(
		userService,
		bookmarkService,
		issuer,
		storageSvc,
		cfg.Storage.Bucket,
		time.Duration(cfg.Storage.ImageTTLMinutes)*time.Minute,
	)
	handler.RegisterRoutes(router, loginLimiter)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

// buildStorage is optional: without a bucket the catalog serves static
// image paths instead of presigned URLs.
func buildStorage(ctx context.Context, cfg config.Config, logger *logrus.Logger) (storage.Service, error) {
	if cfg.Storage.Bucket == "" {
		logger.Info("no storage bucket configured, serving static image paths")
		return nil, nil
	}

	loadOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Storage.Region),
	}
	if cfg.AWS.Profile != "" {
		loadOpts = append(loadOpts, awscfg.WithSharedConfigProfile(cfg.AWS.Profile))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Storage.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
			o.UsePathStyle = true
		}
	})
	logger.Infof("using s3 bucket %s (region %s) for thumbnails", cfg.Storage.Bucket, cfg.Storage.Region)
	return storage.NewS3Service(client), nil
}

// verifyThumbnails checks that every catalog image key has an object in
// the bucket. Missing thumbnails are logged, not fatal; the API falls
// back to static paths when presigning fails.
func verifyThumbnails(ctx context.Context, store storage.Service, bucket string, logger *logrus.Logger) {
	objects, err := store.ListObjects(ctx, bucket, "thumbnails/")
	if err != nil {
		logger.Warnf("list thumbnails: %v", err)
		return
	}

	hobbies := catalog.All()
	keys := make([]string, 0, len(hobbies))
	for _, h := range hobbies {
		keys = append(keys, h.ImageKey)
	}

	missing := storage.MissingKeys(objects, keys)
	for _, key := range missing {
		logger.Warnf("thumbnail object missing: s3://%s/%s", bucket, key)
	}
	logger.Infof("verified %d catalog thumbnails (%d missing)", len(keys), len(missing))
}

// buildLoginLimiter is optional: without a Redis address login attempts
// are not throttled.
func buildLoginLimiter(ctx context.Context, cfg config.Config, logger *logrus.Logger) (gin.HandlerFunc, error) {
	if cfg.Redis.Addr == "" {
		logger.Info("no redis configured, login rate limiting disabled")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	window := time.Duration(cfg.RateLimit.LoginWindowSeconds) * time.Second
	logger.Infof("login rate limiter enabled (%d attempts / %s)", cfg.RateLimit.LoginAttempts, window)
	return apphttp.LoginRateLimiter(rdb, cfg.RateLimit.LoginAttempts, window), nil
}
