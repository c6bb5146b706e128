package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/skilllens/skilllens/account/accountapi"
	"github.com/skilllens/skilllens/account/accountauth"
	"github.com/skilllens/skilllens/account/accountinfra"
	"github.com/skilllens/skilllens/account/accountsrv"
	"github.com/skilllens/skilllens/analysis"
	"github.com/skilllens/skilllens/analysis/analysisapi"
	"github.com/skilllens/skilllens/analysis/analysisinfra"
	"github.com/skilllens/skilllens/analysis/analysissrv"
	"github.com/skilllens/skilllens/internal/nlp"
	"github.com/skilllens/skilllens/pkg/logx"
	"github.com/skilllens/skilllens/skills"
)

const version = "1.0.0"

// Container holds all application dependencies
type Container struct {
	// Infrastructure (all optional; nil when not configured)
	DB       *sqlx.DB
	Redis    *redis.Client
	S3Client *s3.Client

	// Services
	TokenService    *accountauth.TokenService
	AccountService  *accountsrv.Service
	AnalysisService *analysissrv.Service

	// API Handlers
	AccountHandlers  *accountapi.Handlers
	AnalysisHandlers *analysisapi.Handlers

	// Middleware
	AuthMiddleware *accountauth.Middleware
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

// initInfrastructure connects to external systems. Every dependency here is
// optional: the analyzer core runs with none of them configured.
func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	if dbHost != "" {
		dbPort := os.Getenv("DB_PORT")
		dbUser := os.Getenv("DB_USER")
		dbPass := os.Getenv("DB_PASS")
		dbName := os.Getenv("DB_NAME")
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			dbHost, dbPort, dbUser, dbPass, dbName)

		db, err := sqlx.Connect("postgres", dsn)
		if err != nil {
			logx.Warnf("Failed to connect to database, history and accounts disabled: %v", err)
		} else {
			db.SetMaxOpenConns(25)
			db.SetMaxIdleConns(5)
			db.SetConnMaxLifetime(5 * time.Minute)
			c.DB = db
		}
	} else {
		logx.Warn("DB_HOST is not set, history and accounts disabled")
	}

	// 2. Redis Connection
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: os.Getenv("REDIS_PASS"),
			DB:       0,
		})
		if _, err := client.Ping(context.Background()).Result(); err != nil {
			logx.Warnf("Failed to connect to Redis, result cache disabled: %v", err)
		} else {
			c.Redis = client
		}
	}

	// 3. AWS S3 Configuration
	awsBucket := os.Getenv("AWS_BUCKET")
	if awsBucket != "" {
		cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
		if err != nil {
			logx.Warnf("Unable to load AWS SDK config, upload archive disabled: %v", err)
		} else {
			c.S3Client = s3.NewFromConfig(cfg)
		}
	}
}

func (c *Container) initServices() {
	// Token Service
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		jwtSecret = "super-secret-key-please-change-me-in-production"
	}
	c.TokenService = accountauth.NewTokenService(jwtSecret, 24*time.Hour, "skilllens")
	c.AuthMiddleware = accountauth.NewMiddleware(c.TokenService)

	// Skill extraction, with the OpenAI annotator when a key is configured
	var annotator skills.Annotator
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		annotator = nlp.NewOpenAIAnnotator(apiKey)
		logx.Info("OpenAI annotator enabled")
	}
	extractor := skills.NewExtractor(skills.DefaultVocabulary(), annotator)

	// Optional analysis ports
	var analysisRepo analysis.Repository
	var resultCache analysis.ResultCache
	var fileStore analysis.FileStore

	if c.DB != nil {
		analysisRepo = analysisinfra.NewPostgresAnalysisRepository(c.DB)
	}
	if c.Redis != nil {
		resultCache = analysisinfra.NewRedisResultCache(c.Redis, time.Hour)
	}
	if c.S3Client != nil {
		fileStore = analysisinfra.NewS3FileStore(c.S3Client, os.Getenv("AWS_BUCKET"))
	}

	c.AnalysisService = analysissrv.NewService(extractor, analysisRepo, resultCache, fileStore)
	c.AnalysisHandlers = analysisapi.NewHandlers(c.AnalysisService, version)

	if c.DB != nil {
		userRepo := accountinfra.NewPostgresUserRepository(c.DB)
		c.AccountService = accountsrv.NewService(userRepo, c.TokenService)
		c.AccountHandlers = accountapi.NewHandlers(c.AccountService)
	}
}

// Close releases infrastructure connections
func (c *Container) Close() {
	if c.DB != nil {
		c.DB.Close()
	}
	if c.Redis != nil {
		c.Redis.Close()
	}
}
