package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sashabaranov/go-openai"
	"github.com/segmentio/kafka-go"

	"github.com/sysrai/sysrai-platform/internal/facades"
	"github.com/sysrai/sysrai-platform/internal/handlers"
	"github.com/sysrai/sysrai-platform/internal/jwt"
	"github.com/sysrai/sysrai-platform/internal/logger"
	"github.com/sysrai/sysrai-platform/internal/middlewares"
	"github.com/sysrai/sysrai-platform/internal/pricing"
	"github.com/sysrai/sysrai-platform/internal/providers"
	"github.com/sysrai/sysrai-platform/internal/repositories"
	"github.com/sysrai/sysrai-platform/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sysrai/sysrai-platform/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds all application settings, loaded from the environment.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost     string
	redisPort     int
	redisDB       int
	redisPassword string

	kafkaAddr  string
	kafkaTopic string

	jwtSecretKey string
	jwtExpSecond int

	stripeSecretKey     string
	stripeWebhookSecret string

	openaiAPIKey string
	openaiModel  string

	videoGenURL         string
	videoGenAPIKey      string
	videoGenPollTimeout time.Duration

	vastURL      string
	vastAPIKey   string
	runpodURL    string
	runpodAPIKey string
	lambdaURL    string
	lambdaAPIKey string

	s3Endpoint  string
	s3Region    string
	s3AccessKey string
	s3SecretKey string
	s3Bucket    string
	s3PublicURL string

	bonusSignup         float64
	bonusReferredSignup float64
	bonusReferral       float64
	rushMultiplier      float64
	pricingStrategy     string

	workerInterval time.Duration
	statusCacheTTL time.Duration
}

// @title sysrai-platform API
// @version 1.0.0
// @description SaaS platform for AI film generation: credits, projects and GPU capacity
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the full
// application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key string, defaultValue int) (int, error) {
		return strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	}
	getFloat := func(key string, defaultValue float64) (float64, error) {
		return strconv.ParseFloat(getEnv(key, strconv.FormatFloat(defaultValue, 'f', -1, 64)), 64)
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "sysrai")
	if cfg.pgPort, err = getInt("POSTGRES_PORT", 5432); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPort, err = getInt("REDIS_PORT", 6379); err != nil {
		return
	}
	if cfg.redisDB, err = getInt("REDIS_DB", 0); err != nil {
		return
	}
	statusTTL, err := getInt("CLUSTER_STATUS_TTL_SECOND", 30)
	if err != nil {
		return
	}
	cfg.statusCacheTTL = time.Duration(statusTTL) * time.Second

	// Kafka config; empty address disables event publishing
	cfg.kafkaAddr = getEnv("KAFKA_ADDR", "")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "transactions")

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = getInt("JWT_EXP_SECOND", 86400); err != nil {
		return
	}

	// Payments config
	cfg.stripeSecretKey = getEnv("STRIPE_SECRET_KEY", "")
	cfg.stripeWebhookSecret = getEnv("STRIPE_WEBHOOK_SECRET", "")

	// Script generation config
	cfg.openaiAPIKey = getEnv("OPENAI_API_KEY", "")
	cfg.openaiModel = getEnv("OPENAI_MODEL", "")

	// Video generation config
	cfg.videoGenURL = getEnv("VIDEOGEN_URL", "http://localhost:9090")
	cfg.videoGenAPIKey = getEnv("VIDEOGEN_API_KEY", "")
	pollTimeout, err := getInt("VIDEOGEN_POLL_TIMEOUT_SECOND", 3600)
	if err != nil {
		return
	}
	cfg.videoGenPollTimeout = time.Duration(pollTimeout) * time.Second

	// GPU provider config
	cfg.vastURL = getEnv("VAST_URL", "https://console.vast.ai/api/v0")
	cfg.vastAPIKey = getEnv("VAST_API_KEY", "")
	cfg.runpodURL = getEnv("RUNPOD_URL", "https://api.runpod.io/v2")
	cfg.runpodAPIKey = getEnv("RUNPOD_API_KEY", "")
	cfg.lambdaURL = getEnv("LAMBDA_URL", "https://cloud.lambdalabs.com/api/v1")
	cfg.lambdaAPIKey = getEnv("LAMBDA_API_KEY", "")

	// Object storage config
	cfg.s3Endpoint = getEnv("S3_ENDPOINT", "")
	cfg.s3Region = getEnv("S3_REGION", "us-east-1")
	cfg.s3AccessKey = getEnv("S3_ACCESS_KEY", "")
	cfg.s3SecretKey = getEnv("S3_SECRET_KEY", "")
	cfg.s3Bucket = getEnv("S3_BUCKET", "sysrai-films")
	cfg.s3PublicURL = getEnv("S3_PUBLIC_URL", "")

	// Billing config
	if cfg.bonusSignup, err = getFloat("SIGNUP_BONUS_CREDITS", 10); err != nil {
		return
	}
	if cfg.bonusReferredSignup, err = getFloat("REFERRED_SIGNUP_BONUS_CREDITS", 15); err != nil {
		return
	}
	if cfg.bonusReferral, err = getFloat("REFERRAL_BONUS_CREDITS", 25); err != nil {
		return
	}
	if cfg.rushMultiplier, err = getFloat("RUSH_MULTIPLIER", pricing.DefaultRushMultiplier); err != nil {
		return
	}
	cfg.pricingStrategy = getEnv("PRICING_STRATEGY", "catalog")

	// Pipeline worker config
	workerInterval, err := getInt("WORKER_INTERVAL_SECOND", 5)
	if err != nil {
		return
	}
	cfg.workerInterval = time.Duration(workerInterval) * time.Second

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka, S3, providers and the
// HTTP server, starts the pipeline worker and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password: cfg.redisPassword,
		DB:       cfg.redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for ledger events, optional
	var kafkaWriter services.KafkaWriter
	if cfg.kafkaAddr != "" {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(cfg.kafkaAddr),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		kafkaWriter = kw
	}

	// S3 client for film storage
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.s3Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.s3AccessKey, cfg.s3SecretKey, ""),
		),
	)
	if err != nil {
		logger.Log.Fatal("AWS config error:", err)
	}
	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.s3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.s3Endpoint)
			o.UsePathStyle = true
		}
	})

	// Initialize JWT service
	tokener := jwt.New(
		jwt.WithSecretKey(cfg.jwtSecretKey),
		jwt.WithExpiration(time.Duration(cfg.jwtExpSecond)*time.Second),
	)

	// Initialize facades
	paymentsFacade := facades.NewStripePaymentsFacade(cfg.stripeSecretKey)
	scriptsFacade := facades.NewScriptsFacade(openai.NewClient(cfg.openaiAPIKey), cfg.openaiModel)
	videoGenFacade := facades.NewVideoGenFacade(cfg.videoGenURL, cfg.videoGenAPIKey, cfg.videoGenPollTimeout)
	storageFacade := facades.NewStorageFacade(s3Client, cfg.s3Bucket, cfg.s3PublicURL)

	// GPU providers, cheapest first
	provs := providers.PreferenceOrder(
		providers.NewVastProvider(cfg.vastURL, cfg.vastAPIKey),
		providers.NewRunPodProvider(cfg.runpodURL, cfg.runpodAPIKey),
		providers.NewLambdaLabsProvider(cfg.lambdaURL, cfg.lambdaAPIKey),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	txnReadRepo := repositories.NewTransactionReadRepository(db)
	txnWriteRepo := repositories.NewTransactionWriteRepository(db, middlewares.GetTxFromContext)
	projectReadRepo := repositories.NewProjectReadRepository(db)
	projectWriteRepo := repositories.NewProjectWriteRepository(db, middlewares.GetTxFromContext)
	nodeReadRepo := repositories.NewGPUNodeReadRepository(db)
	nodeWriteRepo := repositories.NewGPUNodeWriteRepository(db)
	statusCacheRepo := repositories.NewClusterStatusCacheRepository(rdb, cfg.statusCacheTTL)

	// Billing strategy
	var pricer pricing.Pricer
	switch cfg.pricingStrategy {
	case "tier":
		pricer = pricing.TierPricer{}
	default:
		pricer = pricing.CatalogPricer{RushMultiplier: cfg.rushMultiplier}
	}

	// Initialize services
	ledgerService := services.NewLedgerService(userWriteRepo, txnWriteRepo, txnReadRepo, kafkaWriter)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, ledgerService, tokener, services.Bonuses{
		Signup:         cfg.bonusSignup,
		ReferredSignup: cfg.bonusReferredSignup,
		Referral:       cfg.bonusReferral,
	})
	billingService := services.NewBillingService(paymentsFacade, ledgerService)
	clusterService := services.NewClusterService(nodeReadRepo, nodeWriteRepo, provs, statusCacheRepo)
	projectService := services.NewProjectService(userReadRepo, projectReadRepo, projectWriteRepo, ledgerService, pricer, clusterService)
	pipelineService := services.NewPipelineService(projectWriteRepo, scriptsFacade, videoGenFacade, storageFacade, nodeWriteRepo, ledgerService, cfg.workerInterval)
	adminService := services.NewAdminService(userReadRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	createProjectHandler := handlers.NewCreateProjectHandler(projectService, tokener)
	getProjectHandler := handlers.NewGetProjectHandler(projectService, tokener)
	listProjectsHandler := handlers.NewListProjectsHandler(projectService, tokener)
	purchaseHandler := handlers.NewPurchaseHandler(billingService, tokener)
	balanceHandler := handlers.NewBalanceHandler(ledgerService, tokener)
	clusterStatusHandler := handlers.NewClusterStatusHandler(clusterService, adminService, tokener)
	clusterScaleHandler := handlers.NewClusterScaleHandler(clusterService, adminService, tokener)
	stripeWebhookHandler := handlers.NewStripeWebhookHandler(billingService, cfg.stripeWebhookSecret)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	txMiddleware := middlewares.TxMiddleware(db)

	// Public routes
	r.Get("/health", healthHandler)
	r.With(txMiddleware).Post("/register", registerHandler)
	r.Post("/login", loginHandler)
	r.With(txMiddleware).Post("/webhooks/stripe", stripeWebhookHandler)

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener))
		r.With(txMiddleware).Post("/projects", createProjectHandler)
		r.Get("/projects", listProjectsHandler)
		r.Get("/projects/{id}", getProjectHandler)
		r.Post("/credits/purchase", purchaseHandler)
		r.Get("/credits/balance", balanceHandler)
		r.Get("/cluster/status", clusterStatusHandler)
		r.Post("/cluster/scale", clusterScaleHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Background pipeline worker
	go pipelineService.Run(ctxShutdown)

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
