package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"golang.org/x/crypto/bcrypt"

	"authorsite-backend/internal/config"
	infraCache "authorsite-backend/internal/infrastructure/cache"
	"authorsite-backend/internal/infrastructure/database"
	"authorsite-backend/internal/infrastructure/storage"
	"authorsite-backend/pkg/cache"
	"authorsite-backend/pkg/jwt"

	"authorsite-backend/internal/domains/book"
	bookHandler "authorsite-backend/internal/domains/book/handler"
	bookRepo "authorsite-backend/internal/domains/book/repository"
	bookService "authorsite-backend/internal/domains/book/service"

	"authorsite-backend/internal/domains/faq"
	faqHandler "authorsite-backend/internal/domains/faq/handler"
	faqRepo "authorsite-backend/internal/domains/faq/repository"
	faqService "authorsite-backend/internal/domains/faq/service"

	"authorsite-backend/internal/domains/extra"
	extraHandler "authorsite-backend/internal/domains/extra/handler"
	extraRepo "authorsite-backend/internal/domains/extra/repository"
	extraService "authorsite-backend/internal/domains/extra/service"

	"authorsite-backend/internal/domains/newsletter"
	newsletterHandler "authorsite-backend/internal/domains/newsletter/handler"
	newsletterRepo "authorsite-backend/internal/domains/newsletter/repository"
	newsletterService "authorsite-backend/internal/domains/newsletter/service"

	"authorsite-backend/internal/domains/contact"
	contactHandler "authorsite-backend/internal/domains/contact/handler"
	contactRepo "authorsite-backend/internal/domains/contact/repository"
	contactService "authorsite-backend/internal/domains/contact/service"

	"authorsite-backend/internal/domains/settings"
	settingsHandler "authorsite-backend/internal/domains/settings/handler"
	settingsRepo "authorsite-backend/internal/domains/settings/repository"
	settingsService "authorsite-backend/internal/domains/settings/service"

	"authorsite-backend/internal/domains/upload"
	uploadHandler "authorsite-backend/internal/domains/upload/handler"
	uploadService "authorsite-backend/internal/domains/upload/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application. It is the root
// of the dependency graph; everything in it is a singleton.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	Storage     *storage.MinIOStorage
	Processor   *storage.ImageProcessor
	JWTManager  *jwt.Manager
	AsynqClient *asynq.Client

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	BookRepo       book.Repository
	FaqRepo        faq.Repository
	ExtraRepo      extra.Repository
	NewsletterRepo newsletter.Repository
	ContactRepo    contact.Repository
	SettingsRepo   settings.Repository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	BookService       book.Service
	FaqService        faq.Service
	ExtraService      extra.Service
	NewsletterService newsletter.Service
	ContactService    contact.Service
	SettingsService   settings.Service
	UploadService     upload.Service

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	BookHandler       *bookHandler.BookHandler
	FaqHandler        *faqHandler.FaqHandler
	ExtraHandler      *extraHandler.ExtraHandler
	NewsletterHandler *newsletterHandler.NewsletterHandler
	ContactHandler    *contactHandler.ContactHandler
	SettingsHandler   *settingsHandler.SettingsHandler
	UploadHandler     *uploadHandler.UploadHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the whole dependency graph in order: config,
// infrastructure, repositories, services, handlers. A wrong order
// panics on a nil dependency, so keep the steps as they are.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Redis failure is non-critical: the cache layer degrades to
	// pass-through reads against Postgres.
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}
	c.Cache = redisCache

	// ========================================
	// STEP 4: INITIALIZE STORAGE
	// ========================================
	log.Println("🪣 Connecting to MinIO...")

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init minio storage: %w", err)
	}
	c.Storage = minioStorage
	c.Processor = storage.NewImageProcessor(cfg.Upload.MaxSizeBytes)
	log.Println("✅ MinIO connected")

	// ========================================
	// STEP 5: AUTH + TASK QUEUE
	// ========================================

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)
	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// ========================================
	// STEP 6: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")

	c.initRepositories()
	log.Println("✅ Repositories initialized")

	// Seed the settings singleton so login works on a fresh database.
	if err := c.seedSettings(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to seed settings: %w", err)
	}

	// ========================================
	// STEP 7: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")

	c.initServices()
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 8: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")

	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.BookRepo = bookRepo.NewPostgresRepository(pool)
	c.FaqRepo = faqRepo.NewPostgresRepository(pool)
	c.ExtraRepo = extraRepo.NewPostgresRepository(pool)
	c.NewsletterRepo = newsletterRepo.NewPostgresNewsletterRepository(pool)
	c.ContactRepo = contactRepo.NewPostgresContactRepository(pool)
	c.SettingsRepo = settingsRepo.NewPostgresSettingsRepository(pool)
}

func (c *Container) initServices() {
	c.BookService = bookService.NewBookService(c.BookRepo, c.Cache, c.Config.Site.AuthorName)
	c.FaqService = faqService.NewFaqService(c.FaqRepo)
	c.ExtraService = extraService.NewExtraService(c.ExtraRepo)
	c.NewsletterService = newsletterService.NewNewsletterService(c.NewsletterRepo, c.AsynqClient)
	c.ContactService = contactService.NewContactService(c.ContactRepo, c.AsynqClient)
	c.SettingsService = settingsService.NewSettingsService(c.SettingsRepo, c.Cache, c.JWTManager)
	c.UploadService = uploadService.NewUploadService(c.Storage, c.Processor)
}

func (c *Container) initHandlers() {
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.FaqHandler = faqHandler.NewFaqHandler(c.FaqService)
	c.ExtraHandler = extraHandler.NewExtraHandler(c.ExtraService)
	c.NewsletterHandler = newsletterHandler.NewNewsletterHandler(c.NewsletterService)
	c.ContactHandler = contactHandler.NewContactHandler(c.ContactService)
	c.SettingsHandler = settingsHandler.NewSettingsHandler(c.SettingsService)
	c.UploadHandler = uploadHandler.NewUploadHandler(c.UploadService, c.Config.Upload.MaxSizeBytes)
}

// seedSettings makes sure the singleton row exists with the configured
// defaults. The migration seeds it too; this covers databases created
// before that seed existed.
func (c *Container) seedSettings(ctx context.Context) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(c.Config.Site.DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default password: %w", err)
	}

	return c.SettingsRepo.EnsureDefaults(ctx, &settings.Settings{
		PasswordHash: string(hash),
		AuthorName:   c.Config.Site.AuthorName,
		AuthorEmail:  c.Config.Site.AdminEmail,
		SocialLinks:  map[string]string{},
		HeroTitle:    c.Config.Site.AuthorName,
	})
}

// ========================================
// HELPER METHODS
// ========================================

// Cleanup releases resources on shutdown. Called from the server's
// graceful shutdown path.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			log.Printf("⚠️  Failed to close asynq client: %v", err)
		}
	}

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("✅ Database connections closed")
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close Redis: %v", err)
			} else {
				log.Println("✅ Redis connections closed")
			}
		}
	}

	log.Println("✅ Container cleanup completed")
}
