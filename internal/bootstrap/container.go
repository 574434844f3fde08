package bootstrap

import (
	"context"
	"log"
	"time"

	"catholic-discovery-be/internal/config"
	"catholic-discovery-be/internal/controller"
	"catholic-discovery-be/internal/pkg/logger"
	"catholic-discovery-be/internal/pkg/serverutils"
	"catholic-discovery-be/internal/repository/implementation"
	"catholic-discovery-be/internal/repository/memory"
	"catholic-discovery-be/internal/service"
	"catholic-discovery-be/pkg/discovery/conversation"
	"catholic-discovery-be/pkg/discovery/intent"
	"catholic-discovery-be/pkg/discovery/records"
	"catholic-discovery-be/pkg/llm"
	"catholic-discovery-be/pkg/llm/factory"

	pkgNats "catholic-discovery-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AssistantController controller.IAssistantController
	ResourceController  controller.IResourceController
	AdminController     controller.IAdminController

	// Middleware built from shared infrastructure
	RateLimit fiber.Handler
	JwtAuth   fiber.Handler

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. LLM provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}
	var eventPub service.EventPublisher
	if natsPub != nil {
		eventPub = natsPub
	}
	natsSub, err := pkgNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
		natsSub = nil
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// 5. Engine wiring
	resourceRepo := implementation.NewResourceRepository(db)
	recordSource := implementation.NewRecordSource(resourceRepo)
	recordCache := records.NewCache(recordSource, cfg.Engine.CacheTTL, sysLogger)

	llmTimeout := llm.WithTimeout(cfg.Ai.TimeoutSeconds)
	classifier := intent.NewClassifier(llmProvider, sysLogger, llmTimeout)
	convManager := conversation.NewManager(memory.NewConversationRepository())

	// 6. Services
	publisherService := service.NewPublisherService(cfg.Engine.SubmitTopicName, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Engine.SubmitTopicName, recordCache, natsSub, sysLogger)

	// Cross-instance invalidation worker
	if natsSub != nil {
		go consumerService.Start()
	}

	assistantService := service.NewAssistantService(
		llmProvider,
		classifier,
		recordCache,
		convManager,
		eventPub,
		sysLogger,
		llmTimeout,
	)
	resourceService := service.NewResourceService(resourceRepo, publisherService, eventPub, sysLogger)

	// 7. Rate limiting
	limiter := serverutils.NewRateLimiter(rdb)
	rateLimit := serverutils.RateLimitMiddleware(limiter, cfg.Engine.RateLimitPerMin, time.Minute)

	return &Container{
		AssistantController: controller.NewAssistantController(assistantService),
		ResourceController:  controller.NewResourceController(resourceService),
		AdminController:     controller.NewAdminController(assistantService),

		RateLimit: rateLimit,
		JwtAuth:   serverutils.NewJwtMiddleware(cfg.Keys.JWTSecret),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
