package bootstrap

import (
	"log"

	"antrian-truk-be/internal/config"
	"antrian-truk-be/internal/controller"
	"antrian-truk-be/internal/pkg/logger"
	"antrian-truk-be/internal/pkg/serverutils"
	"antrian-truk-be/internal/pkg/tokenstore"
	"antrian-truk-be/internal/repository/unitofwork"
	"antrian-truk-be/internal/service"
	"antrian-truk-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	QueueController     controller.IQueueController
	CustomerController  controller.ICustomerController
	GateController      controller.IGateController
	AdminUserController controller.IAdminUserController
	AuthController      controller.IAuthController
	DashboardController controller.IDashboardController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	AuthMiddleware fiber.Handler
	Logger         logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	redisOpts, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Fatalf("[FATAL] Invalid REDIS_URL: %v", err)
	}
	redisClient := redis.NewClient(redisOpts)
	denylist := tokenstore.NewRedisTokenDenylist(redisClient)

	viewCache := cache.New(cfg.Cache.TTL, 2*cfg.Cache.TTL)

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, events.TopicQueueChanged)
	consumerService := service.NewConsumerService(pubSub, events.TopicQueueChanged, viewCache, sysLogger)

	queueService := service.NewQueueService(uowFactory, publisherService, viewCache, sysLogger)
	customerService := service.NewCustomerService(uowFactory)
	gateService := service.NewGateService(uowFactory)
	adminUserService := service.NewAdminUserService(uowFactory)
	authService := service.NewAuthService(uowFactory, denylist, cfg.Auth.JWTSecret, sysLogger)
	dashboardService := service.NewDashboardService(uowFactory, viewCache)
	exportService := service.NewExportService(queueService, gateService)

	// 5. Controllers
	return &Container{
		QueueController:     controller.NewQueueController(queueService, exportService),
		CustomerController:  controller.NewCustomerController(customerService, exportService),
		GateController:      controller.NewGateController(gateService, exportService),
		AdminUserController: controller.NewAdminUserController(adminUserService),
		AuthController:      controller.NewAuthController(authService),
		DashboardController: controller.NewDashboardController(dashboardService),
		ConsumerService:     consumerService,
		AuthMiddleware:      serverutils.JwtMiddleware(cfg.Auth.JWTSecret, denylist),
		Logger:              sysLogger,
	}
}
