package bootstrap

import (
	"log"
	"time"

	"chatdesk-be/internal/config"
	"chatdesk-be/internal/controller"
	"chatdesk-be/internal/pkg/logger"
	"chatdesk-be/internal/pkg/mailer"
	"chatdesk-be/internal/pkg/serverutils"
	"chatdesk-be/internal/repository/unitofwork"
	"chatdesk-be/internal/service"
	"chatdesk-be/pkg/aiwebhook"
	"chatdesk-be/pkg/llm"
	llmopenai "chatdesk-be/pkg/llm/openai"
	pkgnats "chatdesk-be/pkg/nats"
	"chatdesk-be/pkg/vectorstore"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	HealthController       controller.IHealthController
	AuthController         controller.IAuthController
	DashboardController    controller.IDashboardController
	ConversationController controller.IConversationController
	ChatController         controller.IChatController
	SettingsController     controller.ISettingsController
	KnowledgeController    controller.IKnowledgeController
	CustomerController     controller.ICustomerController
	BillingController      controller.IBillingController
	FreeZoneController     controller.IFreeZoneController
	TelegramController     controller.ITelegramController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Facades
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	var natsPub *pkgnats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pkgnats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// 3. External clients
	var llmProvider llm.Provider
	if cfg.Keys.OpenAI != "" {
		provider, err := llmopenai.NewProvider(cfg.Keys.OpenAI, cfg.Ai.SummaryModel)
		if err != nil {
			log.Printf("[WARN] Failed to initialize LLM provider: %v", err)
		} else {
			llmProvider = provider
		}
	} else {
		log.Println("[WARN] OPENAI_API_KEY not set, summary generation disabled")
	}

	var vectorClient *vectorstore.Client
	if cfg.Vector.URL != "" {
		vectorClient = vectorstore.NewClient(cfg.Vector.URL, cfg.Vector.APIKey, cfg.Vector.Collection)
	} else {
		log.Println("[WARN] QDRANT_URL not set, knowledge endpoints disabled")
	}

	var bot *tgbotapi.BotAPI
	if cfg.Keys.TelegramBotToken != "" {
		var err error
		bot, err = tgbotapi.NewBotAPI(cfg.Keys.TelegramBotToken)
		if err != nil {
			log.Printf("[WARN] Failed to initialize Telegram bot: %v", err)
			bot = nil
		}
	} else {
		log.Println("[WARN] TELEGRAM_BOT_TOKEN not set, Telegram integration disabled")
	}

	webhookClient := aiwebhook.NewClient()

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Keys.EventTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Keys.EventTopic, uowFactory, natsPub)

	authService := service.NewAuthService(uowFactory, cfg, publisherService)
	dashboardService := service.NewDashboardService(uowFactory, cfg)
	conversationService := service.NewConversationService(uowFactory, llmProvider, cfg, publisherService)
	chatService := service.NewChatService(uowFactory, webhookClient, cfg)
	settingsService := service.NewSettingsService(uowFactory, cfg)
	knowledgeService := service.NewKnowledgeService(vectorClient, cfg, publisherService)
	customerService := service.NewCustomerService(uowFactory, publisherService)
	billingService := service.NewBillingService(uowFactory, emailService, publisherService)
	freeZoneService := service.NewFreeZoneService(uowFactory)
	telegramService := service.NewTelegramService(bot, conversationService)

	// 5. Middleware
	jwtMw := serverutils.NewJwtMiddleware(cfg.Admin.JWTSecret)
	aiLimit := serverutils.AiRateLimit(cfg.Ai.SummaryRateLimit, time.Duration(cfg.Ai.SummaryRateWindow)*time.Minute)
	exportLimit := serverutils.ExportRateLimit()
	webhookLimit := serverutils.WebhookRateLimit()

	return &Container{
		HealthController:       controller.NewHealthController(db),
		AuthController:         controller.NewAuthController(authService, jwtMw),
		DashboardController:    controller.NewDashboardController(dashboardService, sysLogger, jwtMw),
		ConversationController: controller.NewConversationController(conversationService, jwtMw, aiLimit),
		ChatController:         controller.NewChatController(chatService, aiLimit),
		SettingsController:     controller.NewSettingsController(settingsService, jwtMw),
		KnowledgeController:    controller.NewKnowledgeController(knowledgeService, jwtMw, exportLimit),
		CustomerController:     controller.NewCustomerController(customerService, jwtMw),
		BillingController:      controller.NewBillingController(billingService, jwtMw),
		FreeZoneController:     controller.NewFreeZoneController(freeZoneService, jwtMw),
		TelegramController:     controller.NewTelegramController(telegramService, jwtMw, webhookLimit),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
