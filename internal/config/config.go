package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Keys     APIKeys
	Admin    AdminConfig
	Ai       AIConfig
	Vector   VectorConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type APIKeys struct {
	OpenAI           string
	TelegramBotToken string
	YandexMetrikaID  string
	GAMeasurementID  string
	EventTopic       string // Audit event topic
}

type AdminConfig struct {
	Email     string
	Password  string
	JWTSecret string
}

type AIConfig struct {
	WebhookURL        string // Conversational-AI workflow endpoint
	SummaryModel      string // e.g. "gpt-4o-mini"
	TokensPerMessage  int    // Rough token cost per stored message
	SummaryRateLimit  int    // AI-cost requests per window per IP
	SummaryRateWindow int    // Window in minutes
}

type VectorConfig struct {
	URL        string
	APIKey     string
	Collection string
	ChunkSize  int // Target characters per uploaded chunk
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "ChatDesk"),
		},
		Keys: APIKeys{
			OpenAI:           getEnv("OPENAI_API_KEY", ""),
			TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
			YandexMetrikaID:  getEnv("YANDEX_METRIKA_ID", ""),
			GAMeasurementID:  getEnv("GA_MEASUREMENT_ID", ""),
			EventTopic:       getEnv("AUDIT_EVENT_TOPIC_NAME", "AUDIT_EVENTS"),
		},
		Admin: AdminConfig{
			Email:     getEnv("ADMIN_EMAIL", ""),
			Password:  getEnv("ADMIN_PASSWORD", ""),
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
		Ai: AIConfig{
			WebhookURL:        getEnv("AI_WEBHOOK_URL", ""),
			SummaryModel:      getEnv("SUMMARY_MODEL", "gpt-4o-mini"),
			TokensPerMessage:  getEnvAsInt("AI_TOKENS_PER_MESSAGE", 2315),
			SummaryRateLimit:  getEnvAsInt("AI_RATE_LIMIT", 10),
			SummaryRateWindow: getEnvAsInt("AI_RATE_WINDOW_MINUTES", 60),
		},
		Vector: VectorConfig{
			URL:        getEnv("QDRANT_URL", ""),
			APIKey:     getEnv("QDRANT_API_KEY", ""),
			Collection: getEnv("QDRANT_COLLECTION", "knowledge"),
			ChunkSize:  getEnvAsInt("KNOWLEDGE_CHUNK_SIZE", 500),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
