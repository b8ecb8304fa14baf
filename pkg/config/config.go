package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	JWTSecret         string
	DatabaseHost      string
	DatabasePort      string
	DatabaseUser      string
	DatabasePassword  string
	DatabaseName      string
	SchedulerInterval time.Duration

	GoogleProjectID   string
	GoogleCredentials string
	PubSubTopic       string

	FirebaseCredentials string

	MailSenderName    string
	MailSenderAddress string
	MailClientID      string
	MailClientSecret  string
	MailRefreshToken  string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	interval := 1 * time.Minute
	if raw := os.Getenv("SCHEDULER_INTERVAL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			interval = parsed
		}
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		JWTSecret:         getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		DatabaseHost:      getEnv("DB_HOST", "localhost"),
		DatabasePort:      getEnv("DB_PORT", "5432"),
		DatabaseUser:      getEnv("DB_USER", "postgres"),
		DatabasePassword:  getEnv("DB_PASSWORD", "postgres"),
		DatabaseName:      getEnv("DB_NAME", "reengage"),
		SchedulerInterval: interval,

		GoogleProjectID:   getEnv("GOOGLE_PROJECT_ID", ""),
		GoogleCredentials: getEnv("GOOGLE_CREDENTIALS", ""),
		PubSubTopic:       getEnv("PUBSUB_TOPIC", "completion-events"),

		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),

		MailSenderName:    getEnv("MAIL_SENDER_NAME", "Re-engagement"),
		MailSenderAddress: getEnv("MAIL_SENDER_ADDRESS", ""),
		MailClientID:      getEnv("MAIL_CLIENT_ID", ""),
		MailClientSecret:  getEnv("MAIL_CLIENT_SECRET", ""),
		MailRefreshToken:  getEnv("MAIL_REFRESH_TOKEN", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
