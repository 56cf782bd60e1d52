package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DB     DBConfig
	Redis  RedisConfig
	Kafka  KafkaConfig
	Server ServerConfig
	Fraud  FraudConfig
}

type DBConfig struct {
	DBPath string // Путь к файлу SQLite
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type KafkaConfig struct {
	Brokers         []string
	ResultTopic     string
	PendingTopic    string
	ConsumerGroupID string
}

type ServerConfig struct {
	Port       int
	WorkerPort int
}

// FraudConfig содержит пороги fraud-правил. Все значения обязательны:
// отсутствующий порог — фатальная ошибка конфигурации, значений
// по умолчанию нет.
type FraudConfig struct {
	SuspiciousVariationPercentage float64
	InvoicesHistoryCount          int
	SuspiciousInvoicesCount       int
	SuspiciousTimeframeHours      float64
}

func Load() (*Config, error) {
	// Загружаем .env файл, если он существует
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	fraud, err := loadFraudConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		DB: DBConfig{
			DBPath: getEnv("DB_PATH", "./data/anti_fraud.db"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Kafka: KafkaConfig{
			Brokers:         []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			ResultTopic:     getEnv("KAFKA_RESULT_TOPIC", "transaction_results"),
			PendingTopic:    getEnv("KAFKA_PENDING_TOPIC", "pending_transactions"),
			ConsumerGroupID: getEnv("KAFKA_CONSUMER_GROUP", "anti-fraud-group"),
		},
		Server: ServerConfig{
			Port:       getEnvAsInt("SERVER_PORT", 8080),
			WorkerPort: getEnvAsInt("WORKER_PORT", 8081),
		},
		Fraud: *fraud,
	}, nil
}

// loadFraudConfig читает обязательные пороги fraud-правил
func loadFraudConfig() (*FraudConfig, error) {
	variation, err := getRequiredFloat("SUSPICIOUS_VARIATION_PERCENTAGE")
	if err != nil {
		return nil, err
	}

	historyCount, err := getRequiredInt("INVOICES_HISTORY_COUNT")
	if err != nil {
		return nil, err
	}
	if historyCount <= 0 {
		return nil, fmt.Errorf("INVOICES_HISTORY_COUNT must be positive, got %d", historyCount)
	}

	invoicesCount, err := getRequiredInt("SUSPICIOUS_INVOICES_COUNT")
	if err != nil {
		return nil, err
	}
	if invoicesCount < 0 {
		return nil, fmt.Errorf("SUSPICIOUS_INVOICES_COUNT must not be negative, got %d", invoicesCount)
	}

	timeframe, err := getRequiredFloat("SUSPICIOUS_TIMEFRAME_HOURS")
	if err != nil {
		return nil, err
	}
	if timeframe <= 0 {
		return nil, fmt.Errorf("SUSPICIOUS_TIMEFRAME_HOURS must be positive, got %v", timeframe)
	}

	return &FraudConfig{
		SuspiciousVariationPercentage: variation,
		InvoicesHistoryCount:          historyCount,
		SuspiciousInvoicesCount:       invoicesCount,
		SuspiciousTimeframeHours:      timeframe,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getRequiredFloat(key string) (float64, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return 0, fmt.Errorf("required configuration %s is not set", key)
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("configuration %s is not a number: %w", key, err)
	}
	return value, nil
}

func getRequiredInt(key string) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return 0, fmt.Errorf("required configuration %s is not set", key)
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("configuration %s is not an integer: %w", key, err)
	}
	return value, nil
}
