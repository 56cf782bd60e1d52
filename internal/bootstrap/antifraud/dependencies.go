package antifraud

import (
	"log"

	"anti-fraud-system/config"
	"anti-fraud-system/internal/fraud"
	"anti-fraud-system/internal/kafka"
	"anti-fraud-system/internal/redis"
	"anti-fraud-system/internal/services"
	"anti-fraud-system/internal/storage"
	"anti-fraud-system/internal/storage/sqlite"
)

// Dependencies содержит все зависимости для anti-fraud service
type Dependencies struct {
	StorageConn    *sqlite.SQLiteStorage
	StorageRepo    storage.InvoiceRepository
	KafkaProducer  kafka.Producer
	RedisClient    *redis.Client
	FraudDetector  *fraud.FraudDetector
	InvoiceService services.InvoiceService
}

// InitializeDependencies инициализирует все зависимости для anti-fraud service
func InitializeDependencies(cfg *config.Config) (*Dependencies, error) {
	// Инициализация SQLite
	storageConn, err := sqlite.NewConnection(cfg)
	if err != nil {
		return nil, err
	}

	storageRepo := sqlite.NewRepository(storageConn)

	// Инициализация Kafka Producer
	log.Println("Connecting to Kafka...")
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, err
	}
	log.Println("Kafka producer connected successfully")

	// Инициализация Redis. Недоступный Redis не блокирует запуск:
	// сервис продолжает работать без кэша результатов
	log.Println("Connecting to Redis...")
	var cache redis.ClientInterface
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (detection cache disabled): %v", err)
		redisClient = nil
	} else {
		log.Println("Redis connection established")
		cache = redisClient
	}

	// Инициализация детектора мошенничества
	detector := fraud.NewFraudDetector(storageRepo, &cfg.Fraud)

	// Создаем сервис обработки инвойсов
	invoiceService := services.NewInvoiceService(storageRepo, detector, producer, cache)

	return &Dependencies{
		StorageConn:    storageConn,
		StorageRepo:    storageRepo,
		KafkaProducer:  producer,
		RedisClient:    redisClient,
		FraudDetector:  detector,
		InvoiceService: invoiceService,
	}, nil
}

// Close закрывает все соединения
func (d *Dependencies) Close() error {
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			return err
		}
	}
	if d.RedisClient != nil {
		if err := d.RedisClient.Close(); err != nil {
			return err
		}
	}
	if d.StorageConn != nil {
		if err := d.StorageConn.Close(); err != nil {
			return err
		}
	}
	return nil
}
