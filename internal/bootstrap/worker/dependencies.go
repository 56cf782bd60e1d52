package worker

import (
	"log"

	"anti-fraud-system/config"
	"anti-fraud-system/internal/fraud"
	"anti-fraud-system/internal/kafka"
	"anti-fraud-system/internal/models"
	"anti-fraud-system/internal/redis"
	"anti-fraud-system/internal/services"
	"anti-fraud-system/internal/storage"
	"anti-fraud-system/internal/storage/sqlite"
)

// Dependencies содержит все зависимости для anti-fraud worker
type Dependencies struct {
	StorageConn    *sqlite.SQLiteStorage
	StorageRepo    storage.InvoiceRepository
	KafkaProducer  kafka.Producer
	KafkaConsumer  kafka.Consumer
	RedisClient    *redis.Client
	InvoiceService services.InvoiceService
}

// InitializeDependencies инициализирует все зависимости для anti-fraud worker
func InitializeDependencies(cfg *config.Config) (*Dependencies, error) {
	// Инициализация SQLite
	storageConn, err := sqlite.NewConnection(cfg)
	if err != nil {
		return nil, err
	}

	storageRepo := sqlite.NewRepository(storageConn)

	// Инициализация Kafka Producer для публикации результатов
	log.Println("Connecting to Kafka...")
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, err
	}
	log.Println("Kafka producer connected successfully")

	// Инициализация Redis. Недоступный Redis не блокирует запуск
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

	// Инициализация детектора и сервиса обработки инвойсов
	detector := fraud.NewFraudDetector(storageRepo, &cfg.Fraud)
	invoiceService := services.NewInvoiceService(storageRepo, detector, producer, cache)

	// Настройка обработчика Kafka событий
	handler := func(event *models.PendingInvoiceEvent) error {
		return processPendingInvoice(event, invoiceService)
	}

	// Инициализация Kafka Consumer
	consumer, err := kafka.NewConsumer(cfg, handler)
	if err != nil {
		return nil, err
	}
	log.Println("Kafka consumer connected successfully")

	return &Dependencies{
		StorageConn:    storageConn,
		StorageRepo:    storageRepo,
		KafkaProducer:  producer,
		KafkaConsumer:  consumer,
		RedisClient:    redisClient,
		InvoiceService: invoiceService,
	}, nil
}

// Close закрывает все соединения
func (d *Dependencies) Close() error {
	if d.KafkaConsumer != nil {
		if err := d.KafkaConsumer.Close(); err != nil {
			return err
		}
	}
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
