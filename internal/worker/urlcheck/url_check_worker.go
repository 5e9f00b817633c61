package urlcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/veggieplaces-microservice/internal/domain"
	"github.com/veggieplaces-microservice/internal/domain/repository"
	"github.com/veggieplaces-microservice/internal/worker"
	"go.uber.org/zap"
)

const (
	maxBatchSize    = 20                     // максимум сообщений за раз
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
)

// URLCheckWorker обрабатывает запросы на проверку доступности URL.
// Вердикты сохраняются в кеш, чтобы проверка качества не дёргала сайты
// чаще, чем раз в TTL (28 дней по умолчанию).
type URLCheckWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	cacheRepo    repository.CacheRepository
	urlCheckRepo repository.URLCheckRepository
	consumerName string
	verdictTTL   time.Duration
}

// NewURLCheckWorker создает новый URLCheckWorker
func NewURLCheckWorker(
	streamRepo repository.StreamRepository,
	cacheRepo repository.CacheRepository,
	urlCheckRepo repository.URLCheckRepository,
	consumerGroup string,
	verdictTTL time.Duration,
	logger *zap.Logger,
) *URLCheckWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &URLCheckWorker{
		BaseWorker:   worker.NewBaseWorker("url-check", consumerGroup, logger),
		streamRepo:   streamRepo,
		cacheRepo:    cacheRepo,
		urlCheckRepo: urlCheckRepo,
		consumerName: consumerName,
		verdictTTL:   verdictTTL,
	}
}

// Start запускает воркер
func (w *URLCheckWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting URLCheckWorker (batch mode)",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", maxBatchSize))

	// Создаем consumer group
	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamURLCheckRequest, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	// Основной цикл обработки
	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second) // пауза при ошибке
				continue
			}

			// Если ничего не обработали - короткая пауза
			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch читает и обрабатывает batch сообщений.
// Возвращает количество обработанных сообщений.
func (w *URLCheckWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamURLCheckRequest,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil // очередь пуста
	}

	logger.Info("Processing batch", zap.Int("message_count", len(messages)))

	for _, msg := range messages {
		event, err := ParseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK битое сообщение чтобы не застревало
			_ = w.streamRepo.AckMessage(ctx, domain.StreamURLCheckRequest, w.ConsumerGroup(), msg.ID)
			continue
		}

		w.checkAndStore(ctx, event)

		if err := w.streamRepo.AckMessage(ctx, domain.StreamURLCheckRequest, w.ConsumerGroup(), msg.ID); err != nil {
			logger.Error("Failed to ack message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
		}
	}

	return len(messages), nil
}

func (w *URLCheckWorker) checkAndStore(ctx context.Context, event *domain.URLCheckEvent) {
	logger := w.Logger()

	// URL мог быть проверен другим консьюмером, пока сообщение ждало в очереди
	existing, err := w.cacheRepo.GetURLVerdict(ctx, event.URL)
	if err == nil && existing != nil {
		logger.Debug("URL already checked, skipping", zap.String("url", event.URL))
		return
	}

	verdict := w.urlCheckRepo.Check(ctx, event.URL)

	if err := w.cacheRepo.SetURLVerdict(ctx, verdict, w.verdictTTL); err != nil {
		logger.Error("Failed to store URL verdict",
			zap.String("url", event.URL),
			zap.Error(err))
		return
	}

	logger.Info("URL checked",
		zap.String("url", event.URL),
		zap.Bool("ok", verdict.OK),
		zap.String("text", verdict.Text))
}

// ParseMessage разбирает событие проверки URL из сообщения стрима.
func ParseMessage(msg domain.StreamMessage) (*domain.URLCheckEvent, error) {
	var event domain.URLCheckEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal url check event: %w", err)
	}
	if event.URL == "" {
		return nil, fmt.Errorf("url check event has empty url")
	}
	return &event, nil
}
