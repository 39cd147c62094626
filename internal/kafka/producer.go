package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Gunvolt24/tma_shop/internal/domain"
	"github.com/Gunvolt24/tma_shop/internal/ports"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Producer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.CartEventPublisher = (*Producer)(nil)

// writer — минимальный контракт над kafka.Writer,
// чтобы легко подменять его моками в тестах.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer — публикация событий корзины в топик Kafka.
type Producer struct {
	writer    writer
	topic     string
	timeout   time.Duration
	log       ports.Logger
	closeOnce sync.Once
}

const defaultPublishTimeout = 5 * time.Second

// NewProducer — конструктор. Соединение с брокером ленивое: ошибки всплывут при первой записи.
func NewProducer(cfg *ProducerConfig, log ports.Logger) *Producer {
	return &Producer{
		writer:  cfg.newWriter(),
		topic:   cfg.Topic,
		timeout: cfg.WriteTimeout,
		log:     log,
	}
}

// Publish — событие как JSON; ключ — id корзины, заголовки — action и request_id.
// Запись не зависит от отмены ctx запроса и ограничена WriteTimeout:
// недоступный брокер задерживает ответ не дольше этого времени.
func (p *Producer) Publish(ctx context.Context, event domain.CartEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal cart event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.CartID),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "action", Value: []byte(event.Action)},
		},
	}
	if event.RequestID != "" {
		msg.Headers = append(msg.Headers, kafka.Header{Key: "request_id", Value: []byte(event.RequestID)})
	}

	timeout := p.timeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	if err := p.writer.WriteMessages(wctx, msg); err != nil {
		return fmt.Errorf("write cart event topic=%s: %w", p.topic, err)
	}
	return nil
}

// Close — дописывает буфер и закрывает writer. Вызывается при остановке приложения.
func (p *Producer) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
		if retErr == nil {
			p.log.Infof(context.Background(), "kafka producer closed topic=%s", p.topic)
		}
	})
	return retErr
}
