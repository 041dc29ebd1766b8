package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	// DefaultTopic топик событий по умолчанию
	DefaultTopic = "appointments"

	// DefaultBatchTimeout время ожидания пачки; публикация синхронная и идет в пути запроса
	DefaultBatchTimeout = 10 * time.Millisecond
)

// KafkaPublisher публикует события о записях в Kafka
type KafkaPublisher struct {
	writer MessageWriter
	logger Logger
}

// NewKafkaPublisher создает publisher поверх kafka.Writer
func NewKafkaPublisher(brokers, topic string, logger Logger) (*KafkaPublisher, error) {
	addrs := SplitBrokers(brokers)
	if len(addrs) == 0 {
		return nil, fmt.Errorf("%w: no kafka brokers configured", ErrPublish)
	}
	if topic == "" {
		topic = DefaultTopic
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(addrs...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: DefaultBatchTimeout,
		RequiredAcks: kafka.RequireOne,
	}

	return NewPublisherWithWriter(writer, logger), nil
}

// NewPublisherWithWriter создает publisher с произвольным writer'ом
func NewPublisherWithWriter(writer MessageWriter, logger Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, logger: logger}
}

// Publish отправляет событие; ключ сообщения - id провайдера, чтобы события
// одного провайдера попадали в одну партицию
func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	if event.Appointment == nil {
		return ErrInvalidEvent
	}

	value, err := json.Marshal(newPayload(event))
	if err != nil {
		return fmt.Errorf("%w: marshal payload: %v", ErrPublish, err)
	}

	eventID := uuid.NewString()
	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.Appointment.ProviderID, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(eventID)},
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}
	msg.Headers = injectTraceHeaders(ctx, msg.Headers)

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	p.logger.Info("Events: published %s id=%s appointment=%d", event.Type, eventID, event.Appointment.ID)
	return nil
}

// Close закрывает writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher не публикует события
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

func (NopPublisher) Close() error { return nil }

// SplitBrokers разбирает список брокеров через запятую
func SplitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
