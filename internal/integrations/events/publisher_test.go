package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func testAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              7,
		ProviderID:      3,
		ServiceID:       2,
		ClientName:      "Alice",
		ClientEmail:     "alice@example.com",
		AppointmentDate: "2024-01-15",
		StartTime:       "10:00",
		EndTime:         "11:00",
		Status:          domain.StatusPending,
	}
}

func header(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := NewPublisherWithWriter(w, logger.NewNop())

	err := p.Publish(context.Background(), Event{
		Type:        AppointmentCreated,
		Appointment: testAppointment(),
		OccurredAt:  time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "3", string(msg.Key))
	assert.Equal(t, "appointment.created", header(msg, "event_type"))
	assert.NotEmpty(t, header(msg, "event_id"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, "appointment.created", body["eventType"])
	assert.Equal(t, float64(7), body["appointmentId"])
	assert.Equal(t, "2024-01-15", body["appointmentDate"])
	assert.Equal(t, "10:00", body["startTime"])
	assert.Equal(t, "pending", body["status"])
}

func TestKafkaPublisher_Errors(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	p := NewPublisherWithWriter(w, logger.NewNop())

	err := p.Publish(context.Background(), Event{Type: AppointmentDeleted})
	assert.ErrorIs(t, err, ErrInvalidEvent)

	err = p.Publish(context.Background(), Event{Type: AppointmentDeleted, Appointment: testAppointment()})
	assert.ErrorIs(t, err, ErrPublish)
}

func TestHeaderCarrier_SetOverwrites(t *testing.T) {
	c := &headerCarrier{}
	c.Set("traceparent", "a")
	c.Set("traceparent", "b")

	assert.Equal(t, "b", c.Get("traceparent"))
	assert.Equal(t, []string{"traceparent"}, c.Keys())
	assert.Equal(t, "", c.Get("missing"))
}

func TestSplitBrokers(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, SplitBrokers(" a:9092, ,b:9092 "))
	assert.Nil(t, SplitBrokers(""))
}

func TestNopPublisher(t *testing.T) {
	var p NopPublisher
	assert.NoError(t, p.Publish(context.Background(), Event{}))
	assert.NoError(t, p.Close())
}

func TestNewKafkaPublisher_WriterSettings(t *testing.T) {
	p, err := NewKafkaPublisher("kafka-1:9092, kafka-2:9092", "", logger.NewNop())
	require.NoError(t, err)
	defer p.Close()

	w, ok := p.writer.(*kafka.Writer)
	require.True(t, ok)
	assert.Equal(t, DefaultTopic, w.Topic)
	assert.Equal(t, DefaultBatchTimeout, w.BatchTimeout)
	assert.Less(t, w.BatchTimeout, time.Second)
	assert.Equal(t, "kafka-1:9092,kafka-2:9092", w.Addr.String())
	assert.IsType(t, &kafka.Hash{}, w.Balancer)

	_, err = NewKafkaPublisher(" , ", "appointments", logger.NewNop())
	assert.ErrorIs(t, err, ErrPublish)
}
