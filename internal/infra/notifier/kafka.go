package notifier

import (
	"context"
	"encoding/json"
	"strings"

	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/notification"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the subset of *kafka.Writer the gateway uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaGateway publishes events to the messaging service through Kafka.
// The appointment ID is the message key so events of one appointment stay ordered.
type KafkaGateway struct {
	writer      MessageWriter
	topicPrefix string
}

func NewKafkaWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

func NewKafkaGateway(writer MessageWriter, topicPrefix string) *KafkaGateway {
	return &KafkaGateway{writer: writer, topicPrefix: topicPrefix}
}

func (g *KafkaGateway) NotifyConfirmation(ctx context.Context, ev notification.Event) error {
	return g.publish(ctx, ev)
}

func (g *KafkaGateway) NotifyCancellation(ctx context.Context, ev notification.Event) error {
	return g.publish(ctx, ev)
}

func (g *KafkaGateway) NotifyReminder(ctx context.Context, ev notification.Event) error {
	return g.publish(ctx, ev)
}

func (g *KafkaGateway) Topic(ev notification.Event) string {
	if g.topicPrefix == "" {
		return ev.Kind.Topic()
	}
	return g.topicPrefix + "." + ev.Kind.Topic()
}

func (g *KafkaGateway) Close() error {
	return g.writer.Close()
}

func (g *KafkaGateway) publish(ctx context.Context, ev notification.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "encode event")
	}
	msg := kafka.Message{
		Topic: g.Topic(ev),
		Key:   []byte(ev.AppointmentID.String()),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(ev.EventID.String())},
			{Key: "event_type", Value: []byte(ev.Kind.Topic())},
		},
		Time: ev.OccurredAt,
	}
	if err := g.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrapf(err, "publish %s", msg.Topic)
	}
	return nil
}

// SplitBrokers parses a comma separated broker list, ignoring blanks.
func SplitBrokers(raw string) []string {
	var out []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
