package service

import (
	"context"
	"encoding/json"
	"time"

	"whatsapp-crm-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

// Notification is the message published when an assignment or appointment
// event needs to reach an employee. Address is the employee's phone number;
// downstream workers render and send the actual WhatsApp message.
type Notification struct {
	ID        string          `json:"id"`
	TenantID  uuid.UUID       `json:"tenant_id"`
	Event     string          `json:"event"`
	Address   string          `json:"address"`
	Body      string          `json:"body"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Notification event names, used as routing keys on the topic exchange.
const (
	EventLeadAssigned         = "lead.assigned"
	EventAppointmentBooked    = "appointment.booked"
	EventAppointmentMoved     = "appointment.rescheduled"
	EventAppointmentCancelled = "appointment.cancelled"
)

// NotifierInterface defines the interface for the notification publisher
type NotifierInterface interface {
	Publish(ctx context.Context, notification *Notification) error
	Close() error
}

// Notifier publishes notifications to a RabbitMQ topic exchange
type Notifier struct {
	conn     *amqp091.Connection
	exchange string
	log      *logger.Logger
}

// NewNotifier connects to RabbitMQ and declares the notification exchange
func NewNotifier(url, exchange string, log *logger.Logger) (*Notifier, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, err
	}

	return &Notifier{
		conn:     conn,
		exchange: exchange,
		log:      log,
	}, nil
}

// Publish sends a notification using its event name as the routing key
func (n *Notifier) Publish(ctx context.Context, notification *Notification) error {
	ch, err := n.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}

	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(
		ctx, n.exchange, notification.Event, false, false,
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    notification.ID,
			Timestamp:    notification.CreatedAt,
			Body:         body,
		},
	)
	if err == nil {
		n.log.WithField("event", notification.Event).Debug("Notification published")
	}
	return err
}

// Close closes the underlying connection
func (n *Notifier) Close() error {
	return n.conn.Close()
}
