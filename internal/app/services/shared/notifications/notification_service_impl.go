package notifications

import (
	"context"
	"referral-service/internal/pkg/constvars"
	"referral-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const publishTimeout = 5 * time.Second

// Dispatcher decouples request handling from the broker: Publish only
// enqueues, a single background goroutine owns the AMQP channel.
type Dispatcher struct {
	channel   *amqp.Channel
	queueName string
	log       *zap.Logger
	buffer    chan *NotificationMessage
	stop      chan struct{}
}

// NewNotificationService declares the durable notification queue and returns
// a dispatcher bound to it. Start must be called before messages flow.
func NewNotificationService(conn *amqp.Connection, queueName string, log *zap.Logger) (*Dispatcher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &Dispatcher{
		channel:   channel,
		queueName: queueName,
		log:       log,
		buffer:    make(chan *NotificationMessage, 256),
		stop:      make(chan struct{}),
	}, nil
}

// Start begins the dispatch loop. It returns a stop function that drains the
// buffer before returning.
func (s *Dispatcher) Start(ctx context.Context) (stop func()) {
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.stop:
				s.drain()
				return
			case message := <-s.buffer:
				if err := s.publish(message); err != nil {
					s.log.Error("notification publish failed",
						zap.String("type", message.Type),
						zap.Error(err),
					)
				}
			}
		}
	}()

	return func() {
		close(s.stop)
		<-stopped
	}
}

// Publish enqueues the message for the background loop. It never blocks a
// request; a full buffer is reported to the caller instead.
func (s *Dispatcher) Publish(_ context.Context, message *NotificationMessage) error {
	select {
	case s.buffer <- message:
		return nil
	default:
		return exceptions.ErrNotificationQueueFull(nil)
	}
}

func (s *Dispatcher) drain() {
	for {
		select {
		case message := <-s.buffer:
			if err := s.publish(message); err != nil {
				s.log.Error("notification publish failed during drain",
					zap.String("type", message.Type),
					zap.Error(err),
				)
			}
		default:
			return
		}
	}
}

func (s *Dispatcher) publish(message *NotificationMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err = s.channel.PublishWithContext(ctx,
		"",          // default exchange
		s.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	s.log.Info("notification published",
		zap.String("type", message.Type),
		zap.String("queue", s.queueName),
	)
	return nil
}
