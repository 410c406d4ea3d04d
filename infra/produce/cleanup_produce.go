package produce

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	CleanupQueue      = "storage.cleanup"
	CleanupExchange   = "storage.exchange"
	CleanupRoutingKey = "storage.cleanup"
)

// OrphanedBlobMessage describes a blob that could not be removed when its
// image row was deleted. A separate reaper consumes these and retries the
// removal.
type OrphanedBlobMessage struct {
	Bucket    string `json:"bucket"`
	Path      string `json:"path"`
	ImageID   uint   `json:"image_id"`
	Reason    string `json:"reason"`
	Timestamp int64  `json:"timestamp"`
}

// CleanupService publishes orphaned-blob events for out-of-band cleanup.
type CleanupService struct {
	channel *amqp.Channel
}

func InitCleanupService(channel *amqp.Channel) *CleanupService {
	service := &CleanupService{
		channel: channel,
	}

	err := channel.ExchangeDeclare(
		CleanupExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to declare Cleanup exchange: " + err.Error())
	}

	_, err = channel.QueueDeclare(
		CleanupQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		panic("Failed to declare Cleanup queue: " + err.Error())
	}

	err = channel.QueueBind(
		CleanupQueue,
		CleanupRoutingKey,
		CleanupExchange,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to bind Cleanup queue: " + err.Error())
	}

	return service
}

// PublishOrphanedBlob publishes a cleanup event. Fire-and-forget: callers
// treat failures the same way as the blob removal failure itself.
func (s *CleanupService) PublishOrphanedBlob(ctx context.Context, msg OrphanedBlobMessage) error {
	msg.Timestamp = time.Now().Unix()

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return s.channel.PublishWithContext(
		ctx,
		CleanupExchange,
		CleanupRoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
}
