package rabbitmq

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/streadway/amqp"
)

// Queue names for the token exchange. A token service publishes
// TokenCreatedEvent to the created queue; this service answers with a
// TokenProcessedEvent on the processed queue.
const (
	TokenCreatedQueue   = "token_created_queue"
	TokenProcessedQueue = "token_processed_queue"
)

// TokenCreatedEvent is the inbound token-exchange message.
type TokenCreatedEvent struct {
	DeviceID string `json:"deviceId"`
	Token    string `json:"token"`
}

// TokenProcessedEvent is the outbound answer to a TokenCreatedEvent.
type TokenProcessedEvent struct {
	DeviceID string `json:"deviceId"`
	Token    string `json:"token"`
}

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// NewClient connects to RabbitMQ, opens a channel and declares the token
// queues.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	for _, queue := range []string{TokenCreatedQueue, TokenProcessedQueue} {
		_, err = ch.QueueDeclare(
			queue, // name
			true,  // durable
			false, // delete when unused
			false, // exclusive
			false, // no-wait
			nil,   // arguments
		)
		if err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to declare %s: %w", queue, err)
		}
	}

	log.Println("RabbitMQ client connected, token queues declared.")

	return &Client{
		conn:    conn,
		channel: ch,
	}, nil
}

// Close closes the RabbitMQ connection and channel.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// PublishTokenProcessed publishes the answer event to the processed queue.
func (c *Client) PublishTokenProcessed(event TokenProcessedEvent) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal token event to JSON: %w", err)
	}

	err = c.channel.Publish(
		"",                  // exchange: default exchange
		TokenProcessedQueue, // routing key: the queue name
		false,               // mandatory
		false,               // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	log.Printf(" [x] Sent token processed event for device %s", event.DeviceID)
	return nil
}

// ConsumeTokenCreated registers a consumer on the created queue and hands
// each delivery to the handler in a background goroutine. A handler error
// nacks the message back onto the queue.
func (c *Client) ConsumeTokenCreated(messageHandler func(msg amqp.Delivery) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	msgs, err := c.channel.Consume(
		TokenCreatedQueue, // queue
		"",                // consumer tag
		false,             // auto-ack: manual acknowledgement
		false,             // exclusive
		false,             // no-local
		false,             // no-wait
		nil,               // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	log.Printf(" [*] Waiting for token events.")

	go func() {
		for msg := range msgs {
			if err := messageHandler(msg); err != nil {
				log.Printf("Error processing message %d: %v", msg.DeliveryTag, err)
				if requeueErr := msg.Nack(false, true); requeueErr != nil {
					log.Printf("Error nacking message %d: %v", msg.DeliveryTag, requeueErr)
				}
			} else {
				if ackErr := msg.Ack(false); ackErr != nil {
					log.Printf("Error acking message %d: %v", msg.DeliveryTag, ackErr)
				}
			}
		}
	}()

	return nil
}

// RelayTokenEvents answers every TokenCreatedEvent with a
// TokenProcessedEvent. Fire and forget: a failed publish is logged, not
// retried.
func (c *Client) RelayTokenEvents() error {
	return c.ConsumeTokenCreated(func(msg amqp.Delivery) error {
		var event TokenCreatedEvent
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			// Drop unreadable payloads; requeueing them would loop forever.
			log.Printf("Discarding malformed token event: %v", err)
			return nil
		}

		result := TokenProcessedEvent{
			DeviceID: event.DeviceID,
			Token:    event.Token,
		}
		if err := c.PublishTokenProcessed(result); err != nil {
			log.Printf("Failed to publish token processed event: %v", err)
		}
		return nil
	})
}
