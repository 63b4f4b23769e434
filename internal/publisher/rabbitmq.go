package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"subfeed/internal/domain"
)

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger.With("component", "publisher"),
	}, nil
}

// VideoMessage announces a newly synced video to downstream consumers.
type VideoMessage struct {
	Action    string       `json:"action"`
	Video     VideoPayload `json:"video"`
	Timestamp time.Time    `json:"timestamp"`
}

type VideoPayload struct {
	ID             string    `json:"id"`
	ChannelID      string    `json:"channel_id"`
	ChannelTitle   string    `json:"channel_title,omitempty"`
	Title          string    `json:"title"`
	Description    *string   `json:"description,omitempty"`
	PublishedAt    time.Time `json:"published_at"`
	PublishedExact bool      `json:"published_exact"`
	Duration       int       `json:"duration"`
	ViewCount      *int64    `json:"view_count,omitempty"`
	ThumbnailURL   string    `json:"thumbnail_url,omitempty"`
}

const actionNew = "new"

func newVideoMessage(item *domain.Item, now time.Time) VideoMessage {
	payload := VideoPayload{
		ID:             string(item.ID),
		ChannelID:      string(item.ChannelID),
		Title:          item.Title,
		Description:    item.Description,
		PublishedAt:    item.PublishedAt.UTC(),
		PublishedExact: item.PublishedExact,
		Duration:       item.Duration,
		ViewCount:      item.ViewCount,
		ThumbnailURL:   item.ThumbnailURL,
	}
	if item.Channel != nil {
		payload.ChannelTitle = item.Channel.Title
	}

	return VideoMessage{
		Action:    actionNew,
		Video:     payload,
		Timestamp: now.UTC(),
	}
}

func (r *RabbitMQ) Publish(ctx context.Context, item *domain.Item) error {
	now := time.Now()

	body, err := json.Marshal(newVideoMessage(item, now))
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    string(item.ID),
			Body:         body,
			Timestamp:    now,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published video",
		"video_id", item.ID,
		"channel_id", item.ChannelID,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
