package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Change actions published on the feed
const (
	ActionCreated     = "created"
	ActionUpdated     = "updated"
	ActionAssignment  = "assignment"
	ActionStage       = "stage"
	ActionDeliverable = "deliverable"
	ActionTimeLog     = "time_log"
)

// EventChange is the payload sent to subscribers whenever an event is written
type EventChange struct {
	EventID    string    `json:"event_id"`
	Version    int64     `json:"version"`
	Stage      string    `json:"stage"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RedisPublisher publishes event changes on a Redis pub/sub channel
type RedisPublisher struct {
	client  redis.UniversalClient
	channel string
	now     func() time.Time
}

// NewRedisPublisher creates a publisher for channel
func NewRedisPublisher(client redis.UniversalClient, channel string) *RedisPublisher {
	return &RedisPublisher{
		client:  client,
		channel: channel,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Connect parses a redis:// URL and checks the server responds
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// PublishEventChanged sends change to the channel
func (p *RedisPublisher) PublishEventChanged(ctx context.Context, change EventChange) error {
	if change.OccurredAt.IsZero() {
		change.OccurredAt = p.now()
	}

	payload, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("marshal event change: %w", err)
	}

	if err := p.client.Publish(ctx, p.channel, string(payload)).Err(); err != nil {
		return fmt.Errorf("publish event change: %w", err)
	}
	return nil
}

// NopPublisher drops every change; used when Redis is not configured
type NopPublisher struct{}

// PublishEventChanged does nothing
func (NopPublisher) PublishEventChanged(context.Context, EventChange) error {
	return nil
}
