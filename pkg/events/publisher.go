package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	completiondomain "reengage-backend/internal/completion/domain"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
)

// CompletionChangedEvent is the payload published for every completion mark
// mutation. Downstream consumers (dependent-activity unlocking, reporting)
// subscribe to the configured topic.
type CompletionChangedEvent struct {
	MarkID         string    `json:"mark_id"`
	CourseModuleID string    `json:"course_module_id"`
	UserID         string    `json:"user_id"`
	State          string    `json:"state"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// Publisher publishes completion-changed events to Google Cloud Pub/Sub
type Publisher struct {
	client *pubsub.Client
	topic  *pubsub.Topic
}

// NewPublisher creates a Pub/Sub publisher for the given project and topic
func NewPublisher(ctx context.Context, projectID, topicName, credentialsFile string) (*Publisher, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create pubsub client: %v", err)
	}

	log.Printf("[PubSub] Publisher initialized for topic: %s", topicName)
	return &Publisher{
		client: client,
		topic:  client.Topic(topicName),
	}, nil
}

// CompletionChanged publishes one completion-changed event
func (p *Publisher) CompletionChanged(ctx context.Context, markID, courseModuleID, userID string, state completiondomain.State) error {
	event := CompletionChangedEvent{
		MarkID:         markID,
		CourseModuleID: courseModuleID,
		UserID:         userID,
		State:          string(state),
		OccurredAt:     time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal completion event: %w", err)
	}

	result := p.topic.Publish(ctx, &pubsub.Message{
		Data: data,
		Attributes: map[string]string{
			"event_type": "completion_changed",
		},
	})
	if _, err := result.Get(ctx); err != nil {
		return fmt.Errorf("failed to publish completion event: %w", err)
	}
	return nil
}

// Close flushes pending messages and releases the client
func (p *Publisher) Close() error {
	p.topic.Stop()
	return p.client.Close()
}
