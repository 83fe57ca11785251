// Package eventbus publishes domain events as JSON Watermill messages.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	wmnats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/attr"
	nc "github.com/nats-io/nats.go"
)

// Topics.
const (
	VoteCastTopic            = "suggestion.vote.cast"
	TeamMemberJoinedTopic    = "team.member.joined"
	EventRegistrationTopic   = "event.registration.created"
	RecruitmentReviewedTopic = "recruitment.application.reviewed"
	GuideReviewedTopic       = "guide.reviewed"
	AnnouncementCreatedTopic = "announcement.created"
	correlationIDMetadataKey = "correlation_id"
)

// VoteCast is published after a vote is recorded or switched.
type VoteCast struct {
	VoteID       int64  `json:"vote_id"`
	SuggestionID int64  `json:"suggestion_id"`
	UserID       int64  `json:"user_id"`
	VoteType     string `json:"vote_type"`
}

// TeamMemberJoined is published after a user joins a team.
type TeamMemberJoined struct {
	MembershipID int64 `json:"membership_id"`
	TeamID       int64 `json:"team_id"`
	UserID       int64 `json:"user_id"`
}

// EventRegistered is published after a user registers for an event.
type EventRegistered struct {
	RegistrationID int64 `json:"registration_id"`
	EventID        int64 `json:"event_id"`
	UserID         int64 `json:"user_id"`
	CharacterID    int64 `json:"character_id"`
}

// RecruitmentReviewed is published after an application is approved or rejected.
type RecruitmentReviewed struct {
	ApplicationID int64  `json:"application_id"`
	UserID        int64  `json:"user_id"`
	Status        string `json:"status"`
	ReviewedBy    int64  `json:"reviewed_by"`
}

// AnnouncementCreated is published after an announcement is posted.
type AnnouncementCreated struct {
	AnnouncementID int64  `json:"announcement_id"`
	Title          string `json:"title"`
	CreatedBy      int64  `json:"created_by"`
}

// GuideReviewed is published after a guide is approved or rejected.
type GuideReviewed struct {
	GuideID    int64  `json:"guide_id"`
	CreatedBy  int64  `json:"created_by"`
	Status     string `json:"status"`
	ApprovedBy int64  `json:"approved_by"`
}

// EventBus publishes domain events.
type EventBus interface {
	Publish(ctx context.Context, topic string, payload any) error
	Close() error
}

// Bus is an EventBus backed by a Watermill publisher.
type Bus struct {
	publisher message.Publisher
	logger    *slog.Logger
}

var _ EventBus = (*Bus)(nil)

// New wraps an existing Watermill publisher.
func New(publisher message.Publisher, logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{publisher: publisher, logger: logger}
}

// NewNATS connects a core NATS publisher (no JetStream) to url.
func NewNATS(url string, logger *slog.Logger) (*Bus, error) {
	if logger == nil {
		logger = slog.Default()
	}

	publisher, err := wmnats.NewPublisher(
		wmnats.PublisherConfig{
			URL:       url,
			Marshaler: &wmnats.NATSMarshaler{},
			NatsOptions: []nc.Option{
				nc.RetryOnFailedConnect(true),
				nc.Name("dragon-nest-guild-portal"),
			},
			JetStream: wmnats.JetStreamConfig{Disabled: true},
		},
		watermill.NewSlogLogger(logger),
	)
	if err != nil {
		logger.Error("Failed to create Watermill NATS publisher", attr.Error(err))
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	return New(publisher, logger), nil
}

// NewInMemory returns a Bus over a Watermill GoChannel along with the channel, so
// callers can subscribe to what is published.
func NewInMemory(logger *slog.Logger) (*Bus, *gochannel.GoChannel) {
	if logger == nil {
		logger = slog.Default()
	}
	pubSub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, watermill.NewSlogLogger(logger))
	return New(pubSub, logger), pubSub
}

// Publish marshals payload to JSON and publishes it on topic.
func (b *Bus) Publish(ctx context.Context, topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", topic, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.SetContext(ctx)
	if id := attr.CorrelationID(ctx); id != "" {
		msg.Metadata.Set(correlationIDMetadataKey, id)
	}

	if err := b.publisher.Publish(topic, msg); err != nil {
		b.logger.ErrorContext(ctx, "Failed to publish event",
			attr.ExtractCorrelationID(ctx),
			attr.String("topic", topic),
			attr.Error(err),
		)
		return fmt.Errorf("failed to publish %s: %w", topic, err)
	}

	b.logger.DebugContext(ctx, "Published event",
		attr.ExtractCorrelationID(ctx),
		attr.String("topic", topic),
		attr.String("message_uuid", msg.UUID),
	)
	return nil
}

// Close closes the underlying publisher.
func (b *Bus) Close() error {
	return b.publisher.Close()
}

// Nop discards every event.
type Nop struct{}

func (Nop) Publish(context.Context, string, any) error { return nil }
func (Nop) Close() error                               { return nil }
