package service

import (
	"context"
	"encoding/json"
	"log"

	"chatdesk-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	Publish(ctx context.Context, payload []byte) error

	// PublishAudit is a convenience wrapper for fire-and-forget audit events.
	PublishAudit(ctx context.Context, eventType string, details map[string]interface{})
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (s *publisherService) Publish(ctx context.Context, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return s.pubSub.Publish(s.topicName, msg)
}

func (s *publisherService) PublishAudit(ctx context.Context, eventType string, details map[string]interface{}) {
	payload, err := json.Marshal(dto.PublishAuditMessage{
		EventType: eventType,
		Details:   details,
	})
	if err != nil {
		log.Printf("[WARN] Failed to marshal audit event %s: %v", eventType, err)
		return
	}
	if err := s.Publish(ctx, payload); err != nil {
		log.Printf("[WARN] Failed to publish audit event %s: %v", eventType, err)
	}
}
