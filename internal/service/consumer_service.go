package service

import (
	"context"
	"encoding/json"
	"log"

	"chatdesk-be/internal/dto"
	"chatdesk-be/internal/repository/unitofwork"
	"chatdesk-be/pkg/events"
	pkgnats "chatdesk-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains audit events from the in-process bus, persists them
// as system log rows and mirrors them to NATS when a publisher is connected.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	natsPub    *pkgnats.Publisher // nil when NATS is not configured
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	natsPub *pkgnats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		natsPub:    natsPub,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishAuditMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal audit message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	details, err := json.Marshal(payload.Details)
	if err != nil {
		log.Printf("[ERROR] Failed to marshal audit details: %v", err)
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SystemLogRepository().Append(ctx, payload.EventType, details); err != nil {
		log.Printf("[ERROR] Failed to persist audit event %s: %v", payload.EventType, err)
		msg.Nack()
		return
	}

	if cs.natsPub != nil {
		evt := events.New(payload.EventType, payload.Details)
		if err := cs.natsPub.Publish(ctx, evt); err != nil {
			// Mirror is best-effort; the row is already persisted.
			log.Printf("[WARN] Failed to mirror audit event %s to NATS: %v", payload.EventType, err)
		}
	}

	msg.Ack()
}
