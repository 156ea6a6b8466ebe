package storage

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"quickmenu/internal/domain"
	"quickmenu/internal/service"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
}

var _ service.OrderPublisher = (*KafkaPublisher)(nil)
