package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"
)

// KafkaPublisher produces audit records onto a pre-provisioned topic, keyed
// by entity so per-entity ordering survives partitioning.
type KafkaPublisher struct {
	client *kgo.Client
	topic  string
}

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &KafkaPublisher{client: client, topic: topic}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, record Record) error {
	message, err := kafkaMessage(record)
	if err != nil {
		return err
	}
	if err := p.client.ProduceSync(ctx, message).FirstErr(); err != nil {
		return fmt.Errorf("produce audit record: %w", err)
	}
	return nil
}

// kafkaMessage renders a record as a produce message keyed by entity, so
// per-entity ordering survives topic partitioning.
func kafkaMessage(record Record) (*kgo.Record, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("marshal audit record: %w", err)
	}
	return &kgo.Record{
		Key:   []byte(entityKey(record.EntityType, record.EntityID)),
		Value: payload,
	}, nil
}

func (p *KafkaPublisher) Close() {
	p.client.Close()
}
