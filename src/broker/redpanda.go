package broker

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/twmb/franz-go/pkg/kgo"
)

// RedpandaBroker is a Kafka-compatible Broker backed by franz-go.
// One producer client is shared; each Subscribe call gets its own consumer
// client so consumer groups stay independent.
type RedpandaBroker struct {
	mu        sync.Mutex
	producer  *kgo.Client
	seeds     []string
	consumers []*kgo.Client
	closed    bool
}

// NewRedpandaBroker connects a producer to the given seed brokers
// (e.g. ["localhost:19092"]).
func NewRedpandaBroker(seeds []string) (*RedpandaBroker, error) {
	if len(seeds) == 0 {
		return nil, fmt.Errorf("at least one broker address is required")
	}

	producer, err := kgo.NewClient(
		kgo.SeedBrokers(seeds...),
		kgo.AllowAutoTopicCreation(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka client: %w", err)
	}

	return &RedpandaBroker{
		producer: producer,
		seeds:    seeds,
	}, nil
}

// Publish produces one record synchronously. The key carries the run ID,
// which pins a run's records to a single partition so their order survives.
func (b *RedpandaBroker) Publish(ctx context.Context, topic string, key string, value []byte) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return fmt.Errorf("broker is closed")
	}
	producer := b.producer
	b.mu.Unlock()

	record := &kgo.Record{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
	}

	if err := producer.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("failed to produce message: %w", err)
	}
	return nil
}

// Subscribe starts a consumer group member for topic and streams its
// records to the returned channel until the context is cancelled.
func (b *RedpandaBroker) Subscribe(ctx context.Context, topic string, groupID string) (<-chan Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, fmt.Errorf("broker is closed")
	}

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(b.seeds...),
		kgo.ConsumerGroup(groupID),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer: %w", err)
	}
	b.consumers = append(b.consumers, consumer)

	msgChan := make(chan Message, subscriberBuffer)
	go consumeLoop(ctx, consumer, msgChan)

	return msgChan, nil
}

// consumeLoop polls the consumer and forwards records in fetch order.
func consumeLoop(ctx context.Context, consumer *kgo.Client, msgChan chan<- Message) {
	defer close(msgChan)

	for {
		if ctx.Err() != nil {
			return
		}

		fetches := consumer.PollFetches(ctx)
		if fetches.IsClientClosed() {
			return
		}

		for _, err := range fetches.Errors() {
			if ctx.Err() != nil {
				return
			}
			fmt.Fprintf(os.Stderr, "[RedpandaBroker] fetch error on %s: %v\n", err.Topic, err.Err)
		}

		for iter := fetches.RecordIter(); !iter.Done(); {
			record := iter.Next()
			msg := Message{
				Topic:     record.Topic,
				Key:       string(record.Key),
				Value:     record.Value,
				Offset:    record.Offset,
				Partition: record.Partition,
				Timestamp: record.Timestamp.UnixMilli(),
			}

			select {
			case msgChan <- msg:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Close shuts down the producer and every consumer client.
func (b *RedpandaBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for _, consumer := range b.consumers {
		consumer.Close()
	}
	b.consumers = nil
	b.producer.Close()

	return nil
}
