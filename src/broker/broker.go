// Package broker defines the message broker interface used by the
// distributed pipeline and provides in-memory and Redpanda implementations.
package broker

import "context"

// Broker abstracts message publishing and consumption. The in-memory
// implementation backs local mode and tests; the Redpanda implementation
// backs distributed mode.
type Broker interface {
	// Publish sends a message to a topic. All of a run's messages share the
	// run ID as key, so a Kafka-backed broker keeps them on one partition
	// and their relative order survives transport.
	Publish(ctx context.Context, topic string, key string, value []byte) error

	// Subscribe returns a channel of messages for a topic. groupID is used
	// for consumer group coordination in Kafka and ignored in-memory.
	Subscribe(ctx context.Context, topic string, groupID string) (<-chan Message, error)

	// Close shuts down the broker connection.
	Close() error
}

// Message is a consumed broker message.
type Message struct {
	Topic     string
	Key       string
	Value     []byte
	Offset    int64
	Partition int32
	Timestamp int64
}
