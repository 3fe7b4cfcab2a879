package config

import (
	"os"
	"strings"

	"github.com/segmentio/kafka-go"
)

func KafkaBrokerURLs() []string {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		return nil
	}
	return strings.Split(brokers, ",")
}

// NewKafkaWriter returns a writer for the given topic, or nil when no
// brokers are configured. A nil writer disables event publishing.
func NewKafkaWriter(topic string) *kafka.Writer {
	brokers := KafkaBrokerURLs()
	if len(brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{}, // Balancer for selecting partition
		AllowAutoTopicCreation: true,
	}
}
