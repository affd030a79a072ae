package output

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/chrisdamba/foodcatalog/internal/models"
)

// KafkaOutput publishes one message per record, keyed by record id, so a
// compacted topic keeps the latest version of every restaurant.
type KafkaOutput struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaOutput(config models.KafkaConfig, logger *slog.Logger) (*KafkaOutput, error) {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // required by SyncProducer
	saramaConfig.Net.DialTimeout = timeout
	saramaConfig.Net.ReadTimeout = timeout
	saramaConfig.Net.WriteTimeout = timeout

	brokerList := splitBrokers(config.BrokerList)
	producer, err := sarama.NewSyncProducer(brokerList, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sarama producer: %w", err)
	}

	logger.Info("kafka producer created", "brokers", brokerList, "topic", config.Topic)
	return NewKafkaOutputWithProducer(producer, config.Topic), nil
}

// splitBrokers parses a comma-separated broker list, dropping blanks.
func splitBrokers(list string) []string {
	var brokers []string
	for _, broker := range strings.Split(list, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}

func NewKafkaOutputWithProducer(producer sarama.SyncProducer, topic string) *KafkaOutput {
	return &KafkaOutput{producer: producer, topic: topic}
}

func catalogMessages(topic string, catalog *models.Catalog) ([]*sarama.ProducerMessage, error) {
	msgs := make([]*sarama.ProducerMessage, 0, len(catalog.Restaurants))
	for _, r := range catalog.Restaurants {
		value, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("failed to encode record %s: %w", r.ID, err)
		}
		msg := &sarama.ProducerMessage{
			Topic: topic,
			Key:   sarama.StringEncoder(r.ID),
			Value: sarama.ByteEncoder(value),
		}
		if catalog.RunID != "" {
			msg.Headers = []sarama.RecordHeader{{Key: []byte("run_id"), Value: []byte(catalog.RunID)}}
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

func (k *KafkaOutput) WriteCatalog(_ context.Context, catalog *models.Catalog) error {
	if k.producer == nil {
		return fmt.Errorf("kafka producer is closed")
	}
	msgs, err := catalogMessages(k.topic, catalog)
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		return nil
	}
	if err := k.producer.SendMessages(msgs); err != nil {
		return fmt.Errorf("failed to send catalog to topic %s: %w", k.topic, err)
	}
	return nil
}

func (k *KafkaOutput) Close() error {
	if k.producer == nil {
		return nil
	}
	err := k.producer.Close()
	k.producer = nil
	return err
}
