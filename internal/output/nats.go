package output

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/chrisdamba/foodcatalog/internal/models"
	"github.com/nats-io/nats.go"
)

// msgPublisher is the part of *nats.Conn the NATS output needs.
type msgPublisher interface {
	PublishMsg(msg *nats.Msg) error
	FlushWithContext(ctx context.Context) error
}

// NATSOutput publishes each record as JSON on a single subject.
type NATSOutput struct {
	conn    *nats.Conn
	pub     msgPublisher
	subject string
}

func NewNATSOutput(config models.NATSConfig, logger *slog.Logger) (*NATSOutput, error) {
	conn, err := nats.Connect(config.URL, nats.Name("foodcatalog"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", config.URL, err)
	}
	logger.Info("nats connected", "url", conn.ConnectedUrl(), "subject", config.Subject)
	return &NATSOutput{conn: conn, pub: conn, subject: config.Subject}, nil
}

func recordMsg(subject, runID string, r models.Restaurant) (*nats.Msg, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record %s: %w", r.ID, err)
	}
	msg := nats.NewMsg(subject)
	msg.Data = data
	msg.Header.Set("Restaurant-Id", r.ID)
	if runID != "" {
		msg.Header.Set("Run-Id", runID)
	}
	return msg, nil
}

func (n *NATSOutput) WriteCatalog(ctx context.Context, catalog *models.Catalog) error {
	for _, r := range catalog.Restaurants {
		msg, err := recordMsg(n.subject, catalog.RunID, r)
		if err != nil {
			return err
		}
		if err := n.pub.PublishMsg(msg); err != nil {
			return fmt.Errorf("failed to publish record %s: %w", r.ID, err)
		}
	}
	return n.pub.FlushWithContext(ctx)
}

func (n *NATSOutput) Close() error {
	if n.conn == nil {
		return nil
	}
	return n.conn.Drain()
}
