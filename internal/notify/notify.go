// Package notify broadcasts status-change events so the ops channel sees
// workflow movement without polling the API.
package notify

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"

	"github.com/evike/scooter-service/internal/models"
)

const statusTopic = "shop/records/status"

// StatusEvent is the payload published on every status transition.
type StatusEvent struct {
	RecordID     string        `json:"record_id"`
	SerialNumber string        `json:"serial_number"`
	Model        string        `json:"model"`
	Status       models.Status `json:"status"`
	ChangedAt    time.Time     `json:"changed_at"`
}

// Publisher publishes status events over MQTT. A nil Publisher (broker not
// configured) silently drops events, so callers never need to branch.
type Publisher struct {
	client mqtt.Client
}

// NewPublisher connects to the broker and returns a publisher. An empty
// broker URL yields a nil publisher, which is valid to use.
func NewPublisher(brokerURL, clientID string) (*Publisher, error) {
	if brokerURL == "" {
		return nil, nil
	}
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(clientID).
		SetConnectTimeout(10 * time.Second).
		SetAutoReconnect(true)
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect error: %w", token.Error())
	}
	return &Publisher{client: client}, nil
}

// PublishStatusChange sends a status event. Failures are logged, never
// surfaced: event delivery must not block or fail a status update.
func (p *Publisher) PublishStatusChange(record models.ServiceRecord) {
	if p == nil || p.client == nil {
		return
	}
	event := StatusEvent{
		RecordID:     record.ID,
		SerialNumber: record.SerialNumber,
		Model:        record.Model,
		Status:       record.Status,
		ChangedAt:    time.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.WithError(err).Error("failed to encode status event")
		return
	}
	token := p.client.Publish(statusTopic, 0, false, payload)
	go func() {
		if token.Wait() && token.Error() != nil {
			log.WithError(token.Error()).WithField("record_id", event.RecordID).
				Warn("failed to publish status event")
		}
	}()
}

// Close disconnects from the broker.
func (p *Publisher) Close() {
	if p == nil || p.client == nil {
		return
	}
	p.client.Disconnect(250)
}
