package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evike/scooter-service/internal/models"
)

func TestNewPublisher_EmptyBroker(t *testing.T) {
	pub, err := NewPublisher("", "test-client")
	assert.NoError(t, err)
	assert.Nil(t, pub)
}

func TestNilPublisher_SafeToUse(t *testing.T) {
	var pub *Publisher

	// Must not panic
	pub.PublishStatusChange(models.ServiceRecord{ID: "r1", Status: models.StatusCompleted})
	pub.Close()
}
