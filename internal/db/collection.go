package db

import (
	"context"
	"time"

	"github.com/evike/scooter-service/internal/models"
)

// RecordCollection defines the interface for service record storage.
// ListRecords returns records ordered newest dateReceived first.
type RecordCollection interface {
	InsertRecord(ctx context.Context, record models.ServiceRecord) error
	ListRecords(ctx context.Context) ([]models.ServiceRecord, error)
	FindRecordByID(ctx context.Context, id string) (*models.ServiceRecord, error)
	UpdateRecordStatus(ctx context.Context, id string, status models.Status, dateCompleted *time.Time) error
}

// FleetCollection defines the interface for the singleton fleet count.
type FleetCollection interface {
	GetFleetCount(ctx context.Context) (models.FleetCount, error)
	UpsertFleetCount(ctx context.Context, count models.FleetCount) error
}
