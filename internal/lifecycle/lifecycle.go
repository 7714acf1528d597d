package lifecycle

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/evike/scooter-service/internal/models"
)

var (
	ErrInvalidSerialNumber = errors.New("serial number must be between 4 and 12 characters")
	ErrEmptyRepairItems    = errors.New("at least one repair item must be selected")
	ErrInvalidStatus       = errors.New("invalid status")
)

const (
	serialMinLen = 4
	serialMaxLen = 12
)

// Clock supplies the current time so creation and completion stamps are
// testable. The zero value uses time.Now.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

// Engine applies the record lifecycle rules: intake validation, status
// transitions and turnaround computation.
type Engine struct {
	Now Clock
}

// Create validates an intake form and builds a new pending record.
// The serial number is normalized to uppercase, the vehicle state and
// repair items are snapshotted by value, and each repair item is re-keyed
// as "{recordID}-{itemValue}". Nothing is written to any store here.
func (e *Engine) Create(req models.CreateRecordRequest) (models.ServiceRecord, error) {
	serial := strings.ToUpper(req.SerialNumber)
	// Length is measured in characters, not bytes, so non-ASCII serials
	// are not over-counted.
	if n := utf8.RuneCountInString(serial); n < serialMinLen || n > serialMaxLen {
		return models.ServiceRecord{}, ErrInvalidSerialNumber
	}
	if len(req.RepairItems) == 0 {
		return models.ServiceRecord{}, ErrEmptyRepairItems
	}

	id := uuid.NewString()

	items := make([]models.RepairItem, len(req.RepairItems))
	for i, item := range req.RepairItems {
		items[i] = models.RepairItem{
			ID:    fmt.Sprintf("%s-%s", id, item.Value),
			Value: item.Value,
			Label: item.Label,
		}
	}

	var state *models.VehicleState
	if req.VehicleState != nil {
		snapshot := *req.VehicleState
		state = &snapshot
	}

	return models.ServiceRecord{
		ID:           id,
		Model:        req.Model,
		SerialNumber: serial,
		DateReceived: e.Now.now(),
		VehicleState: state,
		RepairItems:  items,
		Status:       models.StatusPending,
		Notes:        req.Notes,
	}, nil
}

// Transition moves a record to a new status. Any status is reachable from
// any other, so operators can correct mistaken updates. Entering completed
// stamps DateCompleted; every other target clears it.
func (e *Engine) Transition(record models.ServiceRecord, status models.Status) (models.ServiceRecord, error) {
	if !models.IsValidStatus(status) {
		return record, ErrInvalidStatus
	}
	record.Status = status
	if status == models.StatusCompleted {
		now := e.Now.now()
		record.DateCompleted = &now
	} else {
		record.DateCompleted = nil
	}
	return record, nil
}

// TurnaroundDays is the elapsed calendar days between intake and
// completion, partial days rounded up. Records without a completion
// timestamp report 0.
func TurnaroundDays(record models.ServiceRecord) int {
	if record.DateCompleted == nil {
		return 0
	}
	elapsed := record.DateCompleted.Sub(record.DateReceived)
	if elapsed <= 0 {
		return 0
	}
	days := int(elapsed / (24 * time.Hour))
	if elapsed%(24*time.Hour) != 0 {
		days++
	}
	return days
}
