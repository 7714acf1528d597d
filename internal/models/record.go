package models

import (
	"time"
)

// Status is the workflow state of a service record. All four statuses are
// mutually reachable; there is no terminal state.
type Status string

const (
	StatusPending       Status = "pending"
	StatusInProgress    Status = "in-progress"
	StatusAwaitingParts Status = "awaiting-parts"
	StatusCompleted     Status = "completed"
)

// IsValidStatus checks if a status is valid
func IsValidStatus(status Status) bool {
	switch status {
	case StatusPending, StatusInProgress, StatusAwaitingParts, StatusCompleted:
		return true
	default:
		return false
	}
}

// RepairItem is a tagged reference value for one repairable part. On a
// stored record the ID is re-keyed as "{recordID}-{value}".
type RepairItem struct {
	ID    string `bson:"id" json:"id"`
	Value string `bson:"value" json:"value"`
	Label string `bson:"label" json:"label"`
}

// ScooterModel is a tagged reference value for a scooter model.
type ScooterModel struct {
	ID    string `bson:"id" json:"id"`
	Value string `bson:"value" json:"value"`
	Label string `bson:"label" json:"label"`
}

// VehicleState is a tagged reference value for the physical condition a
// unit arrived in.
type VehicleState struct {
	ID    string `bson:"id" json:"id"`
	Value string `bson:"value" json:"value"`
	Label string `bson:"label" json:"label"`
}

// ServiceRecord tracks one unit through the repair workflow. VehicleState
// and RepairItems are value snapshots taken at creation time; later edits
// to the reference lists never alter stored records.
type ServiceRecord struct {
	ID            string        `bson:"_id" json:"id"`
	Model         string        `bson:"model" json:"model"`
	SerialNumber  string        `bson:"serial_number" json:"serialNumber"`
	DateReceived  time.Time     `bson:"date_received" json:"dateReceived"`
	DateCompleted *time.Time    `bson:"date_completed,omitempty" json:"dateCompleted,omitempty"`
	VehicleState  *VehicleState `bson:"vehicle_state,omitempty" json:"vehicleState,omitempty"`
	RepairItems   []RepairItem  `bson:"repair_items" json:"repairItems"`
	Status        Status        `bson:"status" json:"status"`
	Notes         string        `bson:"notes,omitempty" json:"notes,omitempty"`
}

// FleetCount is the singleton inventory tally, independent of individual
// service records.
type FleetCount struct {
	BirdUnits  int `bson:"bird_units" json:"birdUnits"`
	EMoobUnits int `bson:"emoob_units" json:"eMoobUnits"`
}

// CreateRecordRequest is the intake form payload.
type CreateRecordRequest struct {
	Model        string        `json:"model"`
	SerialNumber string        `json:"serialNumber"`
	VehicleState *VehicleState `json:"vehicleState,omitempty"`
	RepairItems  []RepairItem  `json:"repairItems"`
	Notes        string        `json:"notes,omitempty"`
}

// UpdateStatusRequest changes a record's workflow status.
type UpdateStatusRequest struct {
	Status Status `json:"status"`
}
