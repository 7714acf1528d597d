package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/evike/scooter-service/internal/models"
)

func record(status models.Status, received time.Time, completed *time.Time) models.ServiceRecord {
	return models.ServiceRecord{
		ID:            "r1",
		Model:         "BirdOne",
		SerialNumber:  "ABC123",
		DateReceived:  received,
		DateCompleted: completed,
		Status:        status,
		RepairItems:   []models.RepairItem{{Value: "brakes", Label: "Brakes"}},
	}
}

func ptr(t time.Time) *time.Time { return &t }

func TestStatusPartition(t *testing.T) {
	now := time.Now()
	records := []models.ServiceRecord{
		record(models.StatusPending, now, nil),
		record(models.StatusInProgress, now, nil),
		record(models.StatusAwaitingParts, now, nil),
		record(models.StatusCompleted, now, ptr(now)),
	}

	assert.Len(t, CompletedOnly(records), 1)
	assert.Len(t, ActiveOnly(records), 3)
}

func TestCompletedToday(t *testing.T) {
	completed := time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)
	records := []models.ServiceRecord{
		record(models.StatusCompleted, completed.AddDate(0, 0, -2), ptr(completed)),
	}

	sameDay := time.Date(2024, 3, 15, 0, 0, 1, 0, time.UTC)
	nextDay := time.Date(2024, 3, 16, 0, 0, 1, 0, time.UTC)

	assert.Len(t, CompletedToday(records, sameDay), 1)
	assert.Len(t, CompletedToday(records, nextDay), 0)
}

func TestCompletedToday_LocalCalendarDay(t *testing.T) {
	// Stored timestamps are UTC; "today" is the caller's calendar day.
	// 22:30 UTC on the 15th is already 00:30 on the 16th at UTC+2.
	zone := time.FixedZone("UTC+2", 2*60*60)
	completed := time.Date(2024, 3, 15, 22, 30, 0, 0, time.UTC)
	records := []models.ServiceRecord{
		record(models.StatusCompleted, completed.AddDate(0, 0, -1), ptr(completed)),
	}

	now := time.Date(2024, 3, 16, 9, 0, 0, 0, zone)
	assert.Len(t, CompletedToday(records, now), 1)
	assert.Len(t, BoardView(records, now, true), 1)

	dayBefore := time.Date(2024, 3, 15, 9, 0, 0, 0, zone)
	assert.Len(t, CompletedToday(records, dayBefore), 0)
}

func TestBoardView(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	records := []models.ServiceRecord{
		record(models.StatusPending, now, nil),
		record(models.StatusCompleted, now.AddDate(0, 0, -1), ptr(now)),                   // completed today
		record(models.StatusCompleted, now.AddDate(0, 0, -5), ptr(now.AddDate(0, 0, -2))), // completed earlier
	}

	hidden := BoardView(records, now, false)
	assert.Len(t, hidden, 1)
	assert.Equal(t, models.StatusPending, hidden[0].Status)

	shown := BoardView(records, now, true)
	assert.Len(t, shown, 2)
}

func TestInDateRange_InclusiveBounds(t *testing.T) {
	received := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	records := []models.ServiceRecord{record(models.StatusPending, received, nil)}

	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Len(t, InDateRange(records, day, day, ByDateReceived), 1, "same-day range matches the whole day")

	before := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	assert.Len(t, InDateRange(records, before, before, ByDateReceived), 0)
}

func TestInDateRange_CompletedField(t *testing.T) {
	received := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	completed := time.Date(2024, 3, 20, 16, 0, 0, 0, time.UTC)
	records := []models.ServiceRecord{
		record(models.StatusCompleted, received, ptr(completed)),
		record(models.StatusPending, received, nil), // no completion date, excluded
	}

	day := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	assert.Len(t, InDateRange(records, day, day, ByDateCompleted), 1)
	assert.Len(t, InDateRange(records, received, received, ByDateCompleted), 0)
}

func TestSearch(t *testing.T) {
	now := time.Now()
	a := record(models.StatusPending, now, nil)
	a.SerialNumber = "XY99ZZ"
	a.Model = "BirdThree"
	b := record(models.StatusPending, now, nil)
	b.SerialNumber = "ABCD"
	b.Model = "eES600"
	records := []models.ServiceRecord{a, b}

	assert.Len(t, Search(records, ""), 2, "empty term matches everything")
	assert.Len(t, Search(records, "xy99"), 1)
	assert.Len(t, Search(records, "bird"), 1)
	assert.Len(t, Search(records, "ES600"), 1)
	assert.Len(t, Search(records, "nomatch"), 0)
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "In Progress", StatusLabel(models.StatusInProgress))
	assert.Equal(t, "Awaiting Parts", StatusLabel(models.StatusAwaitingParts))
	assert.Equal(t, "Pending", StatusLabel(models.StatusPending))
	assert.Equal(t, "Completed", StatusLabel(models.StatusCompleted))
}

func TestBreakdown(t *testing.T) {
	now := time.Now()
	a := record(models.StatusPending, now, nil)
	b := record(models.StatusInProgress, now, nil)
	b.VehicleState = &models.VehicleState{Value: "offline", Label: "Offline"}
	c := record(models.StatusInProgress, now, nil)
	c.Model = "BirdBike"
	done := record(models.StatusCompleted, now, ptr(now))

	breakdown := Breakdown([]models.ServiceRecord{a, b, c, done})

	assert.Equal(t, 3, breakdown.Total)
	assert.Equal(t, map[string]int{"Pending": 1, "In Progress": 2}, breakdown.ByStatus)
	assert.Equal(t, map[string]int{"BirdOne": 2, "BirdBike": 1}, breakdown.ByModel)
	// Records without a vehicle state are excluded from this facet only.
	assert.Equal(t, map[string]int{"Offline": 1}, breakdown.ByState)
}

func TestBreakdown_CountsConserved(t *testing.T) {
	now := time.Now()
	records := []models.ServiceRecord{
		record(models.StatusPending, now, nil),
		record(models.StatusAwaitingParts, now, nil),
		record(models.StatusInProgress, now, nil),
		record(models.StatusCompleted, now, ptr(now)),
	}

	breakdown := Breakdown(records)
	sum := 0
	for _, n := range breakdown.ByStatus {
		sum += n
	}
	assert.Equal(t, len(ActiveOnly(records)), sum)
}

func TestMonthlyIntake(t *testing.T) {
	now := time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)
	records := []models.ServiceRecord{
		record(models.StatusPending, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), nil),   // current month
		record(models.StatusPending, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), nil),  // 1 month back
		record(models.StatusPending, time.Date(2023, 9, 5, 0, 0, 0, 0, time.UTC), nil),   // 5 months back, across year boundary
		record(models.StatusPending, time.Date(2023, 8, 31, 0, 0, 0, 0, time.UTC), nil),  // outside window
		record(models.StatusPending, time.Date(2023, 2, 10, 0, 0, 0, 0, time.UTC), nil),  // same month a year earlier, excluded
	}

	counts := MonthlyIntake(records, now)
	assert.Equal(t, []int{1, 0, 0, 0, 1, 1}, counts)
}

func TestMonthlyIntake_LocalMonth(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	records := []models.ServiceRecord{
		record(models.StatusPending, time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC), nil),
	}

	now := time.Date(2024, 4, 10, 12, 0, 0, 0, zone)
	counts := MonthlyIntake(records, now)
	assert.Equal(t, 1, counts[MonthlyBuckets-1], "23:00 UTC on Mar 31 is April locally")
}

func TestMonthLabels(t *testing.T) {
	now := time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{"Sep", "Oct", "Nov", "Dec", "Jan", "Feb"}, MonthLabels(now))
}

func TestRepairItemFrequency(t *testing.T) {
	now := time.Now()
	a := record(models.StatusPending, now, nil)
	a.RepairItems = []models.RepairItem{
		{Value: "brakes", Label: "Brakes"},
		{Value: "lights", Label: "Lights"},
		{Value: "suspension", Label: "Suspension"},
	}
	b := record(models.StatusCompleted, now, ptr(now))
	b.RepairItems = []models.RepairItem{{Value: "brakes", Label: "Brakes"}}

	freq := RepairItemFrequency([]models.ServiceRecord{a, b})
	assert.Equal(t, map[string]int{"Brakes": 2, "Lights": 1, "Suspension": 1}, freq)

	total := 0
	for _, n := range freq {
		total += n
	}
	assert.Equal(t, 4, total, "histogram sums item entries, not records")
}

func TestSummarize(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	inRange := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	outside := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)

	records := []models.ServiceRecord{
		record(models.StatusCompleted, inRange, ptr(inRange.AddDate(0, 0, 1))),
		record(models.StatusInProgress, inRange, nil),
		record(models.StatusAwaitingParts, inRange, nil),
		record(models.StatusPending, outside, nil),
	}

	summary := Summarize(records, start, end)
	assert.Equal(t, 3, summary.TotalRecords)
	assert.Equal(t, 1, summary.CompletedCount)
	// All non-completed statuses collapse to pending in this report.
	assert.Equal(t, 2, summary.PendingCount)
}

func TestEmptyInput(t *testing.T) {
	now := time.Now()
	var records []models.ServiceRecord

	assert.Empty(t, CompletedOnly(records))
	assert.Empty(t, ActiveOnly(records))
	assert.Empty(t, CompletedToday(records, now))
	assert.Empty(t, Search(records, "x"))
	assert.Empty(t, RepairItemFrequency(records))
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0}, MonthlyIntake(records, now))
	assert.Equal(t, PeriodicSummary{}, Summarize(records, now, now))

	breakdown := Breakdown(records)
	assert.Zero(t, breakdown.Total)
	assert.Empty(t, breakdown.ByStatus)
}
