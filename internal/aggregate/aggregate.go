// Package aggregate derives the dashboard and export views from a record
// snapshot. Every function is pure: callers re-list from the store after a
// write and recompute.
package aggregate

import (
	"strings"
	"time"

	"github.com/evike/scooter-service/internal/models"
)

// MonthlyBuckets is how many trailing calendar months the intake chart
// covers, the current month included.
const MonthlyBuckets = 6

// CompletedOnly returns the records whose status is completed.
func CompletedOnly(records []models.ServiceRecord) []models.ServiceRecord {
	out := make([]models.ServiceRecord, 0, len(records))
	for _, r := range records {
		if r.Status == models.StatusCompleted {
			out = append(out, r)
		}
	}
	return out
}

// ActiveOnly returns the records still in the workflow (any non-completed
// status).
func ActiveOnly(records []models.ServiceRecord) []models.ServiceRecord {
	out := make([]models.ServiceRecord, 0, len(records))
	for _, r := range records {
		if r.Status != models.StatusCompleted {
			out = append(out, r)
		}
	}
	return out
}

// CompletedToday returns the records completed on the same calendar day
// as now. Records without a completion timestamp never qualify.
func CompletedToday(records []models.ServiceRecord, now time.Time) []models.ServiceRecord {
	today := startOfDay(now)
	out := make([]models.ServiceRecord, 0, len(records))
	for _, r := range records {
		if r.Status != models.StatusCompleted || r.DateCompleted == nil {
			continue
		}
		// Stored timestamps come back in UTC; the calendar day is the
		// caller's.
		if startOfDay(r.DateCompleted.In(now.Location())).Equal(today) {
			out = append(out, r)
		}
	}
	return out
}

// BoardView is the main board: every active record, plus today's completed
// records when showCompleted is set. Older completions stay hidden.
func BoardView(records []models.ServiceRecord, now time.Time, showCompleted bool) []models.ServiceRecord {
	today := startOfDay(now)
	out := make([]models.ServiceRecord, 0, len(records))
	for _, r := range records {
		if r.Status != models.StatusCompleted {
			out = append(out, r)
			continue
		}
		if !showCompleted || r.DateCompleted == nil {
			continue
		}
		if startOfDay(r.DateCompleted.In(now.Location())).Equal(today) {
			out = append(out, r)
		}
	}
	return out
}

// DateField selects which timestamp a date-range filter applies to.
type DateField int

const (
	// ByDateReceived filters on intake date.
	ByDateReceived DateField = iota
	// ByDateCompleted filters on completion date; records without one are
	// excluded.
	ByDateCompleted
)

// InDateRange keeps the records whose selected timestamp falls inside
// [start, end], both bounds inclusive. The end bound is pushed to
// 23:59:59 of its calendar day so a same-day range matches the whole day.
func InDateRange(records []models.ServiceRecord, start, end time.Time, field DateField) []models.ServiceRecord {
	from := startOfDay(start)
	to := endOfDay(end)
	out := make([]models.ServiceRecord, 0, len(records))
	for _, r := range records {
		ts := r.DateReceived
		if field == ByDateCompleted {
			if r.DateCompleted == nil {
				continue
			}
			ts = *r.DateCompleted
		}
		if !ts.Before(from) && !ts.After(to) {
			out = append(out, r)
		}
	}
	return out
}

// Search keeps the records whose serial number or model contains the term,
// case-insensitively. An empty term matches everything.
func Search(records []models.ServiceRecord, term string) []models.ServiceRecord {
	if term == "" {
		return records
	}
	needle := strings.ToLower(term)
	out := make([]models.ServiceRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.SerialNumber), needle) ||
			strings.Contains(strings.ToLower(r.Model), needle) {
			out = append(out, r)
		}
	}
	return out
}

// GroupBy counts records per key. Records for which keyFn returns "" are
// excluded from the grouping (but not from any total computed elsewhere).
func GroupBy(records []models.ServiceRecord, keyFn func(models.ServiceRecord) string) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		key := keyFn(r)
		if key == "" {
			continue
		}
		counts[key]++
	}
	return counts
}

// StatusLabel turns a status value into its display form, e.g.
// "in-progress" -> "In Progress".
func StatusLabel(status models.Status) string {
	words := strings.Split(string(status), "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// PendingBreakdown is the dashboard view of the active workload.
type PendingBreakdown struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
	ByModel  map[string]int `json:"byModel"`
	ByState  map[string]int `json:"byState"`
}

// Breakdown groups the active records by status (title-cased labels),
// model and vehicle-state label. Records without a vehicle state are
// counted in the total but skipped in the state grouping only.
func Breakdown(records []models.ServiceRecord) PendingBreakdown {
	active := ActiveOnly(records)
	return PendingBreakdown{
		Total: len(active),
		ByStatus: GroupBy(active, func(r models.ServiceRecord) string {
			return StatusLabel(r.Status)
		}),
		ByModel: GroupBy(active, func(r models.ServiceRecord) string {
			return r.Model
		}),
		ByState: GroupBy(active, func(r models.ServiceRecord) string {
			if r.VehicleState == nil {
				return ""
			}
			return r.VehicleState.Label
		}),
	}
}

// MonthlyIntake buckets records by the calendar month of DateReceived over
// the MonthlyBuckets most recent months ending at now. The result is
// oldest-first; records outside the window are excluded.
func MonthlyIntake(records []models.ServiceRecord, now time.Time) []int {
	counts := make([]int, MonthlyBuckets)
	current := monthIndex(now)
	for _, r := range records {
		offset := current - monthIndex(r.DateReceived.In(now.Location()))
		if offset < 0 || offset >= MonthlyBuckets {
			continue
		}
		counts[MonthlyBuckets-1-offset]++
	}
	return counts
}

// MonthLabels returns the short month names matching MonthlyIntake's
// buckets, oldest-first.
func MonthLabels(now time.Time) []string {
	labels := make([]string, MonthlyBuckets)
	for offset := 0; offset < MonthlyBuckets; offset++ {
		idx := monthIndex(now) - offset
		labels[MonthlyBuckets-1-offset] = time.Month(idx%12 + 1).String()[:3]
	}
	return labels
}

// RepairItemFrequency counts repair-item occurrences by label across all
// records; a record with three items contributes three.
func RepairItemFrequency(records []models.ServiceRecord) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		for _, item := range r.RepairItems {
			counts[item.Label]++
		}
	}
	return counts
}

// PeriodicSummary is the summary-statistics block of the periodic export.
// Every non-completed status collapses into PendingCount here; the 4-way
// split used elsewhere does not apply to this report.
type PeriodicSummary struct {
	TotalRecords   int `json:"totalRecords"`
	CompletedCount int `json:"completedCount"`
	PendingCount   int `json:"pendingCount"`
}

// Summarize computes the periodic summary for records received inside
// [start, end].
func Summarize(records []models.ServiceRecord, start, end time.Time) PeriodicSummary {
	inRange := InDateRange(records, start, end, ByDateReceived)
	completed := len(CompletedOnly(inRange))
	return PeriodicSummary{
		TotalRecords:   len(inRange),
		CompletedCount: completed,
		PendingCount:   len(inRange) - completed,
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}
