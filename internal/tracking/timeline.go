package tracking

import (
	"slices"
	"time"

	"github.com/SergeyBogomolovv/order-tracking/internal/entities"
)

// BuildTimeline renders the delivery sequence relative to the current status.
// An unrecognized current status is treated as the first step.
func BuildTimeline(current entities.Status, history []entities.StatusEvent) []entities.TrackingStep {
	events := make([]entities.StatusEvent, 0, len(history))
	for _, e := range history {
		if _, ok := StepIndex(e.Status); ok {
			events = append(events, e)
		}
	}
	slices.SortStableFunc(events, func(a, b entities.StatusEvent) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	// при повторах статуса берём последнее по времени событие
	dates := make(map[entities.Status]time.Time, len(events))
	for _, e := range events {
		dates[e.Status] = e.CreatedAt
	}

	currentIdx, _ := StepIndex(current)

	steps := make([]entities.TrackingStep, 0, len(sequence))
	for i, s := range sequence {
		step := entities.TrackingStep{
			Status:    s,
			Title:     Label(s),
			Completed: i < currentIdx,
			Current:   i == currentIdx,
		}
		if d, ok := dates[s]; ok {
			step.Date = &d
		}
		steps = append(steps, step)
	}
	return steps
}
