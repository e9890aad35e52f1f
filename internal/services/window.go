package services

import (
	"time"

	"github.com/coursehub/report-service/internal/models"
)

// Sentinel bounds substituted for missing open/close dates. They exist only
// for comparisons inside the engine and never appear in a report.
var (
	windowMin = time.Date(1000, time.December, 31, 23, 59, 59, 0, time.UTC)
	windowMax = time.Date(3000, time.December, 31, 23, 59, 59, 0, time.UTC)
)

// effectiveWindow substitutes the sentinel bounds for missing open/close dates.
type effectiveWindow struct {
	open  time.Time
	close time.Time
}

func newEffectiveWindow(open, close *time.Time) effectiveWindow {
	w := effectiveWindow{open: windowMin, close: windowMax}
	if open != nil {
		w.open = *open
	}
	if close != nil {
		w.close = *close
	}
	return w
}

// overlaps reports whether the item's effective window intersects [from, to],
// using the open-interval rule: open < to && close > from.
func (w effectiveWindow) overlaps(from, to time.Time) bool {
	return w.open.Before(to) && w.close.After(from)
}

// quizWindow and assignmentWindow are the two places a window enters the engine.

func quizWindow(d *models.QuizDetail) effectiveWindow {
	return newEffectiveWindow(d.Open, d.Close)
}

func assignmentWindow(d *models.AssignmentDetail) effectiveWindow {
	return newEffectiveWindow(d.Open, d.Close)
}
