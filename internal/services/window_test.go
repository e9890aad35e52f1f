package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewEffectiveWindow(t *testing.T) {
	open := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	close := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	t.Run("both bounds present", func(t *testing.T) {
		w := newEffectiveWindow(&open, &close)
		assert.Equal(t, open, w.open)
		assert.Equal(t, close, w.close)
	})

	t.Run("missing bounds use sentinels", func(t *testing.T) {
		w := newEffectiveWindow(nil, nil)
		assert.Equal(t, windowMin, w.open)
		assert.Equal(t, windowMax, w.close)
	})

	t.Run("missing close only", func(t *testing.T) {
		w := newEffectiveWindow(&open, nil)
		assert.Equal(t, open, w.open)
		assert.Equal(t, windowMax, w.close)
	})
}

func TestEffectiveWindowOverlaps(t *testing.T) {
	open := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	close := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	w := newEffectiveWindow(&open, &close)

	t.Run("window inside range", func(t *testing.T) {
		assert.True(t, w.overlaps(
			time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		))
	})

	t.Run("partial overlap", func(t *testing.T) {
		assert.True(t, w.overlaps(
			time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		))
	})

	t.Run("range before window", func(t *testing.T) {
		assert.False(t, w.overlaps(
			time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		))
	})

	t.Run("touching boundaries do not overlap", func(t *testing.T) {
		assert.False(t, w.overlaps(
			time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			open,
		))
		assert.False(t, w.overlaps(
			close,
			time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		))
	})

	t.Run("dateless window overlaps everything", func(t *testing.T) {
		unbounded := newEffectiveWindow(nil, nil)
		assert.True(t, unbounded.overlaps(
			time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(1999, 1, 2, 0, 0, 0, 0, time.UTC),
		))
	})
}

func TestCourseReportRequestWindow(t *testing.T) {
	t.Run("zero bounds become sentinels", func(t *testing.T) {
		req := &CourseReportRequest{CourseID: "c1"}
		from, to := req.window()
		assert.Equal(t, windowMin, from)
		assert.Equal(t, windowMax, to)
	})

	t.Run("explicit bounds pass through", func(t *testing.T) {
		start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		req := &CourseReportRequest{CourseID: "c1", Start: start, End: end}
		from, to := req.window()
		assert.Equal(t, start, from)
		assert.Equal(t, end, to)
	})
}
