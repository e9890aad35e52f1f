package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/coursehub/report-service/internal/models"
)

func makeAttempt(started time.Time, marks ...float64) *models.QuizAttempt {
	at := &models.QuizAttempt{
		ID:        uuid.New(),
		StartedAt: &started,
	}
	for _, m := range marks {
		mark := m
		at.Answers = append(at.Answers, models.AttemptAnswer{Mark: &mark})
	}
	return at
}

func TestParseGradingPolicy(t *testing.T) {
	tests := []struct {
		input    string
		expected GradingPolicy
	}{
		{"Highest Grade", HighestGrade},
		{"Average Grade", AverageGrade},
		{"First Grade", FirstGrade},
		{"Last Grade", LastGrade},
		{"", HighestGrade},
		{"highest grade", HighestGrade},
		{"nonsense", HighestGrade},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseGradingPolicy(tt.input), "input %q", tt.input)
	}
}

func TestAttemptRawScore(t *testing.T) {
	base := time.Now()

	t.Run("sums answer marks", func(t *testing.T) {
		at := makeAttempt(base, 2, 3, 1.5)
		assert.Equal(t, 6.5, attemptRawScore(at))
	})

	t.Run("ungraded answers are skipped", func(t *testing.T) {
		at := makeAttempt(base, 4)
		at.Answers = append(at.Answers, models.AttemptAnswer{Mark: nil})
		assert.Equal(t, 4.0, attemptRawScore(at))
	})

	t.Run("empty attempt scores zero", func(t *testing.T) {
		at := makeAttempt(base)
		assert.Equal(t, 0.0, attemptRawScore(at))
	})
}

func TestReduceAttempts(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	first := makeAttempt(base, 4)
	second := makeAttempt(base.Add(time.Hour), 9)
	third := makeAttempt(base.Add(2*time.Hour), 5)

	attempts := []*models.QuizAttempt{second, first, third}

	t.Run("highest", func(t *testing.T) {
		score, chosen := reduceAttempts(attempts, HighestGrade)
		assert.Equal(t, 9.0, score)
		assert.Equal(t, second.ID, chosen.ID)
	})

	t.Run("average has no single source attempt", func(t *testing.T) {
		score, chosen := reduceAttempts(attempts, AverageGrade)
		assert.Equal(t, 6.0, score)
		assert.Nil(t, chosen)
	})

	t.Run("first by start time", func(t *testing.T) {
		score, chosen := reduceAttempts(attempts, FirstGrade)
		assert.Equal(t, 4.0, score)
		assert.Equal(t, first.ID, chosen.ID)
	})

	t.Run("last by start time", func(t *testing.T) {
		score, chosen := reduceAttempts(attempts, LastGrade)
		assert.Equal(t, 5.0, score)
		assert.Equal(t, third.ID, chosen.ID)
	})

	t.Run("no attempts", func(t *testing.T) {
		score, chosen := reduceAttempts(nil, HighestGrade)
		assert.Equal(t, 0.0, score)
		assert.Nil(t, chosen)
	})

	t.Run("untimed attempt between timed ones is skipped", func(t *testing.T) {
		untimed := makeAttempt(base, 7)
		untimed.StartedAt = nil
		mixed := []*models.QuizAttempt{third, untimed, first}

		score, chosen := reduceAttempts(mixed, FirstGrade)
		assert.Equal(t, 4.0, score)
		assert.Equal(t, first.ID, chosen.ID)

		score, chosen = reduceAttempts(mixed, LastGrade)
		assert.Equal(t, 5.0, score)
		assert.Equal(t, third.ID, chosen.ID)
	})

	t.Run("all untimed keeps storage order", func(t *testing.T) {
		a := makeAttempt(base, 3)
		a.StartedAt = nil
		b := makeAttempt(base, 8)
		b.StartedAt = nil
		mixed := []*models.QuizAttempt{a, b}

		_, chosen := reduceAttempts(mixed, FirstGrade)
		assert.Equal(t, a.ID, chosen.ID)

		_, chosen = reduceAttempts(mixed, LastGrade)
		assert.Equal(t, b.ID, chosen.ID)
	})
}
