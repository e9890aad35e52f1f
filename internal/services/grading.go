package services

import (
	"sort"

	"github.com/coursehub/report-service/internal/models"
)

// GradingPolicy is the rule that reduces a student's quiz attempts to one score.
type GradingPolicy int

const (
	HighestGrade GradingPolicy = iota
	AverageGrade
	FirstGrade
	LastGrade
)

func (p GradingPolicy) String() string {
	switch p {
	case AverageGrade:
		return "Average Grade"
	case FirstGrade:
		return "First Grade"
	case LastGrade:
		return "Last Grade"
	default:
		return "Highest Grade"
	}
}

// ParseGradingPolicy maps the stored grading-method string to a policy.
// Unknown or empty strings fall back to HighestGrade; this mapping happens
// once per report, at the boundary.
func ParseGradingPolicy(s string) GradingPolicy {
	switch s {
	case "Average Grade":
		return AverageGrade
	case "First Grade":
		return FirstGrade
	case "Last Grade":
		return LastGrade
	default:
		return HighestGrade
	}
}

// attemptRawScore sums the per-question marks of one attempt. An attempt with
// no answers scores 0; it still counts as a response.
func attemptRawScore(attempt *models.QuizAttempt) float64 {
	var total float64
	for _, a := range attempt.Answers {
		if a.Mark != nil {
			total += *a.Mark
		}
	}
	return total
}

// reduceAttempts applies the grading policy to one student's attempts and
// returns the resulting score plus the attempt that produced it (nil when no
// single attempt determines the score, as with AverageGrade).
func reduceAttempts(attempts []*models.QuizAttempt, policy GradingPolicy) (float64, *models.QuizAttempt) {
	if len(attempts) == 0 {
		return 0, nil
	}

	switch policy {
	case AverageGrade:
		var sum float64
		for _, at := range attempts {
			sum += attemptRawScore(at)
		}
		return sum / float64(len(attempts)), nil

	case FirstGrade:
		first := pickByStartTime(attempts, true)
		return attemptRawScore(first), first

	case LastGrade:
		last := pickByStartTime(attempts, false)
		return attemptRawScore(last), last

	default: // HighestGrade
		best := attempts[0]
		bestScore := attemptRawScore(best)
		for _, at := range attempts[1:] {
			if score := attemptRawScore(at); score > bestScore {
				best, bestScore = at, score
			}
		}
		return bestScore, best
	}
}

// pickByStartTime picks the earliest (or latest) started attempt. Attempts
// without a start time are skipped when any timed attempt exists; when none
// carries one, storage order decides.
func pickByStartTime(attempts []*models.QuizAttempt, earliest bool) *models.QuizAttempt {
	timed := make([]*models.QuizAttempt, 0, len(attempts))
	for _, at := range attempts {
		if at.StartedAt != nil {
			timed = append(timed, at)
		}
	}
	if len(timed) == 0 {
		if earliest {
			return attempts[0]
		}
		return attempts[len(attempts)-1]
	}

	sort.SliceStable(timed, func(i, j int) bool {
		return timed[i].StartedAt.Before(*timed[j].StartedAt)
	})
	if earliest {
		return timed[0]
	}
	return timed[len(timed)-1]
}
