package services

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/coursehub/report-service/internal/events"
	"github.com/coursehub/report-service/internal/models"
	"github.com/coursehub/report-service/internal/repositories"
	"github.com/coursehub/report-service/internal/utils"
)

// ReportService builds course-work analytics reports from persisted facts.
// Every build is a pure read: identical data yields an identical report.
type ReportService interface {
	// Single work item
	BuildQuizReport(ctx context.Context, courseID string, topicID uuid.UUID) (*QuizReport, error)
	BuildAssignmentReport(ctx context.Context, courseID string, topicID uuid.UUID) (*AssignmentReport, error)

	// Course-level aggregates over a date window
	BuildCourseQuizReport(ctx context.Context, req *CourseReportRequest) (*QuizAggregateReport, error)
	BuildCourseAssignmentReport(ctx context.Context, req *CourseReportRequest) (*AssignmentAggregateReport, error)

	// User-level aggregates across enrolled courses
	BuildUserQuizReport(ctx context.Context, studentID uuid.UUID) (*QuizAggregateReport, error)
	BuildUserAssignmentReport(ctx context.Context, studentID uuid.UUID) (*AssignmentAggregateReport, error)
}

// CourseReportRequest bounds a course aggregate. Zero Start/End mean
// "unbounded" on that side.
type CourseReportRequest struct {
	CourseID string    `json:"course_id" validate:"required"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// window returns the request bounds with sentinel substitution for the
// unbounded sides.
func (r *CourseReportRequest) window() (time.Time, time.Time) {
	start, end := r.Start, r.End
	if start.IsZero() {
		start = windowMin
	}
	if end.IsZero() {
		end = windowMax
	}
	return start, end
}

type reportService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	logger    *slog.Logger
	validator *utils.Validator
}

func NewReportService(repo repositories.Repository, publisher events.EventPublisher, logger *slog.Logger, validator *utils.Validator) ReportService {
	return &reportService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		validator: validator,
	}
}

// ===== SINGLE-ITEM REPORTS =====

func (s *reportService) BuildQuizReport(ctx context.Context, courseID string, topicID uuid.UUID) (*QuizReport, error) {
	s.logger.Info("Building quiz report", "course_id", courseID, "topic_id", topicID)

	topic, err := s.resolveTopic(ctx, courseID, topicID, models.KindQuiz)
	if err != nil {
		return nil, err
	}

	detail, err := s.repo.Topic().GetQuizDetail(ctx, topicID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to get quiz detail: %w", err)
	}

	eligible, err := s.eligibleEnrollments(ctx, courseID, detail.Close)
	if err != nil {
		return nil, err
	}

	attempts, err := s.repo.Response().ListAttemptsByTopic(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quiz attempts: %w", err)
	}

	policy := ParseGradingPolicy(detail.GradingMethod)
	scores := aggregateQuizScores(eligible, attempts, policy)
	dist, groups := bucketScores(scores)

	report := &QuizReport{
		TopicID:        topicID,
		Name:           topic.Title,
		Open:           detail.Open,
		Close:          detail.Close,
		Students:       eligibleStudents(eligible),
		StudentScores:  scores,
		ScoresOver8:    bucketGroup(groups, BucketTop),
		ScoresOver5:    bucketGroup(groups, BucketHigh),
		ScoresOver2:    bucketGroup(groups, BucketMid),
		ScoresOver0:    bucketGroup(groups, BucketLow),
		NoResponse:     bucketGroup(groups, BucketNone),
		Distribution:   dist,
		QuestionCount:  len(detail.Questions),
		AttemptCount:   len(attempts),
		CompletionRate: completionRate(scores),
	}

	for _, q := range detail.Questions {
		report.MaxDefaultMark += q.DefaultMark
		switch q.Type {
		case models.TrueFalse:
			report.TrueFalseCount++
		case models.MultipleChoice:
			report.MultipleChoiceCount++
		case models.ShortAnswer:
			report.ShortAnswerCount++
		}
	}

	report.AvgMark, report.MinMark, report.MaxMark = markStats(scores)
	report.AvgTimeSpentSeconds = averageTimeSpent(attempts)

	return report, nil
}

func (s *reportService) BuildAssignmentReport(ctx context.Context, courseID string, topicID uuid.UUID) (*AssignmentReport, error) {
	s.logger.Info("Building assignment report", "course_id", courseID, "topic_id", topicID)

	topic, err := s.resolveTopic(ctx, courseID, topicID, models.KindAssignment)
	if err != nil {
		return nil, err
	}

	detail, err := s.repo.Topic().GetAssignmentDetail(ctx, topicID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment detail: %w", err)
	}

	eligible, err := s.eligibleEnrollments(ctx, courseID, detail.Close)
	if err != nil {
		return nil, err
	}

	submissions, err := s.repo.Response().ListSubmissionsByTopic(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	scores := aggregateSubmissionScores(eligible, submissions)
	dist, groups := bucketScores(scores)

	report := &AssignmentReport{
		TopicID:         topicID,
		Name:            topic.Title,
		Open:            detail.Open,
		Close:           detail.Close,
		Students:        eligibleStudents(eligible),
		StudentScores:   scores,
		ScoresOver8:     bucketGroup(groups, BucketTop),
		ScoresOver5:     bucketGroup(groups, BucketHigh),
		ScoresOver2:     bucketGroup(groups, BucketMid),
		ScoresOver0:     bucketGroup(groups, BucketLow),
		NoResponse:      bucketGroup(groups, BucketNone),
		Distribution:    dist,
		SubmissionCount: len(submissions),
		FileTypeCount:   map[string]int{},
		CompletionRate:  completionRate(scores),
	}

	var gradedMarks []float64
	for _, sub := range submissions {
		if sub.Mark != nil {
			report.GradedSubmissionCount++
			gradedMarks = append(gradedMarks, *sub.Mark)
		}
		for _, f := range sub.Files {
			report.FileCount++
			report.FileTypeCount[fileExtension(f.Name)]++
		}
	}

	report.AvgMark, report.MinMark, report.MaxMark = floatStats(gradedMarks)
	report.AvgMarkBase10 = NormalizeAssignmentMark(report.AvgMark)
	report.MinMarkBase10 = NormalizeAssignmentMark(report.MinMark)
	report.MaxMarkBase10 = NormalizeAssignmentMark(report.MaxMark)

	return report, nil
}

// ===== SHARED RESOLUTION =====

// resolveTopic validates course, topic, ownership and kind, in that order.
func (s *reportService) resolveTopic(ctx context.Context, courseID string, topicID uuid.UUID, kind models.TopicKind) (*models.Topic, error) {
	exists, err := s.repo.Course().Exists(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to check course: %w", err)
	}
	if !exists {
		return nil, ErrCourseNotFound
	}

	topic, err := s.repo.Topic().GetByID(ctx, topicID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrTopicNotFound
		}
		return nil, fmt.Errorf("failed to get topic: %w", err)
	}

	if topic.CourseID != courseID {
		return nil, ErrTopicCourseMismatch
	}

	if topic.Kind != kind {
		switch kind {
		case models.KindQuiz:
			return nil, ErrTopicNotQuiz
		default:
			return nil, ErrTopicNotAssignment
		}
	}

	return topic, nil
}

// eligibleEnrollments resolves the students enrolled on or before the item's
// effective close date. Independent of response data: a student who never
// responded is still eligible.
func (s *reportService) eligibleEnrollments(ctx context.Context, courseID string, close *time.Time) ([]*models.Enrollment, error) {
	deadline := newEffectiveWindow(nil, close).close
	enrollments, err := s.repo.Enrollment().GetByCourseBefore(ctx, courseID, deadline)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	return enrollments, nil
}

// ===== SCORE AGGREGATION =====

// aggregateQuizScores reduces each eligible student's attempts to one
// normalized score under the grading policy. Students without attempts get a
// not-submitted entry.
func aggregateQuizScores(eligible []*models.Enrollment, attempts []*models.QuizAttempt, policy GradingPolicy) []StudentScore {
	byStudent := make(map[uuid.UUID][]*models.QuizAttempt)
	for _, at := range attempts {
		byStudent[at.StudentID] = append(byStudent[at.StudentID], at)
	}

	scores := make([]StudentScore, 0, len(eligible))
	for _, e := range eligible {
		score := StudentScore{Student: e.Student}
		if studentAttempts, ok := byStudent[e.StudentID]; ok {
			raw, chosen := reduceAttempts(studentAttempts, policy)
			mark := NormalizeQuizScore(raw)
			score.Mark = &mark
			score.Submitted = true
			if chosen != nil {
				id := chosen.ID
				score.ResponseID = &id
			}
		}
		scores = append(scores, score)
	}
	return scores
}

// aggregateSubmissionScores maps each eligible student to their submission.
// Ungraded submissions count as submitted with no mark; they join the
// no-mark bucket but still raise the completion rate.
func aggregateSubmissionScores(eligible []*models.Enrollment, submissions []*models.Submission) []StudentScore {
	byStudent := make(map[uuid.UUID]*models.Submission)
	for _, sub := range submissions {
		prev, ok := byStudent[sub.StudentID]
		if !ok || sub.SubmittedAt.After(prev.SubmittedAt) {
			byStudent[sub.StudentID] = sub
		}
	}

	scores := make([]StudentScore, 0, len(eligible))
	for _, e := range eligible {
		score := StudentScore{Student: e.Student}
		if sub, ok := byStudent[e.StudentID]; ok {
			score.Submitted = true
			id := sub.ID
			score.ResponseID = &id
			if sub.Mark != nil {
				mark := NormalizeAssignmentMark(*sub.Mark)
				score.Mark = &mark
			}
		}
		scores = append(scores, score)
	}
	return scores
}

// ===== STATISTICS HELPERS =====

func eligibleStudents(eligible []*models.Enrollment) []models.User {
	students := make([]models.User, 0, len(eligible))
	for _, e := range eligible {
		students = append(students, e.Student)
	}
	return students
}

func bucketGroup(groups map[int][]StudentScore, key int) []StudentScore {
	if g, ok := groups[key]; ok {
		return g
	}
	return []StudentScore{}
}

// completionRate is responders over eligible; 0 when nobody is eligible.
func completionRate(scores []StudentScore) float64 {
	if len(scores) == 0 {
		return 0
	}
	var submitted int
	for _, s := range scores {
		if s.Submitted {
			submitted++
		}
	}
	return float64(submitted) / float64(len(scores))
}

// markStats returns avg/min/max over the scores that carry a mark.
func markStats(scores []StudentScore) (avg, min, max float64) {
	var marks []float64
	for _, s := range scores {
		if s.Mark != nil {
			marks = append(marks, *s.Mark)
		}
	}
	return floatStats(marks)
}

// floatStats returns avg/min/max of values, all 0 for an empty slice.
func floatStats(values []float64) (avg, min, max float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}
	min, max = values[0], values[0]
	var sum float64
	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return sum / float64(len(values)), min, max
}

// averageTimeSpent is the mean duration of attempts with both timestamps;
// attempts missing either are excluded, not counted as zero.
func averageTimeSpent(attempts []*models.QuizAttempt) float64 {
	var total float64
	var counted int
	for _, at := range attempts {
		if at.StartedAt == nil || at.CompletedAt == nil {
			continue
		}
		total += at.CompletedAt.Sub(*at.StartedAt).Seconds()
		counted++
	}
	if counted == 0 {
		return 0
	}
	return total / float64(counted)
}

// fileExtension extracts a lower-case extension without the dot;
// names without one report "unknown".
func fileExtension(name string) string {
	ext := strings.TrimPrefix(path.Ext(name), ".")
	if ext == "" {
		return "unknown"
	}
	return strings.ToLower(ext)
}

// sortScores keeps report output deterministic across runs.
func sortScores(scores []StudentScore) {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Student.ID.String() < scores[j].Student.ID.String()
	})
}
