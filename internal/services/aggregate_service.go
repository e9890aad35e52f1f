package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/coursehub/report-service/internal/events"
	"github.com/coursehub/report-service/internal/models"
	"github.com/coursehub/report-service/internal/repositories"
)

// Per-item reports are independent, so aggregates build them on a bounded
// worker pool and join before folding. The fold itself is order-insensitive:
// bucket merges and mean computations commute.
const reportWorkers = 8

// ===== COURSE AGGREGATES =====

func (s *reportService) BuildCourseQuizReport(ctx context.Context, req *CourseReportRequest) (*QuizAggregateReport, error) {
	if err := s.validateCourseRequest(ctx, req); err != nil {
		return nil, err
	}

	topics, err := s.selectTopics(ctx, req, models.KindQuiz)
	if err != nil {
		return nil, err
	}

	reports, err := s.buildQuizReports(ctx, req.CourseID, topics)
	if err != nil {
		return nil, err
	}

	aggregate := foldQuizReports(reports)
	s.publishGenerated(ctx, events.ReportKindCourseQuizzes, req.CourseID, len(reports))
	return aggregate, nil
}

func (s *reportService) BuildCourseAssignmentReport(ctx context.Context, req *CourseReportRequest) (*AssignmentAggregateReport, error) {
	if err := s.validateCourseRequest(ctx, req); err != nil {
		return nil, err
	}

	topics, err := s.selectTopics(ctx, req, models.KindAssignment)
	if err != nil {
		return nil, err
	}

	reports, err := s.buildAssignmentReports(ctx, req.CourseID, topics)
	if err != nil {
		return nil, err
	}

	aggregate := foldAssignmentReports(reports, time.Now())
	s.publishGenerated(ctx, events.ReportKindCourseAssignments, req.CourseID, len(reports))
	return aggregate, nil
}

// ===== USER AGGREGATES =====

func (s *reportService) BuildUserQuizReport(ctx context.Context, studentID uuid.UUID) (*QuizAggregateReport, error) {
	courseIDs, err := s.enrolledCourseIDs(ctx, studentID)
	if err != nil {
		return nil, err
	}

	var reports []*QuizReport
	for _, courseID := range courseIDs {
		req := &CourseReportRequest{CourseID: courseID}
		topics, err := s.selectTopics(ctx, req, models.KindQuiz)
		if err != nil {
			return nil, err
		}
		courseReports, err := s.buildQuizReports(ctx, courseID, topics)
		if err != nil {
			return nil, err
		}
		reports = append(reports, courseReports...)
	}

	aggregate := foldQuizReports(reports)
	s.publishGenerated(ctx, events.ReportKindUserQuizzes, studentID.String(), len(reports))
	return aggregate, nil
}

func (s *reportService) BuildUserAssignmentReport(ctx context.Context, studentID uuid.UUID) (*AssignmentAggregateReport, error) {
	courseIDs, err := s.enrolledCourseIDs(ctx, studentID)
	if err != nil {
		return nil, err
	}

	var reports []*AssignmentReport
	for _, courseID := range courseIDs {
		req := &CourseReportRequest{CourseID: courseID}
		topics, err := s.selectTopics(ctx, req, models.KindAssignment)
		if err != nil {
			return nil, err
		}
		courseReports, err := s.buildAssignmentReports(ctx, courseID, topics)
		if err != nil {
			return nil, err
		}
		reports = append(reports, courseReports...)
	}

	aggregate := foldAssignmentReports(reports, time.Now())
	s.publishGenerated(ctx, events.ReportKindUserAssignments, studentID.String(), len(reports))
	return aggregate, nil
}

// ===== SELECTION =====

func (s *reportService) validateCourseRequest(ctx context.Context, req *CourseReportRequest) error {
	if err := s.validator.Validate(req); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	if !req.Start.IsZero() && !req.End.IsZero() && req.Start.After(req.End) {
		return ErrInvalidDateRange
	}

	exists, err := s.repo.Course().Exists(ctx, req.CourseID)
	if err != nil {
		return fmt.Errorf("failed to check course: %w", err)
	}
	if !exists {
		return ErrCourseNotFound
	}
	return nil
}

// selectTopics returns the topics of one kind whose effective window overlaps
// the requested range.
func (s *reportService) selectTopics(ctx context.Context, req *CourseReportRequest, kind models.TopicKind) ([]*models.Topic, error) {
	topics, err := s.repo.Topic().ListByCourseAndKind(ctx, req.CourseID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}

	from, to := req.window()
	selected := make([]*models.Topic, 0, len(topics))
	for _, topic := range topics {
		var window effectiveWindow
		switch kind {
		case models.KindQuiz:
			detail, err := s.repo.Topic().GetQuizDetail(ctx, topic.ID)
			if err != nil {
				if repositories.IsNotFoundError(err) {
					continue // topic without quiz data carries no schedule
				}
				return nil, fmt.Errorf("failed to get quiz detail: %w", err)
			}
			window = quizWindow(detail)
		case models.KindAssignment:
			detail, err := s.repo.Topic().GetAssignmentDetail(ctx, topic.ID)
			if err != nil {
				if repositories.IsNotFoundError(err) {
					continue
				}
				return nil, fmt.Errorf("failed to get assignment detail: %w", err)
			}
			window = assignmentWindow(detail)
		}
		if window.overlaps(from, to) {
			selected = append(selected, topic)
		}
	}
	return selected, nil
}

func (s *reportService) enrolledCourseIDs(ctx context.Context, studentID uuid.UUID) ([]string, error) {
	courseIDs, err := s.repo.Enrollment().ListCourseIDsByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrolled courses: %w", err)
	}
	return courseIDs, nil
}

// ===== PARALLEL PER-ITEM BUILDS =====

// buildQuizReports builds one report per topic on the worker pool; the first
// failure aborts the whole batch so a missing item never silently drops out
// of the merged counts.
func (s *reportService) buildQuizReports(ctx context.Context, courseID string, topics []*models.Topic) ([]*QuizReport, error) {
	reports := make([]*QuizReport, len(topics))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reportWorkers)
	for i, topic := range topics {
		g.Go(func() error {
			report, err := s.BuildQuizReport(gctx, courseID, topic.ID)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *reportService) buildAssignmentReports(ctx context.Context, courseID string, topics []*models.Topic) ([]*AssignmentReport, error) {
	reports := make([]*AssignmentReport, len(topics))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reportWorkers)
	for i, topic := range topics {
		g.Go(func() error {
			report, err := s.BuildAssignmentReport(gctx, courseID, topic.ID)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// ===== FOLDS =====

// studentFold accumulates one student's marks across items.
type studentFold struct {
	latest    StudentScore // most recently seen entry, for display metadata
	marks     []float64
	submitted bool
}

// foldStudentScores reduces per-item score lists to cross-item averages.
// A student is averaged over only the items where they have a mark; students
// seen in some eligible set but never scored come back as no-response.
func foldStudentScores(perItem [][]StudentScore) (averages, noResponse []StudentScore) {
	folds := make(map[uuid.UUID]*studentFold)
	var order []uuid.UUID

	for _, scores := range perItem {
		for _, score := range scores {
			f, ok := folds[score.Student.ID]
			if !ok {
				f = &studentFold{}
				folds[score.Student.ID] = f
				order = append(order, score.Student.ID)
			}
			if score.Submitted {
				f.latest = score
				f.submitted = true
			} else if !f.submitted {
				f.latest = score
			}
			if score.Mark != nil {
				f.marks = append(f.marks, *score.Mark)
			}
		}
	}

	averages = []StudentScore{}
	noResponse = []StudentScore{}
	for _, id := range order {
		f := folds[id]
		if len(f.marks) == 0 {
			entry := f.latest
			entry.Mark = nil
			entry.Submitted = false
			noResponse = append(noResponse, entry)
			continue
		}
		avg, _, _ := floatStats(f.marks)
		entry := f.latest
		entry.Mark = &avg
		entry.Submitted = true
		averages = append(averages, entry)
	}
	sortScores(averages)
	sortScores(noResponse)
	return averages, noResponse
}

func splitByBucket(averages []StudentScore) map[int][]StudentScore {
	groups := make(map[int][]StudentScore)
	for _, s := range averages {
		groups[bucketKey(*s.Mark)] = append(groups[bucketKey(*s.Mark)], s)
	}
	return groups
}

func foldQuizReports(reports []*QuizReport) *QuizAggregateReport {
	aggregate := &QuizAggregateReport{
		QuizCount:    len(reports),
		Distribution: newMarkDistribution(),
		Reports:      reports,
	}
	if reports == nil {
		aggregate.Reports = []*QuizReport{}
	}

	perItem := make([][]StudentScore, 0, len(reports))
	var completionSum float64
	for i, r := range reports {
		perItem = append(perItem, r.StudentScores)
		aggregate.Distribution.merge(r.Distribution)
		completionSum += r.CompletionRate
		aggregate.TrueFalseCount += r.TrueFalseCount
		aggregate.MultipleChoiceCount += r.MultipleChoiceCount
		aggregate.ShortAnswerCount += r.ShortAnswerCount

		if i == 0 {
			aggregate.MinQuestionCount = r.QuestionCount
			aggregate.MaxQuestionCount = r.QuestionCount
			aggregate.MinMark = r.MinMark
			aggregate.MaxMark = r.MaxMark
			continue
		}
		if r.QuestionCount < aggregate.MinQuestionCount {
			aggregate.MinQuestionCount = r.QuestionCount
		}
		if r.QuestionCount > aggregate.MaxQuestionCount {
			aggregate.MaxQuestionCount = r.QuestionCount
		}
		if r.MinMark < aggregate.MinMark {
			aggregate.MinMark = r.MinMark
		}
		if r.MaxMark > aggregate.MaxMark {
			aggregate.MaxMark = r.MaxMark
		}
	}

	if len(reports) > 0 {
		aggregate.AvgCompletionRate = completionSum / float64(len(reports))
	}

	averages, noResponse := foldStudentScores(perItem)
	aggregate.StudentAverages = averages
	aggregate.NoResponse = noResponse

	groups := splitByBucket(averages)
	aggregate.ScoresOver8 = bucketGroup(groups, BucketTop)
	aggregate.ScoresOver5 = bucketGroup(groups, BucketHigh)
	aggregate.ScoresOver2 = bucketGroup(groups, BucketMid)
	aggregate.ScoresOver0 = bucketGroup(groups, BucketLow)

	return aggregate
}

func foldAssignmentReports(reports []*AssignmentReport, now time.Time) *AssignmentAggregateReport {
	aggregate := &AssignmentAggregateReport{
		AssignmentCount: len(reports),
		Distribution:    newMarkDistribution(),
		FileTypeCount:   map[string]int{},
		Reports:         reports,
	}
	if reports == nil {
		aggregate.Reports = []*AssignmentReport{}
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	perItem := make([][]StudentScore, 0, len(reports))
	var completionSum, markSum float64
	for _, r := range reports {
		perItem = append(perItem, r.StudentScores)
		aggregate.Distribution.merge(r.Distribution)
		completionSum += r.CompletionRate
		markSum += r.AvgMark
		for ext, n := range r.FileTypeCount {
			aggregate.FileTypeCount[ext] += n
		}

		// A missing close date means the assignment never closes.
		if !newEffectiveWindow(nil, r.Close).close.After(now) {
			continue
		}
		aggregate.InProgressCount++
		if r.Close == nil {
			continue
		}
		if r.Close.After(monthStart) && r.Close.Before(monthEnd) {
			aggregate.EndingThisMonthCount++
		}
		if aggregate.NextCloseAt == nil || r.Close.Before(*aggregate.NextCloseAt) {
			aggregate.NextCloseAt = r.Close
		}
	}

	if len(reports) > 0 {
		aggregate.AvgCompletionRate = completionSum / float64(len(reports))
		aggregate.AvgMark = markSum / float64(len(reports))
	}

	averages, noResponse := foldStudentScores(perItem)
	aggregate.StudentAverages = averages
	aggregate.NoResponse = noResponse

	groups := splitByBucket(averages)
	aggregate.ScoresOver8 = bucketGroup(groups, BucketTop)
	aggregate.ScoresOver5 = bucketGroup(groups, BucketHigh)
	aggregate.ScoresOver2 = bucketGroup(groups, BucketMid)
	aggregate.ScoresOver0 = bucketGroup(groups, BucketLow)

	return aggregate
}

// publishGenerated emits a report.generated event; failures are logged and
// never fail the report request.
func (s *reportService) publishGenerated(ctx context.Context, kind events.ReportKind, subjectID string, itemCount int) {
	if s.publisher == nil {
		return
	}
	event := events.NewReportGeneratedEvent(kind, subjectID, itemCount)
	if err := s.publisher.PublishReportGenerated(ctx, event); err != nil {
		s.logger.Error("Failed to publish report event",
			"kind", kind,
			"subject_id", subjectID,
			"error", err)
	}
}
