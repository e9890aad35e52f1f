package services

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"github.com/coursehub/report-service/internal/models"
)

// stubReportService returns canned aggregates
type stubReportService struct {
	ReportService
	quiz       *QuizAggregateReport
	assignment *AssignmentAggregateReport
}

func (s *stubReportService) BuildCourseQuizReport(ctx context.Context, req *CourseReportRequest) (*QuizAggregateReport, error) {
	return s.quiz, nil
}

func (s *stubReportService) BuildCourseAssignmentReport(ctx context.Context, req *CourseReportRequest) (*AssignmentAggregateReport, error) {
	return s.assignment, nil
}

func TestExportCourseQuizReport(t *testing.T) {
	mark := 7.5
	stub := &stubReportService{
		quiz: &QuizAggregateReport{
			QuizCount:         2,
			AvgCompletionRate: 0.5,
			Distribution:      newMarkDistribution(),
			StudentAverages: []StudentScore{
				{Student: models.User{ID: uuid.New(), FullName: "Ana", Email: "ana@example.com"}, Mark: &mark, Submitted: true},
			},
			NoResponse: []StudentScore{
				{Student: models.User{ID: uuid.New(), FullName: "Bo", Email: "bo@example.com"}},
			},
		},
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	svc := NewExportService(stub, logger)

	data, err := svc.ExportCourseQuizReport(context.Background(), &CourseReportRequest{CourseID: "course-1"})
	assert.NoError(t, err)
	assert.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), "Quiz Summary")
	assert.Contains(t, f.GetSheetList(), "Students")

	name, err := f.GetCellValue("Students", "B2")
	assert.NoError(t, err)
	assert.Equal(t, "Ana", name)

	status, err := f.GetCellValue("Students", "E3")
	assert.NoError(t, err)
	assert.Equal(t, "No Response", status)
}

func TestExportCourseAssignmentReport(t *testing.T) {
	stub := &stubReportService{
		assignment: &AssignmentAggregateReport{
			AssignmentCount: 1,
			Distribution:    newMarkDistribution(),
			FileTypeCount:   map[string]int{"pdf": 2},
		},
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	svc := NewExportService(stub, logger)

	data, err := svc.ExportCourseAssignmentReport(context.Background(), &CourseReportRequest{CourseID: "course-1"})
	assert.NoError(t, err)
	assert.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), "Assignment Summary")
}
