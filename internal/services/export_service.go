package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"
)

// ExportService renders aggregate reports as spreadsheets.
type ExportService interface {
	ExportCourseQuizReport(ctx context.Context, req *CourseReportRequest) ([]byte, error)
	ExportCourseAssignmentReport(ctx context.Context, req *CourseReportRequest) ([]byte, error)
}

type exportService struct {
	reports ReportService
	logger  *slog.Logger
}

func NewExportService(reports ReportService, logger *slog.Logger) ExportService {
	return &exportService{
		reports: reports,
		logger:  logger,
	}
}

func (s *exportService) ExportCourseQuizReport(ctx context.Context, req *CourseReportRequest) ([]byte, error) {
	report, err := s.reports.BuildCourseQuizReport(ctx, req)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheetName := "Quiz Summary"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	summary := [][]interface{}{
		{"Quiz Count", report.QuizCount},
		{"Avg Completion Rate", report.AvgCompletionRate},
		{"Min Question Count", report.MinQuestionCount},
		{"Max Question Count", report.MaxQuestionCount},
		{"Min Mark", report.MinMark},
		{"Max Mark", report.MaxMark},
		{"True/False Questions", report.TrueFalseCount},
		{"Multiple Choice Questions", report.MultipleChoiceCount},
		{"Short Answer Questions", report.ShortAnswerCount},
	}
	for rowIndex, row := range summary {
		for colIndex, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+1)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	if err := writeStudentSheet(f, "Students", report.StudentAverages, report.NoResponse); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *exportService) ExportCourseAssignmentReport(ctx context.Context, req *CourseReportRequest) ([]byte, error) {
	report, err := s.reports.BuildCourseAssignmentReport(ctx, req)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheetName := "Assignment Summary"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	nextClose := ""
	if report.NextCloseAt != nil {
		nextClose = report.NextCloseAt.Format("2006-01-02 15:04:05")
	}

	summary := [][]interface{}{
		{"Assignment Count", report.AssignmentCount},
		{"In Progress", report.InProgressCount},
		{"Ending This Month", report.EndingThisMonthCount},
		{"Next Close", nextClose},
		{"Avg Mark", report.AvgMark},
		{"Avg Completion Rate", report.AvgCompletionRate},
	}
	for rowIndex, row := range summary {
		for colIndex, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+1)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	if err := writeStudentSheet(f, "Students", report.StudentAverages, report.NoResponse); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func writeStudentSheet(f *excelize.File, sheetName string, averages, noResponse []StudentScore) error {
	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("failed to create Excel sheet: %w", err)
	}

	headers := []string{"Student ID", "Student Name", "Email", "Average Mark", "Status"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	rowIndex := 0
	writeRow := func(score StudentScore, status string) {
		row := []interface{}{
			score.Student.ID.String(),
			score.Student.FullName,
			score.Student.Email,
		}
		if score.Mark != nil {
			row = append(row, *score.Mark)
		} else {
			row = append(row, "")
		}
		row = append(row, status)

		for colIndex, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+2)
			f.SetCellValue(sheetName, cell, value)
		}
		rowIndex++
	}

	for _, score := range averages {
		writeRow(score, "Scored")
	}
	for _, score := range noResponse {
		writeRow(score, "No Response")
	}
	return nil
}
