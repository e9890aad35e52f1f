package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coursehub/report-service/internal/services"
	"github.com/coursehub/report-service/internal/utils"
)

type ReportHandler struct {
	BaseHandler
	reportService services.ReportService
	exportService services.ExportService
	validator     *utils.Validator
}

func NewReportHandler(
	reportService services.ReportService,
	exportService services.ExportService,
	validator *utils.Validator,
	logger utils.Logger,
) *ReportHandler {
	return &ReportHandler{
		BaseHandler:   NewBaseHandler(logger),
		reportService: reportService,
		exportService: exportService,
		validator:     validator,
	}
}

// GetQuizReport returns the full analytics report for one quiz
// @Summary Get quiz report
// @Description Builds the analytics report for a single quiz in a course
// @Tags reports
// @Produce json
// @Param course_id path string true "Course ID"
// @Param topic_id path string true "Topic ID"
// @Success 200 {object} services.QuizReport
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /courses/{course_id}/quizzes/{topic_id}/report [get]
func (h *ReportHandler) GetQuizReport(c *gin.Context) {
	courseID := ParseStringIDParam(c, "course_id")
	if courseID == "" {
		return
	}
	topicID := ParseUUIDParam(c, "topic_id")
	if topicID == uuid.Nil {
		return
	}

	h.LogRequest(c, "Building quiz report", "course_id", courseID, "topic_id", topicID)

	report, err := h.reportService.BuildQuizReport(c.Request.Context(), courseID, topicID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetAssignmentReport returns the full analytics report for one assignment
// @Summary Get assignment report
// @Tags reports
// @Produce json
// @Param course_id path string true "Course ID"
// @Param topic_id path string true "Topic ID"
// @Success 200 {object} services.AssignmentReport
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /courses/{course_id}/assignments/{topic_id}/report [get]
func (h *ReportHandler) GetAssignmentReport(c *gin.Context) {
	courseID := ParseStringIDParam(c, "course_id")
	if courseID == "" {
		return
	}
	topicID := ParseUUIDParam(c, "topic_id")
	if topicID == uuid.Nil {
		return
	}

	h.LogRequest(c, "Building assignment report", "course_id", courseID, "topic_id", topicID)

	report, err := h.reportService.BuildAssignmentReport(c.Request.Context(), courseID, topicID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetCourseQuizReport returns the merged quiz report for a course window
// @Summary Get course quiz report
// @Tags reports
// @Produce json
// @Param course_id path string true "Course ID"
// @Param start query string false "Window start (RFC3339)"
// @Param end query string false "Window end (RFC3339)"
// @Success 200 {object} services.QuizAggregateReport
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /courses/{course_id}/reports/quizzes [get]
func (h *ReportHandler) GetCourseQuizReport(c *gin.Context) {
	req, ok := h.parseCourseRequest(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Building course quiz report", "course_id", req.CourseID)

	report, err := h.reportService.BuildCourseQuizReport(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetCourseAssignmentReport returns the merged assignment report for a course window
// @Summary Get course assignment report
// @Tags reports
// @Produce json
// @Param course_id path string true "Course ID"
// @Param start query string false "Window start (RFC3339)"
// @Param end query string false "Window end (RFC3339)"
// @Success 200 {object} services.AssignmentAggregateReport
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /courses/{course_id}/reports/assignments [get]
func (h *ReportHandler) GetCourseAssignmentReport(c *gin.Context) {
	req, ok := h.parseCourseRequest(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Building course assignment report", "course_id", req.CourseID)

	report, err := h.reportService.BuildCourseAssignmentReport(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// ExportCourseQuizReport downloads the course quiz report as an xlsx file
// @Summary Export course quiz report
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param course_id path string true "Course ID"
// @Router /courses/{course_id}/reports/quizzes/export [get]
func (h *ReportHandler) ExportCourseQuizReport(c *gin.Context) {
	req, ok := h.parseCourseRequest(c)
	if !ok {
		return
	}

	data, err := h.exportService.ExportCourseQuizReport(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="quiz_report.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// ExportCourseAssignmentReport downloads the course assignment report as an xlsx file
// @Summary Export course assignment report
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param course_id path string true "Course ID"
// @Router /courses/{course_id}/reports/assignments/export [get]
func (h *ReportHandler) ExportCourseAssignmentReport(c *gin.Context) {
	req, ok := h.parseCourseRequest(c)
	if !ok {
		return
	}

	data, err := h.exportService.ExportCourseAssignmentReport(c.Request.Context(), req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="assignment_report.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// GetUserQuizReport returns the merged quiz report across a student's courses
// @Summary Get user quiz report
// @Tags reports
// @Produce json
// @Param user_id path string true "Student ID"
// @Success 200 {object} services.QuizAggregateReport
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{user_id}/reports/quizzes [get]
func (h *ReportHandler) GetUserQuizReport(c *gin.Context) {
	studentID := ParseUUIDParam(c, "user_id")
	if studentID == uuid.Nil {
		return
	}

	h.LogRequest(c, "Building user quiz report", "student_id", studentID)

	report, err := h.reportService.BuildUserQuizReport(c.Request.Context(), studentID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetUserAssignmentReport returns the merged assignment report across a student's courses
// @Summary Get user assignment report
// @Tags reports
// @Produce json
// @Param user_id path string true "Student ID"
// @Success 200 {object} services.AssignmentAggregateReport
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{user_id}/reports/assignments [get]
func (h *ReportHandler) GetUserAssignmentReport(c *gin.Context) {
	studentID := ParseUUIDParam(c, "user_id")
	if studentID == uuid.Nil {
		return
	}

	h.LogRequest(c, "Building user assignment report", "student_id", studentID)

	report, err := h.reportService.BuildUserAssignmentReport(c.Request.Context(), studentID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// ===== HELPERS =====

func (h *ReportHandler) parseCourseRequest(c *gin.Context) (*services.CourseReportRequest, bool) {
	courseID := ParseStringIDParam(c, "course_id")
	if courseID == "" {
		return nil, false
	}

	start, ok := ParseTimeQuery(c, "start")
	if !ok {
		return nil, false
	}
	end, ok := ParseTimeQuery(c, "end")
	if !ok {
		return nil, false
	}

	return &services.CourseReportRequest{
		CourseID: courseID,
		Start:    start,
		End:      end,
	}, true
}

func (h *ReportHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case services.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "Resource not found",
			Details: err.Error(),
		})
	case services.IsBadRequest(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request",
			Details: err.Error(),
		})
	default:
		h.LogError(c, err, "Report build failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: "Internal server error",
		})
	}
}
