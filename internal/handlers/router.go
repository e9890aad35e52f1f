package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursehub/report-service/internal/services"
	"github.com/coursehub/report-service/internal/utils"
)

type HandlerManager struct {
	reportHandler *ReportHandler
}

func NewHandlerManager(
	reportService services.ReportService,
	exportService services.ExportService,
	validator *utils.Validator,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		reportHandler: NewReportHandler(reportService, exportService, validator, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		courses := v1.Group("/courses/:course_id")
		{
			courses.GET("/quizzes/:topic_id/report", hm.reportHandler.GetQuizReport)
			courses.GET("/assignments/:topic_id/report", hm.reportHandler.GetAssignmentReport)

			reports := courses.Group("/reports")
			{
				reports.GET("/quizzes", hm.reportHandler.GetCourseQuizReport)
				reports.GET("/assignments", hm.reportHandler.GetCourseAssignmentReport)
				reports.GET("/quizzes/export", hm.reportHandler.ExportCourseQuizReport)
				reports.GET("/assignments/export", hm.reportHandler.ExportCourseAssignmentReport)
			}
		}

		users := v1.Group("/users/:user_id")
		{
			users.GET("/reports/quizzes", hm.reportHandler.GetUserQuizReport)
			users.GET("/reports/assignments", hm.reportHandler.GetUserAssignmentReport)
		}
	}
}

// HealthCheck reports service liveness
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "report-service",
	})
}
