package controllers

import (
	"net/http"

	"nutritrack/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Logs *services.FoodLogService
}

func NewReportController(logs *services.FoodLogService) *ReportController {
	return &ReportController{Logs: logs}
}

// GET /api/report/:userId — the user's full nutrition history.
func (rc *ReportController) GetReport(c *gin.Context) {
	logs, err := rc.Logs.ListLog(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userId": c.Param("userId"),
		"days":   logs,
	})
}
