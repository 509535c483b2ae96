package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"nutritrack/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Logs    *services.FoodLogService
	Reports *services.ReportService
}

func NewFoodController(logs *services.FoodLogService, reports *services.ReportService) *FoodController {
	return &FoodController{Logs: logs, Reports: reports}
}

// POST /api/addFood
// Body carries exactly one nutrient source: foodData (structured JSON),
// imageBase64 (data URI), or customText.
func (fc *FoodController) AddFood(c *gin.Context) {
	var req struct {
		UserID      string          `json:"userId"`
		FoodData    json.RawMessage `json:"foodData"`
		CustomText  string          `json:"customText"`
		ImageBase64 string          `json:"imageBase64"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	day, err := fc.Logs.LogFood(c.Request.Context(), services.LogFoodInput{
		UserID:      req.UserID,
		FoodData:    req.FoodData,
		CustomText:  req.CustomText,
		ImageBase64: req.ImageBase64,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Food added successfully",
		"dayLog":  day,
	})
}

// GET /api/listFood/:userId
func (fc *FoodController) ListFood(c *gin.Context) {
	logs, err := fc.Logs.ListLog(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"userId": c.Param("userId"),
		"days":   logs,
	})
}

// POST /api/getCustomDateData
// Dates arrive as DD/MM/YYYY; endDate defaults to startDate.
func (fc *FoodController) GetCustomDateData(c *gin.Context) {
	var req struct {
		UserID    string `json:"userId"`
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if req.UserID == "" || req.StartDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and startDate are required"})
		return
	}

	start, err := time.ParseInLocation("02/01/2006", req.StartDate, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must be DD/MM/YYYY"})
		return
	}
	end := start
	if req.EndDate != "" {
		end, err = time.ParseInLocation("02/01/2006", req.EndDate, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be DD/MM/YYYY"})
			return
		}
	}

	report, err := fc.Reports.AggregateRange(c.Request.Context(), req.UserID, start, end)
	if err != nil {
		respondError(c, err)
		return
	}

	if !report.HasLog {
		c.JSON(http.StatusOK, gin.H{"message": "No data found for user"})
		return
	}
	if report.DaysCount == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No data found for given date range"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Data fetched successfully",
		"userId":    report.UserID,
		"from":      req.StartDate,
		"to":        coalesce(req.EndDate, req.StartDate),
		"daysCount": report.DaysCount,
		"totals":    report.Totals,
	})
}

// GET /api/dataHomepage/:userId
func (fc *FoodController) DataHomepage(c *gin.Context) {
	summary, err := fc.Reports.BuildDailySummary(c.Request.Context(), c.Param("userId"), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	if summary.Consumed == nil {
		c.JSON(http.StatusOK, gin.H{
			"message": "No food data for today",
			"data":    summary,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Homepage data fetched successfully",
		"data":    summary,
	})
}

func coalesce(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
