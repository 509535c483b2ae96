package controllers

import (
	"net/http"

	"nutritrack/services"

	"github.com/gin-gonic/gin"
)

type WaterController struct {
	Water *services.WaterService
}

func NewWaterController(ws *services.WaterService) *WaterController {
	return &WaterController{Water: ws}
}

// POST /api/waterTracker
func (wc *WaterController) AddIntake(c *gin.Context) {
	var req struct {
		UserID string  `json:"userId"`
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	record, err := wc.Water.AddIntake(c.Request.Context(), req.UserID, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Water intake updated successfully",
		"data":    record,
	})
}

// GET /api/waterTracker/:userId — today's record, zero default when absent.
func (wc *WaterController) GetIntake(c *gin.Context) {
	record, err := wc.Water.GetIntake(c.Request.Context(), c.Param("userId"), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Water tracker data fetched successfully",
		"data":    record,
	})
}
