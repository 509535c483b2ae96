package controllers

import (
	"net/http"

	"nutritrack/services"

	"github.com/gin-gonic/gin"
)

type AssistantController struct {
	Groq *services.GroqService
}

func NewAssistantController(g *services.GroqService) *AssistantController {
	return &AssistantController{Groq: g}
}

// POST /api/talkToAI — diet-scoped chat; never errors on upstream failure.
func (ac *AssistantController) TalkToAI(c *gin.Context) {
	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	if ac.Groq == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "assistant is not configured"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": ac.Groq.Chat(c.Request.Context(), req.Prompt)})
}
