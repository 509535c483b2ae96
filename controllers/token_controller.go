package controllers

import (
	"net/http"

	"nutritrack/services"

	"github.com/gin-gonic/gin"
)

type TokenController struct {
	Tokens *services.TokenService
}

func NewTokenController(ts *services.TokenService) *TokenController {
	return &TokenController{Tokens: ts}
}

type tokenReq struct {
	UserID   string `json:"userId"`
	FCMToken string `json:"fcmToken"`
	Location string `json:"location"`
}

// POST /api/updateFcmToken — dedup add; location updated only when provided.
func (tc *TokenController) UpdateFcmToken(c *gin.Context) {
	var req tokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	tokens, err := tc.Tokens.RegisterToken(c.Request.Context(), req.UserID, req.FCMToken, req.Location)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "FCM token updated successfully",
		"fcmTokens": tokens,
	})
}

// POST /api/logout — removes the device token.
func (tc *TokenController) Logout(c *gin.Context) {
	var req tokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	tokens, err := tc.Tokens.RemoveToken(c.Request.Context(), req.UserID, req.FCMToken)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Logged out successfully",
		"fcmTokens": tokens,
	})
}
