package controllers

import (
	"errors"
	"log"
	"net/http"

	"nutritrack/services"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Msg})
		return
	}

	var nf *services.NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
		return
	}

	var ee *services.EstimationError
	if errors.As(err, &ee) {
		log.Printf("estimation error: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "nutrition estimation failed"})
		return
	}

	log.Printf("internal error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
}
