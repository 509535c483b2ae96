package controllers_test

import (
	"net/http"
	"testing"

	"nutritrack/controllers"
	"nutritrack/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWaterRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := openTestDB(t)
	wc := controllers.NewWaterController(services.NewWaterService(db))

	r := gin.New()
	r.POST("/api/waterTracker", wc.AddIntake)
	r.GET("/api/waterTracker/:userId", wc.GetIntake)
	return r
}

func TestWaterTrackerRoundTrip(t *testing.T) {
	r := newWaterRouter(t)

	w := doJSON(r, http.MethodPost, "/api/waterTracker", gin.H{"userId": "u1", "amount": 300})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"totalIntake":300`)

	w = doJSON(r, http.MethodGet, "/api/waterTracker/u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalIntake":300`)
}

func TestWaterTrackerDefaultsToZero(t *testing.T) {
	r := newWaterRouter(t)

	w := doJSON(r, http.MethodGet, "/api/waterTracker/u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalIntake":0`)
}

func TestWaterTrackerRejectsZeroAmount(t *testing.T) {
	r := newWaterRouter(t)

	w := doJSON(r, http.MethodPost, "/api/waterTracker", gin.H{"userId": "u1", "amount": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
