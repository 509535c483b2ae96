package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nutritrack/controllers"
	"nutritrack/models"
	"nutritrack/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.UserProfile{},
		&models.DayLog{},
		&models.FoodItem{},
		&models.WaterRecord{},
		&models.DeviceToken{},
	))
	return db
}

type stubEstimator struct {
	result models.NutrientMap
}

func (s *stubEstimator) EstimateNutrition(ctx context.Context, description string) (models.NutrientMap, error) {
	return s.result, nil
}

func newFoodRouter(t *testing.T, db *gorm.DB, est services.Estimator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logs := services.NewFoodLogService(db, est, nil, nil, nil)
	fc := controllers.NewFoodController(logs, services.NewReportService(db))

	r := gin.New()
	r.POST("/api/addFood", fc.AddFood)
	r.GET("/api/listFood/:userId", fc.ListFood)
	r.POST("/api/getCustomDateData", fc.GetCustomDateData)
	r.GET("/api/dataHomepage/:userId", fc.DataHomepage)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddFoodStructured(t *testing.T) {
	db := openTestDB(t)
	r := newFoodRouter(t, db, &stubEstimator{})

	w := doJSON(r, http.MethodPost, "/api/addFood", gin.H{
		"userId":   "u1",
		"foodData": gin.H{"calories": 200, "protein": 10},
	})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Message string        `json:"message"`
		DayLog  models.DayLog `json:"dayLog"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Food added successfully", resp.Message)
	assert.Equal(t, 200.0, resp.DayLog.Calories)
	assert.Len(t, resp.DayLog.Items, 1)
}

func TestAddFoodWithoutSource(t *testing.T) {
	db := openTestDB(t)
	r := newFoodRouter(t, db, &stubEstimator{})

	w := doJSON(r, http.MethodPost, "/api/addFood", gin.H{"userId": "u1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCustomDateDataMessages(t *testing.T) {
	db := openTestDB(t)
	est := &stubEstimator{result: models.NutrientMap{"calories": 120}}
	r := newFoodRouter(t, db, est)

	// no data at all for the user
	w := doJSON(r, http.MethodPost, "/api/getCustomDateData", gin.H{
		"userId": "u1", "startDate": "01/01/2025",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No data found for user")

	// log something today, then ask about a far-away range
	w = doJSON(r, http.MethodPost, "/api/addFood", gin.H{"userId": "u1", "customText": "toast"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(r, http.MethodPost, "/api/getCustomDateData", gin.H{
		"userId": "u1", "startDate": "01/01/2000", "endDate": "07/01/2000",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No data found for given date range")

	// missing startDate
	w = doJSON(r, http.MethodPost, "/api/getCustomDateData", gin.H{"userId": "u1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDataHomepageProfileMissing(t *testing.T) {
	db := openTestDB(t)
	r := newFoodRouter(t, db, &stubEstimator{})

	w := doJSON(r, http.MethodGet, "/api/dataHomepage/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDataHomepageNoFoodToday(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&models.UserProfile{UserID: "u1", TargetCalorie: 2000}).Error)
	r := newFoodRouter(t, db, &stubEstimator{})

	w := doJSON(r, http.MethodGet, "/api/dataHomepage/u1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No food data for today")
	assert.Contains(t, w.Body.String(), "2000")
}
