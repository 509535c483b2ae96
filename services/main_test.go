package services_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"nutritrack/models"
	"nutritrack/services"

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

type fakeEstimator struct {
	result models.NutrientMap
	err    error
	calls  int
}

func (f *fakeEstimator) EstimateNutrition(ctx context.Context, description string) (models.NutrientMap, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakePlanner struct {
	targets services.MacroSet
	err     error
}

func (f *fakePlanner) PlanTargets(ctx context.Context, p *models.UserProfile) (services.MacroSet, error) {
	if f.err != nil {
		return services.MacroSet{}, f.err
	}
	return f.targets, nil
}
