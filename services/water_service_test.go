package services_test

import (
	"context"
	"testing"

	"nutritrack/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddIntakeAccumulates(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewWaterService(db)

	first, err := svc.AddIntake(context.Background(), "u1", 250)
	require.NoError(t, err)
	assert.Equal(t, 250.0, first.TotalIntake)

	second, err := svc.AddIntake(context.Background(), "u1", 500)
	require.NoError(t, err)
	assert.Equal(t, 750.0, second.TotalIntake)
	assert.Equal(t, first.Date, second.Date)
}

func TestAddIntakeRejectsNonPositiveAmounts(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewWaterService(db)

	var ve *services.ValidationError
	_, err := svc.AddIntake(context.Background(), "u1", 0)
	assert.ErrorAs(t, err, &ve)

	_, err = svc.AddIntake(context.Background(), "u1", -100)
	assert.ErrorAs(t, err, &ve)

	_, err = svc.AddIntake(context.Background(), "", 100)
	assert.ErrorAs(t, err, &ve)
}

func TestGetIntakeSynthesizesZeroRecord(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewWaterService(db)

	record, err := svc.GetIntake(context.Background(), "u1", "")
	require.NoError(t, err)
	assert.Equal(t, 0.0, record.TotalIntake)
	assert.Equal(t, "u1", record.UserID)
	assert.NotEmpty(t, record.Date)
}

func TestGetIntakeReturnsStoredRecord(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewWaterService(db)

	_, err := svc.AddIntake(context.Background(), "u1", 300)
	require.NoError(t, err)

	record, err := svc.GetIntake(context.Background(), "u1", "")
	require.NoError(t, err)
	assert.Equal(t, 300.0, record.TotalIntake)
}
