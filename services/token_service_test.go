package services_test

import (
	"context"
	"testing"

	"nutritrack/models"
	"nutritrack/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterTokenRequiresProfile(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewTokenService(db, nil)

	var nf *services.NotFoundError
	_, err := svc.RegisterToken(context.Background(), "ghost", "tok-1", "")
	assert.ErrorAs(t, err, &nf)
}

func TestRegisterTokenDeduplicates(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&models.UserProfile{UserID: "u1"}).Error)
	svc := services.NewTokenService(db, nil)

	tokens, err := svc.RegisterToken(context.Background(), "u1", "tok-1", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"tok-1"}, tokens)

	tokens, err = svc.RegisterToken(context.Background(), "u1", "tok-1", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"tok-1"}, tokens, "re-registering must not duplicate")

	tokens, err = svc.RegisterToken(context.Background(), "u1", "tok-2", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"tok-1", "tok-2"}, tokens)
}

func TestRegisterTokenUpdatesLocationOnlyWhenProvided(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&models.UserProfile{UserID: "u1", Location: "Colombo"}).Error)
	svc := services.NewTokenService(db, nil)

	_, err := svc.RegisterToken(context.Background(), "u1", "tok-1", "")
	require.NoError(t, err)

	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", "u1").First(&profile).Error)
	assert.Equal(t, "Colombo", profile.Location)

	_, err = svc.RegisterToken(context.Background(), "u1", "tok-2", "Kandy")
	require.NoError(t, err)
	require.NoError(t, db.Where("user_id = ?", "u1").First(&profile).Error)
	assert.Equal(t, "Kandy", profile.Location)
}

func TestRemoveToken(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&models.UserProfile{UserID: "u1"}).Error)
	svc := services.NewTokenService(db, nil)

	_, err := svc.RegisterToken(context.Background(), "u1", "tok-1", "")
	require.NoError(t, err)
	_, err = svc.RegisterToken(context.Background(), "u1", "tok-2", "")
	require.NoError(t, err)

	tokens, err := svc.RemoveToken(context.Background(), "u1", "tok-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"tok-2"}, tokens)

	// removing a token that was never registered is fine
	tokens, err = svc.RemoveToken(context.Background(), "u1", "never-there")
	require.NoError(t, err)
	assert.Equal(t, []string{"tok-2"}, tokens)
}

func TestTokenValidation(t *testing.T) {
	db := openTestDB(t)
	svc := services.NewTokenService(db, nil)

	var ve *services.ValidationError
	_, err := svc.RegisterToken(context.Background(), "", "tok", "")
	assert.ErrorAs(t, err, &ve)
	_, err = svc.RemoveToken(context.Background(), "u1", "")
	assert.ErrorAs(t, err, &ve)
}
