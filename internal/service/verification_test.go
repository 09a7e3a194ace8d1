package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"nyumbani/listing-api/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	d, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, err)

	require.NoError(t, d.AutoMigrate(model.User{}, model.Property{}))

	return d
}

func seedProperty(t *testing.T, d *gorm.DB, id string) {
	t.Helper()

	require.NoError(t, d.Create(&model.User{
		ID:           "owner-1",
		Name:         "Owner",
		Email:        "owner@x.com",
		Phone:        "0700000001",
		PasswordHash: "x",
		Role:         model.RoleLandlord,
	}).Error)

	price := 25000.0
	require.NoError(t, d.Create(&model.Property{
		ID:       id,
		UserID:   "owner-1",
		Title:    "Two bedroom in Kilimani",
		Location: "Nairobi",
		Type:     "Apartment",
		Price:    &price,
	}).Error)
}

func TestVerifyProperty(t *testing.T) {
	d := newTestDB(t)
	seedProperty(t, d, "prop-1")

	p, err := VerifyProperty(d, "prop-1", "admin-1")
	require.NoError(t, err)

	assert.True(t, p.Verified)
	require.NotNil(t, p.VerifiedBy)
	assert.Equal(t, "admin-1", *p.VerifiedBy)
	assert.NotNil(t, p.VerifiedAt)
	assert.Nil(t, p.UnverifiedBy)
	assert.Nil(t, p.UnverifiedAt)
	assert.Nil(t, p.UnverificationReason)
}

func TestVerifyPropertyIdempotent(t *testing.T) {
	d := newTestDB(t)
	seedProperty(t, d, "prop-1")

	_, err := VerifyProperty(d, "prop-1", "admin-1")
	require.NoError(t, err)

	p, err := VerifyProperty(d, "prop-1", "admin-2")
	require.NoError(t, err)

	assert.True(t, p.Verified)
	require.NotNil(t, p.VerifiedBy)
	assert.Equal(t, "admin-2", *p.VerifiedBy)
}

func TestUnverifyProperty(t *testing.T) {
	d := newTestDB(t)
	seedProperty(t, d, "prop-1")

	_, err := VerifyProperty(d, "prop-1", "admin-1")
	require.NoError(t, err)

	p, err := UnverifyProperty(d, "prop-1", "admin-1", "listing expired")
	require.NoError(t, err)

	assert.False(t, p.Verified)
	require.NotNil(t, p.UnverifiedBy)
	assert.Equal(t, "admin-1", *p.UnverifiedBy)
	assert.NotNil(t, p.UnverifiedAt)
	require.NotNil(t, p.UnverificationReason)
	assert.Equal(t, "listing expired", *p.UnverificationReason)

	// Verified-side fields must be fully cleared, no cross-contamination
	assert.Nil(t, p.VerifiedBy)
	assert.Nil(t, p.VerifiedAt)
}

func TestUnverifyPropertyDefaultReason(t *testing.T) {
	d := newTestDB(t)
	seedProperty(t, d, "prop-1")

	p, err := UnverifyProperty(d, "prop-1", "admin-1", "")
	require.NoError(t, err)

	require.NotNil(t, p.UnverificationReason)
	assert.Equal(t, DefaultUnverifyReason, *p.UnverificationReason)
}

func TestVerifyPropertyNotFound(t *testing.T) {
	d := newTestDB(t)

	_, err := VerifyProperty(d, "missing", "admin-1")
	assert.ErrorIs(t, err, ErrPropertyNotFound)

	_, err = UnverifyProperty(d, "missing", "admin-1", "")
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestVerifyAfterUnverifyClearsReason(t *testing.T) {
	d := newTestDB(t)
	seedProperty(t, d, "prop-1")

	_, err := UnverifyProperty(d, "prop-1", "admin-1", "bad photos")
	require.NoError(t, err)

	p, err := VerifyProperty(d, "prop-1", "admin-1")
	require.NoError(t, err)

	assert.True(t, p.Verified)
	assert.Nil(t, p.UnverifiedBy)
	assert.Nil(t, p.UnverifiedAt)
	assert.Nil(t, p.UnverificationReason)
}
