// Package service holds domain logic that doesn't belong in handlers
package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"nyumbani/listing-api/internal/model"
)

var ErrPropertyNotFound = errors.New("property not found")

// DefaultUnverifyReason is recorded when an admin unverifies a listing
// without giving a reason
const DefaultUnverifyReason = "Admin decision"

// VerifyProperty flips a listing to verified, recording who did it and
// when. The unverified-side fields are cleared in the same UPDATE so the
// two sides can never both be populated. Re-verifying an already verified
// listing just refreshes the actor and timestamp.
//
// Concurrent admin actions on the same listing are last-writer-wins; the
// single-statement write keeps the record consistent either way
func VerifyProperty(d *gorm.DB, propertyID, adminID string) (*model.Property, error) {
	now := time.Now()

	res := d.Model(model.Property{}).
		Where("id = ?", propertyID).
		Updates(map[string]any{
			"verified":              true,
			"verified_by":           adminID,
			"verified_at":           now,
			"unverified_by":         nil,
			"unverified_at":         nil,
			"unverification_reason": nil,
		})
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		return nil, ErrPropertyNotFound
	}

	return reload(d, propertyID)
}

// UnverifyProperty flips a listing back to unverified. An empty reason
// falls back to DefaultUnverifyReason
func UnverifyProperty(d *gorm.DB, propertyID, adminID, reason string) (*model.Property, error) {
	if reason == "" {
		reason = DefaultUnverifyReason
	}

	now := time.Now()

	res := d.Model(model.Property{}).
		Where("id = ?", propertyID).
		Updates(map[string]any{
			"verified":              false,
			"verified_by":           nil,
			"verified_at":           nil,
			"unverified_by":         adminID,
			"unverified_at":         now,
			"unverification_reason": reason,
		})
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		return nil, ErrPropertyNotFound
	}

	return reload(d, propertyID)
}

func reload(d *gorm.DB, propertyID string) (*model.Property, error) {
	var property model.Property

	err := d.Preload("Owner").
		Where("id = ?", propertyID).
		First(&property).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	return &property, nil
}
