package model

import "time"

// Pricing modes for a listing. Rentals carry a single price while
// off-plan developments are listed with a min/max range
const (
	PricingFixed = "fixed"
	PricingRange = "range"
)

var PropertyTypes = []string{
	"Apartment",
	"Bungalow",
	"Maisonette",
	"Bedsitter",
	"Studio",
	"Townhouse",
	"Commercial",
	"Land",
}

type Property struct {
	ID          string      `gorm:"primaryKey" json:"id"`
	UserID      string      `gorm:"index;not null" json:"user_id"`
	Title       string      `gorm:"not null" json:"title"`
	Location    string      `gorm:"not null" json:"location"`
	Description string      `json:"description"`
	Type        string      `gorm:"not null" json:"type"`
	PricingMode string      `gorm:"default:fixed" json:"pricing_mode"`
	Price       *float64    `json:"price,omitempty"`
	PriceMin    *float64    `json:"price_min,omitempty"`
	PriceMax    *float64    `json:"price_max,omitempty"`
	Bedrooms    int         `json:"bedrooms"`
	Bathrooms   int         `json:"bathrooms"`
	Images      StringSlice `json:"images"`
	Amenities   StringSlice `json:"amenities"`

	// Verification sub-state. Exactly one side is populated at a time:
	// verifying clears the unverified triple and vice versa
	Verified             bool       `gorm:"default:false" json:"verified"`
	VerifiedBy           *string    `json:"verified_by"`
	VerifiedAt           *time.Time `json:"verified_at"`
	UnverifiedBy         *string    `json:"unverified_by"`
	UnverifiedAt         *time.Time `json:"unverified_at"`
	UnverificationReason *string    `json:"unverification_reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Owner *User `gorm:"foreignKey:UserID;references:ID" json:"owner,omitempty"`
}

func ValidPropertyType(t string) bool {
	for _, v := range PropertyTypes {
		if v == t {
			return true
		}
	}
	return false
}
