package validators

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrPhoneEmpty   = errors.New("no phone number provided")
	ErrPhoneInvalid = errors.New("invalid phone number provided")
)

// PhoneValidator accepts local (07xx...) and international (+254...)
// number formats. Spaces and dashes are tolerated
func PhoneValidator(p string) error {
	if p == "" {
		return ErrPhoneEmpty
	}

	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, p)

	if strings.HasPrefix(cleaned, "+") {
		cleaned = cleaned[1:]
	}

	if len(cleaned) < 9 || len(cleaned) > 15 {
		return ErrPhoneInvalid
	}

	for _, r := range cleaned {
		if !unicode.IsDigit(r) {
			return ErrPhoneInvalid
		}
	}

	return nil
}
