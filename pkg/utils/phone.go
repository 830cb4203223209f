package utils

import (
	"errors"
	"strings"

	"github.com/ttacon/libphonenumber"
)

// NormalizePhone parses a phone number and returns it in E.164 form so the
// same customer entered as "0300 1234567" and "+923001234567" dedupes to
// one record. defaultRegion is the ISO country code used for numbers
// without a prefix.
func NormalizePhone(raw, defaultRegion string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errors.New("phone number is required")
	}

	num, err := libphonenumber.Parse(trimmed, defaultRegion)
	if err != nil {
		return "", errors.New("invalid phone number")
	}
	if !libphonenumber.IsValidNumber(num) {
		return "", errors.New("invalid phone number")
	}

	return libphonenumber.Format(num, libphonenumber.E164), nil
}
