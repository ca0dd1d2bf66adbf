package ctechpay

import (
	"strings"
	"unicode"

	"licensing/internal/domain/constants"
	domainerrors "licensing/internal/domain/errors"
)

const subscriberDigits = 9

// NormalizePhone rewrites a Malawian mobile number into +265XXXXXXXXX.
// Accepted inputs start with the trunk prefix 0, the bare country code 265 or +265.
func NormalizePhone(phone string) (string, error) {
	phone = strings.Join(strings.Fields(phone), "")

	var subscriber string
	switch {
	case strings.HasPrefix(phone, constants.CountryCallingCode):
		subscriber = strings.TrimPrefix(phone, constants.CountryCallingCode)
	case strings.HasPrefix(phone, "265"):
		subscriber = strings.TrimPrefix(phone, "265")
	case strings.HasPrefix(phone, "0"):
		subscriber = strings.TrimPrefix(phone, "0")
	default:
		return "", domainerrors.ErrInvalidPhoneFormat
	}

	if len(subscriber) != subscriberDigits || strings.IndexFunc(subscriber, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0 {
		return "", domainerrors.ErrInvalidPhoneFormat
	}

	return constants.CountryCallingCode + subscriber, nil
}
