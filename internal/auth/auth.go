package auth

import (
	"errors"
	"strings"

	"github.com/spf13/cast"
)

const bearerPrefix = "Bearer FAKE-"

var ErrMalformedToken = errors.New("malformed authorization token")

// MerchantID extracts the merchant id from a "Bearer FAKE-<id>" header value. The id
// must be plain ASCII decimal digits and is returned in canonical form, so FAKE-010
// names merchant 10.
func MerchantID(header string) (string, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", ErrMalformedToken
	}
	raw := strings.TrimPrefix(header, bearerPrefix)
	if !isDecimal(raw) {
		return "", ErrMalformedToken
	}

	// cast parses with base 0, a leading zero would switch it to octal.
	raw = strings.TrimLeft(raw, "0")
	if raw == "" {
		raw = "0"
	}
	id, err := cast.ToUint64E(raw)
	if err != nil {
		return "", ErrMalformedToken
	}
	return cast.ToString(id), nil
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Token builds the header value that authenticates merchantID.
func Token(merchantID string) string {
	return bearerPrefix + merchantID
}
