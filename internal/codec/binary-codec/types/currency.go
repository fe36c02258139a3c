package types

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/types/interfaces"
)

// CurrencyCodeLength is the byte width of a serialized currency.
const CurrencyCodeLength = 20

var (
	standardCurrencyCode = regexp.MustCompile(`^[A-Za-z0-9?!@#$%^&*<>(){}\[\]|]{3}$`)
	hexCurrencyCode      = regexp.MustCompile(`^[0-9A-Fa-f]{40}$`)
	xrpCurrencyBytes     = standardCurrencyBytes("XRP")
)

// Currency is a 20 byte currency code. The all zero code is XRP.
type Currency struct{}

// FromJSON accepts "XRP", a three character standard code or 40 hex digits.
func (c *Currency) FromJSON(value any) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: currency must be a string, got %T", ErrInvalidCurrencyCode, value)
	}
	if strings.ToUpper(s) == "XRP" {
		return make([]byte, CurrencyCodeLength), nil
	}
	return serializeCurrencyCode(s)
}

// ToJSON returns "XRP", the standard code, or uppercase hex for any other pattern.
func (c *Currency) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	b, err := p.ReadBytes(CurrencyCodeLength)
	if err != nil {
		return nil, err
	}
	return currencyToString(b), nil
}

// serializeIssuedCurrencyCode encodes the currency of an issued amount, where XRP is not allowed.
func serializeIssuedCurrencyCode(currency string) ([]byte, error) {
	b, err := serializeCurrencyCode(currency)
	if err != nil {
		return nil, err
	}
	if bytes.Equal(b, xrpCurrencyBytes) || bytes.Equal(b, make([]byte, CurrencyCodeLength)) {
		return nil, fmt.Errorf("%w: XRP is not a valid issued currency", ErrInvalidCurrencyCode)
	}
	return b, nil
}

func serializeCurrencyCode(currency string) ([]byte, error) {
	switch {
	case hexCurrencyCode.MatchString(currency):
		return hex.DecodeString(currency)
	case standardCurrencyCode.MatchString(currency):
		return standardCurrencyBytes(strings.ToUpper(currency)), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidCurrencyCode, currency)
}

func standardCurrencyBytes(code string) []byte {
	b := make([]byte, CurrencyCodeLength)
	copy(b[12:15], code)
	return b
}

func currencyToString(b []byte) string {
	if bytes.Equal(b, make([]byte, CurrencyCodeLength)) {
		return "XRP"
	}
	if isStandardCurrency(b) {
		return string(b[12:15])
	}
	return strings.ToUpper(hex.EncodeToString(b))
}

func isStandardCurrency(b []byte) bool {
	for i, v := range b {
		if (i < 12 || i >= 15) && v != 0 {
			return false
		}
	}
	code := string(b[12:15])
	return code != "XRP" && strings.ToUpper(code) == code && standardCurrencyCode.MatchString(code)
}
