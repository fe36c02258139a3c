package types

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	addresscodec "github.com/LeJamon/goXRPLcodec/internal/codec/address-codec"
	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/types/interfaces"
)

const (
	MinIOUExponent  = -96
	MaxIOUExponent  = 80
	MaxIOUPrecision = 16
	MinIOUMantissa  = 1000000000000000
	MaxIOUMantissa  = 9999999999999999

	// MaxDrops is the total XRP supply in drops.
	MaxDrops = 100000000000000000

	NativeAmountByteLength   = 8
	CurrencyAmountByteLength = 48

	NotXRPBitMask         = 0x80
	PosSignBitMask        = 0x4000000000000000
	ZeroCurrencyAmountHex = 0x8000000000000000

	iouExponentBias = 97
	mantissaMask    = 1<<54 - 1
	dropsMask       = 1<<62 - 1
)

var (
	dropsPattern   = regexp.MustCompile(`^[0-9]+$`)
	decimalPattern = regexp.MustCompile(`^([-+]?)([0-9]*)(?:\.([0-9]*))?(?:[eE]([-+]?[0-9]+))?$`)
)

// Amount is either 8 bytes of XRP drops or a 48 byte issued currency amount.
type Amount struct{}

// FromJSON encodes a drops string, or a {"value","currency","issuer"} map for issued currencies.
func (a *Amount) FromJSON(value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return serializeXrpAmount(v)
	case json.Number:
		return serializeXrpAmount(v.String())
	case map[string]any:
		return serializeIssuedCurrencyAmount(v)
	}
	return nil, fmt.Errorf("%w: amount must be a string or an object, got %T", ErrInvalidAmount, value)
}

// ToJSON returns a drops string for XRP and a map for issued currencies.
func (a *Amount) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	first, err := p.Peek()
	if err != nil {
		return nil, err
	}
	if isNative(first) {
		b, err := p.ReadBytes(NativeAmountByteLength)
		if err != nil {
			return nil, err
		}
		word := binary.BigEndian.Uint64(b)
		if err := checkDecodedXrp(word); err != nil {
			return nil, err
		}
		return xrpAmountText(word), nil
	}

	b, err := p.ReadBytes(CurrencyAmountByteLength)
	if err != nil {
		return nil, err
	}
	word := binary.BigEndian.Uint64(b[:8])
	if err := checkDecodedIOU(word); err != nil {
		return nil, err
	}
	issuer, err := addresscodec.EncodeAccountIDToClassicAddress(b[28:48])
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"value":    iouValueText(word),
		"currency": currencyToString(b[8:28]),
		"issuer":   issuer,
	}, nil
}

func serializeXrpAmount(value string) ([]byte, error) {
	if err := verifyXrpValue(value); err != nil {
		return nil, err
	}
	drops, _ := strconv.ParseUint(value, 10, 64)
	return binary.BigEndian.AppendUint64(nil, drops|PosSignBitMask), nil
}

func serializeIssuedCurrencyAmount(value map[string]any) ([]byte, error) {
	v, okV := value["value"].(string)
	c, okC := value["currency"].(string)
	i, okI := value["issuer"].(string)
	if !okV || !okC || !okI {
		return nil, fmt.Errorf("%w: issued amount needs string value, currency and issuer", ErrInvalidAmount)
	}

	neg, mantissa, exp, err := parseIOUValue(v)
	if err != nil {
		return nil, err
	}
	currency, err := serializeIssuedCurrencyCode(c)
	if err != nil {
		return nil, err
	}
	issuer, err := accountIDFromString(i)
	if err != nil {
		return nil, fmt.Errorf("issuer: %w", err)
	}

	word := uint64(ZeroCurrencyAmountHex)
	if mantissa != 0 {
		word |= uint64(exp+iouExponentBias)<<54 | mantissa
		if !neg {
			word |= PosSignBitMask
		}
	}

	out := make([]byte, 0, CurrencyAmountByteLength)
	out = binary.BigEndian.AppendUint64(out, word)
	out = append(out, currency...)
	return append(out, issuer...), nil
}

// verifyXrpValue accepts whole, non-negative drop counts up to MaxDrops.
func verifyXrpValue(value string) error {
	if !dropsPattern.MatchString(value) {
		return fmt.Errorf("%w: %q is not a whole, non-negative number of drops", ErrInvalidAmount, value)
	}
	drops, err := strconv.ParseUint(value, 10, 64)
	if err != nil || drops > MaxDrops {
		return &OutOfRangeError{Type: "Drops", Value: value}
	}
	return nil
}

// checkDecodedXrp rejects magnitudes above MaxDrops and a native zero
// without the sign bit.
func checkDecodedXrp(word uint64) error {
	drops := word & dropsMask
	if drops > MaxDrops {
		return &OutOfRangeError{Type: "Drops", Value: strconv.FormatUint(drops, 10)}
	}
	if drops == 0 && !isPositive(byte(word>>56)) {
		return fmt.Errorf("%w: native zero without the sign bit", ErrInvalidAmount)
	}
	return nil
}

// checkDecodedIOU accepts the canonical zero word and normalized values only.
func checkDecodedIOU(word uint64) error {
	mantissa := word & mantissaMask
	if mantissa == 0 {
		if word != ZeroCurrencyAmountHex {
			return fmt.Errorf("%w: non-canonical zero %016X", ErrInvalidAmount, word)
		}
		return nil
	}
	if mantissa < MinIOUMantissa || mantissa > MaxIOUMantissa {
		return &OutOfRangeError{Type: "Mantissa", Value: strconv.FormatUint(mantissa, 10)}
	}
	if exp := iouExponent(word); exp < MinIOUExponent || exp > MaxIOUExponent {
		return &OutOfRangeError{Type: "Exponent", Value: strconv.Itoa(exp)}
	}
	return nil
}

// parseIOUValue returns the sign, the mantissa normalized to
// [MinIOUMantissa, MaxIOUMantissa] and the matching exponent. Zero has a zero mantissa.
func parseIOUValue(value string) (neg bool, mantissa uint64, exp int, err error) {
	m := decimalPattern.FindStringSubmatch(value)
	if m == nil || m[2]+m[3] == "" {
		return false, 0, 0, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidAmount, value)
	}

	scale := -len(m[3])
	if m[4] != "" {
		e, err := strconv.Atoi(m[4])
		if err != nil {
			return false, 0, 0, &OutOfRangeError{Type: "Exponent", Value: value}
		}
		scale += e
	}

	digits := strings.TrimLeft(m[2]+m[3], "0")
	if digits == "" {
		return false, 0, 0, nil
	}
	trimmed := strings.TrimRight(digits, "0")
	scale += len(digits) - len(trimmed)

	precision := len(trimmed)
	if precision > MaxIOUPrecision {
		return false, 0, 0, &OutOfRangeError{Type: "Precision", Value: value}
	}
	exp = scale + precision - MaxIOUPrecision
	if exp < MinIOUExponent || exp > MaxIOUExponent {
		return false, 0, 0, &OutOfRangeError{Type: "Exponent", Value: value}
	}

	mantissa, _ = strconv.ParseUint(trimmed+strings.Repeat("0", MaxIOUPrecision-precision), 10, 64)
	return m[1] == "-", mantissa, exp, nil
}

func xrpAmountText(word uint64) string {
	drops := word & dropsMask
	if drops != 0 && !isPositive(byte(word>>56)) {
		return "-" + strconv.FormatUint(drops, 10)
	}
	return strconv.FormatUint(drops, 10)
}

// iouValueText prints like rippled: plain decimal for exponents in [-25, -5]
// and for 0, scientific notation otherwise.
func iouValueText(word uint64) string {
	mantissa := word & mantissaMask
	if mantissa == 0 {
		return "0"
	}
	exp := iouExponent(word)
	sign := ""
	if !isPositive(byte(word >> 56)) {
		sign = "-"
	}

	digits := strconv.FormatUint(mantissa, 10)
	if exp != 0 && (exp < -25 || exp > -5) {
		trimmed := strings.TrimRight(digits, "0")
		return sign + trimmed + "e" + strconv.Itoa(exp+len(digits)-len(trimmed))
	}

	point := len(digits) + exp
	switch {
	case point <= 0:
		return sign + "0." + strings.Repeat("0", -point) + strings.TrimRight(digits, "0")
	case point >= len(digits):
		return sign + digits + strings.Repeat("0", point-len(digits))
	}
	frac := strings.TrimRight(digits[point:], "0")
	if frac == "" {
		return sign + digits[:point]
	}
	return sign + digits[:point] + "." + frac
}

func iouExponent(word uint64) int {
	return int(word>>54&0xFF) - iouExponentBias
}

func isNative(b byte) bool {
	return b&NotXRPBitMask == 0
}

func isPositive(b byte) bool {
	return b&0x40 != 0
}
