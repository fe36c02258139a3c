package types

import (
	"bytes"
	"fmt"

	addresscodec "github.com/LeJamon/goXRPLcodec/internal/codec/address-codec"
	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/types/interfaces"
)

// Issue identifies an asset: XRP alone, or a currency with its issuer.
type Issue struct{}

// FromJSON accepts {"currency":"XRP"} or {"currency":..., "issuer":...}.
func (i *Issue) FromJSON(value any) ([]byte, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: issue must be an object, got %T", ErrNotSerializable, value)
	}
	currency, err := (&Currency{}).FromJSON(m["currency"])
	if err != nil {
		return nil, err
	}
	if bytes.Equal(currency, make([]byte, CurrencyCodeLength)) {
		if _, has := m["issuer"]; has {
			return nil, fmt.Errorf("%w: XRP issue must not have an issuer", ErrNotSerializable)
		}
		return currency, nil
	}

	s, ok := m["issuer"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: issue for %v needs an issuer", ErrNotSerializable, m["currency"])
	}
	issuer, err := accountIDFromString(s)
	if err != nil {
		return nil, fmt.Errorf("issuer: %w", err)
	}
	return append(currency, issuer...), nil
}

// ToJSON reads 20 bytes, plus 20 more when the currency is not XRP.
func (i *Issue) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	currency, err := p.ReadBytes(CurrencyCodeLength)
	if err != nil {
		return nil, err
	}
	if bytes.Equal(currency, make([]byte, CurrencyCodeLength)) {
		return map[string]any{"currency": "XRP"}, nil
	}
	issuer, err := p.ReadBytes(addresscodec.AccountAddressLength)
	if err != nil {
		return nil, err
	}
	address, err := addresscodec.EncodeAccountIDToClassicAddress(issuer)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"currency": currencyToString(currency),
		"issuer":   address,
	}, nil
}
