package types

import (
	"fmt"

	addresscodec "github.com/LeJamon/goXRPLcodec/internal/codec/address-codec"
	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/types/interfaces"
)

// Path step flags and path set delimiters.
const (
	typeAccount  = 0x01
	typeCurrency = 0x10
	typeIssuer   = 0x20

	pathSeparatorByte = 0xFF
	pathSetEndByte    = 0x00
)

// PathSet is a list of payment paths, each a list of steps.
type PathSet struct{}

// FromJSON expects [][]{account?, currency?, issuer?}. Other step keys are ignored.
func (p *PathSet) FromJSON(value any) ([]byte, error) {
	paths, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: path set must be an array of paths, got %T", ErrNotSerializable, value)
	}

	var out []byte
	for i, raw := range paths {
		if i > 0 {
			out = append(out, pathSeparatorByte)
		}
		steps, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: path %d must be an array, got %T", ErrNotSerializable, i, raw)
		}
		for j, rawStep := range steps {
			step, ok := rawStep.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: path %d step %d must be an object", ErrNotSerializable, i, j)
			}
			b, err := serializePathStep(step)
			if err != nil {
				return nil, fmt.Errorf("path %d step %d: %w", i, j, err)
			}
			out = append(out, b...)
		}
	}
	return append(out, pathSetEndByte), nil
}

// ToJSON reads paths up to the path set terminator.
func (p *PathSet) ToJSON(parser interfaces.BinaryParser, _ ...int) (any, error) {
	paths := []any{}
	path := []any{}
	for {
		b, err := parser.ReadByte()
		if err != nil {
			return nil, err
		}
		switch b {
		case pathSetEndByte:
			if len(paths) == 0 && len(path) == 0 {
				return paths, nil
			}
			return append(paths, path), nil
		case pathSeparatorByte:
			paths = append(paths, path)
			path = []any{}
			continue
		}

		step, err := parsePathStep(parser, b)
		if err != nil {
			return nil, err
		}
		path = append(path, step)
	}
}

func serializePathStep(step map[string]any) ([]byte, error) {
	var flags byte
	body := make([]byte, 0, 60)

	if v, ok := step["account"]; ok {
		s, _ := v.(string)
		b, err := accountIDFromString(s)
		if err != nil {
			return nil, fmt.Errorf("account: %w", err)
		}
		flags |= typeAccount
		body = append(body, b...)
	}
	if v, ok := step["currency"]; ok {
		b, err := (&Currency{}).FromJSON(v)
		if err != nil {
			return nil, err
		}
		flags |= typeCurrency
		body = append(body, b...)
	}
	if v, ok := step["issuer"]; ok {
		s, _ := v.(string)
		b, err := accountIDFromString(s)
		if err != nil {
			return nil, fmt.Errorf("issuer: %w", err)
		}
		flags |= typeIssuer
		body = append(body, b...)
	}
	if flags == 0 {
		return nil, fmt.Errorf("%w: empty path step", ErrNotSerializable)
	}
	return append([]byte{flags}, body...), nil
}

func parsePathStep(parser interfaces.BinaryParser, flags byte) (map[string]any, error) {
	if flags&^(typeAccount|typeCurrency|typeIssuer) != 0 {
		return nil, fmt.Errorf("%w: unknown path step type 0x%02x", ErrNotSerializable, flags)
	}
	step := make(map[string]any, 3)
	if flags&typeAccount != 0 {
		b, err := parser.ReadBytes(addresscodec.AccountAddressLength)
		if err != nil {
			return nil, err
		}
		if step["account"], err = addresscodec.EncodeAccountIDToClassicAddress(b); err != nil {
			return nil, err
		}
	}
	if flags&typeCurrency != 0 {
		b, err := parser.ReadBytes(CurrencyCodeLength)
		if err != nil {
			return nil, err
		}
		step["currency"] = currencyToString(b)
	}
	if flags&typeIssuer != 0 {
		b, err := parser.ReadBytes(addresscodec.AccountAddressLength)
		if err != nil {
			return nil, err
		}
		if step["issuer"], err = addresscodec.EncodeAccountIDToClassicAddress(b); err != nil {
			return nil, err
		}
	}
	return step, nil
}
