package types

import (
	"fmt"

	addresscodec "github.com/LeJamon/goXRPLcodec/internal/codec/address-codec"
	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/types/interfaces"
)

// XChainBridge names the door accounts and assets on both sides of a bridge.
// Door accounts are written with a one byte length prefix.
type XChainBridge struct{}

var xchainBridgeParts = []struct {
	key    string
	isDoor bool
}{
	{"LockingChainDoor", true},
	{"LockingChainIssue", false},
	{"IssuingChainDoor", true},
	{"IssuingChainIssue", false},
}

// FromJSON encodes the four bridge members in their fixed order.
func (x *XChainBridge) FromJSON(value any) ([]byte, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: XChainBridge must be an object, got %T", ErrNotSerializable, value)
	}

	var out []byte
	for _, part := range xchainBridgeParts {
		v, has := m[part.key]
		if !has {
			return nil, fmt.Errorf("%w: XChainBridge is missing %s", ErrNotSerializable, part.key)
		}
		if part.isDoor {
			b, err := (&AccountID{}).FromJSON(v)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", part.key, err)
			}
			out = append(out, byte(len(b)))
			out = append(out, b...)
			continue
		}
		b, err := (&Issue{}).FromJSON(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", part.key, err)
		}
		out = append(out, b...)
	}
	return out, nil
}

// ToJSON decodes the four bridge members.
func (x *XChainBridge) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	out := make(map[string]any, len(xchainBridgeParts))
	for _, part := range xchainBridgeParts {
		var (
			v   any
			err error
		)
		if part.isDoor {
			var n byte
			if n, err = p.ReadByte(); err != nil {
				return nil, err
			}
			if int(n) != addresscodec.AccountAddressLength {
				return nil, fmt.Errorf("%s: %w: door account of %d bytes", part.key, addresscodec.ErrInvalidAddressLength, n)
			}
			v, err = (&AccountID{}).ToJSON(p, int(n))
		} else {
			v, err = (&Issue{}).ToJSON(p)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", part.key, err)
		}
		out[part.key] = v
	}
	return out, nil
}
