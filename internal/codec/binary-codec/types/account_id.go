package types

import (
	"encoding/hex"
	"fmt"
	"regexp"

	addresscodec "github.com/LeJamon/goXRPLcodec/internal/codec/address-codec"
	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/types/interfaces"
)

var hexAccountID = regexp.MustCompile(`^[0-9a-fA-F]{40}$`)

// AccountID is a 20 byte account identifier rendered as a classic address.
type AccountID struct{}

// FromJSON accepts a classic address, an untagged X-address or 40 hex digits.
// Tagged X-addresses are expanded by the enclosing STObject before they get here.
func (a *AccountID) FromJSON(value any) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: account must be a string, got %T", ErrNotSerializable, value)
	}
	return accountIDFromString(s)
}

// ToJSON reads the account. A length hint of 0 yields the zero account, which
// is how pseudo-transactions carry an empty Account field.
func (a *AccountID) ToJSON(p interfaces.BinaryParser, opts ...int) (any, error) {
	length := addresscodec.AccountAddressLength
	if len(opts) > 0 {
		length = opts[0]
	}
	var b []byte
	switch length {
	case 0:
		b = make([]byte, addresscodec.AccountAddressLength)
	case addresscodec.AccountAddressLength:
		var err error
		if b, err = p.ReadBytes(length); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: account ID of %d bytes", addresscodec.ErrInvalidAddressLength, length)
	}
	return addresscodec.EncodeAccountIDToClassicAddress(b)
}

func accountIDFromString(s string) ([]byte, error) {
	if hexAccountID.MatchString(s) {
		return hex.DecodeString(s)
	}
	if addresscodec.IsValidXAddress(s) {
		x, err := addresscodec.DecodeXAddress(s)
		if err != nil {
			return nil, err
		}
		if x.HasTag {
			return nil, fmt.Errorf("%w: tagged X-address %s in a field without a tag", addresscodec.ErrInvalidExtendedAddress, s)
		}
		return x.AccountID, nil
	}
	_, accountID, err := addresscodec.DecodeClassicAddressToAccountID(s)
	if err != nil {
		return nil, err
	}
	return accountID, nil
}
