package addresscodec

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// XAddress is a decoded X-address: an account, an optional destination tag and a network flag.
type XAddress struct {
	AccountID      []byte
	ClassicAddress string
	Tag            uint32
	HasTag         bool
	TestNet        bool
}

// EncodeXAddress packs a 20 byte account ID, an optional tag and the network
// flag into an X-address. tag is ignored unless tagFlag is set.
func EncodeXAddress(accountID []byte, tag uint32, tagFlag, testnet bool) (string, error) {
	if len(accountID) != AccountAddressLength {
		return "", fmt.Errorf("%w: account ID must be %d bytes", ErrInvalidAddressLength, AccountAddressLength)
	}

	payload := make([]byte, 0, XAddressLength)
	if testnet {
		payload = append(payload, testnetXAddressPrefix...)
	} else {
		payload = append(payload, mainnetXAddressPrefix...)
	}
	payload = append(payload, accountID...)

	var flag byte
	if tagFlag {
		flag = 1
	} else {
		tag = 0
	}
	payload = append(payload, flag)
	payload = binary.LittleEndian.AppendUint32(payload, tag)
	payload = append(payload, 0, 0, 0, 0)

	return Base58CheckEncode(payload), nil
}

// DecodeXAddress unpacks an X-address. Any structural problem is reported as ErrInvalidExtendedAddress.
func DecodeXAddress(xAddress string) (*XAddress, error) {
	decoded, err := Base58CheckDecode(xAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidExtendedAddress, err)
	}
	if len(decoded) != XAddressLength {
		return nil, fmt.Errorf("%w: payload is %d bytes", ErrInvalidExtendedAddress, len(decoded))
	}

	var testnet bool
	switch {
	case bytes.Equal(decoded[:2], mainnetXAddressPrefix):
	case bytes.Equal(decoded[:2], testnetXAddressPrefix):
		testnet = true
	default:
		return nil, fmt.Errorf("%w: unknown network prefix %X", ErrInvalidExtendedAddress, decoded[:2])
	}

	accountID := decoded[2:22]
	flag := decoded[22]
	tag := binary.LittleEndian.Uint32(decoded[23:27])

	if flag > 1 {
		return nil, fmt.Errorf("%w: unsupported tag flag %d", ErrInvalidExtendedAddress, flag)
	}
	if !bytes.Equal(decoded[27:], []byte{0, 0, 0, 0}) {
		return nil, fmt.Errorf("%w: reserved bytes are not zero", ErrInvalidExtendedAddress)
	}
	if flag == 0 && tag != 0 {
		return nil, fmt.Errorf("%w: tag present without flag", ErrInvalidExtendedAddress)
	}

	classic, err := EncodeAccountIDToClassicAddress(accountID)
	if err != nil {
		return nil, err
	}
	return &XAddress{
		AccountID:      accountID,
		ClassicAddress: classic,
		Tag:            tag,
		HasTag:         flag == 1,
		TestNet:        testnet,
	}, nil
}

// ClassicAddressToXAddress converts a classic address to an X-address.
func ClassicAddressToXAddress(classicAddress string, tag uint32, tagFlag, testnet bool) (string, error) {
	_, accountID, err := DecodeClassicAddressToAccountID(classicAddress)
	if err != nil {
		return "", err
	}
	return EncodeXAddress(accountID, tag, tagFlag, testnet)
}

// XAddressToClassicAddress converts an X-address back to its classic address, tag and network.
func XAddressToClassicAddress(xAddress string) (classicAddress string, tag uint32, hasTag, testnet bool, err error) {
	x, err := DecodeXAddress(xAddress)
	if err != nil {
		return "", 0, false, false, err
	}
	return x.ClassicAddress, x.Tag, x.HasTag, x.TestNet, nil
}

// IsValidXAddress reports whether s is a well formed X-address.
func IsValidXAddress(s string) bool {
	_, err := DecodeXAddress(s)
	return err == nil
}
