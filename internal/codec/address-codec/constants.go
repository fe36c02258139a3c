package addresscodec

const (
	// AlphabetXRPL is the XRPL base58 dictionary. It differs from Bitcoin's.
	AlphabetXRPL = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

	// AccountAddressLength is the byte length of an account ID.
	AccountAddressLength = 20
	// AccountPublicKeyLength is the byte length of an account or node public key.
	AccountPublicKeyLength = 33
	// FamilySeedLength is the byte length of seed entropy.
	FamilySeedLength = 16
	// XAddressLength is the decoded payload length of an X-address, checksum excluded.
	XAddressLength = 31

	// ClassicAddressPrefix is the version byte of classic addresses.
	ClassicAddressPrefix byte = 0x00
	// AccountPublicKeyPrefix is the version byte of account public keys.
	AccountPublicKeyPrefix byte = 0x23
	// NodePublicKeyPrefix is the version byte of node (validator) public keys.
	NodePublicKeyPrefix byte = 0x1C
	// AccountSecretKeyPrefix is the version byte of account private keys.
	AccountSecretKeyPrefix byte = 0x22
	// NodePrivateKeyPrefix is the version byte of node private keys.
	NodePrivateKeyPrefix byte = 0x20
	// FamilySeedPrefix is the version byte of secp256k1 seeds.
	FamilySeedPrefix byte = 0x21
)

var (
	// ED25519SeedPrefix is the three byte version of ed25519 seeds ("sEd...").
	ED25519SeedPrefix = []byte{0x01, 0xE1, 0x4B}

	mainnetXAddressPrefix = []byte{0x05, 0x44}
	testnetXAddressPrefix = []byte{0x04, 0x93}
)
