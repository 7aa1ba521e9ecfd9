package notify

import (
	"github.com/google/uuid"

	"github.com/fulfilmenthub/notify-adapter/internal/domain"
)

// A composite API key embeds two UUIDs at fixed trailing offsets:
// the service ID at [len-73 : len-37] and the secret key at [len-36:].
// Decomposition is purely positional; no delimiter parsing.
const compositeKeyLen = 73

// IsValidUUID reports whether s is a canonical version-4 UUID
// (8-4-4-4-12 hex groups). Malformed input is a plain false, never a
// panic. The length check keeps uuid.Parse from accepting the urn:,
// braced and 32-hex alternate encodings.
func IsValidUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	u, err := uuid.Parse(s)
	return err == nil && u.Version() == 4
}

// Credentials is the decomposed form of a composite API key.
type Credentials struct {
	ServiceID string
	SecretKey string
}

// DecomposeAPIKey splits a composite key into its service ID and secret
// key. The service ID is validated first: when both halves are invalid
// the returned error identifies the service ID.
func DecomposeAPIKey(key string) (Credentials, error) {
	var serviceID, secretKey string
	if len(key) >= compositeKeyLen {
		serviceID = key[len(key)-73 : len(key)-37]
		secretKey = key[len(key)-36:]
	}

	if !IsValidUUID(serviceID) {
		return Credentials{}, domain.ErrServiceIDNotUUID
	}
	if !IsValidUUID(secretKey) {
		return Credentials{}, domain.ErrAPIKeyNotUUID
	}

	return Credentials{ServiceID: serviceID, SecretKey: secretKey}, nil
}
