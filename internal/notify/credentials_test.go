package notify

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fulfilmenthub/notify-adapter/internal/domain"
)

// compositeKey builds a credential in the provider's format:
// free-text name, then the service ID and secret key as the trailing
// 73 characters.
func compositeKey(name, serviceID, secretKey string) string {
	return name + "-" + serviceID + "-" + secretKey
}

func TestIsValidUUID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"version 4", "0c5a4f95-bfa4-4364-9394-8499b4d777d5", true},
		{"generated v4", uuid.NewString(), true},
		{"version 1", "f47ac10b-58cc-1372-a567-0e02b2c3d479", false},
		{"empty", "", false},
		{"garbage", "not-a-uuid-at-all", false},
		{"hex without hyphens", "0c5a4f95bfa443649394849b4d777d5f", false},
		{"braced form rejected", "{0c5a4f95-bfa4-4364-9394-8499b4d777d5}", false},
		{"urn form rejected", "urn:uuid:0c5a4f95-bfa4-4364-9394-8499b4d777d5", false},
		{"truncated", "0c5a4f95-bfa4-4364-9394", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidUUID(tc.input))
		})
	}
}

func TestDecomposeAPIKey(t *testing.T) {
	serviceID := uuid.NewString()
	secretKey := uuid.NewString()

	creds, err := DecomposeAPIKey(compositeKey("notify_adapter_prod", serviceID, secretKey))
	require.NoError(t, err)
	assert.Equal(t, serviceID, creds.ServiceID)
	assert.Equal(t, secretKey, creds.SecretKey)
}

func TestDecomposeAPIKey_InvalidServiceID(t *testing.T) {
	key := compositeKey("prod", strings.Repeat("x", 36), uuid.NewString())

	_, err := DecomposeAPIKey(key)
	assert.ErrorIs(t, err, domain.ErrServiceIDNotUUID)
}

func TestDecomposeAPIKey_InvalidSecretKey(t *testing.T) {
	key := compositeKey("prod", uuid.NewString(), strings.Repeat("x", 36))

	_, err := DecomposeAPIKey(key)
	assert.ErrorIs(t, err, domain.ErrAPIKeyNotUUID)
}

func TestDecomposeAPIKey_ServiceIDErrorTakesPrecedence(t *testing.T) {
	// Both halves malformed: the service-ID error must be reported.
	key := compositeKey("prod", strings.Repeat("x", 36), strings.Repeat("y", 36))

	_, err := DecomposeAPIKey(key)
	assert.ErrorIs(t, err, domain.ErrServiceIDNotUUID)
}

func TestDecomposeAPIKey_TooShort(t *testing.T) {
	for _, key := range []string{"", "short", uuid.NewString()} {
		_, err := DecomposeAPIKey(key)
		assert.ErrorIs(t, err, domain.ErrServiceIDNotUUID, "key %q", key)
	}
}

func TestDecomposeAPIKey_NoDelimiterParsing(t *testing.T) {
	// Decomposition is positional: a key with no separators at all works
	// as long as the trailing 73 characters carry the two UUIDs.
	serviceID := uuid.NewString()
	secretKey := uuid.NewString()
	key := "prefixwithoutdashes" + serviceID + "x" + secretKey

	creds, err := DecomposeAPIKey(key)
	require.NoError(t, err)
	assert.Equal(t, serviceID, creds.ServiceID)
	assert.Equal(t, secretKey, creds.SecretKey)
}
