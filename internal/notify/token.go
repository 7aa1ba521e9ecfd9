package notify

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SignToken derives the short-lived bearer token the provider expects:
// an HS256 JWT whose claims carry the issuer (service ID) and the
// issued-at time. The provider enforces freshness on iat, so the clock
// is read at signing time — tokens are never cached across requests.
func SignToken(secretKey, issuer string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:   issuer,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	})
	return token.SignedString([]byte(secretKey))
}
