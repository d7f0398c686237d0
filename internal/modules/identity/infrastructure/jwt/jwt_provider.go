package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims are the claims the external identity provider puts in its
// tokens. The subject is the provider-side account id; admin and groups drive
// role resolution.
type CustomClaims struct {
	Admin  bool     `json:"admin"`
	Groups []string `json:"groups"`
	jwt.RegisteredClaims
}

// ValidateToken validates a JWT token string using the provided secret key.
// It parses the token with custom claims and verifies the HMAC signing method.
// Returns the validated CustomClaims if the token is valid, or an error if
// validation fails.
func ValidateToken(tokenStr string, secret string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenMalformed
}
