package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	Issuer = "termfolio"

	// SubjectEditor marks tokens that unlock the blog editor.
	SubjectEditor = "editor"
)

var (
	ErrEmptyToken   = errors.New("token string is empty")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// GenerateJWT signs an editor token valid for the given duration.
func GenerateJWT(duration time.Duration, jwtSecret string) (string, error) {
	if jwtSecret == "" {
		return "", fmt.Errorf("jwtSecret shouldn't be empty")
	}

	now := time.Now()
	claims := Claims{
		Authorized: true,
		Timestamp:  now.UnixMilli(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Unix() + int64(duration.Seconds()),
			IssuedAt:  now.Unix(),
			Issuer:    Issuer,
			Subject:   SubjectEditor,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		return "", fmt.Errorf("error generating editor token: %w", err)
	}
	return tokenString, nil
}

// ValidateJWTToken parses and verifies a token. Expired tokens yield ErrTokenExpired,
// every other failure ErrTokenInvalid.
func ValidateJWTToken(tokenString, jwtSecret string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	claims := &Claims{}
	jwtToken, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Method.Alg())
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if !jwtToken.Valid || !claims.Authorized {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
