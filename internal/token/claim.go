package token

import (
	"github.com/golang-jwt/jwt"
)

// Claims carried by an editor session token.
type Claims struct {
	Authorized bool  `json:"authorized"`
	Timestamp  int64 `json:"timestamp"`
	jwt.StandardClaims
}
