package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJWT(t *testing.T) {
	jwtSecret := "test-secret"
	duration := 24 * time.Hour

	t.Run("EditorToken", func(t *testing.T) {
		token, err := GenerateJWT(duration, jwtSecret)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		claims := &Claims{}
		parsedToken, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtSecret), nil
		})

		require.NoError(t, err)
		assert.True(t, parsedToken.Valid)
		assert.True(t, claims.Authorized)
		assert.Equal(t, SubjectEditor, claims.Subject)
		assert.Equal(t, Issuer, claims.Issuer)
		assert.True(t, claims.ExpiresAt > time.Now().Unix())
	})

	t.Run("InvalidSecret", func(t *testing.T) {
		_, err := GenerateJWT(duration, "")
		assert.Error(t, err)
	})
}

func TestValidateJWTToken(t *testing.T) {
	jwtSecret := "test-secret"

	t.Run("ValidToken", func(t *testing.T) {
		tokenString, err := GenerateJWT(time.Hour, jwtSecret)
		require.NoError(t, err)

		claims, err := ValidateJWTToken(tokenString, jwtSecret)
		require.NoError(t, err)
		assert.Equal(t, Issuer, claims.Issuer)
		assert.True(t, claims.VerifyExpiresAt(time.Now().Unix(), true), "token should not be expired yet")

		expiredTime := time.Now().Add(time.Hour + time.Second).Unix()
		assert.False(t, claims.VerifyExpiresAt(expiredTime, true), "token should be expired")
	})

	t.Run("InvalidToken_Expired", func(t *testing.T) {
		tokenString, err := GenerateJWT(-1*time.Hour, jwtSecret)
		require.NoError(t, err)

		_, err = ValidateJWTToken(tokenString, jwtSecret)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("InvalidToken_WrongSecret", func(t *testing.T) {
		tokenString, err := GenerateJWT(time.Hour, jwtSecret)
		require.NoError(t, err)

		_, err = ValidateJWTToken(tokenString, "wrong-secret")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("InvalidToken_Malformed", func(t *testing.T) {
		_, err := ValidateJWTToken("malformed-token", jwtSecret)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("InvalidToken_EmptyToken", func(t *testing.T) {
		_, err := ValidateJWTToken("", jwtSecret)
		assert.ErrorIs(t, err, ErrEmptyToken)
	})

	t.Run("InvalidToken_NotAuthorized", func(t *testing.T) {
		claims := Claims{
			StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix()},
		}
		tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
		require.NoError(t, err)

		_, err = ValidateJWTToken(tokenString, jwtSecret)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}
