//go:build unit

package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vending-server/internal/domain/character"
	"vending-server/internal/pkg/jwt"
)

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)
	id := character.ID{AccountID: 2000001, CharID: 150001}

	token, err := svc.GenerateToken(id)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.CharacterID())
}

func TestService_ValidateToken(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)

	sign := func(t *testing.T, key string, claims jwt.Claims) string {
		t.Helper()
		s, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(key))
		require.NoError(t, err)
		return s
	}
	valid := gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour))}

	testCases := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr error
	}{
		{
			name: "error: expired",
			token: func(t *testing.T) string {
				return sign(t, "secret", jwt.Claims{AccountID: 1, CharID: 1, RegisteredClaims: gojwt.RegisteredClaims{
					ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Minute)),
				}})
			},
			wantErr: jwt.ErrExpiredToken,
		},
		{
			name: "error: foreign key",
			token: func(t *testing.T) string {
				return sign(t, "other", jwt.Claims{AccountID: 1, CharID: 1, RegisteredClaims: valid})
			},
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name: "error: missing character id",
			token: func(t *testing.T) string {
				return sign(t, "secret", jwt.Claims{AccountID: 1, RegisteredClaims: valid})
			},
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name:    "error: garbage",
			token:   func(*testing.T) string { return "not.a.token" },
			wantErr: jwt.ErrInvalidToken,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tc.token(t))
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
