package jwt

import (
	"errors"
	"time"

	"vending-server/internal/domain/character"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims identify one logged-in character. Tokens are minted by the login
// server; this service only needs to verify them.
type Claims struct {
	AccountID int32 `json:"account_id"`
	CharID    int32 `json:"char_id"`
	jwt.RegisteredClaims
}

func (c *Claims) CharacterID() character.ID {
	return character.ID{AccountID: c.AccountID, CharID: c.CharID}
}

type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
}

func NewService(secretKey string, tokenDuration time.Duration) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
	}
}

func (s *Service) GenerateToken(id character.ID) (string, error) {
	now := time.Now()
	claims := Claims{
		AccountID: id.AccountID,
		CharID:    id.CharID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.AccountID <= 0 || claims.CharID <= 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
