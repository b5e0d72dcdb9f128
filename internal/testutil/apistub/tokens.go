package apistub

import (
	"strconv"
	"time"

	"github.com/GriffinCanCode/ShopList/client/internal/shared/id"
	"github.com/golang-jwt/jwt/v5"
)

var signingKey = []byte("apistub-signing-key")

// issueLocked mints a JWT access token and an opaque refresh token.
func (s *Server) issueLocked(userID string) (string, string) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		ID:        id.Default().Generate().String(),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		panic(err)
	}
	refreshToken := id.Default().GenerateWithPrefix("rt")

	s.access[accessToken] = userID
	s.refresh[refreshToken] = userID
	return accessToken, refreshToken
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
